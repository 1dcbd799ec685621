package repository

import (
	"context"

	"jobboard/internal/database"
)

// FileReferenceRepository reports which stored upload names are still
// referenced by a user or company record.
type FileReferenceRepository interface {
	ListReferencedFiles(ctx context.Context) (map[string]struct{}, error)
}

type PostgresFileReferenceRepository struct {
	db database.DB
}

func NewPostgresFileReferenceRepository(db database.DB) *PostgresFileReferenceRepository {
	return &PostgresFileReferenceRepository{db: db}
}

func (r *PostgresFileReferenceRepository) ListReferencedFiles(ctx context.Context) (map[string]struct{}, error) {
	const q = `
		SELECT resume FROM users WHERE resume <> ''
		UNION
		SELECT profile_photo FROM users WHERE profile_photo <> ''
		UNION
		SELECT logo FROM companies WHERE logo <> ''`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out[name] = struct{}{}
	}
	return out, rows.Err()
}
