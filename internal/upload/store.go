// Package upload stores user-submitted files (resumes, profile photos,
// company logos) on local disk. The store is an injected collaborator so
// handlers never share module-level upload state and tests can point it at a
// temp directory.
package upload

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindResume Kind = "resume"
	KindImage  Kind = "image"
)

var (
	ErrTooLarge     = errors.New("file too large")
	ErrBadType      = errors.New("unsupported file type")
	ErrOutsideDir   = errors.New("path outside upload directory")
	ErrFileNotFound = errors.New("file not found")
)

var allowedTypes = map[Kind]map[string]struct{}{
	KindResume: {
		"application/pdf": {},
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	},
	KindImage: {
		"image/jpeg": {},
		"image/png":  {},
		"image/gif":  {},
		"image/webp": {},
	},
}

type Store struct {
	dir     string
	maxSize int64
}

func NewStore(dir string, maxSize int64) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("empty upload dir")
	}
	if maxSize <= 0 {
		maxSize = 5 * 1024 * 1024
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: abs, maxSize: maxSize}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save validates and persists a multipart file under a collision-free name,
// returning the stored filename. The declared Content-Type is checked against
// the kind's allow-list; size is enforced against the store limit.
func (s *Store) Save(fh *multipart.FileHeader, kind Kind) (string, error) {
	if fh == nil {
		return "", ErrFileNotFound
	}
	if fh.Size > s.maxSize {
		return "", ErrTooLarge
	}
	ct := strings.TrimSpace(strings.Split(fh.Header.Get("Content-Type"), ";")[0])
	if _, ok := allowedTypes[kind][ct]; !ok {
		return "", ErrBadType
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Ext(fh.Filename))
	dst, err := s.Resolve(name)
	if err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := out.ReadFrom(src); err != nil {
		_ = os.Remove(dst)
		return "", err
	}
	return name, nil
}

// Resolve maps a stored filename to an absolute path, rejecting anything
// that would escape the upload directory.
func (s *Store) Resolve(name string) (string, error) {
	p := filepath.Join(s.dir, filepath.Clean("/"+name))
	if p != s.dir && !strings.HasPrefix(p, s.dir+string(filepath.Separator)) {
		return "", ErrOutsideDir
	}
	return p, nil
}

// Remove deletes a stored file; a missing file is not an error, matching the
// replace-old-resume flow where the previous file may already be gone.
func (s *Store) Remove(name string) error {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	p, err := s.Resolve(filepath.Base(name))
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) Exists(name string) bool {
	p, err := s.Resolve(filepath.Base(name))
	if err != nil {
		return false
	}
	_, err = os.Stat(p)
	return err == nil
}

// List returns stored filenames with their modification times, for the
// orphan sweeper.
func (s *Store) List() ([]Entry, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, Entry{Name: e.Name(), ModTime: info.ModTime()})
	}
	return out, nil
}

type Entry struct {
	Name    string
	ModTime time.Time
}

// ContentType maps a stored filename extension to the type used when serving
// it inline.
func ContentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
