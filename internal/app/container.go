package app

import (
	"context"
	"log"
	"os"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/database/migration"
	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/internal/infrastructure/cache"
	"jobboard/internal/maintenance"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/repository"
	"jobboard/internal/upload"
)

type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Store *upload.Store
	JWT   jwt.Service

	Users        *repository.PostgresUserRepository
	Companies    *repository.PostgresCompanyRepository
	Jobs         *repository.PostgresJobRepository
	Applications *repository.PostgresApplicationRepository

	Sweeper *maintenance.Sweeper
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{Dir: "migrations"}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	store, err := upload.NewStore(cfg.Upload.Dir, cfg.Upload.MaxSizeBytes)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(logger),
		Store:  store,
		JWT: jwt.NewHMACService(
			cfg.JWT.AccessSecret,
			cfg.JWT.RefreshSecret,
			cfg.JWT.AccessExpiresIn,
			cfg.JWT.RefreshExpiresIn,
		),
		Users:        repository.NewPostgresUserRepository(db),
		Companies:    repository.NewPostgresCompanyRepository(db),
		Jobs:         repository.NewPostgresJobRepository(db),
		Applications: repository.NewPostgresApplicationRepository(db),
	}

	c.Sweeper = maintenance.NewSweeper(
		store,
		repository.NewPostgresFileReferenceRepository(db),
		cfg.Upload.SweepMinAge,
		logger,
	)
	c.Sweeper.Start(cfg.Upload.SweepEvery)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Sweeper != nil {
		c.Sweeper.Stop()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
