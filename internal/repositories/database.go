package repository

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/XSAM/otelsql"
	"github.com/pressly/goose/v3"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/smarino-dev/tienda-api/internal/config"

	_ "github.com/lib/pq"
)

type Repositories struct {
	DB       *sql.DB
	User     UserRepository
	Product  ProductRepository
	Category CategoryRepository
	Cart     CartRepository
	Favorite FavoriteRepository
}

// New opens the Postgres pool (traced via otelsql) and builds one
// repository per aggregate over the shared handle.
func New(cfg *config.Config) (*Repositories, error) {
	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repositories{
		DB:       db,
		User:     NewUserRepo(db),
		Product:  NewProductRepo(db),
		Category: NewCategoryRepo(db),
		Cart:     NewCartRepo(db),
		Favorite: NewFavoriteRepo(db),
	}, nil
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}

// RunMigrations applies pending goose migrations from the configured directory.
func RunMigrations(db *sql.DB, migrationsDir string, logger *slog.Logger) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	logger.Info("Checking for pending migrations", slog.String("dir", migrationsDir))

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Migrations completed")

	return nil
}
