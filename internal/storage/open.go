package storage

import (
	"context"
	"log/slog"

	"github.com/polkiloo/foodbridge/internal/config"
	"github.com/polkiloo/foodbridge/internal/domain/repository"
	"github.com/polkiloo/foodbridge/internal/storage/mongodb"
	"github.com/polkiloo/foodbridge/internal/storage/postgres"
)

// Backend is a repository factory with connection management.
type Backend interface {
	repository.Factory
	HealthCheck(ctx context.Context) error
	Close()
}

// Kind names the storage engine selected by a DSN.
type Kind string

const (
	KindPostgres Kind = "postgres"
	KindMongo    Kind = "mongodb"
)

// KindOf picks the engine from the DSN scheme. Anything that is not a
// MongoDB URI is handed to the PostgreSQL driver.
func KindOf(dsn string) Kind {
	return Kind(config.DatabaseKind(dsn))
}

var (
	openPostgres = func(ctx context.Context, dsn string, logger *slog.Logger) (Backend, error) {
		s, err := postgres.New(ctx, dsn, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	openMongo = func(ctx context.Context, dsn string, logger *slog.Logger) (Backend, error) {
		s, err := mongodb.New(ctx, dsn, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
)

// Open connects to the storage engine named by dsn.
func Open(ctx context.Context, dsn string, logger *slog.Logger) (Backend, error) {
	kind := KindOf(dsn)
	logger.Info("opening storage", slog.String("kind", string(kind)))
	if kind == KindMongo {
		return openMongo(ctx, dsn, logger)
	}
	return openPostgres(ctx, dsn, logger)
}
