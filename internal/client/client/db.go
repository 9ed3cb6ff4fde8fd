package client

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/wellbeinghub/internal/client/migrations"
	"github.com/dmitrijs2005/wellbeinghub/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/wellbeinghub/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Session store backends accepted by OpenRepository.
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the SQLite file at dsn and
// migrates it. Plain file paths get their parent directory created and a
// leading "~/" expanded; ":memory:" and "file:" URIs are passed through.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
		path, err := filex.PrepareFile(dsn)
		if err != nil {
			return nil, err
		}
		dsn = path
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// OpenRepository builds the persistence port for the chosen backend. The
// returned close function releases the underlying connection.
func OpenRepository(ctx context.Context, kind, dsn, redisURL string) (metadata.Repository, func() error, error) {
	switch kind {
	case StoreSQLite, "":
		db, err := InitDatabase(ctx, dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("init session database: %w", err)
		}
		return metadata.NewSQLiteRepository(db), db.Close, nil

	case StoreMemory:
		return metadata.NewMemoryRepository(), func() error { return nil }, nil

	case StoreRedis:
		rc, err := metadata.OpenRedis(ctx, redisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		return metadata.NewRedisRepository(rc, ""), rc.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown session store %q", kind)
	}
}
