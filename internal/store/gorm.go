package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

const duplicateKeyErrorCode = "23505"

// GormStore implements Store on top of gorm. SQLite runs on the pure-Go
// modernc driver; Postgres goes through pgx.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

type Options struct {
	Driver       string // "sqlite" or "postgres"
	DSN          string
	MaxOpenConns int
	LogLevel     logger.LogLevel
}

// Open connects, applies the pool limits and migrates every table.
func Open(opts Options) (*GormStore, error) {
	var dialector gorm.Dialector
	switch opts.Driver {
	case "postgres":
		dialector = postgres.Open(opts.DSN)
	case "sqlite", "":
		dialector = sqlite.Dialector{DriverName: "sqlite", DSN: opts.DSN}
	default:
		return nil, fmt.Errorf("store: unsupported driver %q", opts.Driver)
	}

	level := opts.LogLevel
	if level == 0 {
		level = logger.Warn
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", opts.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}

	if err := db.AutoMigrate(allModels()...); err != nil {
		return nil, fmt.Errorf("store: migrate: %w", err)
	}

	return &GormStore{db: db}, nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// wrapError maps driver errors onto the package sentinels.
func wrapError(err error) error {
	var pgErr *pgconn.PgError

	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.As(err, &pgErr) && pgErr.Code == duplicateKeyErrorCode:
		return fmt.Errorf("%w: %s", ErrConflict, pgErr.Detail)
	case strings.Contains(err.Error(), "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}

// byUser matches the "user" column, which is a reserved word in Postgres
// and must always go through gorm's identifier quoting.
func byUser(username string) clause.Expression {
	return clause.Eq{Column: clause.Column{Name: "user"}, Value: username}
}
