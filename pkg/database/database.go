package database

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// memoryDSN is the transient fallback store used when no connection URL
// is configured. Data does not survive the process.
const memoryDSN = "file::memory:"

// Config holds database configuration. URL selects the driver by
// scheme: postgres://, mysql://, sqlite://path, or a bare file path.
// An empty URL falls back to an in-memory SQLite store.
type Config struct {
	URL             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime int // minutes
	LogQueries      bool
}

// New creates a GORM database connection for the configured URL and
// tunes the connection pool.
func New(cfg *Config) (*gorm.DB, error) {
	dialector, memory, err := dialectorFor(cfg.URL)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if cfg.LogQueries {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if memory {
		// Each connection to an in-memory SQLite store sees its own
		// database; a single connection keeps the data visible.
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	}

	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	}

	return db, nil
}

// dialectorFor maps a connection URL to a GORM dialector. The second
// return value reports whether the store is an in-memory SQLite.
func dialectorFor(rawURL string) (gorm.Dialector, bool, error) {
	switch {
	case rawURL == "" || rawURL == ":memory:":
		return sqlite.Open(memoryDSN), true, nil

	case strings.HasPrefix(rawURL, "postgres://"), strings.HasPrefix(rawURL, "postgresql://"):
		return postgres.New(postgres.Config{
			DSN:                  rawURL,
			PreferSimpleProtocol: true,
		}), false, nil

	case strings.HasPrefix(rawURL, "mysql://"):
		dsn, err := mysqlDSN(rawURL)
		if err != nil {
			return nil, false, err
		}
		return mysql.Open(dsn), false, nil

	case strings.HasPrefix(rawURL, "sqlite://"):
		path := strings.TrimPrefix(rawURL, "sqlite://")
		memory := path == ":memory:" || strings.Contains(path, "mode=memory")
		return sqlite.Open(path), memory, nil

	case strings.Contains(rawURL, "://"):
		return nil, false, fmt.Errorf("unsupported database url scheme: %s", rawURL)

	default:
		// Bare path is treated as a SQLite file.
		return sqlite.Open(rawURL), false, nil
	}
}

// mysqlDSN converts a mysql:// URL into the DSN format the driver
// expects: user:pass@tcp(host:port)/dbname?params.
func mysqlDSN(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse mysql url: %w", err)
	}

	host := u.Host
	if u.Port() == "" {
		host += ":3306"
	}

	pass, _ := u.User.Password()
	params := u.RawQuery
	if params == "" {
		params = "charset=utf8mb4&parseTime=True&loc=Local"
	}

	return fmt.Sprintf("%s:%s@tcp(%s)/%s?%s",
		u.User.Username(), pass, host, strings.TrimPrefix(u.Path, "/"), params,
	), nil
}

// AutoMigrate runs GORM auto-migration for the given models. It is
// idempotent: existing tables are left alone.
func AutoMigrate(db *gorm.DB, models ...interface{}) error {
	return db.AutoMigrate(models...)
}
