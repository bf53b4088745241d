// Package database opens gorm connections for the supported SQL drivers.
package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds database configuration.
type Config struct {
	Driver          string // postgres, mysql, sqlite
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string // postgres only
	TimeZone        string // postgres only
	FilePath        string // sqlite only
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime int // minutes
	LogLevel        string
}

var dialectors = map[string]func(*Config) (gorm.Dialector, error){
	"postgres": func(c *Config) (gorm.Dialector, error) {
		tz := c.TimeZone
		if tz == "" {
			tz = "UTC"
		}
		return postgres.New(postgres.Config{
			DSN: fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
				c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode, tz),
			PreferSimpleProtocol: true,
		}), nil
	},
	// clientFoundRows makes RowsAffected count matched rows, so an update
	// that changes nothing is not mistaken for a missing row.
	"mysql": func(c *Config) (gorm.Dialector, error) {
		return mysql.Open(fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true",
			c.User, c.Password, c.Host, c.Port, c.DBName)), nil
	},
	"sqlite": func(c *Config) (gorm.Dialector, error) {
		if err := ensureDir(c.FilePath); err != nil {
			return nil, err
		}
		return sqlite.Open(sqliteDSN(c.FilePath)), nil
	},
}

// New opens a connection for cfg.Driver and applies the pool limits.
func New(cfg *Config) (*gorm.DB, error) {
	open, ok := dialectors[cfg.Driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
	dialector, err := open(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         NewLogger(cfg.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
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

// ensureDir creates the parent directory of an on-disk SQLite file.
func ensureDir(path string) error {
	if path == "" || path == ":memory:" || strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create sqlite directory %s: %w", dir, err)
	}
	return nil
}

// sqliteDSN turns on foreign key enforcement, which SQLite leaves off per
// connection unless asked. Cascading deletes depend on it.
func sqliteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys") || strings.Contains(path, "_fk=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

// AutoMigrate migrates models in order, so referenced tables come first.
func AutoMigrate(db *gorm.DB, models ...interface{}) error {
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
	}
	return nil
}

// logLevel maps a textual level onto GORM's log levels. SQL statements are
// only traced at debug.
func logLevel(s string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent":
		return logger.Silent
	case "trace", "debug":
		return logger.Info
	case "error", "fatal":
		return logger.Error
	default:
		return logger.Warn
	}
}
