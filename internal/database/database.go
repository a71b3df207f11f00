package database

import (
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite" // registers the cgo-free "sqlite" driver

	"officespace/internal/repository"
)

// Connect opens PostgreSQL for postgres:// DSNs and falls back to SQLite
// (modernc driver, no cgo) for everything else, which covers local files
// and the :memory: DSN used by tests.
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		logrus.Info("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	logrus.WithField("dsn", dsn).Info("using SQLite")

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate keeps the schema current for every table the core owns.
func Migrate(db *gorm.DB) error {
	return repository.AutoMigrate(db)
}
