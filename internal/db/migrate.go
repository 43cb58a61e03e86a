package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"meta-ads-mcp/db/migrations"
)

var ErrDirty = errors.New("database is in dirty state")

// Migrate brings the audit schema at addr to migrations.Version and
// returns the version found before migrating (0 for an empty database).
func Migrate(addr string) (uint, error) {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, fmt.Errorf("open migrations: %w", err)
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return 0, fmt.Errorf("init migrate: %w", err)
	}
	defer mg.Close()

	version, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, err
	}
	if dirty {
		return version, ErrDirty
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return version, err
	}
	return version, nil
}
