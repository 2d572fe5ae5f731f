// Package storage provides typed access to the embedded SQLite database that
// backs all persistence. Records live in three collections, each keyed by a
// string id, with declared secondary indexes for foreign-key lookups.
package storage

import (
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB is a lazily-opened handle to the embedded database. Init is idempotent:
// the first call opens the file and applies the schema migrations, every
// later call returns the same open connection.
type DB struct {
	path string

	mu  sync.Mutex
	gdb *gorm.DB
}

func New(path string) *DB {
	return &DB{path: path}
}

func (d *DB) Init() (*gorm.DB, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.gdb != nil {
		return d.gdb, nil
	}

	gdb, err := gorm.Open(sqlite.Open(d.path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", d.path, err)
	}

	// one connection: SQLite is a single-writer engine, and a pool of
	// connections would split an in-memory database into disjoint copies
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := migrate(gdb); err != nil {
		return nil, fmt.Errorf("migrate database %s: %w", d.path, err)
	}

	d.gdb = gdb
	return d.gdb, nil
}

func (d *DB) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.gdb == nil {
		return nil
	}

	sqlDB, err := d.gdb.DB()
	if err != nil {
		return err
	}
	d.gdb = nil
	return sqlDB.Close()
}

// migrate applies the embedded goose migrations. Upgrades are additive only:
// every statement creates its table or index if absent, so re-running against
// an existing database is safe.
func migrate(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.Up(sqlDB, "migrations")
}
