package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ErrNotFound is returned by FindByID when no row matches the id.
var ErrNotFound = errors.New("record not found")

// Options tunes the second-level cache. Zero values select defaults.
type Options struct {
	CacheCapacity int
	CacheTTL      time.Duration
}

// DB owns the gorm handle, the shared second-level cache and the per-table
// repositories.
type DB struct {
	database *gorm.DB
	cache    *entityCache
	stores   *Repository[Store]
	products *Repository[Product]
}

// New connects to postgres with the given DSN.
func New(ctx context.Context, dsn string, opts Options) (*DB, error) {
	return Open(ctx, postgres.Open(dsn), opts)
}

// Open connects through an arbitrary gorm dialector. Tests use it with an
// in-memory sqlite database.
func Open(ctx context.Context, dialector gorm.Dialector, opts Options) (*DB, error) {
	database, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Migrate the schemas
	if err := database.WithContext(ctx).AutoMigrate(&Store{}, &Product{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	cache := newEntityCache(opts.CacheCapacity, opts.CacheTTL)
	return &DB{
		database: database,
		cache:    cache,
		stores:   &Repository[Store]{db: database, cache: cache, table: "stores"},
		products: &Repository[Product]{db: database, cache: cache, table: "products", preload: []string{"Store"}},
	}, nil
}

func (d *DB) Close() error {
	sqlDB, err := d.database.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

func (d *DB) Stores() *Repository[Store] { return d.stores }

func (d *DB) Products() *Repository[Product] { return d.products }

// CacheStats reports the cumulative second-level cache counters.
func (d *DB) CacheStats() CacheStats { return d.cache.stats() }
