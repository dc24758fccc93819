package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repository gives cached read access and uncached writes to one entity
// table. Reads go through the second-level cache; Save invalidates the
// list entry so the next FindAll sees the new row.
type Repository[T any] struct {
	db      *gorm.DB
	cache   *entityCache
	table   string
	preload []string
}

func (r *Repository[T]) listKey() string { return r.table + ":all" }

func (r *Repository[T]) idKey(id uint) string { return fmt.Sprintf("%s:id:%d", r.table, id) }

func (r *Repository[T]) FindAll(ctx context.Context) ([]T, error) {
	v, err := r.cache.getOrFetch(r.listKey(), func() (any, error) {
		records := []T{}
		if err := r.query(ctx).Find(&records).Error; err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", r.table, err)
		}
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]T), nil
}

func (r *Repository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	v, err := r.cache.getOrFetch(r.idKey(id), func() (any, error) {
		var record T
		if err := r.query(ctx).First(&record, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to get %s: %w", r.table, err)
		}
		return &record, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*T), nil
}

func (r *Repository[T]) Save(ctx context.Context, record *T) error {
	if result := r.db.WithContext(ctx).Create(record); result.Error != nil {
		return fmt.Errorf("failed to create %s: %w", r.table, result.Error)
	}
	r.cache.invalidate(r.listKey())
	return nil
}

func (r *Repository[T]) query(ctx context.Context) *gorm.DB {
	tx := r.db.WithContext(ctx)
	for _, rel := range r.preload {
		tx = tx.Preload(rel)
	}
	return tx
}
