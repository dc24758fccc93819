package service

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	"products-backend/store"
)

func newTestServices(t *testing.T) (*StoreService, *ProductService) {
	t.Helper()
	db, err := store.Open(context.Background(), sqlite.Open(":memory:"), store.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := NewCacheStatsLogger(db.CacheStats, false, io.Discard)
	stores := NewStoreService(db.Stores(), logger)
	products := NewProductService(db.Products(), stores, logger)
	return stores, products
}

func uintPtr(n uint) *uint { return &n }

func TestStoreCreate(t *testing.T) {
	stores, _ := newTestServices(t)

	st, err := stores.Create(context.Background(), &CreateStoreDTO{Name: "Acme", Address: "1 Main St", Rating: 4})
	require.NoError(t, err)
	assert.Equal(t, uint(1), st.ID)
	assert.Equal(t, "Acme", st.Name)
	assert.Equal(t, "1 Main St", st.Address)
	assert.Equal(t, 4, st.Rating)
}

func TestStoreCreateNilDTO(t *testing.T) {
	stores, _ := newTestServices(t)

	_, err := stores.Create(context.Background(), nil)
	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, KindBadRequest, serr.Kind)
	assert.Equal(t, "dto must not be null", serr.Message)

	// nothing was persisted
	all, err := stores.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStoreGet(t *testing.T) {
	stores, _ := newTestServices(t)
	ctx := context.Background()

	created, err := stores.Create(ctx, &CreateStoreDTO{Name: "Acme", Address: "1 Main St", Rating: 4})
	require.NoError(t, err)

	first, err := stores.Get(ctx, &created.ID)
	require.NoError(t, err)
	second, err := stores.Get(ctx, &created.ID)
	require.NoError(t, err)
	assert.Equal(t, *first, *second)
}

func TestStoreGetNilID(t *testing.T) {
	stores, _ := newTestServices(t)

	_, err := stores.Get(context.Background(), nil)
	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, KindBadRequest, serr.Kind)
	assert.Equal(t, "store id must not be null", serr.Message)
}

func TestStoreGetMissing(t *testing.T) {
	stores, _ := newTestServices(t)

	_, err := stores.Get(context.Background(), uintPtr(999))
	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, KindNotFound, serr.Kind)
	assert.Equal(t, "store not found for ID: 999", serr.Message)
}

func TestStoreGetAll(t *testing.T) {
	stores, _ := newTestServices(t)
	ctx := context.Background()

	_, err := stores.Create(ctx, &CreateStoreDTO{Name: "Acme"})
	require.NoError(t, err)
	_, err = stores.Create(ctx, &CreateStoreDTO{Name: "Globex"})
	require.NoError(t, err)

	all, err := stores.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
