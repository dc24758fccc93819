package service

import (
	"context"
	"errors"
	"fmt"
	"os"

	"products-backend/store"
)

const (
	poolWorkers = 10
	poolTasks   = 50
)

// CreateProductDTO carries the client-supplied fields for a new product.
// StoreID stays a pointer so a missing value is distinguishable from 0.
type CreateProductDTO struct {
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	StoreID *uint   `json:"storeId"`
}

type ProductService struct {
	products Repository[store.Product]
	stores   *StoreService
	stats    *CacheStatsLogger
}

func NewProductService(products Repository[store.Product], stores *StoreService, stats *CacheStatsLogger) *ProductService {
	return &ProductService{products: products, stores: stores, stats: stats}
}

func (s *ProductService) GetAll(ctx context.Context) ([]store.Product, error) {
	all, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.stats.Log()
	return all, nil
}

func (s *ProductService) Create(ctx context.Context, dto *CreateProductDTO) (*store.Product, error) {
	if dto == nil {
		return nil, badRequest("dto must not be null")
	}

	st, err := s.stores.Get(ctx, dto.StoreID)
	if err != nil {
		var serr *Error
		if errors.As(err, &serr) && serr.Kind == KindNotFound {
			// relabelled from the product's perspective; the store lookup's
			// bad-request path propagates as-is
			return nil, notFound("store not found for ID: %d", *dto.StoreID)
		}
		return nil, err
	}

	p := &store.Product{
		Name:    dto.Name,
		Price:   dto.Price,
		StoreID: st.ID,
		Store:   st,
	}
	if err := s.products.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Get(ctx context.Context, id *uint) (*store.Product, error) {
	if id == nil {
		return nil, badRequest("product id must not be null")
	}
	p, err := s.products.FindByID(ctx, *id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFound("product not found for ID: %d", *id)
	}
	if err != nil {
		return nil, err
	}
	s.stats.Log()
	return p, nil
}

// TestConnectionPool floods the connection pool with concurrent reads of
// product 1. The work runs detached: the call returns once every task is
// queued, nothing waits for the workers and per-task errors are dropped.
func (s *ProductService) TestConnectionPool() {
	fmt.Fprintln(os.Stderr, "testing connection pool...")

	tasks := make(chan struct{}, poolTasks)
	for i := 0; i < poolTasks; i++ {
		tasks <- struct{}{}
	}
	close(tasks)

	id := uint(1)
	for w := 0; w < poolWorkers; w++ {
		go func() {
			for range tasks {
				p, err := s.Get(context.Background(), &id)
				if err != nil {
					continue
				}
				fmt.Println(p.Name)
			}
		}()
	}
}
