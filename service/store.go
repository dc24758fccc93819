package service

import (
	"context"
	"errors"

	"products-backend/store"
)

// Repository is the slice of the persistence layer the services consume.
// store.Repository satisfies it.
type Repository[T any] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id uint) (*T, error)
	Save(ctx context.Context, record *T) error
}

// CreateStoreDTO carries the client-supplied fields for a new store. No
// field-level validation happens beyond presence of the dto itself.
type CreateStoreDTO struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Rating  int    `json:"rating"`
}

type StoreService struct {
	stores Repository[store.Store]
	stats  *CacheStatsLogger
}

func NewStoreService(stores Repository[store.Store], stats *CacheStatsLogger) *StoreService {
	return &StoreService{stores: stores, stats: stats}
}

func (s *StoreService) GetAll(ctx context.Context) ([]store.Store, error) {
	all, err := s.stores.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.stats.Log()
	return all, nil
}

func (s *StoreService) Create(ctx context.Context, dto *CreateStoreDTO) (*store.Store, error) {
	if dto == nil {
		return nil, badRequest("dto must not be null")
	}
	st := &store.Store{
		Name:    dto.Name,
		Address: dto.Address,
		Rating:  dto.Rating,
	}
	if err := s.stores.Save(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *StoreService) Get(ctx context.Context, id *uint) (*store.Store, error) {
	if id == nil {
		return nil, badRequest("store id must not be null")
	}
	st, err := s.stores.FindByID(ctx, *id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFound("store not found for ID: %d", *id)
	}
	if err != nil {
		return nil, err
	}
	s.stats.Log()
	return st, nil
}
