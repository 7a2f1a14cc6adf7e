package usecase

import (
	"context"
	"fmt"

	"github.com/fanconnect/portal/internal/domain/sport"
	"github.com/fanconnect/portal/internal/store"
)

type SportService struct {
	store *store.Store
}

func NewSportService(st *store.Store) *SportService {
	return &SportService{store: st}
}

func (s *SportService) List(ctx context.Context) ([]sport.Sport, error) {
	ctx, span := startUsecaseSpan(ctx, "SportService.List")
	defer span.End()

	sports, err := s.store.Sports(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}
	return sports, nil
}

func (s *SportService) Get(ctx context.Context, sportID int) (sport.Sport, error) {
	ctx, span := startUsecaseSpan(ctx, "SportService.Get")
	defer span.End()

	sports, err := s.store.Sports(ctx)
	if err != nil {
		return sport.Sport{}, fmt.Errorf("list sports: %w", err)
	}
	for _, item := range sports {
		if item.ID == sportID {
			return item, nil
		}
	}
	return sport.Sport{}, fmt.Errorf("%w: sport=%d", ErrNotFound, sportID)
}
