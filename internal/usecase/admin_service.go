package usecase

import (
	"context"
	"fmt"

	"github.com/fanconnect/portal/internal/store"
)

type AdminService struct {
	store *store.Store
}

func NewAdminService(st *store.Store) *AdminService {
	return &AdminService{store: st}
}

// Initialize seeds the demo dataset once. It reports whether this call did
// the seeding or found the data already in place.
func (s *AdminService) Initialize(ctx context.Context) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "AdminService.Initialize")
	defer span.End()

	seeded, err := s.store.Initialize(ctx)
	if err != nil {
		return false, fmt.Errorf("initialize: %w", err)
	}
	return seeded, nil
}

func (s *AdminService) Statistics(ctx context.Context) (store.Statistics, error) {
	ctx, span := startUsecaseSpan(ctx, "AdminService.Statistics")
	defer span.End()

	stats, err := s.store.Statistics(ctx)
	if err != nil {
		return store.Statistics{}, fmt.Errorf("statistics: %w", err)
	}
	return stats, nil
}

func (s *AdminService) Export(ctx context.Context) (store.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "AdminService.Export")
	defer span.End()

	snap, err := s.store.Export(ctx)
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("export: %w", err)
	}
	return snap, nil
}

func (s *AdminService) Import(ctx context.Context, snap store.Snapshot) error {
	ctx, span := startUsecaseSpan(ctx, "AdminService.Import")
	defer span.End()

	if err := s.store.Import(ctx, snap); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	return nil
}

// ClearAll wipes every portal collection, including sessions and the
// initialized flag. A later Initialize reseeds from scratch.
func (s *AdminService) ClearAll(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "AdminService.ClearAll")
	defer span.End()

	if err := s.store.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear all: %w", err)
	}
	return nil
}
