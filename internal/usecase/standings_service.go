package usecase

import (
	"context"
	"fmt"

	"github.com/fanconnect/portal/internal/domain/sport"
	"github.com/fanconnect/portal/internal/platform/events"
	"github.com/fanconnect/portal/internal/standings"
	"github.com/fanconnect/portal/internal/store"
)

type StandingsService struct {
	store *store.Store
	bus   *events.Bus
}

func NewStandingsService(st *store.Store, bus *events.Bus) *StandingsService {
	return &StandingsService{store: st, bus: bus}
}

// Table computes the league table for one sport from its completed
// matches. The table is derived on every call rather than persisted.
func (s *StandingsService) Table(ctx context.Context, sportID int) ([]standings.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "StandingsService.Table")
	defer span.End()

	if _, ok := sport.ConfigByID(sportID); !ok {
		return nil, fmt.Errorf("%w: sport=%d", ErrNotFound, sportID)
	}

	teams, err := s.store.TeamsBySport(ctx, sportID)
	if err != nil {
		return nil, fmt.Errorf("list teams by sport: %w", err)
	}
	matches, err := s.store.MatchesBySport(ctx, sportID)
	if err != nil {
		return nil, fmt.Errorf("list matches by sport: %w", err)
	}

	rows := standings.Compute(teams, matches)
	if s.bus != nil {
		s.bus.Publish(ctx, events.StandingsComputed, map[string]any{
			"sportId": sportID,
			"rows":    len(rows),
		})
	}
	return rows, nil
}
