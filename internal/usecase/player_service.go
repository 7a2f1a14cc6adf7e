package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fanconnect/portal/internal/domain/player"
	"github.com/fanconnect/portal/internal/domain/sport"
	"github.com/fanconnect/portal/internal/store"
)

type PlayerService struct {
	store *store.Store
}

func NewPlayerService(st *store.Store) *PlayerService {
	return &PlayerService{store: st}
}

func (s *PlayerService) List(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.List")
	defer span.End()

	players, err := s.store.Players(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (s *PlayerService) ListByTeam(ctx context.Context, teamID int) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.ListByTeam")
	defer span.End()

	players, err := s.store.PlayersByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}
	return players, nil
}

// AddPlayerInput carries the fields a caller supplies for a new signing.
type AddPlayerInput struct {
	Name        string
	TeamID      int
	Position    string
	Age         int
	Nationality string
}

// Add signs a player to an existing team. The position must belong to the
// team's sport and the roster cap may not be exceeded.
func (s *PlayerService) Add(ctx context.Context, input AddPlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.Add")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	input.Position = strings.TrimSpace(input.Position)
	input.Nationality = strings.TrimSpace(input.Nationality)

	if input.Name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if input.Age <= 0 {
		return player.Player{}, fmt.Errorf("%w: age must be positive", ErrInvalidInput)
	}

	teams, err := s.store.Teams(ctx)
	if err != nil {
		return player.Player{}, fmt.Errorf("list teams: %w", err)
	}
	idx := -1
	for i := range teams {
		if teams[i].ID == input.TeamID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return player.Player{}, fmt.Errorf("%w: team=%d", ErrNotFound, input.TeamID)
	}
	owner := teams[idx]

	cfg, ok := sport.ConfigByID(owner.SportID)
	if !ok {
		return player.Player{}, fmt.Errorf("%w: sport=%d", ErrNotFound, owner.SportID)
	}
	if !cfg.ValidPosition(input.Position) {
		return player.Player{}, fmt.Errorf("%w: %q is not a %s position", ErrInvalidInput, input.Position, cfg.Name)
	}

	roster, err := s.store.PlayersByTeam(ctx, owner.ID)
	if err != nil {
		return player.Player{}, fmt.Errorf("list players by team: %w", err)
	}
	if len(roster) >= player.MaxPerTeam {
		return player.Player{}, fmt.Errorf("%w: team %q roster is full (%d players)", ErrInvalidInput, owner.Name, player.MaxPerTeam)
	}

	record, err := s.store.AddPlayer(ctx, store.NewPlayerInput{
		Name:        input.Name,
		TeamID:      owner.ID,
		TeamName:    owner.Name,
		Sport:       owner.Sport,
		Position:    input.Position,
		Age:         input.Age,
		Nationality: input.Nationality,
	})
	if err != nil {
		return player.Player{}, fmt.Errorf("add player: %w", err)
	}
	return record, nil
}

func (s *PlayerService) Delete(ctx context.Context, playerID int) error {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.Delete")
	defer span.End()

	players, err := s.store.Players(ctx)
	if err != nil {
		return fmt.Errorf("list players: %w", err)
	}
	found := false
	for _, p := range players {
		if p.ID == playerID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	if err := s.store.DeletePlayer(ctx, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}
