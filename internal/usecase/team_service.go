package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fanconnect/portal/internal/domain/sport"
	"github.com/fanconnect/portal/internal/domain/team"
	"github.com/fanconnect/portal/internal/store"
)

type TeamService struct {
	store *store.Store
}

func NewTeamService(st *store.Store) *TeamService {
	return &TeamService{store: st}
}

func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.List")
	defer span.End()

	teams, err := s.store.Teams(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *TeamService) ListBySport(ctx context.Context, sportID int) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.ListBySport")
	defer span.End()

	if _, ok := sport.ConfigByID(sportID); !ok {
		return nil, fmt.Errorf("%w: sport=%d", ErrNotFound, sportID)
	}

	teams, err := s.store.TeamsBySport(ctx, sportID)
	if err != nil {
		return nil, fmt.Errorf("list teams by sport: %w", err)
	}
	return teams, nil
}

func (s *TeamService) Get(ctx context.Context, teamID int) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.Get")
	defer span.End()

	teams, err := s.store.Teams(ctx)
	if err != nil {
		return team.Team{}, fmt.Errorf("list teams: %w", err)
	}
	for _, t := range teams {
		if t.ID == teamID {
			return t, nil
		}
	}
	return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
}

// Add creates a team under an existing sport. The team name must be unique
// within the sport.
func (s *TeamService) Add(ctx context.Context, name string, sportID int) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.Add")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	cfg, ok := sport.ConfigByID(sportID)
	if !ok {
		return team.Team{}, fmt.Errorf("%w: sport=%d", ErrNotFound, sportID)
	}

	existing, err := s.store.TeamsBySport(ctx, sportID)
	if err != nil {
		return team.Team{}, fmt.Errorf("list teams by sport: %w", err)
	}
	for _, t := range existing {
		if strings.EqualFold(t.Name, name) {
			return team.Team{}, fmt.Errorf("%w: team %q already exists in %s", ErrInvalidInput, name, cfg.Name)
		}
	}

	record, err := s.store.AddTeam(ctx, store.NewTeamInput{
		Name:    name,
		Sport:   cfg.Name,
		SportID: cfg.ID,
	})
	if err != nil {
		return team.Team{}, fmt.Errorf("add team: %w", err)
	}
	return record, nil
}

// Delete removes a team and, by cascade, its roster.
func (s *TeamService) Delete(ctx context.Context, teamID int) error {
	ctx, span := startUsecaseSpan(ctx, "TeamService.Delete")
	defer span.End()

	if _, err := s.Get(ctx, teamID); err != nil {
		return err
	}
	if err := s.store.DeleteTeam(ctx, teamID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	return nil
}
