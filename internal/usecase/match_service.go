package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fanconnect/portal/internal/domain/match"
	"github.com/fanconnect/portal/internal/domain/sport"
	"github.com/fanconnect/portal/internal/domain/team"
	"github.com/fanconnect/portal/internal/store"
)

type MatchService struct {
	store *store.Store
}

func NewMatchService(st *store.Store) *MatchService {
	return &MatchService{store: st}
}

func (s *MatchService) List(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.List")
	defer span.End()

	matches, err := s.store.Matches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

func (s *MatchService) ListBySport(ctx context.Context, sportID int) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.ListBySport")
	defer span.End()

	if _, ok := sport.ConfigByID(sportID); !ok {
		return nil, fmt.Errorf("%w: sport=%d", ErrNotFound, sportID)
	}

	matches, err := s.store.MatchesBySport(ctx, sportID)
	if err != nil {
		return nil, fmt.Errorf("list matches by sport: %w", err)
	}
	return matches, nil
}

// Upcoming returns matches yet to be played, soonest first.
func (s *MatchService) Upcoming(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Upcoming")
	defer span.End()

	matches, err := s.store.UpcomingMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list upcoming matches: %w", err)
	}
	return matches, nil
}

// Completed returns played matches, most recent first.
func (s *MatchService) Completed(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Completed")
	defer span.End()

	matches, err := s.store.CompletedMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list completed matches: %w", err)
	}
	return matches, nil
}

func (s *MatchService) Get(ctx context.Context, matchID int) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Get")
	defer span.End()

	matches, err := s.store.Matches(ctx)
	if err != nil {
		return match.Match{}, fmt.Errorf("list matches: %w", err)
	}
	for _, m := range matches {
		if m.ID == matchID {
			return m, nil
		}
	}
	return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
}

// ScheduleInput carries the fields for a new fixture.
type ScheduleInput struct {
	Team1ID int
	Team2ID int
	Date    time.Time
	Venue   string
}

// Schedule creates an upcoming fixture between two distinct teams of the
// same sport.
func (s *MatchService) Schedule(ctx context.Context, input ScheduleInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Schedule")
	defer span.End()

	input.Venue = strings.TrimSpace(input.Venue)
	if input.Venue == "" {
		return match.Match{}, fmt.Errorf("%w: venue is required", ErrInvalidInput)
	}
	if input.Date.IsZero() {
		return match.Match{}, fmt.Errorf("%w: match date is required", ErrInvalidInput)
	}
	if input.Team1ID == input.Team2ID {
		return match.Match{}, fmt.Errorf("%w: a team cannot play itself", ErrInvalidInput)
	}

	teams, err := s.store.Teams(ctx)
	if err != nil {
		return match.Match{}, fmt.Errorf("list teams: %w", err)
	}
	var team1, team2 *team.Team
	for i := range teams {
		switch teams[i].ID {
		case input.Team1ID:
			team1 = &teams[i]
		case input.Team2ID:
			team2 = &teams[i]
		}
	}
	if team1 == nil {
		return match.Match{}, fmt.Errorf("%w: team=%d", ErrNotFound, input.Team1ID)
	}
	if team2 == nil {
		return match.Match{}, fmt.Errorf("%w: team=%d", ErrNotFound, input.Team2ID)
	}
	if team1.SportID != team2.SportID {
		return match.Match{}, fmt.Errorf("%w: teams play different sports", ErrInvalidInput)
	}

	record, err := s.store.AddMatch(ctx, store.NewMatchInput{
		Sport:   team1.Sport,
		SportID: team1.SportID,
		Team1:   team1.Name,
		Team1ID: team1.ID,
		Team2:   team2.Name,
		Team2ID: team2.ID,
		Date:    input.Date,
		Venue:   input.Venue,
	})
	if err != nil {
		return match.Match{}, fmt.Errorf("add match: %w", err)
	}
	return record, nil
}

// CompleteInput carries the final state of a played match. Result must be
// one of the two team names or the draw literal; scores are optional but
// must agree with the result when given.
type CompleteInput struct {
	MatchID    int
	Result     string
	Score1     *int
	Score2     *int
	Attendance int
}

// Complete marks an upcoming match as played and folds the outcome into
// both teams' season counters.
func (s *MatchService) Complete(ctx context.Context, input CompleteInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Complete")
	defer span.End()

	current, err := s.Get(ctx, input.MatchID)
	if err != nil {
		return match.Match{}, err
	}
	if current.Status == match.StatusCompleted {
		return match.Match{}, fmt.Errorf("%w: match %d is already completed", ErrInvalidInput, input.MatchID)
	}

	input.Result = strings.TrimSpace(input.Result)
	if input.Result != current.Team1 && input.Result != current.Team2 && input.Result != match.ResultDraw {
		return match.Match{}, fmt.Errorf("%w: result must be %q, %q or %q", ErrInvalidInput, current.Team1, current.Team2, match.ResultDraw)
	}
	if (input.Score1 == nil) != (input.Score2 == nil) {
		return match.Match{}, fmt.Errorf("%w: both scores are required when one is given", ErrInvalidInput)
	}
	if input.Score1 != nil {
		if *input.Score1 < 0 || *input.Score2 < 0 {
			return match.Match{}, fmt.Errorf("%w: scores cannot be negative", ErrInvalidInput)
		}
		if err := scoresAgree(input.Result, current, *input.Score1, *input.Score2); err != nil {
			return match.Match{}, err
		}
	}
	if input.Attendance < 0 {
		return match.Match{}, fmt.Errorf("%w: attendance cannot be negative", ErrInvalidInput)
	}

	record, ok, err := s.store.CompleteMatch(ctx, input.MatchID, input.Result, input.Score1, input.Score2, input.Attendance)
	if err != nil {
		return match.Match{}, fmt.Errorf("complete match: %w", err)
	}
	if !ok {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, input.MatchID)
	}

	if err := s.applyOutcome(ctx, record); err != nil {
		return match.Match{}, err
	}
	return record, nil
}

func scoresAgree(result string, m match.Match, score1, score2 int) error {
	switch {
	case result == match.ResultDraw && score1 != score2:
		return fmt.Errorf("%w: a draw needs level scores", ErrInvalidInput)
	case result == m.Team1 && score1 <= score2:
		return fmt.Errorf("%w: scores do not match the result", ErrInvalidInput)
	case result == m.Team2 && score2 <= score1:
		return fmt.Errorf("%w: scores do not match the result", ErrInvalidInput)
	}
	return nil
}

// applyOutcome updates both teams' played/won/drawn/lost counters, goal
// totals when scores were recorded, and recomputes points.
func (s *MatchService) applyOutcome(ctx context.Context, m match.Match) error {
	teams, err := s.store.Teams(ctx)
	if err != nil {
		return fmt.Errorf("list teams: %w", err)
	}

	for i := range teams {
		if !m.Involves(teams[i].ID) {
			continue
		}

		teams[i].Played++
		switch {
		case m.IsDraw():
			teams[i].Drawn++
		case m.Result != nil && *m.Result == teams[i].Name:
			teams[i].Won++
		default:
			teams[i].Lost++
		}

		if m.Score1 != nil && m.Score2 != nil {
			if teams[i].ID == m.Team1ID {
				teams[i].GoalsFor += *m.Score1
				teams[i].GoalsAgainst += *m.Score2
			} else {
				teams[i].GoalsFor += *m.Score2
				teams[i].GoalsAgainst += *m.Score1
			}
		}
		teams[i].Points = team.ComputePoints(teams[i].Won, teams[i].Drawn)
	}

	if err := s.store.SetTeams(ctx, teams); err != nil {
		return fmt.Errorf("save teams: %w", err)
	}
	return nil
}
