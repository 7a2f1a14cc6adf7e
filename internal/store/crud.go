package store

import (
	"context"
	"sort"
	"time"

	"github.com/fanconnect/portal/internal/domain/booking"
	"github.com/fanconnect/portal/internal/domain/match"
	"github.com/fanconnect/portal/internal/domain/player"
	"github.com/fanconnect/portal/internal/domain/team"
	"github.com/fanconnect/portal/internal/domain/user"
	"github.com/fanconnect/portal/internal/platform/events"
)

// NewUserInput carries the caller-supplied fields for a registration.
type NewUserInput struct {
	Username string
	Password string
	Email    string
	Role     string
}

func (s *Store) AddUser(ctx context.Context, input NewUserInput) (user.User, error) {
	users, err := s.Users(ctx)
	if err != nil {
		return user.User{}, err
	}

	record := user.User{
		ID:        nextID(users, func(u user.User) int { return u.ID }),
		Username:  input.Username,
		Password:  input.Password,
		Email:     input.Email,
		Role:      input.Role,
		CreatedAt: s.now(),
	}

	users = append(users, record)
	if err := s.SetUsers(ctx, users); err != nil {
		return user.User{}, err
	}

	s.publish(ctx, events.UserRegistered, record)
	return record, nil
}

// NewTeamInput carries the caller-supplied fields for a new team. All
// counters default to zero and founded defaults to the current year.
type NewTeamInput struct {
	Name    string
	Sport   string
	SportID int
}

func (s *Store) AddTeam(ctx context.Context, input NewTeamInput) (team.Team, error) {
	teams, err := s.Teams(ctx)
	if err != nil {
		return team.Team{}, err
	}

	now := s.now()
	record := team.Team{
		ID:        nextID(teams, func(t team.Team) int { return t.ID }),
		Name:      input.Name,
		Sport:     input.Sport,
		SportID:   input.SportID,
		Founded:   now.Year(),
		CreatedAt: now,
	}

	teams = append(teams, record)
	if err := s.SetTeams(ctx, teams); err != nil {
		return team.Team{}, err
	}

	s.publish(ctx, events.TeamAdded, record)
	return record, nil
}

// NewPlayerInput carries the caller-supplied fields for a new player.
// Career counters default to zero and the rating to "7.0".
type NewPlayerInput struct {
	Name        string
	TeamID      int
	TeamName    string
	Sport       string
	Position    string
	Age         int
	Nationality string
}

func (s *Store) AddPlayer(ctx context.Context, input NewPlayerInput) (player.Player, error) {
	players, err := s.Players(ctx)
	if err != nil {
		return player.Player{}, err
	}

	now := s.now()
	record := player.Player{
		ID:          nextID(players, func(p player.Player) int { return p.ID }),
		Name:        input.Name,
		TeamID:      input.TeamID,
		TeamName:    input.TeamName,
		Sport:       input.Sport,
		Position:    input.Position,
		Age:         input.Age,
		Nationality: input.Nationality,
		Rating:      "7.0",
		JoinedDate:  now,
		CreatedAt:   now,
	}

	players = append(players, record)
	if err := s.SetPlayers(ctx, players); err != nil {
		return player.Player{}, err
	}

	s.publish(ctx, events.PlayerAdded, record)
	return record, nil
}

// NewMatchInput carries the caller-supplied fields for a scheduled match.
// New matches always start upcoming, with no result and the fixed ticket
// price.
type NewMatchInput struct {
	Sport   string
	SportID int
	Team1   string
	Team1ID int
	Team2   string
	Team2ID int
	Date    time.Time
	Venue   string
}

func (s *Store) AddMatch(ctx context.Context, input NewMatchInput) (match.Match, error) {
	matches, err := s.Matches(ctx)
	if err != nil {
		return match.Match{}, err
	}

	record := match.Match{
		ID:          nextID(matches, func(m match.Match) int { return m.ID }),
		Sport:       input.Sport,
		SportID:     input.SportID,
		Team1:       input.Team1,
		Team1ID:     input.Team1ID,
		Team2:       input.Team2,
		Team2ID:     input.Team2ID,
		Date:        input.Date,
		Venue:       input.Venue,
		Status:      match.StatusUpcoming,
		TicketPrice: match.TicketPrice,
		CreatedAt:   s.now(),
	}

	matches = append(matches, record)
	if err := s.SetMatches(ctx, matches); err != nil {
		return match.Match{}, err
	}

	s.publish(ctx, events.MatchScheduled, record)
	return record, nil
}

// NewBookingInput carries the caller-supplied fields for a ticket booking.
type NewBookingInput struct {
	MatchID     int
	UserID      int
	Tickets     int
	TotalAmount int
}

func (s *Store) AddBooking(ctx context.Context, input NewBookingInput) (booking.Booking, error) {
	bookings, err := s.Bookings(ctx)
	if err != nil {
		return booking.Booking{}, err
	}

	record := booking.Booking{
		ID:          nextID(bookings, func(b booking.Booking) int { return b.ID }),
		MatchID:     input.MatchID,
		UserID:      input.UserID,
		Tickets:     input.Tickets,
		TotalAmount: input.TotalAmount,
		BookingDate: s.now(),
		Status:      booking.StatusConfirmed,
	}

	bookings = append(bookings, record)
	if err := s.SetBookings(ctx, bookings); err != nil {
		return booking.Booking{}, err
	}

	s.publish(ctx, events.BookingCreated, record)
	return record, nil
}

// DeleteTeam removes the team and cascades to its players, the only
// cascade rule in the system. Deleting a missing id is a no-op.
func (s *Store) DeleteTeam(ctx context.Context, teamID int) error {
	teams, err := s.Teams(ctx)
	if err != nil {
		return err
	}

	kept := teams[:0]
	var removed *team.Team
	for _, t := range teams {
		if t.ID == teamID {
			deleted := t
			removed = &deleted
			continue
		}
		kept = append(kept, t)
	}
	if err := s.SetTeams(ctx, kept); err != nil {
		return err
	}

	players, err := s.Players(ctx)
	if err != nil {
		return err
	}
	keptPlayers := players[:0]
	for _, p := range players {
		if p.TeamID != teamID {
			keptPlayers = append(keptPlayers, p)
		}
	}
	if err := s.SetPlayers(ctx, keptPlayers); err != nil {
		return err
	}

	if removed != nil {
		s.publish(ctx, events.TeamDeleted, *removed)
	}
	return nil
}

func (s *Store) DeletePlayer(ctx context.Context, playerID int) error {
	players, err := s.Players(ctx)
	if err != nil {
		return err
	}

	kept := players[:0]
	var removed *player.Player
	for _, p := range players {
		if p.ID == playerID {
			deleted := p
			removed = &deleted
			continue
		}
		kept = append(kept, p)
	}
	if err := s.SetPlayers(ctx, kept); err != nil {
		return err
	}

	if removed != nil {
		s.publish(ctx, events.PlayerDeleted, *removed)
	}
	return nil
}

// CompleteMatch records the final state of a match. Result must already be
// validated by the caller; a missing match id is a no-op returning the
// zero match and false.
func (s *Store) CompleteMatch(ctx context.Context, matchID int, result string, score1, score2 *int, attendance int) (match.Match, bool, error) {
	matches, err := s.Matches(ctx)
	if err != nil {
		return match.Match{}, false, err
	}

	idx := -1
	for i := range matches {
		if matches[i].ID == matchID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return match.Match{}, false, nil
	}

	matches[idx].Result = &result
	matches[idx].Status = match.StatusCompleted
	matches[idx].Attendance = &attendance
	matches[idx].Score1 = score1
	matches[idx].Score2 = score2

	if err := s.SetMatches(ctx, matches); err != nil {
		return match.Match{}, false, err
	}

	s.publish(ctx, events.MatchCompleted, matches[idx])
	return matches[idx], true, nil
}

// TeamsBySport filters teams by sport id, preserving stored order.
func (s *Store) TeamsBySport(ctx context.Context, sportID int) ([]team.Team, error) {
	teams, err := s.Teams(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]team.Team, 0, len(teams))
	for _, t := range teams {
		if t.SportID == sportID {
			out = append(out, t)
		}
	}
	return out, nil
}

// PlayersByTeam filters players by owning team id.
func (s *Store) PlayersByTeam(ctx context.Context, teamID int) ([]player.Player, error) {
	players, err := s.Players(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]player.Player, 0, len(players))
	for _, p := range players {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out, nil
}

// MatchesBySport filters matches by sport id.
func (s *Store) MatchesBySport(ctx context.Context, sportID int) ([]match.Match, error) {
	matches, err := s.Matches(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if m.SportID == sportID {
			out = append(out, m)
		}
	}
	return out, nil
}

// UpcomingMatches returns upcoming matches sorted ascending by date.
func (s *Store) UpcomingMatches(ctx context.Context) ([]match.Match, error) {
	matches, err := s.Matches(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if m.Status == match.StatusUpcoming {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

// CompletedMatches returns completed matches sorted descending by date.
func (s *Store) CompletedMatches(ctx context.Context) ([]match.Match, error) {
	matches, err := s.Matches(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if m.Status == match.StatusCompleted {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].Date.Before(out[i].Date)
	})
	return out, nil
}

// BookingsByUser filters bookings by booking user id.
func (s *Store) BookingsByUser(ctx context.Context, userID int) ([]booking.Booking, error) {
	bookings, err := s.Bookings(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]booking.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}
