package store

import (
	"context"

	"github.com/fanconnect/portal/internal/domain/booking"
	"github.com/fanconnect/portal/internal/domain/match"
	"github.com/fanconnect/portal/internal/domain/player"
	"github.com/fanconnect/portal/internal/domain/sport"
	"github.com/fanconnect/portal/internal/domain/team"
	"github.com/fanconnect/portal/internal/domain/user"
)

// Snapshot is a full copy of the persisted state, used for export/import.
type Snapshot struct {
	Users       []user.User       `json:"users"`
	Sports      []sport.Sport     `json:"sports"`
	Teams       []team.Team       `json:"teams"`
	Players     []player.Player   `json:"players"`
	Matches     []match.Match     `json:"matches"`
	Bookings    []booking.Booking `json:"bookings"`
	CurrentUser *user.User        `json:"currentUser,omitempty"`
	Initialized bool              `json:"initialized"`
}

// Statistics holds portal-wide record counts for the admin dashboard.
type Statistics struct {
	Users            int `json:"users"`
	Sports           int `json:"sports"`
	Teams            int `json:"teams"`
	Players          int `json:"players"`
	Matches          int `json:"matches"`
	UpcomingMatches  int `json:"upcomingMatches"`
	CompletedMatches int `json:"completedMatches"`
	Bookings         int `json:"bookings"`
}

// ClearAll removes every key the portal owns, including the session slot
// and the initialized flag.
func (s *Store) ClearAll(ctx context.Context) error {
	for _, key := range collectionKeys {
		if err := s.ns.Delete(key); err != nil {
			return err
		}
	}
	s.logger.InfoContext(ctx, "all portal data cleared")
	return nil
}

// Export reads every collection into one snapshot.
func (s *Store) Export(ctx context.Context) (Snapshot, error) {
	var (
		snap Snapshot
		err  error
	)

	if snap.Users, err = s.Users(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Sports, err = s.Sports(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Teams, err = s.Teams(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Players, err = s.Players(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Matches, err = s.Matches(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Bookings, err = s.Bookings(ctx); err != nil {
		return Snapshot{}, err
	}

	if current, ok, err := s.CurrentSession(ctx); err != nil {
		return Snapshot{}, err
	} else if ok {
		snap.CurrentUser = &current
	}

	initialized, err := s.IsInitialized(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	snap.Initialized = initialized

	return snap, nil
}

// Import overwrites the persisted state with the snapshot's collections.
func (s *Store) Import(ctx context.Context, snap Snapshot) error {
	if err := s.SetUsers(ctx, snap.Users); err != nil {
		return err
	}
	if err := setCollection(s, keySports, snap.Sports); err != nil {
		return err
	}
	if err := s.SetTeams(ctx, snap.Teams); err != nil {
		return err
	}
	if err := s.SetPlayers(ctx, snap.Players); err != nil {
		return err
	}
	if err := s.SetMatches(ctx, snap.Matches); err != nil {
		return err
	}
	if err := s.SetBookings(ctx, snap.Bookings); err != nil {
		return err
	}
	if err := s.setSession(snap.CurrentUser); err != nil {
		return err
	}
	if snap.Initialized {
		if err := s.markInitialized(); err != nil {
			return err
		}
	}

	s.logger.InfoContext(ctx, "portal data imported",
		"users", len(snap.Users),
		"teams", len(snap.Teams),
		"players", len(snap.Players),
		"matches", len(snap.Matches),
	)
	return nil
}

// Statistics counts records across all collections.
func (s *Store) Statistics(ctx context.Context) (Statistics, error) {
	snap, err := s.Export(ctx)
	if err != nil {
		return Statistics{}, err
	}

	stats := Statistics{
		Users:    len(snap.Users),
		Sports:   len(snap.Sports),
		Teams:    len(snap.Teams),
		Players:  len(snap.Players),
		Matches:  len(snap.Matches),
		Bookings: len(snap.Bookings),
	}
	for _, m := range snap.Matches {
		switch m.Status {
		case match.StatusUpcoming:
			stats.UpcomingMatches++
		case match.StatusCompleted:
			stats.CompletedMatches++
		}
	}
	return stats, nil
}
