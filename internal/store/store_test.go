package store

import (
	"context"
	"testing"
	"time"

	"github.com/fanconnect/portal/internal/domain/match"
	"github.com/fanconnect/portal/internal/platform/events"
	"github.com/fanconnect/portal/internal/platform/kvstore"
	"github.com/fanconnect/portal/internal/platform/logging"
)

func testClock() func() time.Time {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return fixed }
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(kvstore.NewMemory(), events.NewBus(logging.NewNop()), logging.NewNop(),
		WithClock(testClock()), WithSeed(42))
}

func TestAddTeam_AssignsMonotonicIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	first, err := s.AddTeam(ctx, NewTeamInput{Name: "Mumbai Heroes", Sport: "Cricket", SportID: 1})
	if err != nil {
		t.Fatalf("add team: %v", err)
	}
	second, err := s.AddTeam(ctx, NewTeamInput{Name: "Chennai Warriors", Sport: "Cricket", SportID: 1})
	if err != nil {
		t.Fatalf("add team: %v", err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}

	// Deleting the newest team must not free its id for reuse.
	if err := s.DeleteTeam(ctx, second.ID); err != nil {
		t.Fatalf("delete team: %v", err)
	}
	third, err := s.AddTeam(ctx, NewTeamInput{Name: "Delhi Daredevils", Sport: "Cricket", SportID: 1})
	if err != nil {
		t.Fatalf("add team: %v", err)
	}
	if third.ID != 2 {
		t.Fatalf("expected id 2 after max-based assignment, got %d", third.ID)
	}
}

func TestDeleteTeam_CascadesToPlayers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	kept, err := s.AddTeam(ctx, NewTeamInput{Name: "Keep", Sport: "Football", SportID: 2})
	if err != nil {
		t.Fatalf("add team: %v", err)
	}
	doomed, err := s.AddTeam(ctx, NewTeamInput{Name: "Doomed", Sport: "Football", SportID: 2})
	if err != nil {
		t.Fatalf("add team: %v", err)
	}

	for _, teamRec := range []struct {
		id   int
		name string
	}{{kept.ID, "Keep"}, {doomed.ID, "Doomed"}} {
		if _, err := s.AddPlayer(ctx, NewPlayerInput{
			Name: "Player " + teamRec.name, TeamID: teamRec.id, TeamName: teamRec.name,
			Sport: "Football", Position: "Forward", Age: 24,
		}); err != nil {
			t.Fatalf("add player: %v", err)
		}
	}

	if err := s.DeleteTeam(ctx, doomed.ID); err != nil {
		t.Fatalf("delete team: %v", err)
	}

	players, err := s.Players(ctx)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 1 || players[0].TeamID != kept.ID {
		t.Fatalf("expected only the kept team's player to survive, got %+v", players)
	}
}

func TestDeleteTeam_MissingIDIsNoOp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.AddTeam(ctx, NewTeamInput{Name: "Solo", Sport: "Cricket", SportID: 1}); err != nil {
		t.Fatalf("add team: %v", err)
	}
	if err := s.DeleteTeam(ctx, 999); err != nil {
		t.Fatalf("delete missing team: %v", err)
	}

	teams, err := s.Teams(ctx)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 1 {
		t.Fatalf("expected the team to survive, got %d teams", len(teams))
	}
}

func TestAddMatch_DefaultsAndTicketPrice(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	record, err := s.AddMatch(ctx, NewMatchInput{
		Sport: "Cricket", SportID: 1,
		Team1: "A", Team1ID: 1, Team2: "B", Team2ID: 2,
		Date: time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC), Venue: "Eden Gardens",
	})
	if err != nil {
		t.Fatalf("add match: %v", err)
	}
	if record.Status != match.StatusUpcoming {
		t.Fatalf("expected upcoming status, got %q", record.Status)
	}
	if record.TicketPrice != match.TicketPrice {
		t.Fatalf("expected ticket price %d, got %d", match.TicketPrice, record.TicketPrice)
	}
	if record.Result != nil || record.Score1 != nil || record.Attendance != nil {
		t.Fatalf("expected empty completion fields, got %+v", record)
	}
}

func TestMatchOrdering(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	dates := []time.Time{
		time.Date(2026, 4, 3, 18, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 2, 18, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		if _, err := s.AddMatch(ctx, NewMatchInput{
			Sport: "Cricket", SportID: 1,
			Team1: "A", Team1ID: 1, Team2: "B", Team2ID: 2,
			Date: d, Venue: "Eden Gardens",
		}); err != nil {
			t.Fatalf("add match: %v", err)
		}
	}

	upcoming, err := s.UpcomingMatches(ctx)
	if err != nil {
		t.Fatalf("list upcoming: %v", err)
	}
	for i := 1; i < len(upcoming); i++ {
		if upcoming[i].Date.Before(upcoming[i-1].Date) {
			t.Fatalf("upcoming matches not ascending at index %d", i)
		}
	}

	// Complete two of them, then the completed list must be newest first.
	for _, id := range []int{1, 2} {
		if _, ok, err := s.CompleteMatch(ctx, id, "A", nil, nil, 10000); err != nil || !ok {
			t.Fatalf("complete match %d: ok=%t err=%v", id, ok, err)
		}
	}
	done, err := s.CompletedMatches(ctx)
	if err != nil {
		t.Fatalf("list completed: %v", err)
	}
	if len(done) != 2 {
		t.Fatalf("expected 2 completed matches, got %d", len(done))
	}
	if done[0].Date.Before(done[1].Date) {
		t.Fatalf("completed matches not descending")
	}
}

func TestCompleteMatch_MissingIDReturnsFalse(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	_, ok, err := s.CompleteMatch(ctx, 42, "A", nil, nil, 0)
	if err != nil {
		t.Fatalf("complete match: %v", err)
	}
	if ok {
		t.Fatalf("expected false for missing match id")
	}
}

func TestAuthenticate_SessionLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.AddUser(ctx, NewUserInput{
		Username: "admin", Password: "admin123", Email: "admin@fanconnect.com", Role: "admin",
	}); err != nil {
		t.Fatalf("add user: %v", err)
	}

	if _, ok, err := s.Authenticate(ctx, "admin", "wrong"); err != nil || ok {
		t.Fatalf("expected wrong password to miss, ok=%t err=%v", ok, err)
	}
	if _, ok, err := s.CurrentSession(ctx); err != nil || ok {
		t.Fatalf("expected no session after failed login, ok=%t err=%v", ok, err)
	}

	logged, ok, err := s.Authenticate(ctx, "admin", "admin123")
	if err != nil || !ok {
		t.Fatalf("expected login to succeed, ok=%t err=%v", ok, err)
	}
	if logged.LastLogin == nil {
		t.Fatalf("expected lastLogin to be stamped")
	}

	current, ok, err := s.CurrentSession(ctx)
	if err != nil || !ok {
		t.Fatalf("expected open session, ok=%t err=%v", ok, err)
	}
	if current.Username != "admin" {
		t.Fatalf("expected admin session, got %q", current.Username)
	}

	if err := s.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok, _ := s.CurrentSession(ctx); ok {
		t.Fatalf("expected session to be cleared after logout")
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.Initialize(ctx); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	snap, err := s.Export(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !snap.Initialized {
		t.Fatalf("expected snapshot to carry the initialized flag")
	}

	other := newTestStore(t)
	if err := other.Import(ctx, snap); err != nil {
		t.Fatalf("import: %v", err)
	}

	restored, err := other.Export(ctx)
	if err != nil {
		t.Fatalf("export restored: %v", err)
	}
	if len(restored.Teams) != len(snap.Teams) || len(restored.Players) != len(snap.Players) {
		t.Fatalf("restored snapshot differs: %d/%d teams, %d/%d players",
			len(restored.Teams), len(snap.Teams), len(restored.Players), len(snap.Players))
	}

	// Imported data must count as initialized so startup seeding skips it.
	seeded, err := other.Initialize(ctx)
	if err != nil {
		t.Fatalf("initialize after import: %v", err)
	}
	if seeded {
		t.Fatalf("expected initialize to be a no-op after import")
	}
}

func TestClearAll_RemovesEverything(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.Initialize(ctx); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if err := s.ClearAll(ctx); err != nil {
		t.Fatalf("clear all: %v", err)
	}

	stats, err := s.Statistics(ctx)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats != (Statistics{}) {
		t.Fatalf("expected zero statistics after clear, got %+v", stats)
	}
	if initialized, _ := s.IsInitialized(ctx); initialized {
		t.Fatalf("expected initialized flag to be cleared")
	}
}
