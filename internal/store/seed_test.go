package store

import (
	"context"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/fanconnect/portal/internal/domain/match"
	"github.com/fanconnect/portal/internal/domain/team"
	"github.com/fanconnect/portal/internal/platform/events"
	"github.com/fanconnect/portal/internal/platform/kvstore"
	"github.com/fanconnect/portal/internal/platform/logging"
)

func TestInitialize_Shape(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	seeded, err := s.Initialize(ctx)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if !seeded {
		t.Fatalf("expected first initialize to seed")
	}

	stats, err := s.Statistics(ctx)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.Users != 3 {
		t.Fatalf("expected 3 default users, got %d", stats.Users)
	}
	if stats.Sports != 4 {
		t.Fatalf("expected 4 sports, got %d", stats.Sports)
	}
	if stats.Teams != 4*seedTeamsPerSport {
		t.Fatalf("expected %d teams, got %d", 4*seedTeamsPerSport, stats.Teams)
	}
	if stats.Players != stats.Teams*seedPlayersPerTeam {
		t.Fatalf("expected %d players, got %d", stats.Teams*seedPlayersPerTeam, stats.Players)
	}
	if stats.Matches != 4*seedMatchesPerSport {
		t.Fatalf("expected %d matches, got %d", 4*seedMatchesPerSport, stats.Matches)
	}
	if stats.CompletedMatches != 4*seedCompletedCount || stats.UpcomingMatches != 4*seedUpcomingCount {
		t.Fatalf("unexpected match status split: %+v", stats)
	}
	if stats.Bookings != 0 {
		t.Fatalf("expected no seeded bookings, got %d", stats.Bookings)
	}
}

func TestInitialize_PointsAndScoresConsistent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.Initialize(ctx); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	teams, err := s.Teams(ctx)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	for _, rec := range teams {
		if rec.Played != rec.Won+rec.Drawn+rec.Lost {
			t.Fatalf("team %q counters do not add up: %+v", rec.Name, rec)
		}
		if rec.Points != team.ComputePoints(rec.Won, rec.Drawn) {
			t.Fatalf("team %q points not derived from counters: %+v", rec.Name, rec)
		}
	}

	matches, err := s.Matches(ctx)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	for _, m := range matches {
		if m.Status != match.StatusCompleted {
			continue
		}
		if m.Result == nil || m.Score1 == nil || m.Score2 == nil || m.Attendance == nil {
			t.Fatalf("completed match %d missing completion fields: %+v", m.ID, m)
		}
		switch {
		case *m.Score1 > *m.Score2 && *m.Result != m.Team1:
			t.Fatalf("match %d result disagrees with scores: %+v", m.ID, m)
		case *m.Score2 > *m.Score1 && *m.Result != m.Team2:
			t.Fatalf("match %d result disagrees with scores: %+v", m.ID, m)
		case *m.Score1 == *m.Score2 && *m.Result != match.ResultDraw:
			t.Fatalf("match %d should be a draw: %+v", m.ID, m)
		}
	}
}

func TestInitialize_IdempotentByteForByte(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ns := kvstore.NewMemory()
	s := New(ns, events.NewBus(logging.NewNop()), logging.NewNop(),
		WithClock(testClock()), WithSeed(7))

	if _, err := s.Initialize(ctx); err != nil {
		t.Fatalf("first initialize: %v", err)
	}

	before := map[string][]byte{}
	keys, err := ns.Keys()
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	for _, key := range keys {
		raw, _, err := ns.Get(key)
		if err != nil {
			t.Fatalf("get %q: %v", key, err)
		}
		before[key] = raw
	}

	seeded, err := s.Initialize(ctx)
	if err != nil {
		t.Fatalf("second initialize: %v", err)
	}
	if seeded {
		t.Fatalf("expected second initialize to be a no-op")
	}

	for key, want := range before {
		got, _, err := ns.Get(key)
		if err != nil {
			t.Fatalf("get %q: %v", key, err)
		}
		if string(got) != string(want) {
			t.Fatalf("key %q changed on repeated initialize", key)
		}
	}
}

func TestInitialize_DeterministicForSameSeed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	run := func() Snapshot {
		s := New(kvstore.NewMemory(), events.NewBus(logging.NewNop()), logging.NewNop(),
			WithClock(testClock()), WithSeed(99))
		if _, err := s.Initialize(ctx); err != nil {
			t.Fatalf("initialize: %v", err)
		}
		snap, err := s.Export(ctx)
		if err != nil {
			t.Fatalf("export: %v", err)
		}
		return snap
	}

	first, err := sonic.Marshal(run())
	if err != nil {
		t.Fatalf("marshal first run: %v", err)
	}
	second, err := sonic.Marshal(run())
	if err != nil {
		t.Fatalf("marshal second run: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("same seed produced different datasets")
	}
}
