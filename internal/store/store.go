package store

import (
	"context"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/fanconnect/portal/internal/domain/booking"
	"github.com/fanconnect/portal/internal/domain/match"
	"github.com/fanconnect/portal/internal/domain/player"
	"github.com/fanconnect/portal/internal/domain/sport"
	"github.com/fanconnect/portal/internal/domain/team"
	"github.com/fanconnect/portal/internal/domain/user"
	"github.com/fanconnect/portal/internal/platform/events"
	"github.com/fanconnect/portal/internal/platform/kvstore"
	"github.com/fanconnect/portal/internal/platform/logging"
)

// Storage keys, one serialized collection per logical name. The layout is
// kept byte-compatible with the original portal's local storage namespace.
const (
	keyUsers       = "fanconnect_users"
	keySports      = "fanconnect_sports"
	keyTeams       = "fanconnect_teams"
	keyPlayers     = "fanconnect_players"
	keyMatches     = "fanconnect_matches"
	keyBookings    = "fanconnect_bookings"
	keyCurrentUser = "fanconnect_current_user"
	keyInitialized = "fanconnect_initialized"
)

var collectionKeys = []string{
	keyUsers, keySports, keyTeams, keyPlayers, keyMatches, keyBookings,
	keyCurrentUser, keyInitialized,
}

// Store is the single source of truth for every portal collection. It owns
// the key-value namespace and is constructed once at startup and passed to
// whichever component needs it; there is no ambient global instance.
//
// The Store does not enforce business rules (roster caps, duplicate
// usernames, distinct match teams); those live with the callers. It only
// guarantees the mechanical collection contract: monotonic ids, whole-
// collection read-modify-write, and cascade delete of players with their
// team.
type Store struct {
	ns     kvstore.Namespace
	bus    *events.Bus
	logger *logging.Logger
	now    func() time.Time
	seed   int64
}

type Option func(*Store)

// WithClock overrides the timestamp source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSeed fixes the demo-data random seed, used by tests and demos.
func WithSeed(seed int64) Option {
	return func(s *Store) {
		s.seed = seed
	}
}

func New(ns kvstore.Namespace, bus *events.Bus, logger *logging.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = logging.Default()
	}

	s := &Store{
		ns:     ns,
		bus:    bus,
		logger: logger,
		now:    time.Now,
		seed:   time.Now().UnixNano(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close releases the underlying namespace.
func (s *Store) Close() error {
	return s.ns.Close()
}

func (s *Store) publish(ctx context.Context, name string, payload any) {
	if s.bus != nil {
		s.bus.Publish(ctx, name, payload)
	}
}

// getCollection decodes the stored blob for key, or returns an empty slice
// when the key is absent. It never fails on a missing key.
func getCollection[T any](s *Store, key string) ([]T, error) {
	raw, ok, err := s.ns.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok || len(raw) == 0 {
		return []T{}, nil
	}

	var out []T
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// setCollection serializes and overwrites the whole collection in one write.
func setCollection[T any](s *Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := sonic.Marshal(items)
	if err != nil {
		return err
	}
	return s.ns.Set(key, raw)
}

func (s *Store) Users(ctx context.Context) ([]user.User, error) {
	return getCollection[user.User](s, keyUsers)
}

func (s *Store) Sports(ctx context.Context) ([]sport.Sport, error) {
	return getCollection[sport.Sport](s, keySports)
}

func (s *Store) Teams(ctx context.Context) ([]team.Team, error) {
	return getCollection[team.Team](s, keyTeams)
}

func (s *Store) Players(ctx context.Context) ([]player.Player, error) {
	return getCollection[player.Player](s, keyPlayers)
}

func (s *Store) Matches(ctx context.Context) ([]match.Match, error) {
	return getCollection[match.Match](s, keyMatches)
}

func (s *Store) Bookings(ctx context.Context) ([]booking.Booking, error) {
	return getCollection[booking.Booking](s, keyBookings)
}

func (s *Store) SetUsers(ctx context.Context, items []user.User) error {
	return setCollection(s, keyUsers, items)
}

func (s *Store) SetTeams(ctx context.Context, items []team.Team) error {
	return setCollection(s, keyTeams, items)
}

func (s *Store) SetPlayers(ctx context.Context, items []player.Player) error {
	return setCollection(s, keyPlayers, items)
}

func (s *Store) SetMatches(ctx context.Context, items []match.Match) error {
	return setCollection(s, keyMatches, items)
}

func (s *Store) SetBookings(ctx context.Context, items []booking.Booking) error {
	return setCollection(s, keyBookings, items)
}

// nextID assigns current-max+1, so ids stay strictly monotonic within a
// collection and are never reused after a delete.
func nextID[T any](items []T, id func(T) int) int {
	max := 0
	for _, item := range items {
		if v := id(item); v > max {
			max = v
		}
	}
	return max + 1
}
