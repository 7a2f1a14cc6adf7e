package store

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/fanconnect/portal/internal/domain/booking"
	"github.com/fanconnect/portal/internal/domain/match"
	"github.com/fanconnect/portal/internal/domain/player"
	"github.com/fanconnect/portal/internal/domain/sport"
	"github.com/fanconnect/portal/internal/domain/team"
	"github.com/fanconnect/portal/internal/domain/user"
)

const (
	seedTeamsPerSport   = 15
	seedPlayersPerTeam  = player.MaxPerTeam
	seedCompletedCount  = 8
	seedUpcomingCount   = 12
	seedMatchesPerSport = seedCompletedCount + seedUpcomingCount
)

var seedFirstNames = []string{
	"Arjun", "Rohan", "Vikram", "Karan", "Aditya", "Rahul", "Siddharth",
	"Nikhil", "Varun", "Aryan", "Dev", "Kunal", "Manish", "Pranav", "Rajat",
}

var seedLastNames = []string{
	"Sharma", "Patel", "Singh", "Kumar", "Reddy", "Nair", "Verma",
	"Iyer", "Mehta", "Joshi", "Rao", "Desai", "Kapoor", "Malhotra", "Bose",
}

var seedNationalities = []string{
	"India", "Australia", "England", "South Africa", "Brazil",
	"Argentina", "Spain", "France", "Japan", "Kenya",
}

var seedVenues = []string{
	"Wankhede Stadium", "Eden Gardens", "Chinnaswamy Stadium",
	"Salt Lake Stadium", "Jawaharlal Nehru Stadium", "DY Patil Stadium",
	"Kanteerava Stadium", "Gachibowli Indoor Stadium",
	"Thyagaraj Sports Complex", "Netaji Indoor Stadium",
}

// sportSeed is the output of one per-sport generation job. Record ids are
// derived from fixed per-sport offsets, so jobs never contend for an id
// sequence and the merged result is identical regardless of pool scheduling.
type sportSeed struct {
	teams   []team.Team
	players []player.Player
	matches []match.Match
}

// Initialize populates an empty namespace with the demo dataset: three
// default accounts, the sport catalog, and per-sport teams, rosters and
// fixtures. It is idempotent; once the initialized flag is set, subsequent
// calls leave the persisted bytes untouched and return false.
//
// Generation fans out one job per sport on a worker pool. Each job draws
// from its own RNG seeded with masterSeed+sportID, so the dataset is fully
// reproducible under WithSeed and WithClock.
func (s *Store) Initialize(ctx context.Context) (bool, error) {
	initialized, err := s.IsInitialized(ctx)
	if err != nil {
		return false, err
	}
	if initialized {
		return false, nil
	}

	now := s.now()

	if err := s.SetUsers(ctx, defaultUsers(now)); err != nil {
		return false, err
	}

	catalog := sport.Catalog()
	sports := make([]sport.Sport, 0, len(catalog))
	for _, cfg := range catalog {
		sports = append(sports, sport.Sport{
			ID:           cfg.ID,
			Name:         cfg.Name,
			Icon:         cfg.Icon,
			Color:        cfg.Color,
			TotalTeams:   seedTeamsPerSport,
			TotalPlayers: seedTeamsPerSport * seedPlayersPerTeam,
			CreatedAt:    now,
		})
	}
	if err := setCollection(s, keySports, sports); err != nil {
		return false, err
	}

	pool, err := ants.NewPool(len(catalog))
	if err != nil {
		return false, err
	}
	defer pool.Release()

	var wg sync.WaitGroup
	results := make([]sportSeed, len(catalog))
	for i, cfg := range catalog {
		i, cfg := i, cfg
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			rng := rand.New(rand.NewSource(s.seed + int64(cfg.ID)))
			results[i] = generateSportSeed(cfg, rng, now)
		})
		if submitErr != nil {
			wg.Done()
			return false, submitErr
		}
	}
	wg.Wait()

	var (
		teams   []team.Team
		players []player.Player
		matches []match.Match
	)
	for _, res := range results {
		teams = append(teams, res.teams...)
		players = append(players, res.players...)
		matches = append(matches, res.matches...)
	}

	if err := s.SetTeams(ctx, teams); err != nil {
		return false, err
	}
	if err := s.SetPlayers(ctx, players); err != nil {
		return false, err
	}
	if err := s.SetMatches(ctx, matches); err != nil {
		return false, err
	}
	if err := s.SetBookings(ctx, []booking.Booking{}); err != nil {
		return false, err
	}
	if err := s.markInitialized(); err != nil {
		return false, err
	}

	s.logger.InfoContext(ctx, "demo data initialized",
		"sports", len(sports),
		"teams", len(teams),
		"players", len(players),
		"matches", len(matches),
	)
	return true, nil
}

// IsInitialized reports whether the demo data flag has been set.
func (s *Store) IsInitialized(ctx context.Context) (bool, error) {
	raw, ok, err := s.ns.Get(keyInitialized)
	if err != nil {
		return false, err
	}
	return ok && string(raw) == "true", nil
}

func (s *Store) markInitialized() error {
	return s.ns.Set(keyInitialized, []byte("true"))
}

func defaultUsers(now time.Time) []user.User {
	return []user.User{
		{ID: 1, Username: "admin", Password: "admin123", Email: "admin@fanconnect.com", Role: user.RoleAdmin, CreatedAt: now},
		{ID: 2, Username: "user1", Password: "user123", Email: "user1@fanconnect.com", Role: user.RoleUser, CreatedAt: now},
		{ID: 3, Username: "manager1", Password: "manager123", Email: "manager1@fanconnect.com", Role: user.RoleManager, CreatedAt: now},
	}
}

func generateSportSeed(cfg sport.Config, rng *rand.Rand, now time.Time) sportSeed {
	teamBase := (cfg.ID - 1) * seedTeamsPerSport
	playerBase := teamBase * seedPlayersPerTeam
	matchBase := (cfg.ID - 1) * seedMatchesPerSport

	seed := sportSeed{
		teams:   make([]team.Team, 0, seedTeamsPerSport),
		players: make([]player.Player, 0, seedTeamsPerSport*seedPlayersPerTeam),
		matches: make([]match.Match, 0, seedMatchesPerSport),
	}

	for t := 0; t < seedTeamsPerSport; t++ {
		played := 8 + rng.Intn(5)
		won := rng.Intn(played + 1)
		drawn := rng.Intn(played - won + 1)
		lost := played - won - drawn

		rec := team.Team{
			ID:           teamBase + t + 1,
			Name:         cfg.TeamNames[t],
			Sport:        cfg.Name,
			SportID:      cfg.ID,
			Played:       played,
			Won:          won,
			Lost:         lost,
			Drawn:        drawn,
			GoalsFor:     won*2 + rng.Intn(10),
			GoalsAgainst: lost*2 + rng.Intn(10),
			Points:       team.ComputePoints(won, drawn),
			Founded:      1990 + rng.Intn(30),
			CreatedAt:    now,
		}
		seed.teams = append(seed.teams, rec)

		for p := 0; p < seedPlayersPerTeam; p++ {
			seed.players = append(seed.players, player.Player{
				ID:            playerBase + t*seedPlayersPerTeam + p + 1,
				Name:          seedFirstNames[rng.Intn(len(seedFirstNames))] + " " + seedLastNames[rng.Intn(len(seedLastNames))],
				TeamID:        rec.ID,
				TeamName:      rec.Name,
				Sport:         cfg.Name,
				Position:      cfg.Positions[p%len(cfg.Positions)],
				Age:           18 + rng.Intn(18),
				Nationality:   seedNationalities[rng.Intn(len(seedNationalities))],
				MatchesPlayed: rng.Intn(played + 1),
				Goals:         rng.Intn(20),
				Assists:       rng.Intn(15),
				YellowCards:   rng.Intn(5),
				RedCards:      rng.Intn(2),
				Rating:        fmt.Sprintf("%.1f", 6.0+rng.Float64()*3.5),
				JoinedDate:    now,
				CreatedAt:     now,
			})
		}
	}

	for m := 0; m < seedMatchesPerSport; m++ {
		i1 := rng.Intn(seedTeamsPerSport)
		i2 := rng.Intn(seedTeamsPerSport - 1)
		if i2 >= i1 {
			i2++
		}
		t1, t2 := seed.teams[i1], seed.teams[i2]

		rec := match.Match{
			ID:          matchBase + m + 1,
			Sport:       cfg.Name,
			SportID:     cfg.ID,
			Team1:       t1.Name,
			Team1ID:     t1.ID,
			Team2:       t2.Name,
			Team2ID:     t2.ID,
			Venue:       seedVenues[rng.Intn(len(seedVenues))],
			Status:      match.StatusUpcoming,
			TicketPrice: match.TicketPrice,
			CreatedAt:   now,
		}

		if m < seedCompletedCount {
			rec.Status = match.StatusCompleted
			rec.Date = now.AddDate(0, 0, -(seedCompletedCount - m))

			score1, score2, result := seedOutcome(rng, t1.Name, t2.Name)
			rec.Score1 = &score1
			rec.Score2 = &score2
			rec.Result = &result

			attendance := 5000 + rng.Intn(45000)
			rec.Attendance = &attendance
		} else {
			rec.Date = now.AddDate(0, 0, m-seedCompletedCount+1)
		}

		seed.matches = append(seed.matches, rec)
	}

	return seed
}

// seedOutcome draws a weighted result: 40% home win, 40% away win, 20%
// draw, with scores that agree with the result.
func seedOutcome(rng *rand.Rand, team1, team2 string) (score1, score2 int, result string) {
	switch roll := rng.Float64(); {
	case roll < 0.4:
		score2 = rng.Intn(4)
		score1 = score2 + 1 + rng.Intn(3)
		result = team1
	case roll < 0.8:
		score1 = rng.Intn(4)
		score2 = score1 + 1 + rng.Intn(3)
		result = team2
	default:
		score1 = rng.Intn(4)
		score2 = score1
		result = match.ResultDraw
	}
	return score1, score2, result
}
