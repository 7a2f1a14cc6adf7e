package standings

import (
	"testing"

	"github.com/fanconnect/portal/internal/domain/match"
	"github.com/fanconnect/portal/internal/domain/team"
)

func completed(id, team1ID, team2ID int, team1, team2 string, score1, score2 int) match.Match {
	result := match.ResultDraw
	if score1 > score2 {
		result = team1
	} else if score2 > score1 {
		result = team2
	}
	return match.Match{
		ID:      id,
		Team1:   team1,
		Team1ID: team1ID,
		Team2:   team2,
		Team2ID: team2ID,
		Score1:  &score1,
		Score2:  &score2,
		Result:  &result,
		Status:  match.StatusCompleted,
	}
}

func TestCompute_OrdersByPointsThenGoalDifferenceThenGoalsFor(t *testing.T) {
	t.Parallel()

	teams := []team.Team{
		{ID: 1, Name: "Alpha"},
		{ID: 2, Name: "Bravo"},
		{ID: 3, Name: "Charlie"},
	}
	// Charlie wins both its games; Alpha and Bravo finish level on points
	// so goal difference decides second place.
	matches := []match.Match{
		completed(1, 3, 1, "Charlie", "Alpha", 1, 0),
		completed(2, 3, 2, "Charlie", "Bravo", 2, 1),
		completed(3, 1, 2, "Alpha", "Bravo", 0, 3),
		completed(4, 2, 1, "Bravo", "Alpha", 0, 1),
	}

	rows := Compute(teams, matches)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	if rows[0].TeamName != "Charlie" || rows[0].Points != 6 {
		t.Fatalf("expected Charlie first with 6 points, got %s with %d", rows[0].TeamName, rows[0].Points)
	}
	if rows[1].TeamName != "Bravo" {
		t.Fatalf("expected Bravo second on goal difference, got %s", rows[1].TeamName)
	}
	if rows[2].TeamName != "Alpha" {
		t.Fatalf("expected Alpha third, got %s", rows[2].TeamName)
	}

	for i, row := range rows {
		if row.Rank != i+1 {
			t.Fatalf("expected rank %d at index %d, got %d", i+1, i, row.Rank)
		}
	}
}

func TestCompute_TiesKeepInputOrder(t *testing.T) {
	t.Parallel()

	teams := []team.Team{
		{ID: 7, Name: "First"},
		{ID: 8, Name: "Second"},
		{ID: 9, Name: "Third"},
	}

	rows := Compute(teams, nil)
	for i, want := range []string{"First", "Second", "Third"} {
		if rows[i].TeamName != want {
			t.Fatalf("expected %s at rank %d, got %s", want, i+1, rows[i].TeamName)
		}
		if rows[i].Points != 0 || rows[i].Played != 0 {
			t.Fatalf("expected zero row for %s, got %+v", want, rows[i])
		}
	}
}

func TestCompute_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	teams := []team.Team{{ID: 1, Name: "Alpha"}, {ID: 2, Name: "Bravo"}}
	matches := []match.Match{completed(1, 1, 2, "Alpha", "Bravo", 2, 0)}

	before := teams[1]
	_ = Compute(teams, matches)
	if teams[1] != before {
		t.Fatalf("input teams mutated: %+v", teams[1])
	}
	if teams[0].ID != 1 || teams[1].ID != 2 {
		t.Fatalf("input team order changed")
	}
}

func TestCompute_CountsDrawsAndGoals(t *testing.T) {
	t.Parallel()

	teams := []team.Team{{ID: 1, Name: "Alpha"}, {ID: 2, Name: "Bravo"}}
	matches := []match.Match{
		completed(1, 1, 2, "Alpha", "Bravo", 2, 2),
		completed(2, 2, 1, "Bravo", "Alpha", 1, 0),
		// Upcoming fixtures never count.
		{ID: 3, Team1: "Alpha", Team1ID: 1, Team2: "Bravo", Team2ID: 2, Status: match.StatusUpcoming},
	}

	rows := Compute(teams, matches)
	if rows[0].TeamName != "Bravo" {
		t.Fatalf("expected Bravo on top, got %s", rows[0].TeamName)
	}
	bravo := rows[0]
	if bravo.Played != 2 || bravo.Won != 1 || bravo.Drawn != 1 || bravo.Lost != 0 {
		t.Fatalf("unexpected Bravo record: %+v", bravo)
	}
	if bravo.GoalsFor != 3 || bravo.GoalsAgainst != 2 || bravo.GoalDifference != 1 {
		t.Fatalf("unexpected Bravo goals: %+v", bravo)
	}
	if bravo.Points != 4 {
		t.Fatalf("expected 4 points for Bravo, got %d", bravo.Points)
	}

	alpha := rows[1]
	if alpha.Played != 2 || alpha.Drawn != 1 || alpha.Lost != 1 || alpha.Points != 1 {
		t.Fatalf("unexpected Alpha record: %+v", alpha)
	}
}

func TestCompute_MissingScoresStillCountResults(t *testing.T) {
	t.Parallel()

	result := "Alpha"
	teams := []team.Team{{ID: 1, Name: "Alpha"}, {ID: 2, Name: "Bravo"}}
	matches := []match.Match{{
		ID: 1, Team1: "Alpha", Team1ID: 1, Team2: "Bravo", Team2ID: 2,
		Result: &result, Status: match.StatusCompleted,
	}}

	rows := Compute(teams, matches)
	if rows[0].TeamName != "Alpha" || rows[0].Won != 1 || rows[0].Points != 3 {
		t.Fatalf("unexpected top row: %+v", rows[0])
	}
	if rows[0].GoalsFor != 0 || rows[0].GoalsAgainst != 0 {
		t.Fatalf("expected no goals without scores, got %+v", rows[0])
	}
}
