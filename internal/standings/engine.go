// Package standings derives league tables from completed matches. It is a
// pure computation over in-memory records; it never touches storage and
// never mutates its inputs.
package standings

import (
	"sort"

	"github.com/fanconnect/portal/internal/domain/match"
	"github.com/fanconnect/portal/internal/domain/team"
)

// Row is one line of a league table.
type Row struct {
	Rank           int    `json:"rank"`
	TeamID         int    `json:"teamId"`
	TeamName       string `json:"teamName"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
}

// Compute builds the table for the given teams from their completed
// matches. Every team gets a row even with zero matches played. A match is
// counted as a win for the team named in its result, a draw when the
// result is the draw literal, and a loss otherwise. Goals accumulate from
// recorded scores when the match carries them.
//
// Rows are ordered by points, then goal difference, then goals for, all
// descending. Ties across all three keys keep the input team order, and
// ranks are assigned 1-based after the sort.
func Compute(teams []team.Team, matches []match.Match) []Row {
	rows := make([]Row, 0, len(teams))
	for _, t := range teams {
		rows = append(rows, computeRow(t, matches))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].GoalDifference != rows[j].GoalDifference {
			return rows[i].GoalDifference > rows[j].GoalDifference
		}
		return rows[i].GoalsFor > rows[j].GoalsFor
	})

	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

func computeRow(t team.Team, matches []match.Match) Row {
	row := Row{TeamID: t.ID, TeamName: t.Name}

	for _, m := range matches {
		if m.Status != match.StatusCompleted || !m.Involves(t.ID) {
			continue
		}

		row.Played++
		switch {
		case m.IsDraw():
			row.Drawn++
		case m.Result != nil && *m.Result == t.Name:
			row.Won++
		default:
			row.Lost++
		}

		if m.Score1 != nil && m.Score2 != nil {
			if m.Team1ID == t.ID {
				row.GoalsFor += *m.Score1
				row.GoalsAgainst += *m.Score2
			} else {
				row.GoalsFor += *m.Score2
				row.GoalsAgainst += *m.Score1
			}
		}
	}

	row.GoalDifference = row.GoalsFor - row.GoalsAgainst
	row.Points = team.ComputePoints(row.Won, row.Drawn)
	return row
}
