package match

import "time"

const (
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"

	// ResultDraw is the literal stored when neither side won.
	ResultDraw = "Draw"

	// TicketPrice is fixed for every match, in currency units.
	TicketPrice = 500
)

// Match references two teams of the same sport by id, with team and sport
// names denormalized for display. Result is nil until the match completes
// and then holds team1's name, team2's name, or ResultDraw.
type Match struct {
	ID          int       `json:"id"`
	Sport       string    `json:"sport"`
	SportID     int       `json:"sportId"`
	Team1       string    `json:"team1"`
	Team1ID     int       `json:"team1Id"`
	Team2       string    `json:"team2"`
	Team2ID     int       `json:"team2Id"`
	Date        time.Time `json:"date"`
	Venue       string    `json:"venue"`
	Result      *string   `json:"result"`
	Status      string    `json:"status"`
	Attendance  *int      `json:"attendance"`
	Score1      *int      `json:"score1"`
	Score2      *int      `json:"score2"`
	TicketPrice int       `json:"ticketPrice"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Involves reports whether the team with the given id plays in this match.
func (m Match) Involves(teamID int) bool {
	return m.Team1ID == teamID || m.Team2ID == teamID
}

// IsDraw reports whether a completed match ended level.
func (m Match) IsDraw() bool {
	return m.Result != nil && *m.Result == ResultDraw
}
