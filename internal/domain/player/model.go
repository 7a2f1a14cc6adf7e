package player

import "time"

// MaxPerTeam is the roster cap enforced when adding players. The storage
// layer does not re-check it; callers own the invariant.
const MaxPerTeam = 11

// Player belongs to exactly one team. Team name and sport are denormalized
// copies kept for display.
type Player struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	TeamID        int       `json:"teamId"`
	TeamName      string    `json:"teamName"`
	Sport         string    `json:"sport"`
	Position      string    `json:"position"`
	Age           int       `json:"age"`
	Nationality   string    `json:"nationality"`
	MatchesPlayed int       `json:"matchesPlayed"`
	Goals         int       `json:"goals"`
	Assists       int       `json:"assists"`
	YellowCards   int       `json:"yellowCards"`
	RedCards      int       `json:"redCards"`
	Rating        string    `json:"rating"`
	JoinedDate    time.Time `json:"joinedDate"`
	CreatedAt     time.Time `json:"createdAt"`
}
