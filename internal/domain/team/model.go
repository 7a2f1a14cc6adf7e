package team

import "time"

// Team is a persisted team record. Sport name is denormalized next to the
// sport id as a read optimization; the id is authoritative.
type Team struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Sport        string    `json:"sport"`
	SportID      int       `json:"sportId"`
	Played       int       `json:"played"`
	Won          int       `json:"won"`
	Lost         int       `json:"lost"`
	Drawn        int       `json:"drawn"`
	GoalsFor     int       `json:"goalsFor"`
	GoalsAgainst int       `json:"goalsAgainst"`
	Points       int       `json:"points"`
	Founded      int       `json:"founded"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ComputePoints derives competition points from the win/draw counters.
// Stored Points must always equal this value; it is recomputed on every
// write rather than trusted.
func ComputePoints(won, drawn int) int {
	return won*3 + drawn
}
