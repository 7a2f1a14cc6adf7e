package sport

import (
	"strings"
	"time"
)

// Sport is the persisted record for one sport category. The aggregate counts
// are denormalized at seed time and are not kept in sync with later mutations.
type Sport struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Icon         string    `json:"icon"`
	Color        string    `json:"color"`
	TotalTeams   int       `json:"totalTeams"`
	TotalPlayers int       `json:"totalPlayers"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Config describes one entry of the fixed sport catalog: the seeded team
// names and the position list valid for players of that sport.
type Config struct {
	ID        int
	Name      string
	Icon      string
	Color     string
	TeamNames []string
	Positions []string
}

// Catalog returns the fixed set of sports the portal ships with.
func Catalog() []Config {
	return []Config{
		{
			ID:    1,
			Name:  "Cricket",
			Icon:  "fas fa-baseball-ball",
			Color: "#10b981",
			TeamNames: []string{
				"Mumbai Indians", "Chennai Super Kings", "Royal Challengers Bangalore",
				"Delhi Capitals", "Kolkata Knight Riders", "Rajasthan Royals",
				"Punjab Kings", "Sunrisers Hyderabad", "Lucknow Super Giants",
				"Gujarat Titans", "Mumbai Heroes", "Chennai Warriors",
				"Bangalore Challengers", "Delhi Daredevils", "Kolkata Tigers",
			},
			Positions: []string{"Batsman", "Bowler", "All-rounder", "Wicket-keeper"},
		},
		{
			ID:    2,
			Name:  "Football",
			Icon:  "fas fa-futbol",
			Color: "#3b82f6",
			TeamNames: []string{
				"Mumbai City FC", "Bengaluru FC", "ATK Mohun Bagan",
				"FC Goa", "Hyderabad FC", "Jamshedpur FC",
				"Kerala Blasters", "NorthEast United", "Odisha FC",
				"Punjab FC", "Chennai City FC", "Delhi Dynamos",
				"Pune Warriors", "Kochi Tuskers", "Ahmedabad United",
			},
			Positions: []string{"Forward", "Midfielder", "Defender", "Goalkeeper"},
		},
		{
			ID:    3,
			Name:  "Basketball",
			Icon:  "fas fa-basketball-ball",
			Color: "#f59e0b",
			TeamNames: []string{
				"Mumbai Ballers", "Delhi Hoopers", "Bengaluru Beasts",
				"Chennai Slammers", "Hyderabad Hawks", "Kolkata Knights",
				"Punjab Panthers", "Goa Giants", "Rajasthan Riders",
				"Gujarat Gladiators", "Lucknow Lakers", "Ahmedabad Aces",
				"Jaipur Jumpers", "Chandigarh Chiefs", "Kochi Kings",
			},
			Positions: []string{"Point Guard", "Shooting Guard", "Small Forward", "Power Forward", "Center"},
		},
		{
			ID:    4,
			Name:  "Volleyball",
			Icon:  "fas fa-volleyball-ball",
			Color: "#ef4444",
			TeamNames: []string{
				"Mumbai Spikes", "Chennai Smashers", "Bengaluru Blockers",
				"Delhi Diggers", "Kolkata Crushers", "Hyderabad Hitters",
				"Punjab Power", "Goa Guardians", "Rajasthan Rockets",
				"Gujarat Gators", "Kerala Killers", "Tamil Nadu Titans",
				"Karnataka Kings", "Andhra Aces", "Odisha Olympians",
			},
			Positions: []string{"Setter", "Outside Hitter", "Middle Blocker", "Opposite Hitter", "Libero", "Defensive Specialist"},
		},
	}
}

// ConfigByID looks up a catalog entry by sport id.
func ConfigByID(id int) (Config, bool) {
	for _, cfg := range Catalog() {
		if cfg.ID == id {
			return cfg, true
		}
	}
	return Config{}, false
}

// ConfigByName looks up a catalog entry by sport name (case-insensitive).
func ConfigByName(name string) (Config, bool) {
	name = strings.TrimSpace(name)
	for _, cfg := range Catalog() {
		if strings.EqualFold(cfg.Name, name) {
			return cfg, true
		}
	}
	return Config{}, false
}

// ValidPosition reports whether position belongs to the sport's position list.
func (c Config) ValidPosition(position string) bool {
	position = strings.TrimSpace(position)
	for _, p := range c.Positions {
		if strings.EqualFold(p, position) {
			return true
		}
	}
	return false
}
