package user

import (
	"strings"
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleUser    = "user"
	RoleManager = "manager"
)

// User is a portal account. Passwords are stored in clear text to stay
// compatible with the persisted state layout of the original system.
type User struct {
	ID        int        `json:"id"`
	Username  string     `json:"username"`
	Password  string     `json:"password"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin"`
}

func ValidRole(role string) bool {
	switch strings.TrimSpace(role) {
	case RoleAdmin, RoleUser, RoleManager:
		return true
	default:
		return false
	}
}
