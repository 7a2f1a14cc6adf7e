package booking

import "time"

const StatusConfirmed = "confirmed"

// Booking records a ticket purchase for a match. TotalAmount is always
// tickets times the match ticket price at booking time.
type Booking struct {
	ID          int       `json:"id"`
	MatchID     int       `json:"matchId"`
	UserID      int       `json:"userId"`
	Tickets     int       `json:"tickets"`
	TotalAmount int       `json:"totalAmount"`
	BookingDate time.Time `json:"bookingDate"`
	Status      string    `json:"status"`
}
