package usecase

import (
	"context"
	"fmt"

	"github.com/fanconnect/portal/internal/domain/booking"
	"github.com/fanconnect/portal/internal/store"
)

type BookingService struct {
	store *store.Store
}

func NewBookingService(st *store.Store) *BookingService {
	return &BookingService{store: st}
}

// Book reserves tickets for a match on behalf of a user. The total is
// always tickets times the fixed ticket price; callers never supply it.
func (s *BookingService) Book(ctx context.Context, matchID, userID, tickets int) (booking.Booking, error) {
	ctx, span := startUsecaseSpan(ctx, "BookingService.Book")
	defer span.End()

	if tickets < 1 {
		return booking.Booking{}, fmt.Errorf("%w: at least one ticket is required", ErrInvalidInput)
	}

	matches, err := s.store.Matches(ctx)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("list matches: %w", err)
	}
	found := false
	price := 0
	for _, m := range matches {
		if m.ID == matchID {
			found = true
			price = m.TicketPrice
			break
		}
	}
	if !found {
		return booking.Booking{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	users, err := s.store.Users(ctx)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("list users: %w", err)
	}
	userExists := false
	for _, u := range users {
		if u.ID == userID {
			userExists = true
			break
		}
	}
	if !userExists {
		return booking.Booking{}, fmt.Errorf("%w: user=%d", ErrNotFound, userID)
	}

	record, err := s.store.AddBooking(ctx, store.NewBookingInput{
		MatchID:     matchID,
		UserID:      userID,
		Tickets:     tickets,
		TotalAmount: tickets * price,
	})
	if err != nil {
		return booking.Booking{}, fmt.Errorf("add booking: %w", err)
	}
	return record, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID int) ([]booking.Booking, error) {
	ctx, span := startUsecaseSpan(ctx, "BookingService.ListByUser")
	defer span.End()

	bookings, err := s.store.BookingsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) List(ctx context.Context) ([]booking.Booking, error) {
	ctx, span := startUsecaseSpan(ctx, "BookingService.List")
	defer span.End()

	bookings, err := s.store.Bookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}
