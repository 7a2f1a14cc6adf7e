package httpapi

import (
	"fmt"
	"net/http"

	"github.com/fanconnect/portal/internal/usecase"
)

type bookTicketsRequest struct {
	MatchID int `json:"matchId" validate:"required,gt=0"`
	Tickets int `json:"tickets" validate:"required,gte=1,lte=10"`
}

// BookTickets books tickets for the session user; the user id never comes
// from the request body.
func (h *Handler) BookTickets(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BookTickets")
	defer span.End()

	current, ok := sessionUserFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: login required", usecase.ErrUnauthorized))
		return
	}

	var req bookTicketsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	record, err := h.bookingService.Book(ctx, req.MatchID, current.ID, req.Tickets)
	if err != nil {
		h.logger.WarnContext(ctx, "book tickets failed", "match_id", req.MatchID, "user_id", current.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, record)
}

func (h *Handler) ListMyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyBookings")
	defer span.End()

	current, ok := sessionUserFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: login required", usecase.ErrUnauthorized))
		return
	}

	bookings, err := h.bookingService.ListByUser(ctx, current.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list my bookings failed", "user_id", current.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bookings)
}

func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBookings")
	defer span.End()

	bookings, err := h.bookingService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list bookings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bookings)
}
