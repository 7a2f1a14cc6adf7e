package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fanconnect/portal/internal/usecase"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	matches, err := h.matchService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matches)
}

func (h *Handler) ListMatchesBySport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchesBySport")
	defer span.End()

	sportID, err := pathID(r, "sportID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.matchService.ListBySport(ctx, sportID)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches by sport failed", "sport_id", sportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matches)
}

func (h *Handler) ListUpcomingMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUpcomingMatches")
	defer span.End()

	matches, err := h.matchService.Upcoming(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list upcoming matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matches)
}

func (h *Handler) ListCompletedMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompletedMatches")
	defer span.End()

	matches, err := h.matchService.Completed(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list completed matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matches)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	record, err := h.matchService.Get(ctx, matchID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, record)
}

type scheduleMatchRequest struct {
	Team1ID int    `json:"team1Id" validate:"required,gt=0"`
	Team2ID int    `json:"team2Id" validate:"required,gt=0"`
	Date    string `json:"date" validate:"required"`
	Venue   string `json:"venue" validate:"required,max=120"`
}

func (h *Handler) ScheduleMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScheduleMatch")
	defer span.End()

	var req scheduleMatchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: date must be RFC 3339: %v", usecase.ErrInvalidInput, err))
		return
	}

	record, err := h.matchService.Schedule(ctx, usecase.ScheduleInput{
		Team1ID: req.Team1ID,
		Team2ID: req.Team2ID,
		Date:    date,
		Venue:   req.Venue,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "schedule match failed", "team1_id", req.Team1ID, "team2_id", req.Team2ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, record)
}

type completeMatchRequest struct {
	Result     string `json:"result" validate:"required,max=120"`
	Score1     *int   `json:"score1" validate:"omitempty,gte=0"`
	Score2     *int   `json:"score2" validate:"omitempty,gte=0"`
	Attendance int    `json:"attendance" validate:"gte=0"`
}

func (h *Handler) CompleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompleteMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req completeMatchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	record, err := h.matchService.Complete(ctx, usecase.CompleteInput{
		MatchID:    matchID,
		Result:     req.Result,
		Score1:     req.Score1,
		Score2:     req.Score2,
		Attendance: req.Attendance,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "complete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, record)
}

func (h *Handler) ListStandingsBySport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandingsBySport")
	defer span.End()

	sportID, err := pathID(r, "sportID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.standingsService.Table(ctx, sportID)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "sport_id", sportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rows)
}
