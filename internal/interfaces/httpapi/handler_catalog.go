package httpapi

import (
	"net/http"

	"github.com/fanconnect/portal/internal/usecase"
)

func (h *Handler) ListSports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSports")
	defer span.End()

	sports, err := h.sportService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list sports failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sports)
}

func (h *Handler) GetSport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSport")
	defer span.End()

	sportID, err := pathID(r, "sportID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	record, err := h.sportService.Get(ctx, sportID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, record)
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teams)
}

func (h *Handler) ListTeamsBySport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsBySport")
	defer span.End()

	sportID, err := pathID(r, "sportID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.teamService.ListBySport(ctx, sportID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams by sport failed", "sport_id", sportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teams)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	record, err := h.teamService.Get(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, record)
}

type addTeamRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	SportID int    `json:"sportId" validate:"required,gt=0"`
}

func (h *Handler) AddTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddTeam")
	defer span.End()

	var req addTeamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	record, err := h.teamService.Add(ctx, req.Name, req.SportID)
	if err != nil {
		h.logger.WarnContext(ctx, "add team failed", "name", req.Name, "sport_id", req.SportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, record)
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.teamService.Delete(ctx, teamID); err != nil {
		h.logger.WarnContext(ctx, "delete team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"deleted": teamID})
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.playerService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, players)
}

func (h *Handler) ListPlayersByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByTeam")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.playerService.ListByTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list players by team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, players)
}

type addPlayerRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	TeamID      int    `json:"teamId" validate:"required,gt=0"`
	Position    string `json:"position" validate:"required,max=50"`
	Age         int    `json:"age" validate:"required,gte=15,lte=60"`
	Nationality string `json:"nationality" validate:"omitempty,max=60"`
}

func (h *Handler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPlayer")
	defer span.End()

	var req addPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	record, err := h.playerService.Add(ctx, usecase.AddPlayerInput{
		Name:        req.Name,
		TeamID:      req.TeamID,
		Position:    req.Position,
		Age:         req.Age,
		Nationality: req.Nationality,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add player failed", "name", req.Name, "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, record)
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.playerService.Delete(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"deleted": playerID})
}
