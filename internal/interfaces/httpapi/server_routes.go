package httpapi

import (
	"net/http"

	"github.com/fanconnect/portal/internal/domain/user"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/auth/register", handler.Register)
	mux.HandleFunc("POST /v1/auth/login", handler.Login)
	mux.HandleFunc("POST /v1/auth/logout", handler.Logout)
	mux.HandleFunc("GET /v1/auth/session", handler.Session)

	mux.HandleFunc("GET /v1/sports", handler.ListSports)
	mux.HandleFunc("GET /v1/sports/{sportID}", handler.GetSport)
	mux.HandleFunc("GET /v1/sports/{sportID}/teams", handler.ListTeamsBySport)
	mux.HandleFunc("GET /v1/sports/{sportID}/matches", handler.ListMatchesBySport)
	mux.HandleFunc("GET /v1/sports/{sportID}/standings", handler.ListStandingsBySport)

	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/players", handler.ListPlayersByTeam)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)

	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/upcoming", handler.ListUpcomingMatches)
	mux.HandleFunc("GET /v1/matches/completed", handler.ListCompletedMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
}

func registerSessionRoutes(mux *http.ServeMux, handler *Handler, sessions SessionResolver) {
	mux.Handle("POST /v1/bookings", RequireSession(sessions, http.HandlerFunc(handler.BookTickets)))
	mux.Handle("GET /v1/bookings/me", RequireSession(sessions, http.HandlerFunc(handler.ListMyBookings)))
}

func registerManagementRoutes(mux *http.ServeMux, handler *Handler, sessions SessionResolver) {
	manage := func(next http.HandlerFunc) http.Handler {
		return RequireRole(sessions, next, user.RoleAdmin, user.RoleManager)
	}

	mux.Handle("POST /v1/teams", manage(handler.AddTeam))
	mux.Handle("DELETE /v1/teams/{teamID}", manage(handler.DeleteTeam))
	mux.Handle("POST /v1/players", manage(handler.AddPlayer))
	mux.Handle("DELETE /v1/players/{playerID}", manage(handler.DeletePlayer))
	mux.Handle("POST /v1/matches", manage(handler.ScheduleMatch))
	mux.Handle("POST /v1/matches/{matchID}/complete", manage(handler.CompleteMatch))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, sessions SessionResolver) {
	admin := func(next http.HandlerFunc) http.Handler {
		return RequireRole(sessions, next, user.RoleAdmin)
	}

	mux.Handle("POST /v1/admin/initialize", admin(handler.InitializeData))
	mux.Handle("GET /v1/admin/statistics", admin(handler.GetStatistics))
	mux.Handle("GET /v1/admin/export", admin(handler.ExportData))
	mux.Handle("POST /v1/admin/import", admin(handler.ImportData))
	mux.Handle("POST /v1/admin/clear", admin(handler.ClearData))
	mux.Handle("GET /v1/admin/bookings", admin(handler.ListBookings))
}
