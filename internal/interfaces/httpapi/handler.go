package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/fanconnect/portal/internal/platform/logging"
	"github.com/fanconnect/portal/internal/usecase"
)

type Handler struct {
	authService      *usecase.AuthService
	sportService     *usecase.SportService
	teamService      *usecase.TeamService
	playerService    *usecase.PlayerService
	matchService     *usecase.MatchService
	bookingService   *usecase.BookingService
	standingsService *usecase.StandingsService
	adminService     *usecase.AdminService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	authService *usecase.AuthService,
	sportService *usecase.SportService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	bookingService *usecase.BookingService,
	standingsService *usecase.StandingsService,
	adminService *usecase.AdminService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		authService:      authService,
		sportService:     sportService,
		teamService:      teamService,
		playerService:    playerService,
		matchService:     matchService,
		bookingService:   bookingService,
		standingsService: standingsService,
		adminService:     adminService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeRequest parses the JSON body into payload and runs struct-tag
// validation on it.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, payload any) error {
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(payload); err != nil {
		return fmt.Errorf("%w: malformed request body: %v", usecase.ErrInvalidInput, err)
	}
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// pathID parses an integer path parameter.
func pathID(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}
