package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/fanconnect/portal/internal/platform/events"
	"github.com/fanconnect/portal/internal/platform/kvstore"
	"github.com/fanconnect/portal/internal/platform/logging"
	"github.com/fanconnect/portal/internal/store"
	"github.com/fanconnect/portal/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	bus := events.NewBus(logging.NewNop())
	st := store.New(kvstore.NewMemory(), bus, logging.NewNop(), store.WithSeed(1))
	t.Cleanup(func() { _ = st.Close() })

	handler := NewHandler(
		usecase.NewAuthService(st),
		usecase.NewSportService(st),
		usecase.NewTeamService(st),
		usecase.NewPlayerService(st),
		usecase.NewMatchService(st),
		usecase.NewBookingService(st),
		usecase.NewStandingsService(st, bus),
		usecase.NewAdminService(st),
		logging.NewNop(),
	)
	return NewRouter(handler, st, logging.NewNop(), []string{"*"})
}

func doJSON(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func dataOf(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v (body %s)", err, rec.Body.String())
	}
	return envelope.Data
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRouter_BookingFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/register",
		`{"username":"dana","password":"secret1","email":"dana@fanconnect.com","role":"manager"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (body %s)", rec.Code, rec.Body.String())
	}

	// Management routes reject anonymous requests.
	rec = doJSON(t, router, http.MethodPost, "/v1/teams", `{"name":"Mumbai Heroes","sportId":1}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 before login, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/v1/auth/login", `{"username":"dana","password":"secret1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (body %s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/v1/teams", `{"name":"Mumbai Heroes","sportId":1}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add team: expected 201, got %d (body %s)", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, router, http.MethodPost, "/v1/teams", `{"name":"Chennai Warriors","sportId":1}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add team: expected 201, got %d (body %s)", rec.Code, rec.Body.String())
	}

	date := time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)
	rec = doJSON(t, router, http.MethodPost, "/v1/matches",
		`{"team1Id":1,"team2Id":2,"date":"`+date+`","venue":"Wankhede Stadium"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("schedule match: expected 201, got %d (body %s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/v1/bookings", `{"matchId":1,"tickets":3}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("book: expected 201, got %d (body %s)", rec.Code, rec.Body.String())
	}
	data := dataOf(t, rec)
	if got, _ := data["totalAmount"].(float64); got != 1500 {
		t.Fatalf("expected totalAmount 1500, got %v", data["totalAmount"])
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/bookings/me", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("my bookings: expected 200, got %d", rec.Code)
	}
}

func TestRouter_AdminRoutesRequireAdminRole(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/register",
		`{"username":"erin","password":"secret1","email":"erin@fanconnect.com"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodPost, "/v1/auth/login", `{"username":"erin","password":"secret1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/v1/admin/initialize", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-admin, got %d", rec.Code)
	}
}

func TestRouter_AdminInitializeSeedsCatalog(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/register",
		`{"username":"root","password":"secret1","email":"root@fanconnect.com","role":"admin"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodPost, "/v1/auth/login", `{"username":"root","password":"secret1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/v1/admin/initialize", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("initialize: expected 200, got %d (body %s)", rec.Code, rec.Body.String())
	}
	if data := dataOf(t, rec); data["seeded"] != true {
		t.Fatalf("expected seeded=true, got %v", data["seeded"])
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/sports/1/standings", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("standings: expected 200, got %d (body %s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/v1/bookings", `{"matchId":1,"tickets":99}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for too many tickets, got %d", rec.Code)
	}
}

func TestRouter_MalformedBodyRejected(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/register", `{"username":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}
}
