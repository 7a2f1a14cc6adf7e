package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fanconnect/portal/internal/config"
	"github.com/fanconnect/portal/internal/infrastructure/notify"
	"github.com/fanconnect/portal/internal/interfaces/httpapi"
	"github.com/fanconnect/portal/internal/platform/events"
	"github.com/fanconnect/portal/internal/platform/kvstore"
	"github.com/fanconnect/portal/internal/platform/logging"
	"github.com/fanconnect/portal/internal/store"
	"github.com/fanconnect/portal/internal/usecase"
)

// App bundles the wired server with the resources that need closing on
// shutdown.
type App struct {
	Server *http.Server
	Store  *store.Store
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	ns, err := newNamespace(cfg)
	if err != nil {
		return nil, fmt.Errorf("open store namespace: %w", err)
	}

	bus := events.NewBus(logger)
	opts := []store.Option{}
	if cfg.SeedValue != 0 {
		opts = append(opts, store.WithSeed(cfg.SeedValue))
	}
	st := store.New(ns, bus, logger, opts...)

	if cfg.WebhookEnabled {
		notifier, err := notify.NewWebhookNotifier(notify.WebhookConfig{
			URL:              cfg.WebhookURL,
			Token:            cfg.WebhookToken,
			Retries:          cfg.WebhookRetries,
			Timeout:          cfg.WebhookTimeout,
			FailureThreshold: cfg.WebhookCircuitFailures,
			OpenTimeout:      cfg.WebhookCircuitOpenDelay,
		}, logger)
		if err != nil {
			_ = st.Close()
			return nil, fmt.Errorf("build webhook notifier: %w", err)
		}
		notifier.Register(bus)
	}

	if cfg.SeedOnStart {
		seeded, err := st.Initialize(ctx)
		if err != nil {
			_ = st.Close()
			return nil, fmt.Errorf("seed on start: %w", err)
		}
		logger.InfoContext(ctx, "startup seeding done", "seeded", seeded)
	}

	handler := httpapi.NewHandler(
		usecase.NewAuthService(st),
		usecase.NewSportService(st),
		usecase.NewTeamService(st),
		usecase.NewPlayerService(st),
		usecase.NewMatchService(st),
		usecase.NewBookingService(st),
		usecase.NewStandingsService(st, bus),
		usecase.NewAdminService(st),
		logger,
	)
	router := httpapi.NewRouter(handler, st, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		_ = st.Close()
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, Store: st}, nil
}

func newNamespace(cfg config.Config) (kvstore.Namespace, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		return kvstore.NewMemory(), nil
	case config.StoreDriverFile:
		return kvstore.NewFile(cfg.StorePath)
	case config.StoreDriverPostgres:
		return kvstore.NewPostgres(cfg.DBURL)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
