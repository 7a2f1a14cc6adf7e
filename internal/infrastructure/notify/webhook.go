// Package notify forwards portal events to an external webhook endpoint.
package notify

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/fanconnect/portal/internal/platform/events"
	"github.com/fanconnect/portal/internal/platform/logging"
	"github.com/fanconnect/portal/internal/platform/resilience"
)

type WebhookConfig struct {
	URL              string
	Token            string
	Retries          int
	Timeout          time.Duration
	FailureThreshold int
	OpenTimeout      time.Duration
}

// WebhookNotifier POSTs each event as a JSON document. Delivery is
// best-effort: failures are logged and counted against the circuit
// breaker, never propagated back to the publisher.
type WebhookNotifier struct {
	client  *http.Client
	url     string
	token   string
	retries int
	logger  *logging.Logger
	breaker *resilience.CircuitBreaker
}

func NewWebhookNotifier(cfg WebhookConfig, logger *logging.Logger) (*WebhookNotifier, error) {
	target := strings.TrimSpace(cfg.URL)
	if err := validateWebhookURL(target); err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	retries := cfg.Retries
	if retries < 0 {
		retries = 0
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &WebhookNotifier{
		client:  &http.Client{Timeout: timeout},
		url:     target,
		token:   strings.TrimSpace(cfg.Token),
		retries: retries,
		logger:  logger,
		breaker: resilience.NewCircuitBreaker(cfg.FailureThreshold, cfg.OpenTimeout),
	}, nil
}

// Register subscribes the notifier to every event on the bus.
func (n *WebhookNotifier) Register(bus *events.Bus) {
	bus.SubscribeAll(func(ctx context.Context, event events.Event) {
		n.deliver(ctx, event)
	})
}

func (n *WebhookNotifier) deliver(ctx context.Context, event events.Event) {
	if err := n.breaker.Allow(); err != nil {
		n.logger.WarnContext(ctx, "webhook circuit breaker rejected event",
			"event", event.Name, "state", n.breaker.State())
		return
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	raw, err := sonic.Marshal(event)
	if err != nil {
		n.logger.ErrorContext(ctx, "marshal webhook payload failed", "event", event.Name, "error", err)
		return
	}
	_, _ = buf.Write(raw)

	var lastErr error
	for attempt := 0; attempt <= n.retries; attempt++ {
		if lastErr = n.post(ctx, buf.Bytes()); lastErr == nil {
			n.breaker.RecordSuccess()
			return
		}
		if ctx.Err() != nil {
			break
		}
	}

	n.breaker.RecordFailure()
	n.logger.WarnContext(ctx, "webhook delivery failed",
		"event", event.Name, "attempts", n.retries+1, "error", lastErr)
}

func (n *WebhookNotifier) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, strings.NewReader(string(body)))
	if err != nil {
		return crerr.Wrap(err, "create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")
	if n.token != "" {
		req.Header.Set("Authorization", "Bearer "+n.token)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return crerr.Wrap(err, "post webhook")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return crerr.Newf("webhook returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return nil
}

func validateWebhookURL(raw string) error {
	if raw == "" {
		return crerr.New("webhook url is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return crerr.Wrap(err, "parse webhook url")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return crerr.Newf("webhook url must be http or https, got %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return crerr.New("webhook url is missing a host")
	}
	return nil
}
