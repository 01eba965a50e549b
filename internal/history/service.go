package history

import (
	"context"
	"errors"

	"github.com/gabapcia/snip20history/internal/pkg/resilience/retry"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// instrumentationName names the tracer and meter used by this package.
const instrumentationName = "github.com/gabapcia/snip20history/internal/history"

// Service defines the history retrieval entrypoint.
type Service interface {
	// Fetch returns the complete, ordered transaction history of the token at
	// contractAddress for the wallet's account.
	//
	// Progress and failures are reported through the configured Notifier.
	// Returns an error (and no partial results) if any step fails; in
	// particular ErrInvalidContractAddress, ErrCodeHashUnavailable,
	// ErrTokenSuggested and ErrTokenInfoUnavailable.
	Fetch(ctx context.Context, contractAddress string) (History, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	chainID string
	wallet  Wallet
	query   QueryClient

	tokenInfoCache TokenInfoCache
	notifier       Notifier
	retry          retry.Retry
	pageSize       uint32

	pagesFetched metric.Int64Counter
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// config holds the optional dependencies of the service.
type config struct {
	tokenInfoCache TokenInfoCache
	notifier       Notifier
	retry          retry.Retry
	pageSize       uint32
}

// Option configures the service.
type Option func(*config)

// New creates a history service reading from chainID through the given wallet
// and query client.
//
// Defaults: in-memory token info cache, notifications sent to the logger,
// no retries, pages of DefaultPageSize records.
func New(chainID string, w Wallet, q QueryClient, opts ...Option) *service {
	cfg := config{
		tokenInfoCache: NewMemoryTokenInfoCache(),
		notifier:       NotifierFunc(logNotifier),
		retry:          nil,
		pageSize:       DefaultPageSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	pagesFetched, err := otel.Meter(instrumentationName).Int64Counter(
		"history.pages.fetched",
		metric.WithDescription("Number of history pages read from the query client."),
	)
	if err != nil {
		pagesFetched = noop.Int64Counter{}
	}

	return &service{
		chainID:        chainID,
		wallet:         w,
		query:          q,
		tokenInfoCache: cfg.tokenInfoCache,
		notifier:       cfg.notifier,
		retry:          cfg.retry,
		pageSize:       cfg.pageSize,
		pagesFetched:   pagesFetched,
	}
}

// WithTokenInfoCache replaces the in-memory token info cache.
func WithTokenInfoCache(c TokenInfoCache) Option {
	return func(cfg *config) {
		cfg.tokenInfoCache = c
	}
}

// WithNotifier sets the receiver of user-visible notifications.
func WithNotifier(n Notifier) Option {
	return func(cfg *config) {
		cfg.notifier = n
	}
}

// WithRetry retries every query call with r. Build r with
// retry.WithRetryIf(Retryable) so that deterministic failures are not retried.
func WithRetry(r retry.Retry) Option {
	return func(cfg *config) {
		cfg.retry = r
	}
}

// WithPageSize sets the number of records requested per page. Zero is ignored.
func WithPageSize(n uint32) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.pageSize = n
		}
	}
}

// Retryable reports whether a query error may succeed on another attempt.
func Retryable(err error) bool {
	switch {
	case errors.Is(err, ErrHistoryUnavailable),
		errors.Is(err, ErrViewingKeyRejected),
		errors.Is(err, ErrMalformedResponse),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	default:
		return true
	}
}

// do runs op, through the retry policy when one is configured.
func (s *service) do(ctx context.Context, op func() error) error {
	if s.retry == nil {
		return op()
	}

	return s.retry.Execute(ctx, op)
}

// notify sends a notification to the configured Notifier.
func (s *service) notify(ctx context.Context, level Level, msg string) {
	s.notifier.Notify(ctx, Notification{Level: level, Message: msg})
}
