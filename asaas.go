package asaas

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jsamuelsen/go-asaas/adapters/resources"
	"github.com/jsamuelsen/go-asaas/adapters/transport"
	"github.com/jsamuelsen/go-asaas/domain"
	"github.com/jsamuelsen/go-asaas/ports"
)

var (
	// ErrUnknownEnvironment is returned for environments other than sandbox and production.
	ErrUnknownEnvironment = errors.New("unknown environment")

	// ErrNilAdapter is returned by New when no adapter is given.
	ErrNilAdapter = errors.New("adapter is required")
)

// Options tunes a Client. The zero value is valid.
type Options struct {
	// Endpoint overrides the environment's API root, e.g. for a local fake.
	Endpoint string

	// Logger is the structured logger. Defaults to slog.Default().
	Logger *slog.Logger

	// Metrics is told about every resource operation, e.g. a
	// Prometheus recorder.
	Metrics ports.OperationObserver
}

// Client is the entry point to the Asaas resources.
type Client struct {
	env      Environment
	endpoint string

	customers   *resources.CustomerResource
	payments    *resources.PaymentResource
	creditCards *resources.CreditCardResource
}

var _ ports.HealthChecker = (*Client)(nil)

// New creates a Client that sends every request through adapter.
func New(adapter ports.Adapter, env Environment, opts *Options) (*Client, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	if !env.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnvironment, env)
	}

	if opts == nil {
		opts = &Options{}
	}

	endpoint := env.Endpoint()
	if opts.Endpoint != "" {
		endpoint = strings.TrimSuffix(opts.Endpoint, "/")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("environment", env.String()))

	cfg := resources.Config{
		Adapter:  adapter,
		Endpoint: endpoint,
		Logger:   logger,
		Metrics:  opts.Metrics,
	}
	payments := resources.NewPaymentResource(cfg)

	return &Client{
		env:         env,
		endpoint:    endpoint,
		customers:   resources.NewCustomerResource(cfg, payments),
		payments:    payments,
		creditCards: resources.NewCreditCardResource(cfg),
	}, nil
}

// HTTPConfig configures NewHTTP.
type HTTPConfig struct {
	Environment Environment
	APIKey      string
	Endpoint    string
	Timeout     time.Duration
	UserAgent   string
	Logger      *slog.Logger
	Metrics     ports.OperationObserver
}

// NewHTTP creates a Client backed by the instrumented HTTP transport.
func NewHTTP(cfg HTTPConfig) (*Client, error) {
	adapter, err := transport.New(&transport.Config{
		APIKey:      cfg.APIKey,
		ServiceName: "asaas-" + cfg.Environment.String(),
		Timeout:     cfg.Timeout,
		UserAgent:   cfg.UserAgent,
		Logger:      cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating transport: %w", err)
	}

	return New(adapter, cfg.Environment, &Options{
		Endpoint: cfg.Endpoint,
		Logger:   cfg.Logger,
		Metrics:  cfg.Metrics,
	})
}

// Customer returns the /customers resource.
func (c *Client) Customer() *resources.CustomerResource {
	return c.customers
}

// Payment returns the /payments resource.
func (c *Client) Payment() *resources.PaymentResource {
	return c.payments
}

// CreditCard returns the /creditCard resource.
func (c *Client) CreditCard() *resources.CreditCardResource {
	return c.creditCards
}

// Environment returns the environment the client was built for.
func (c *Client) Environment() Environment {
	return c.env
}

// Endpoint returns the API root requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Name implements ports.HealthChecker.
func (c *Client) Name() string {
	return "asaas-" + c.env.String()
}

// Check implements ports.HealthChecker by listing a single customer, which
// exercises connectivity and the API key.
func (c *Client) Check(ctx context.Context) error {
	_, err := c.customers.GetAll(ctx, domain.Filters{}.WithPage(0, 1))
	return err
}
