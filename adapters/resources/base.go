package resources

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/jsamuelsen/go-asaas/domain"
	"github.com/jsamuelsen/go-asaas/internal/platform/logging"
	"github.com/jsamuelsen/go-asaas/ports"
)

// Config wires a resource to its transport.
type Config struct {
	// Adapter performs the HTTP calls. Required.
	Adapter ports.Adapter

	// Endpoint is the API root, e.g. "https://sandbox.asaas.com/api/v3". Required.
	Endpoint string

	// Logger is the structured logger. Defaults to slog.Default().
	Logger *slog.Logger

	// Metrics is told about every finished operation. Optional.
	Metrics ports.OperationObserver
}

// base holds what every resource shares: where to send calls and how to
// observe them.
type base struct {
	adapter  ports.Adapter
	endpoint string
	resource string
	logger   *slog.Logger
	metrics  ports.OperationObserver
}

// orEmpty keeps a nil payload from being encoded as JSON null.
func orEmpty(p domain.Params) domain.Params {
	if p == nil {
		return domain.Params{}
	}

	return p
}

func newBase(cfg Config, resource string) base {
	if cfg.Adapter == nil {
		panic("resources: Adapter is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return base{
		adapter:  cfg.Adapter,
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		resource: resource,
		logger:   logger.With(slog.String("resource", resource)),
		metrics:  cfg.Metrics,
	}
}

// url joins the endpoint, the resource path and escaped path segments.
func (b *base) url(segments ...string) string {
	var sb strings.Builder
	sb.WriteString(b.endpoint)
	sb.WriteString("/")
	sb.WriteString(b.resource)

	for _, s := range segments {
		sb.WriteString("/")
		sb.WriteString(url.PathEscape(s))
	}

	return sb.String()
}

// listURL is the collection URL with filters appended in insertion order.
func (b *base) listURL(filters domain.Filters) string {
	u := b.url()
	if q := filters.Encode(); q != "" {
		u += "?" + q
	}

	return u
}

func (b *base) observe(operation string, err error, elapsed time.Duration) {
	if b.metrics != nil {
		b.metrics.Observe(b.resource, operation, err, elapsed)
	}
}

// reject records and returns an error raised before any network call.
func (b *base) reject(operation string, err error) error {
	b.observe(operation, err, 0)
	return err
}

// requireID rejects empty identifiers.
func (b *base) requireID(operation, field, id string) error {
	if strings.TrimSpace(id) == "" {
		return b.reject(operation, domain.NewInvalidArgumentError(field, "is required"))
	}

	return nil
}

// invoke performs one transport call and maps its outcome. Transport errors
// go through Dispatch; successful bodies go through decode, whose failures
// become *domain.DecodeError. Every outcome is logged and recorded.
func invoke[T any](
	ctx context.Context,
	b *base,
	operation, id string,
	call func(ctx context.Context) ([]byte, error),
	decode func(body []byte) (T, error),
) (T, error) {
	var zero T
	start := time.Now()

	logger := b.logger.With(slog.String("operation", operation))
	if id != "" {
		logger = logger.With(slog.String("id", id))
	}

	logger.Log(ctx, logging.LevelTrace, "starting operation")

	body, err := call(ctx)
	if err != nil {
		err = Dispatch(err, b.resource, operation, id)
		b.observe(operation, err, time.Since(start))
		logger.DebugContext(ctx, "operation failed", slog.Any("error", err))
		return zero, err
	}

	result, err := decode(body)
	if err != nil {
		err = domain.NewDecodeError(b.resource, operation, err)
		b.observe(operation, err, time.Since(start))
		logger.WarnContext(ctx, "undecodable response", slog.Any("error", err))
		return zero, err
	}

	b.observe(operation, nil, time.Since(start))
	logger.Log(ctx, logging.LevelTrace, "operation complete", slog.Duration("duration", time.Since(start)))

	return result, nil
}

// decodeOne builds a decode func for a single-entity response.
func decodeOne[D any, T any](translate func(*D) *T) func([]byte) (*T, error) {
	return func(body []byte) (*T, error) {
		var dto D
		if err := sonic.ConfigStd.Unmarshal(body, &dto); err != nil {
			return nil, err
		}

		return translate(&dto), nil
	}
}

// listEnvelope is the Asaas list response wrapper.
type listEnvelope[D any] struct {
	Object     string `json:"object"`
	HasMore    bool   `json:"hasMore"`
	TotalCount int    `json:"totalCount"`
	Limit      int    `json:"limit"`
	Offset     int    `json:"offset"`
	Data       []D    `json:"data"`
}

// decodeList builds a decode func for a list response. Items keep server order.
func decodeList[D any, T any](translate func(*D) *T) func([]byte) (*domain.Page[T], error) {
	return func(body []byte) (*domain.Page[T], error) {
		var env listEnvelope[D]
		if err := sonic.ConfigStd.Unmarshal(body, &env); err != nil {
			return nil, err
		}

		page := &domain.Page[T]{
			Items: make([]T, 0, len(env.Data)),
			Meta: domain.ListMeta{
				TotalCount: env.TotalCount,
				Limit:      env.Limit,
				Offset:     env.Offset,
				HasMore:    env.HasMore,
			},
		}
		for i := range env.Data {
			page.Items = append(page.Items, *translate(&env.Data[i]))
		}

		return page, nil
	}
}

// deletedResponse is the Asaas answer to DELETE.
type deletedResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// decodeDeleted accepts any body; Asaas answers {"deleted":true,"id":...}
// but an empty body is also treated as success.
func decodeDeleted(body []byte) (struct{}, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return struct{}{}, nil
	}

	var resp deletedResponse
	return struct{}{}, sonic.ConfigStd.Unmarshal(body, &resp)
}
