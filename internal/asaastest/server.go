// Package asaastest provides an in-memory fake of the Asaas v3 API for tests.
//
// The fake speaks the same wire format as Asaas: list envelopes, the
// {"errors":[...]} payload, POST for updates and the access_token header.
// It keeps state per Server, so each test can start from a clean slate.
package asaastest

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/go-asaas/internal/platform/logging"
	"github.com/jsamuelsen/go-asaas/internal/platform/telemetry"
)

const (
	// BasePath is where the fake mounts the API, like the real service.
	BasePath = "/api/v3"

	// ServiceName names the fake's server spans.
	ServiceName = "asaas-fake"
)

// Options configures a Server.
type Options struct {
	// APIKey, when set, must be sent in the access_token header.
	APIKey string

	// Logger receives request logs. Defaults to a discarding logger.
	Logger *slog.Logger

	// Now is the fake's clock. Defaults to time.Now.
	Now func() time.Time
}

// Request is one call recorded by the fake.
type Request struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

type failure struct {
	status int
	body   *ErrorResponse
}

// Server is a running fake Asaas API.
type Server struct {
	mu        sync.Mutex
	engine    *gin.Engine
	httpSrv   *httptest.Server
	now       func() time.Time
	customers []*Customer
	payments  []*Payment
	requests  []Request
	failures  []failure
}

// NewServer starts a fake on a random local port. Call Close when done.
func NewServer(opts Options) *Server {
	s := newServer(opts)
	s.httpSrv = httptest.NewServer(s.engine)

	return s
}

func newServer(opts Options) *Server {
	gin.SetMode(gin.ReleaseMode)

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := &Server{
		engine: gin.New(),
		now:    now,
	}

	s.engine.Use(telemetry.Middleware(ServiceName)...)
	s.engine.Use(
		recovery(logger),
		requestID(logger),
		requestLog(),
		s.journal(),
		requireAccessToken(opts.APIKey),
		s.injectFailures(),
	)
	s.routes(s.engine.Group(BasePath))

	return s
}

func (s *Server) routes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	customers.GET("", s.listCustomers)
	customers.POST("", s.createCustomer)
	customers.GET("/:id", s.getCustomer)
	customers.POST("/:id", s.updateCustomer)
	customers.DELETE("/:id", s.deleteCustomer)
	customers.POST("/:id/restore", s.restoreCustomer)

	payments := rg.Group("/payments")
	payments.GET("", s.listPayments)
	payments.POST("", s.createPayment)
	payments.GET("/:id", s.getPayment)
	payments.POST("/:id", s.updatePayment)
	payments.DELETE("/:id", s.deletePayment)
	payments.POST("/:id/refund", s.refundPayment)
	payments.POST("/:id/restore", s.restorePayment)
	payments.POST("/:id/payWithCreditCard", s.payWithCreditCard)

	rg.POST("/creditCard/tokenize", s.tokenize)
}

// URL is the root URL of the fake.
func (s *Server) URL() string {
	return s.httpSrv.URL
}

// Endpoint is the API root to hand to clients.
func (s *Server) Endpoint() string {
	return s.httpSrv.URL + BasePath
}

// Handler exposes the router, for tests that drive it without a listener.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Close shuts the listener down.
func (s *Server) Close() {
	s.httpSrv.Close()
}

// Requests returns a copy of every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Request(nil), s.requests...)
}

// FailNext makes the next request answer status with body instead of being
// handled. Calls queue up.
func (s *Server) FailNext(status int, body *ErrorResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failures = append(s.failures, failure{status: status, body: body})
}

// AddCustomer stores c as is, filling ID and DateCreated when empty.
func (s *Server) AddCustomer(c Customer) Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = newID("cus_")
	}
	if c.DateCreated == "" {
		c.DateCreated = s.today()
	}
	c.Object = "customer"
	if c.Country == "" {
		c.Country = "Brasil"
	}

	s.customers = append(s.customers, &c)

	return c
}

// AddPayment stores p as is, filling ID, DateCreated and Status when empty.
func (s *Server) AddPayment(p Payment) Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = newID("pay_")
	}
	if p.DateCreated == "" {
		p.DateCreated = s.today()
	}
	if p.Status == "" {
		p.Status = "PENDING"
	}
	if p.OriginalDueDate == "" {
		p.OriginalDueDate = p.DueDate
	}
	p.Object = "payment"
	p.InvoiceURL = "https://sandbox.asaas.com/i/" + strings.TrimPrefix(p.ID, "pay_")

	s.payments = append(s.payments, &p)

	return p
}

// journal records the request and restores its body for the handler.
func (s *Server) journal() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body []byte
		if c.Request.Body != nil {
			body, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: c.Request.Method,
			Path:   strings.TrimPrefix(c.Request.URL.Path, BasePath),
			Query:  c.Request.URL.RawQuery,
			Header: c.Request.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()

		c.Next()
	}
}

func (s *Server) injectFailures() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		if len(s.failures) == 0 {
			s.mu.Unlock()
			c.Next()
			return
		}
		f := s.failures[0]
		s.failures = s.failures[1:]
		s.mu.Unlock()

		if f.body == nil {
			c.AbortWithStatus(f.status)
			return
		}
		c.AbortWithStatusJSON(f.status, f.body)
	}
}

// today is the fake's current date; callers hold s.mu or don't care.
func (s *Server) today() string {
	return s.now().Format(time.DateOnly)
}

func newID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "Recurso não encontrado."))
}

func badRequest(c *gin.Context, code, description string) {
	c.JSON(http.StatusBadRequest, NewErrorResponse(code, description))
}
