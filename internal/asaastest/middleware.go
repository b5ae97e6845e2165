package asaastest

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/go-asaas/internal/platform/logging"
)

const headerRequestID = "X-Request-ID"

// recovery turns handler panics into a 500 with an Asaas error payload.
func recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					slog.Any("error", r),
					slog.String("stack", string(debug.Stack())),
					slog.String("path", c.Request.URL.Path),
				)

				if !c.Writer.Written() {
					c.AbortWithStatusJSON(http.StatusInternalServerError,
						NewErrorResponse("internal_error", "Erro interno."))
				} else {
					c.Abort()
				}
			}
		}()

		c.Next()
	}
}

// requestID echoes or generates X-Request-ID and tags the context logger with
// it and with the server span started by the telemetry middleware.
func requestID(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.New().String()
		}

		c.Header(headerRequestID, id)

		ctx := logging.WithRequestID(logging.WithContext(c.Request.Context(), logger), id)
		ctx = logging.WithSpan(ctx)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// requireAccessToken rejects calls without the expected access_token header,
// like Asaas does.
func requireAccessToken(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}

		if c.GetHeader("access_token") != key {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				NewErrorResponse("invalid_access_token", "A chave de API fornecida é inválida."))
			return
		}

		c.Next()
	}
}

// requestLog logs each request at debug.
func requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logging.FromContext(c.Request.Context()).Debug("fake asaas request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("query", c.Request.URL.RawQuery),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}
