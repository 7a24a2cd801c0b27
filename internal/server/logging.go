package server

import (
	"io"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// NewLogger returns a text logger on w. A nil writer discards output.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// RequestLogger writes one line per request. Server errors log at error
// level, client errors at warn.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.Last().Error())
		}

		ctx := c.Request.Context()
		switch {
		case status >= 500:
			logger.ErrorContext(ctx, "http_request", attrs...)
		case status >= 400:
			logger.WarnContext(ctx, "http_request", attrs...)
		default:
			logger.InfoContext(ctx, "http_request", attrs...)
		}
	}
}
