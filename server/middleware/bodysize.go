package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/shadowreader/errors"
)

// ParseSize parses a human-readable size like "10MB" or "512KB" into
// bytes. A bare number is taken as bytes.
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	multiplier := int64(1)
	switch {
	case strings.HasSuffix(s, "GB"):
		multiplier = 1 << 30
		s = strings.TrimSuffix(s, "GB")
	case strings.HasSuffix(s, "MB"):
		multiplier = 1 << 20
		s = strings.TrimSuffix(s, "MB")
	case strings.HasSuffix(s, "KB"):
		multiplier = 1 << 10
		s = strings.TrimSuffix(s, "KB")
	case strings.HasSuffix(s, "B"):
		s = strings.TrimSuffix(s, "B")
	}

	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	return n * multiplier, nil
}

// BodySizeLimit returns middleware that rejects request bodies larger
// than the given size. Oversized reads surface as 413 when the handler
// reads the body.
func BodySizeLimit(size string) gin.HandlerFunc {
	limit, err := ParseSize(size)
	if err != nil {
		// Misconfiguration; fall back to a generous limit rather than
		// refuse to start.
		limit = 50 << 20
	}
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			appErr := errors.Validation(fmt.Sprintf("request body exceeds %s", size))
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, appErr.ToResponse())
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
