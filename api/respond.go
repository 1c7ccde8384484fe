package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/shadowreader/errors"
)

// respondError writes an error as a structured JSON response. Unknown
// errors are wrapped as internal so callers never see raw Go errors.
func respondError(c *gin.Context, err error) {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		appErr = errors.Internal(err)
	}
	status := appErr.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.JSON(status, appErr.ToResponse())
}
