package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/shadowreader/errors"
	"github.com/kbukum/shadowreader/observability"
	"github.com/kbukum/shadowreader/segment"
	"github.com/kbukum/shadowreader/validation"
)

type segmentsRequest struct {
	Text string `json:"text" validate:"required"`
	// Duration of the matching audio in seconds. Zero returns untimed
	// segments; timestamps are allocated once the duration is known.
	Duration float64 `json:"duration" validate:"omitempty,gte=0"`
}

type segmentsResponse struct {
	Segments []segment.Segment `json:"segments"`
	// Chars is the total character count timestamps were weighted by.
	Chars int `json:"chars"`
}

// previewSegments splits a text into display lines and, when a duration
// is supplied, allocates proportional timestamps.
func (h *Handlers) previewSegments(c *gin.Context) {
	var req segmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidInput("", "request body must be valid JSON"))
		return
	}
	if err := validation.Validate(req); err != nil {
		respondError(c, err)
		return
	}

	ctx, span := observability.StartSpan(c.Request.Context(), observability.SpanSegment)
	defer span.End()

	segs := segment.Split(req.Text)
	if req.Duration > 0 {
		segs = segment.Allocate(segs, req.Duration)
	}

	observability.SetSpanAttribute(ctx, observability.AttrSegments, len(segs))

	c.JSON(http.StatusOK, segmentsResponse{
		Segments: segs,
		Chars:    segment.TotalChars(segs),
	})
}
