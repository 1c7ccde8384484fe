package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/shadowreader/errors"
	"github.com/kbukum/shadowreader/observability"
	"github.com/kbukum/shadowreader/translate"
	"github.com/kbukum/shadowreader/validation"
)

type translateRequest struct {
	Text       string `json:"text" validate:"required"`
	TargetLang string `json:"targetLang" validate:"omitempty,oneof=zh ja ko"`
	// Segments, when set, translates each line independently and returns
	// translations in the same order, falling back per line on failure.
	Segments []string `json:"segments,omitempty"`
}

type translateResponse struct {
	TranslatedText string   `json:"translatedText,omitempty"`
	Segments       []string `json:"segments,omitempty"`
}

// translateText translates a whole text or a list of segment lines.
func (h *Handlers) translateText(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidInput("", "request body must be valid JSON"))
		return
	}
	if len(req.Segments) == 0 {
		if err := validation.Validate(req); err != nil {
			respondError(c, err)
			return
		}
	}

	ctx, span := observability.StartSpan(c.Request.Context(), observability.SpanTranslate)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrTargetLang, req.TargetLang)

	if len(req.Segments) > 0 {
		translated := translate.Segments(ctx, h.translator, req.Segments, req.TargetLang, h.log)
		if h.metrics != nil {
			h.metrics.RecordTranslation(ctx, h.translator.Name(), "ok")
		}
		c.JSON(http.StatusOK, translateResponse{Segments: translated})
		return
	}

	text, err := h.translator.Translate(ctx, req.Text, req.TargetLang)
	if h.metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		h.metrics.RecordTranslation(ctx, h.translator.Name(), status)
	}
	if err != nil {
		observability.SetSpanError(ctx, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, translateResponse{TranslatedText: text})
}
