package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/shadowreader/errors"
	"github.com/kbukum/shadowreader/logger"
	"github.com/kbukum/shadowreader/observability"
	"github.com/kbukum/shadowreader/tts"
	"github.com/kbukum/shadowreader/validation"
)

// ttsRequest mirrors the synthesis backend's request body so clients can
// pass voice parameters straight through.
type ttsRequest struct {
	Model        string            `json:"model"`
	Text         string            `json:"text" validate:"required"`
	VoiceSetting tts.VoiceSetting  `json:"voice_setting"`
	VoiceModify  *tts.VoiceModify  `json:"voice_modify,omitempty"`
	AudioSetting *tts.AudioSetting `json:"audio_setting,omitempty"`
}

// synthesize generates audio for a text, serving repeats from the cache.
// The response is the raw audio; X-Cache reports HIT or MISS.
func (h *Handlers) synthesize(c *gin.Context) {
	var req ttsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidInput("", "request body must be valid JSON"))
		return
	}
	if err := validation.Validate(req); err != nil {
		respondError(c, err)
		return
	}

	v := validation.New()
	if req.VoiceSetting.Speed != 0 {
		v.RangeF("voice_setting.speed", req.VoiceSetting.Speed, 0.5, 2.0)
	}
	if req.VoiceSetting.Vol != 0 {
		v.RangeF("voice_setting.vol", req.VoiceSetting.Vol, 0.1, 10.0)
	}
	if appErr := v.Validate(); appErr != nil {
		respondError(c, appErr)
		return
	}

	synthReq := tts.Request{
		Model:        req.Model,
		Text:         req.Text,
		VoiceSetting: req.VoiceSetting,
		VoiceModify:  req.VoiceModify,
		AudioSetting: tts.DefaultAudioSetting(),
	}
	if req.AudioSetting != nil {
		synthReq.AudioSetting = *req.AudioSetting
	}

	ctx, span := observability.StartSpan(c.Request.Context(), observability.SpanSynthesize)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrVoiceID, synthReq.VoiceSetting.VoiceID)
	observability.SetSpanAttribute(ctx, observability.AttrTextChars, len([]rune(synthReq.Text)))

	fingerprint := synthReq.Fingerprint()
	if h.cache != nil {
		if cached, ok := h.cache.Get(fingerprint); ok {
			observability.SetSpanAttribute(ctx, observability.AttrCacheHit, true)
			if h.metrics != nil {
				h.metrics.RecordCache(ctx, true)
			}
			h.log.Debug("serving cached audio", logger.Fields(
				logger.FieldVoiceID, synthReq.VoiceSetting.VoiceID,
			))
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, audioContentType(cached.Format), cached.Audio)
			return
		}
		if h.metrics != nil {
			h.metrics.RecordCache(ctx, false)
		}
	}

	start := time.Now()
	result, err := h.synth.Synthesize(ctx, synthReq)
	if h.metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		h.metrics.RecordSynthesis(ctx, h.synth.Name(), status, time.Since(start))
	}
	if err != nil {
		observability.SetSpanError(ctx, err)
		respondError(c, err)
		return
	}

	if h.cache != nil {
		h.cache.Put(fingerprint, result)
	}

	c.Header("X-Cache", "MISS")
	c.Data(http.StatusOK, audioContentType(result.Format), result.Audio)
}

func audioContentType(format string) string {
	switch format {
	case "wav":
		return "audio/wav"
	case "flac":
		return "audio/flac"
	default:
		return "audio/mpeg"
	}
}
