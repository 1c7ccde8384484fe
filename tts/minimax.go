package tts

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/kbukum/shadowreader/errors"
	"github.com/kbukum/shadowreader/httpx"
	"github.com/kbukum/shadowreader/logger"
)

const (
	// DefaultMiniMaxBaseURL is the MiniMax API endpoint.
	DefaultMiniMaxBaseURL = "https://api.minimax.io"
	// DefaultMiniMaxModel is the speech model used when none is requested.
	DefaultMiniMaxModel = "speech-02-hd"

	synthesizePath = "/v1/t2a_v2"
)

// MiniMaxConfig configures the MiniMax synthesizer.
type MiniMaxConfig struct {
	// APIKey authenticates against the MiniMax API.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
	// BaseURL overrides the API endpoint. Defaults to the public endpoint.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// Model is the default speech model.
	Model string `yaml:"model" mapstructure:"model"`
	// Timeout bounds a single synthesis call.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *MiniMaxConfig) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultMiniMaxBaseURL
	}
	if c.Model == "" {
		c.Model = DefaultMiniMaxModel
	}
	if c.Timeout <= 0 {
		c.Timeout = 60 * time.Second
	}
}

// MiniMax synthesizes speech through the MiniMax t2a_v2 API.
type MiniMax struct {
	config MiniMaxConfig
	client *httpx.Client
	log    *logger.Logger
}

// NewMiniMax creates a MiniMax synthesizer.
func NewMiniMax(cfg MiniMaxConfig, log *logger.Logger) *MiniMax {
	cfg.ApplyDefaults()
	if log == nil {
		log = logger.NewDefault("shadowreader")
	}
	retry := httpx.DefaultRetryConfig()
	client := httpx.New(httpx.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Headers: map[string]string{
			"Authorization": "Bearer " + cfg.APIKey,
			"Content-Type":  "application/json",
		},
		Retry: &retry,
	})
	return &MiniMax{
		config: cfg,
		client: client,
		log:    log.WithComponent("tts.minimax"),
	}
}

// Name returns the provider name.
func (m *MiniMax) Name() string { return "minimax" }

// IsAvailable reports whether an API key is configured.
func (m *MiniMax) IsAvailable() bool { return m.config.APIKey != "" }

// minimaxResponse is the t2a_v2 response envelope. Audio arrives as a
// hex-encoded string.
type minimaxResponse struct {
	Data struct {
		Audio string `json:"audio"`
	} `json:"data"`
	ExtraInfo struct {
		AudioLength     int `json:"audio_length"`
		AudioSampleRate int `json:"audio_sample_rate"`
		AudioSize       int `json:"audio_size"`
	} `json:"extra_info"`
	BaseResp struct {
		StatusCode int    `json:"status_code"`
		StatusMsg  string `json:"status_msg"`
	} `json:"base_resp"`
}

// Synthesize generates audio for the request. The backend reports errors
// in-band through base_resp even on HTTP 200, so both paths are checked.
func (m *MiniMax) Synthesize(ctx context.Context, req Request) (*Result, error) {
	if !m.IsAvailable() {
		return nil, errors.New(errors.ErrCodeServiceUnavailable,
			"Speech synthesis is not configured.", http.StatusServiceUnavailable)
	}
	if req.Text == "" {
		return nil, errors.MissingField("text")
	}
	if req.Model == "" {
		req.Model = m.config.Model
	}

	start := time.Now()
	resp, err := m.client.PostJSON(ctx, synthesizePath, req)
	if err != nil {
		m.log.Error("synthesis request failed", logger.ErrorFields("synthesize", err))
		return nil, errors.ExternalServiceError("minimax", err)
	}
	if !resp.IsSuccess() {
		m.log.Error("synthesis returned non-success status", logger.Fields(
			"status", resp.StatusCode,
		))
		return nil, errors.ExternalServiceError("minimax",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body minimaxResponse
	if err := resp.DecodeJSON(&body); err != nil {
		return nil, errors.ExternalServiceError("minimax", err)
	}
	if body.BaseResp.StatusCode != 0 {
		m.log.Warn("synthesis rejected by backend", logger.Fields(
			"status_code", body.BaseResp.StatusCode,
			"status_msg", body.BaseResp.StatusMsg,
		))
		return nil, errors.GenerationFailed(body.BaseResp.StatusMsg)
	}
	if body.Data.Audio == "" {
		return nil, errors.GenerationFailed("no audio returned")
	}

	audio, err := hex.DecodeString(body.Data.Audio)
	if err != nil {
		return nil, errors.ExternalServiceError("minimax",
			fmt.Errorf("decode audio payload: %w", err))
	}

	m.log.Info("synthesized audio", logger.Fields(
		"voice_id", req.VoiceSetting.VoiceID,
		"model", req.Model,
		"text_len", len([]rune(req.Text)),
		"audio_bytes", len(audio),
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))

	return &Result{Audio: audio, Format: req.AudioSetting.Format}, nil
}
