package translate

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kbukum/shadowreader/errors"
	"github.com/kbukum/shadowreader/httpx"
	"github.com/kbukum/shadowreader/logger"
)

const (
	// DefaultGLMBaseURL is the Zhipu open platform endpoint.
	DefaultGLMBaseURL = "https://open.bigmodel.cn/api/paas/v4"
	// DefaultGLMModel is the chat model used for translation.
	DefaultGLMModel = "glm-4-flash"

	completionsPath = "/chat/completions"
)

// languageNames maps short language codes to the names used in the
// translation prompt. Unknown codes fall back to Chinese.
var languageNames = map[string]string{
	"zh": "Chinese",
	"ja": "Japanese",
	"ko": "Korean",
}

// GLMConfig configures the GLM translator.
type GLMConfig struct {
	// APIKey authenticates against the Zhipu API.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
	// BaseURL overrides the API endpoint.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// Model is the chat model name.
	Model string `yaml:"model" mapstructure:"model"`
	// Timeout bounds a single translation call.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *GLMConfig) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultGLMBaseURL
	}
	if c.Model == "" {
		c.Model = DefaultGLMModel
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
}

// GLM translates text through the Zhipu chat-completions API.
type GLM struct {
	config GLMConfig
	client *httpx.Client
	log    *logger.Logger
}

// NewGLM creates a GLM translator.
func NewGLM(cfg GLMConfig, log *logger.Logger) *GLM {
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
	return &GLM{
		config: cfg,
		client: client,
		log:    log.WithComponent("translate.glm"),
	}
}

// Name returns the provider name.
func (g *GLM) Name() string { return "glm" }

// IsAvailable reports whether an API key is configured.
func (g *GLM) IsAvailable() bool { return g.config.APIKey != "" }

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Translate returns text rendered in the target language.
func (g *GLM) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if !g.IsAvailable() {
		return "", errors.New(errors.ErrCodeServiceUnavailable,
			"Translation is not configured.", http.StatusServiceUnavailable)
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.MissingField("text")
	}

	lang, ok := languageNames[targetLang]
	if !ok {
		lang = languageNames["zh"]
	}

	prompt := fmt.Sprintf(
		"Translate the following text to %s. Return ONLY the translation, nothing else.\n\n%s",
		lang, text)

	resp, err := g.client.PostJSON(ctx, completionsPath, chatRequest{
		Model:     g.config.Model,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens: 1024,
	})
	if err != nil {
		g.log.Error("translation request failed", logger.ErrorFields("translate", err))
		return "", errors.TranslationFailed(err)
	}
	if !resp.IsSuccess() {
		return "", errors.TranslationFailed(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body chatResponse
	if err := resp.DecodeJSON(&body); err != nil {
		return "", errors.TranslationFailed(err)
	}
	if body.Error != nil {
		return "", errors.TranslationFailed(fmt.Errorf("%s: %s", body.Error.Code, body.Error.Message))
	}
	if len(body.Choices) == 0 {
		return "", errors.TranslationFailed(fmt.Errorf("no choices returned"))
	}

	return strings.TrimSpace(body.Choices[0].Message.Content), nil
}
