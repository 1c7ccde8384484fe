package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/shadowreader/logger"
	"github.com/kbukum/shadowreader/observability"
	"github.com/kbukum/shadowreader/store"
	"github.com/kbukum/shadowreader/translate"
	"github.com/kbukum/shadowreader/tts"
)

// Handlers holds the API's collaborators.
type Handlers struct {
	log        *logger.Logger
	store      *store.Store
	synth      tts.Synthesizer
	cache      tts.Cache
	translator translate.Translator
	// metrics may be nil when observability is disabled.
	metrics *observability.Metrics
	version string
}

// Option customizes Handlers.
type Option func(*Handlers)

// WithMetrics attaches metric instruments.
func WithMetrics(m *observability.Metrics) Option {
	return func(h *Handlers) { h.metrics = m }
}

// WithVersion sets the version reported by /health.
func WithVersion(v string) Option {
	return func(h *Handlers) { h.version = v }
}

// New creates the API handlers.
func New(st *store.Store, synth tts.Synthesizer, cache tts.Cache, tr translate.Translator, log *logger.Logger, opts ...Option) *Handlers {
	if log == nil {
		log = logger.NewDefault("shadowreader")
	}
	h := &Handlers{
		log:        log.WithComponent("api"),
		store:      st,
		synth:      synth,
		cache:      cache,
		translator: tr,
		version:    "dev",
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts all routes on the engine.
func (h *Handlers) Register(r *gin.Engine) {
	r.GET("/health", h.health)

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/tts", h.synthesize)
		apiGroup.POST("/translate", h.translateText)
		apiGroup.POST("/segments", h.previewSegments)

		apiGroup.GET("/notes", h.listNotes)
		apiGroup.POST("/notes", h.saveNote)
		apiGroup.DELETE("/notes/:id", h.deleteNote)

		apiGroup.GET("/voices", h.listVoices)
		apiGroup.POST("/voices", h.saveVoice)
		apiGroup.DELETE("/voices/:id", h.deleteVoice)

		apiGroup.GET("/associations", h.listAssociations)
		apiGroup.POST("/associations", h.associate)

		apiGroup.GET("/settings", h.getSettings)
		apiGroup.POST("/settings", h.saveSettings)

		apiGroup.POST("/migrate", h.migrate)
	}
}

// health reports service status and provider availability.
func (h *Handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
		"providers": gin.H{
			"tts":       h.synth != nil && h.synth.IsAvailable(),
			"translate": h.translator != nil && h.translator.IsAvailable(),
		},
	})
}
