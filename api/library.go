package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/shadowreader/errors"
	"github.com/kbukum/shadowreader/logger"
	"github.com/kbukum/shadowreader/store"
	"github.com/kbukum/shadowreader/validation"
)

// --- Notes ---

func (h *Handlers) listNotes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notes": h.store.Notes()})
}

func (h *Handlers) saveNote(c *gin.Context) {
	var note store.Note
	if err := c.ShouldBindJSON(&note); err != nil {
		respondError(c, errors.InvalidInput("", "request body must be valid JSON"))
		return
	}
	if appErr := validation.New().Required("rawContent", note.RawContent).Validate(); appErr != nil {
		respondError(c, appErr)
		return
	}

	saved, err := h.store.SaveNote(note)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"note": saved})
}

func (h *Handlers) deleteNote(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeleteNote(id); err != nil {
		respondError(c, err)
		return
	}
	h.log.Info("deleted note", logger.Fields(logger.FieldNoteID, id))
	c.Status(http.StatusNoContent)
}

// --- Voices ---

func (h *Handlers) listVoices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"voices": h.store.Voices()})
}

func (h *Handlers) saveVoice(c *gin.Context) {
	var voice store.Voice
	if err := c.ShouldBindJSON(&voice); err != nil {
		respondError(c, errors.InvalidInput("", "request body must be valid JSON"))
		return
	}
	v := validation.New().
		Required("audioUrl", voice.AudioURL).
		Custom(voice.Duration >= 0, "duration", "must be non-negative")
	if appErr := v.Validate(); appErr != nil {
		respondError(c, appErr)
		return
	}

	saved, err := h.store.SaveVoice(voice)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"voice": saved})
}

func (h *Handlers) deleteVoice(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeleteVoice(id); err != nil {
		respondError(c, err)
		return
	}
	h.log.Info("deleted voice", logger.Fields(logger.FieldVoiceID, id))
	c.Status(http.StatusNoContent)
}

// --- Associations ---

func (h *Handlers) listAssociations(c *gin.Context) {
	if key := c.Query("key"); key != "" {
		c.JSON(http.StatusOK, gin.H{"voiceIds": h.store.AssociationsFor(key)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"associations": h.store.AllAssociations()})
}

type associateRequest struct {
	Key     string `json:"key" validate:"required"`
	VoiceID string `json:"voiceId" validate:"required"`
}

func (h *Handlers) associate(c *gin.Context) {
	var req associateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidInput("", "request body must be valid JSON"))
		return
	}
	if err := validation.Validate(req); err != nil {
		respondError(c, err)
		return
	}

	if err := h.store.Associate(req.Key, req.VoiceID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"voiceIds": h.store.AssociationsFor(req.Key)})
}

// --- Settings ---

func (h *Handlers) getSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"settings": h.store.GetSettings()})
}

func (h *Handlers) saveSettings(c *gin.Context) {
	var settings store.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		respondError(c, errors.InvalidInput("", "request body must be valid JSON"))
		return
	}
	if err := h.store.SaveSettings(settings); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// --- Migration ---

// migrate bulk-imports a library snapshot from another device.
func (h *Handlers) migrate(c *gin.Context) {
	var snap store.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		respondError(c, errors.InvalidInput("", "request body must be valid JSON"))
		return
	}

	notes, voices, err := h.store.Migrate(snap)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"imported": gin.H{"notes": notes, "voices": voices},
	})
}
