package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/kbukum/shadowreader/errors"
	"github.com/kbukum/shadowreader/logger"
)

// Config configures the JSON file store.
type Config struct {
	// Path is the location of the data file. Parent directories are
	// created on open.
	Path string `yaml:"path" mapstructure:"path"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Path == "" {
		c.Path = "data/shadowreader.json"
	}
}

// Store is a mutex-guarded JSON file store.
type Store struct {
	mu   sync.Mutex
	path string
	data Snapshot
	log  *logger.Logger
}

// Open loads the store from disk, creating an empty one if the file does
// not exist.
func Open(cfg Config, log *logger.Logger) (*Store, error) {
	cfg.ApplyDefaults()
	if log == nil {
		log = logger.NewDefault("shadowreader")
	}

	s := &Store{
		path: cfg.Path,
		data: emptySnapshot(),
		log:  log.WithComponent("store"),
	}

	raw, err := os.ReadFile(cfg.Path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Info("no data file yet, starting empty", logger.Fields("path", cfg.Path))
			return s, nil
		}
		return nil, errors.Storage(fmt.Errorf("read %s: %w", cfg.Path, err))
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, errors.Storage(fmt.Errorf("parse %s: %w", cfg.Path, err))
	}
	normalize(&snap)
	s.data = snap

	s.log.Info("loaded data file", logger.Fields(
		"path", cfg.Path,
		"notes", len(snap.Notes),
		"voices", len(snap.Voices),
	))
	return s, nil
}

func emptySnapshot() Snapshot {
	return Snapshot{
		Notes:        []Note{},
		Voices:       []Voice{},
		Associations: Associations{},
	}
}

// normalize replaces nil collections so JSON output stays stable.
func normalize(s *Snapshot) {
	if s.Notes == nil {
		s.Notes = []Note{}
	}
	if s.Voices == nil {
		s.Voices = []Voice{}
	}
	if s.Associations == nil {
		s.Associations = Associations{}
	}
}

// --- Notes ---

// Notes returns all notes, newest first.
func (s *Store) Notes() []Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Note, len(s.data.Notes))
	copy(out, s.data.Notes)
	return out
}

// SaveNote inserts or updates a note. New notes are prepended and get an
// ID if they arrive without one. Returns the stored note.
func (s *Store) SaveNote(note Note) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}

	replaced := false
	for i, existing := range s.data.Notes {
		if existing.ID == note.ID {
			s.data.Notes[i] = note
			replaced = true
			break
		}
	}
	if !replaced {
		s.data.Notes = append([]Note{note}, s.data.Notes...)
	}

	if err := s.persist(); err != nil {
		return Note{}, err
	}
	s.log.Debug("saved note", logger.Fields(logger.FieldNoteID, note.ID))
	return note, nil
}

// DeleteNote removes a note by ID.
func (s *Store) DeleteNote(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, note := range s.data.Notes {
		if note.ID == id {
			s.data.Notes = append(s.data.Notes[:i], s.data.Notes[i+1:]...)
			return s.persist()
		}
	}
	return errors.NotFound("note", id)
}

// --- Voices ---

// Voices returns all saved voices, newest first.
func (s *Store) Voices() []Voice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Voice, len(s.data.Voices))
	copy(out, s.data.Voices)
	return out
}

// SaveVoice inserts or updates a voice. New voices are prepended and get
// an ID if they arrive without one. Returns the stored voice.
func (s *Store) SaveVoice(voice Voice) (Voice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if voice.ID == "" {
		voice.ID = uuid.NewString()
	}

	replaced := false
	for i, existing := range s.data.Voices {
		if existing.ID == voice.ID {
			s.data.Voices[i] = voice
			replaced = true
			break
		}
	}
	if !replaced {
		s.data.Voices = append([]Voice{voice}, s.data.Voices...)
	}

	if err := s.persist(); err != nil {
		return Voice{}, err
	}
	s.log.Debug("saved voice", logger.Fields(logger.FieldVoiceID, voice.ID))
	return voice, nil
}

// DeleteVoice removes a voice by ID.
func (s *Store) DeleteVoice(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, voice := range s.data.Voices {
		if voice.ID == id {
			s.data.Voices = append(s.data.Voices[:i], s.data.Voices[i+1:]...)
			return s.persist()
		}
	}
	return errors.NotFound("voice", id)
}

// --- Associations ---

// AssociationsFor returns the voice IDs associated with a sentence key.
func (s *Store) AssociationsFor(key string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.data.Associations[key]))
	copy(out, s.data.Associations[key])
	return out
}

// AllAssociations returns a copy of the full association map.
func (s *Store) AllAssociations() Associations {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(Associations, len(s.data.Associations))
	for k, v := range s.data.Associations {
		ids := make([]string, len(v))
		copy(ids, v)
		out[k] = ids
	}
	return out
}

// Associate links a voice ID to a sentence key. Duplicate links are
// ignored.
func (s *Store) Associate(key, voiceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.data.Associations[key] {
		if id == voiceID {
			return nil
		}
	}
	s.data.Associations[key] = append(s.data.Associations[key], voiceID)
	return s.persist()
}

// --- Settings ---

// GetSettings returns the stored settings.
func (s *Store) GetSettings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Settings
}

// SaveSettings replaces the stored settings.
func (s *Store) SaveSettings(settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Settings = settings
	return s.persist()
}

// --- Migration ---

// Migrate bulk-imports a snapshot, typically exported from another device.
// Records with IDs already present are updated in place; the rest are
// prepended. Associations and settings are merged with the import winning
// on conflicts. Returns counts of imported notes and voices.
func (s *Store) Migrate(snap Snapshot) (notes, voices int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(snap.Notes) - 1; i >= 0; i-- {
		note := snap.Notes[i]
		if note.ID == "" {
			note.ID = uuid.NewString()
		}
		if s.upsertNoteLocked(note) {
			notes++
		}
	}
	for i := len(snap.Voices) - 1; i >= 0; i-- {
		voice := snap.Voices[i]
		if voice.ID == "" {
			voice.ID = uuid.NewString()
		}
		if s.upsertVoiceLocked(voice) {
			voices++
		}
	}
	for key, ids := range snap.Associations {
	next:
		for _, id := range ids {
			for _, existing := range s.data.Associations[key] {
				if existing == id {
					continue next
				}
			}
			s.data.Associations[key] = append(s.data.Associations[key], id)
		}
	}
	if snap.Settings != (Settings{}) {
		s.data.Settings = snap.Settings
	}

	if err := s.persist(); err != nil {
		return 0, 0, err
	}
	s.log.Info("migration complete", logger.Fields("notes", notes, "voices", voices))
	return notes, voices, nil
}

func (s *Store) upsertNoteLocked(note Note) bool {
	for i, existing := range s.data.Notes {
		if existing.ID == note.ID {
			s.data.Notes[i] = note
			return false
		}
	}
	s.data.Notes = append([]Note{note}, s.data.Notes...)
	return true
}

func (s *Store) upsertVoiceLocked(voice Voice) bool {
	for i, existing := range s.data.Voices {
		if existing.ID == voice.ID {
			s.data.Voices[i] = voice
			return false
		}
	}
	s.data.Voices = append([]Voice{voice}, s.data.Voices...)
	return true
}

// --- Persistence ---

// persist writes the snapshot atomically. Callers must hold the mutex.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return errors.Storage(fmt.Errorf("encode snapshot: %w", err))
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Storage(fmt.Errorf("create %s: %w", dir, err))
	}

	tmp, err := os.CreateTemp(dir, ".shadowreader-*.json")
	if err != nil {
		return errors.Storage(fmt.Errorf("create temp file: %w", err))
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Storage(fmt.Errorf("write temp file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Storage(fmt.Errorf("close temp file: %w", err))
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.Storage(fmt.Errorf("rename temp file: %w", err))
	}
	return nil
}
