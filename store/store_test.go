package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kbukum/shadowreader/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "shadowreader.json")
	s, err := Open(Config{Path: path}, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return s
}

func TestStore_OpenMissingFileStartsEmpty(t *testing.T) {
	s := newTestStore(t)
	if len(s.Notes()) != 0 || len(s.Voices()) != 0 {
		t.Fatal("fresh store must be empty")
	}
}

func TestStore_SaveNoteMintsIDAndPrepends(t *testing.T) {
	s := newTestStore(t)

	first, err := s.SaveNote(Note{Title: "first", RawContent: "a"})
	if err != nil {
		t.Fatalf("SaveNote failed: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected an ID to be minted")
	}

	second, err := s.SaveNote(Note{Title: "second", RawContent: "b"})
	if err != nil {
		t.Fatalf("SaveNote failed: %v", err)
	}

	notes := s.Notes()
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].ID != second.ID {
		t.Fatal("newest note must come first")
	}
}

func TestStore_SaveNoteUpdatesInPlace(t *testing.T) {
	s := newTestStore(t)
	saved, _ := s.SaveNote(Note{Title: "old"})
	_, _ = s.SaveNote(Note{Title: "other"})

	saved.Title = "new"
	if _, err := s.SaveNote(saved); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	notes := s.Notes()
	if len(notes) != 2 {
		t.Fatalf("update must not add a record, got %d", len(notes))
	}
	// Position is preserved on update.
	if notes[1].ID != saved.ID || notes[1].Title != "new" {
		t.Fatalf("expected updated note in place, got %+v", notes)
	}
}

func TestStore_DeleteNote(t *testing.T) {
	s := newTestStore(t)
	saved, _ := s.SaveNote(Note{Title: "doomed"})

	if err := s.DeleteNote(saved.ID); err != nil {
		t.Fatalf("DeleteNote failed: %v", err)
	}
	if len(s.Notes()) != 0 {
		t.Fatal("note must be gone")
	}

	err := s.DeleteNote("nope")
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestStore_VoicesRoundTrip(t *testing.T) {
	s := newTestStore(t)
	v, err := s.SaveVoice(Voice{Title: "take 1", AudioURL: "data:audio/mp3;base64,xxx", Duration: 12.5})
	if err != nil {
		t.Fatalf("SaveVoice failed: %v", err)
	}
	if v.ID == "" {
		t.Fatal("expected an ID to be minted")
	}

	voices := s.Voices()
	if len(voices) != 1 || voices[0].Duration != 12.5 {
		t.Fatalf("voice not stored: %+v", voices)
	}

	if err := s.DeleteVoice(v.ID); err != nil {
		t.Fatalf("DeleteVoice failed: %v", err)
	}
	if len(s.Voices()) != 0 {
		t.Fatal("voice must be gone")
	}
}

func TestStore_Associations(t *testing.T) {
	s := newTestStore(t)

	if err := s.Associate("今天天气很好。", "voice-1"); err != nil {
		t.Fatalf("Associate failed: %v", err)
	}
	if err := s.Associate("今天天气很好。", "voice-2"); err != nil {
		t.Fatalf("Associate failed: %v", err)
	}
	// Duplicate link is a no-op.
	if err := s.Associate("今天天气很好。", "voice-1"); err != nil {
		t.Fatalf("Associate failed: %v", err)
	}

	got := s.AssociationsFor("今天天气很好。")
	if len(got) != 2 || got[0] != "voice-1" || got[1] != "voice-2" {
		t.Fatalf("unexpected associations: %v", got)
	}
	if len(s.AssociationsFor("unknown")) != 0 {
		t.Fatal("unknown key must have no associations")
	}
}

func TestStore_Settings(t *testing.T) {
	s := newTestStore(t)
	want := Settings{SelectedVoice: "v1", Speed: 1.2, TranslationLang: "ja"}
	if err := s.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	if got := s.GetSettings(); got != want {
		t.Fatalf("settings round trip failed: %+v", got)
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	s1, err := Open(Config{Path: path}, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	note, _ := s1.SaveNote(Note{Title: "keep me", RawContent: "text"})
	_, _ = s1.SaveVoice(Voice{Title: "take"})
	_ = s1.Associate("key", "v1")
	_ = s1.SaveSettings(Settings{Speed: 1.5})

	s2, err := Open(Config{Path: path}, nil)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	notes := s2.Notes()
	if len(notes) != 1 || notes[0].ID != note.ID || notes[0].Title != "keep me" {
		t.Fatalf("notes not persisted: %+v", notes)
	}
	if len(s2.Voices()) != 1 {
		t.Fatal("voices not persisted")
	}
	if got := s2.AssociationsFor("key"); len(got) != 1 || got[0] != "v1" {
		t.Fatalf("associations not persisted: %v", got)
	}
	if s2.GetSettings().Speed != 1.5 {
		t.Fatal("settings not persisted")
	}
}

func TestStore_OpenRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(Config{Path: path}, nil)
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeStorage {
		t.Fatalf("expected STORAGE error, got %v", err)
	}
}

func TestStore_DataFileIsValidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	s, _ := Open(Config{Path: path}, nil)
	_, _ = s.SaveNote(Note{Title: "x"})

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("data file missing: %v", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		t.Fatalf("data file is not valid JSON: %v", err)
	}
	if snap.Voices == nil || snap.Associations == nil {
		t.Fatal("empty collections must serialize as empty, not null")
	}
}

func TestStore_Migrate(t *testing.T) {
	s := newTestStore(t)
	existing, _ := s.SaveNote(Note{Title: "mine"})

	imported := Snapshot{
		Notes: []Note{
			{ID: existing.ID, Title: "mine updated"},
			{Title: "from phone"},
		},
		Voices:       []Voice{{Title: "recording"}},
		Associations: Associations{"k": {"v1"}},
		Settings:     Settings{TranslationLang: "ko"},
	}

	notes, voices, err := s.Migrate(imported)
	if err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	if notes != 1 || voices != 1 {
		t.Fatalf("expected 1 new note and 1 new voice, got %d/%d", notes, voices)
	}

	all := s.Notes()
	if len(all) != 2 {
		t.Fatalf("expected 2 notes after migration, got %d", len(all))
	}
	var updated bool
	for _, n := range all {
		if n.ID == existing.ID && n.Title == "mine updated" {
			updated = true
		}
	}
	if !updated {
		t.Fatal("existing note must be updated in place")
	}
	if got := s.AssociationsFor("k"); len(got) != 1 {
		t.Fatalf("associations not merged: %v", got)
	}
	if s.GetSettings().TranslationLang != "ko" {
		t.Fatal("imported settings must win")
	}
}
