package tts

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kbukum/shadowreader/errors"
)

func newTestMiniMax(t *testing.T, handler http.HandlerFunc) (*MiniMax, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	m := NewMiniMax(MiniMaxConfig{APIKey: "test-key", BaseURL: srv.URL}, nil)
	return m, srv
}

func okResponse(audio []byte) string {
	body := map[string]any{
		"data":      map[string]any{"audio": hex.EncodeToString(audio)},
		"base_resp": map[string]any{"status_code": 0, "status_msg": "success"},
	}
	data, _ := json.Marshal(body)
	return string(data)
}

func TestMiniMax_Synthesize(t *testing.T) {
	wantAudio := []byte("fake mp3 bytes")
	var gotReq Request
	var gotAuth string

	m, _ := newTestMiniMax(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != synthesizePath {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_, _ = w.Write([]byte(okResponse(wantAudio)))
	})

	req := Request{
		Text:         "你好，世界。",
		VoiceSetting: VoiceSetting{VoiceID: "female-zh-1", Speed: 1.0, Vol: 1.0},
		AudioSetting: DefaultAudioSetting(),
	}
	result, err := m.Synthesize(context.Background(), req)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if string(result.Audio) != string(wantAudio) {
		t.Fatalf("audio not decoded from hex: got %q", result.Audio)
	}
	if result.Format != "mp3" {
		t.Errorf("expected mp3 format, got %q", result.Format)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("missing bearer auth: %q", gotAuth)
	}
	if gotReq.Model != DefaultMiniMaxModel {
		t.Errorf("expected default model applied, got %q", gotReq.Model)
	}
	if gotReq.AudioSetting.SampleRate != 32000 || gotReq.AudioSetting.Bitrate != 128000 {
		t.Errorf("audio setting not forwarded: %+v", gotReq.AudioSetting)
	}
}

func TestMiniMax_BackendErrorInBand(t *testing.T) {
	m, _ := newTestMiniMax(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{},"base_resp":{"status_code":2038,"status_msg":"voice not found"}}`))
	})

	_, err := m.Synthesize(context.Background(), Request{
		Text:         "hello",
		VoiceSetting: VoiceSetting{VoiceID: "nope"},
		AudioSetting: DefaultAudioSetting(),
	})
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != errors.ErrCodeGenerationFailed {
		t.Fatalf("expected GENERATION_FAILED, got %s", appErr.Code)
	}
	if appErr.Message != "voice not found" {
		t.Fatalf("backend message must be preserved, got %q", appErr.Message)
	}
}

func TestMiniMax_EmptyAudioIsAnError(t *testing.T) {
	m, _ := newTestMiniMax(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"audio":""},"base_resp":{"status_code":0}}`))
	})

	_, err := m.Synthesize(context.Background(), Request{Text: "hi", AudioSetting: DefaultAudioSetting()})
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeGenerationFailed {
		t.Fatalf("expected GENERATION_FAILED, got %v", err)
	}
}

func TestMiniMax_MissingText(t *testing.T) {
	m, _ := newTestMiniMax(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend must not be called for empty text")
	})

	_, err := m.Synthesize(context.Background(), Request{})
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeMissingField {
		t.Fatalf("expected MISSING_FIELD, got %v", err)
	}
}

func TestMiniMax_NotConfigured(t *testing.T) {
	m := NewMiniMax(MiniMaxConfig{}, nil)
	if m.IsAvailable() {
		t.Fatal("synthesizer without key must not report available")
	}
	_, err := m.Synthesize(context.Background(), Request{Text: "hi"})
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeServiceUnavailable {
		t.Fatalf("expected SERVICE_UNAVAILABLE, got %v", err)
	}
}

func TestRequest_Fingerprint(t *testing.T) {
	base := Request{
		Model:        "speech-02-hd",
		Text:         "hello world",
		VoiceSetting: VoiceSetting{VoiceID: "v1", Speed: 1.0},
		AudioSetting: DefaultAudioSetting(),
	}

	same := base
	if base.Fingerprint() != same.Fingerprint() {
		t.Fatal("identical requests must share a fingerprint")
	}

	diffText := base
	diffText.Text = "goodbye"
	if base.Fingerprint() == diffText.Fingerprint() {
		t.Fatal("different text must change the fingerprint")
	}

	diffVoice := base
	diffVoice.VoiceSetting.VoiceID = "v2"
	if base.Fingerprint() == diffVoice.Fingerprint() {
		t.Fatal("different voice must change the fingerprint")
	}

	diffSpeed := base
	diffSpeed.VoiceSetting.Speed = 1.5
	if base.Fingerprint() == diffSpeed.Fingerprint() {
		t.Fatal("different speed must change the fingerprint")
	}
}
