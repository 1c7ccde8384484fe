package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_PostJSON(t *testing.T) {
	var gotContentType, gotAuth string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := New(Config{
		BaseURL: srv.URL,
		Headers: map[string]string{"Authorization": "Bearer test-key"},
	})

	resp, err := client.PostJSON(context.Background(), "/v1/test", map[string]string{"text": "hello"})
	if err != nil {
		t.Fatalf("PostJSON failed: %v", err)
	}
	if !resp.IsSuccess() {
		t.Fatalf("expected success, got status %d", resp.StatusCode)
	}
	if gotContentType != "application/json" {
		t.Errorf("expected JSON content type, got %q", gotContentType)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("default header not applied: %q", gotAuth)
	}
	if gotBody["text"] != "hello" {
		t.Errorf("body not delivered: %v", gotBody)
	}

	var decoded map[string]bool
	if err := resp.DecodeJSON(&decoded); err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	if !decoded["ok"] {
		t.Error("expected ok=true in decoded response")
	}
}

func TestClient_RequestHeadersOverrideDefaults(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Trace")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := New(Config{
		BaseURL: srv.URL,
		Headers: map[string]string{"X-Trace": "default"},
	})

	_, err := client.Do(context.Background(), Request{
		Method:  http.MethodGet,
		Path:    "/",
		Headers: map[string]string{"X-Trace": "override"},
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if got != "override" {
		t.Errorf("expected per-request header to win, got %q", got)
	}
}

func TestClient_NonSuccessStatusIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL})
	resp, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
	if err != nil {
		t.Fatalf("transport-level error not expected: %v", err)
	}
	if resp.IsSuccess() {
		t.Fatal("502 must not be a success")
	}
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.StatusCode)
	}
}

func TestClient_RetryRecoversFromTransientFailure(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			conn, _, err := w.(http.Hijacker).Hijack()
			if err == nil {
				conn.Close()
			}
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	retry := RetryConfig{MaxAttempts: 3, InitialBackoff: time.Millisecond}
	client := New(Config{BaseURL: srv.URL, Retry: &retry})

	resp, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
	if err != nil {
		t.Fatalf("expected retries to recover: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}
