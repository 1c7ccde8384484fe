package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestRequestID_GeneratesAndHonorsHeader(t *testing.T) {
	e := newEngine()
	e.Use(RequestID())
	e.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected a generated request ID")
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "client-chosen")
	e.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-Id"); got != "client-chosen" {
		t.Fatalf("expected client ID to be honored, got %q", got)
	}
}

func TestCORS_PreflightAndHeaders(t *testing.T) {
	e := newEngine()
	e.Use(CORS(CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
	}))
	e.POST("/api/tts", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/tts", nil)
	req.Header.Set("Origin", "http://192.168.1.20:3000")
	e.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight must return 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://192.168.1.20:3000" {
		t.Fatalf("expected origin echoed, got %q", got)
	}
	if !strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), "POST") {
		t.Fatal("expected POST in allowed methods")
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	e := newEngine()
	e.Use(CORS(CORSConfig{AllowedOrigins: []string{"http://allowed.local"}}))
	e.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.local")
	e.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatal("disallowed origin must not get CORS headers")
	}
}

func TestRecovery_ReturnsJSONError(t *testing.T) {
	e := newEngine()
	e.Use(Recovery())
	e.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "INTERNAL_ERROR") {
		t.Fatalf("expected structured error body, got %s", w.Body.String())
	}
}

func TestBodySizeLimit_RejectsOversized(t *testing.T) {
	e := newEngine()
	e.Use(BodySizeLimit("1KB"))
	e.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 2048)))
	e.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", w.Code)
	}
}

func TestParseSize(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"1024", 1024},
		{"1KB", 1024},
		{"10MB", 10 << 20},
		{"2GB", 2 << 30},
		{" 5 mb ", 5 << 20},
	}
	for _, tc := range cases {
		got, err := ParseSize(tc.in)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("%q: got %d, want %d", tc.in, got, tc.want)
		}
	}

	if _, err := ParseSize("lots"); err == nil {
		t.Fatal("expected error for junk input")
	}
}
