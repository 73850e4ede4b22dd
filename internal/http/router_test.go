package http_test

import (
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fahimahmed420/CampusPilot-server/internal/auth"
	"github.com/fahimahmed420/CampusPilot-server/internal/config"
	apihttp "github.com/fahimahmed420/CampusPilot-server/internal/http"
	"github.com/fahimahmed420/CampusPilot-server/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testRouter wires the full middleware chain against a store that is never
// reached: static token auth guards every /api route, so unauthenticated
// requests are rejected before any repository call.
func testRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()

	cfg := config.Config{
		Env:             "test",
		MongoURI:        "mongodb://127.0.0.1:1", // never dialed by these tests
		MongoDB:         "campusPilotDB",
		AuthMode:        "static",
		JWTSecret:       "test-secret",
		RateLimit:       100,
		RateLimitWindow: time.Minute,
	}

	log := slog.New(slog.DiscardHandler)
	st := store.New(cfg.MongoURI, cfg.MongoDB, log)
	verifier := auth.NewStaticVerifier(cfg.JWTSecret)

	token, err := verifier.Issue("u1", "u1@example.com", time.Minute)

	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	return apihttp.NewRouter(log, st, verifier, cfg), token
}

func TestHealthzOpen(t *testing.T) {
	r, _ := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(nethttp.MethodGet, "/healthz", nil))

	if w.Code != nethttp.StatusOK {
		t.Fatalf("healthz must not require auth, got %d", w.Code)
	}
}

func TestMetricsOpen(t *testing.T) {
	r, _ := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(nethttp.MethodGet, "/metrics", nil))

	if w.Code != nethttp.StatusOK {
		t.Fatalf("metrics must not require auth, got %d", w.Code)
	}
}

func TestAPIRejectsMissingToken(t *testing.T) {
	r, _ := testRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{nethttp.MethodGet, "/api/users"},
		{nethttp.MethodGet, "/api/transactions/u1"},
		{nethttp.MethodGet, "/api/classes?uid=u1"},
		{nethttp.MethodGet, "/api/scores/u1"},
		{nethttp.MethodGet, "/api/tasks"},
	}

	for _, tt := range paths {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			if w.Code != nethttp.StatusUnauthorized {
				t.Errorf("expected 401 without token, got %d", w.Code)
			}
		})
	}
}

func TestAPIRejectsForgedToken(t *testing.T) {
	r, _ := testRouter(t)

	other := auth.NewStaticVerifier("different-secret")
	forged, err := other.Issue("u1", "u1@example.com", time.Minute)

	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(nethttp.MethodGet, "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+forged)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != nethttp.StatusUnauthorized {
		t.Errorf("expected 401 for token signed with another secret, got %d", w.Code)
	}
}
