package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-api/internal/service"
)

func setupFullRouter(repo *mockContactRepo, limiter service.RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := newContactService(repo, &mockSender{})
	logger := zap.NewNop()
	contactH := NewContactHandler(logger, svc, false)
	adminH := NewAdminHandler(logger, svc)
	healthH := NewHealthHandler(logger, repo, "test", ConfigPresence{Database: true})
	return NewRouter(logger, contactH, adminH, healthH, limiter, nil)
}

func TestRouterUnknownRoute(t *testing.T) {
	r := setupFullRouter(&mockContactRepo{}, nil)

	rec := performRequest(r, http.MethodGet, "/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["error"] != "NotFoundError" {
		t.Fatalf("expected NotFoundError, got %v", body["error"])
	}
	if body["details"] == nil {
		t.Fatalf("expected details in 404 response")
	}
}

func TestRouterSecurityHeaders(t *testing.T) {
	r := setupFullRouter(&mockContactRepo{}, nil)

	rec := performRequest(r, http.MethodGet, "/health", nil)
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("expected nosniff header, got %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Fatalf("expected frame deny header, got %q", got)
	}
}

func TestRouterRequestID(t *testing.T) {
	r := setupFullRouter(&mockContactRepo{}, nil)

	rec := performRequest(r, http.MethodGet, "/health", nil)
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header on response")
	}
}

func TestRouterRateLimitsContact(t *testing.T) {
	r := setupFullRouter(&mockContactRepo{}, service.NewRateLimiter(time.Minute, 1))

	rec := performRequest(r, http.MethodPost, "/contact", validPayload())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected first submission allowed, got %d", rec.Code)
	}

	rec = performRequest(r, http.MethodPost, "/contact", validPayload())
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429 on second submission, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "RateLimited" {
		t.Fatalf("expected RateLimited, got %v", body["error"])
	}
}

func TestRouterRateLimitDoesNotAffectHealth(t *testing.T) {
	r := setupFullRouter(&mockContactRepo{}, service.NewRateLimiter(time.Minute, 1))

	for i := 0; i < 3; i++ {
		rec := performRequest(r, http.MethodGet, "/health", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected health unaffected by limiter, got %d", rec.Code)
		}
	}
}
