package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-api/internal/service"
)

func setupAdminRouter(svc *service.ContactService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAdminHandler(zap.NewNop(), svc)
	r.GET("/admin/messages", h.ListMessages)
	return r
}

func TestAdminListMessages_OrderedNewestFirst(t *testing.T) {
	repo := &mockContactRepo{}
	svc := newContactService(repo, &mockSender{})
	contactRouter := setupContactRouter(svc, false)

	for i := 0; i < 3; i++ {
		rec := performRequest(contactRouter, http.MethodPost, "/contact", validPayload())
		if rec.Code != http.StatusOK {
			t.Fatalf("seed submit %d failed with %d", i, rec.Code)
		}
	}

	rec := performRequest(setupAdminRouter(svc), http.MethodGet, "/admin/messages", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Fatalf("expected success true, got %v", body["success"])
	}
	if body["count"] != float64(3) {
		t.Fatalf("expected count 3, got %v", body["count"])
	}
	data, ok := body["data"].([]any)
	if !ok || len(data) != 3 {
		t.Fatalf("expected 3 messages, got %v", body["data"])
	}
	first := data[0].(map[string]any)
	last := data[2].(map[string]any)
	if first["id"] != "id-3" || last["id"] != "id-1" {
		t.Fatalf("expected newest first, got %v..%v", first["id"], last["id"])
	}
}

func TestAdminListMessages_Empty(t *testing.T) {
	svc := newContactService(&mockContactRepo{}, &mockSender{})

	rec := performRequest(setupAdminRouter(svc), http.MethodGet, "/admin/messages", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["count"] != float64(0) {
		t.Fatalf("expected count 0, got %v", body["count"])
	}
}

func TestAdminListMessages_DatabaseError(t *testing.T) {
	repo := &mockContactRepo{listErr: errors.New("timeout")}
	svc := newContactService(repo, &mockSender{})

	rec := performRequest(setupAdminRouter(svc), http.MethodGet, "/admin/messages", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "DatabaseError" {
		t.Fatalf("expected DatabaseError, got %v", body["error"])
	}
}
