package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DatabaseProber es la sonda mínima de conectividad contra el datastore.
type DatabaseProber interface {
	Probe(ctx context.Context) error
}

// ConfigPresence reporta qué configuración requerida está presente,
// sin revelar los valores.
type ConfigPresence struct {
	Database   bool `json:"database"`
	SMTP       bool `json:"smtp"`
	AdminEmail bool `json:"admin_email"`
}

// HealthHandler mantiene dependencias para el endpoint de salud.
type HealthHandler struct {
	logger      *zap.Logger
	db          DatabaseProber // nil cuando no hay base configurada
	environment string
	presence    ConfigPresence
	startedAt   time.Time
}

func NewHealthHandler(logger *zap.Logger, db DatabaseProber, environment string, presence ConfigPresence) *HealthHandler {
	return &HealthHandler{
		logger:      logger,
		db:          db,
		environment: environment,
		presence:    presence,
		startedAt:   time.Now().UTC(),
	}
}

// Check maneja GET /health.
func (h *HealthHandler) Check(c *gin.Context) {
	status := "OK"
	database := "NOT_CONFIGURED"
	code := http.StatusOK

	if h.db != nil {
		if err := h.db.Probe(c.Request.Context()); err != nil {
			h.logger.Error("health database probe failed", zap.Error(err))
			status = "ERROR"
			database = "ERROR"
			code = http.StatusInternalServerError
		} else {
			database = "CONNECTED"
		}
	}

	c.JSON(code, gin.H{
		"status":         status,
		"database":       database,
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
		"environment":    h.environment,
		"config":         h.presence,
	})
}
