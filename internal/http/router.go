package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-api/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
// El orden de middlewares importa: cabeceras y CORS antes del logging,
// recovery al final de la cadena global, rate limit solo en /contact.
func NewRouter(
	logger *zap.Logger,
	contactH *ContactHandler,
	adminH *AdminHandler,
	healthH *HealthHandler,
	limiter service.RateLimiter,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()

	r.Use(
		securityHeadersMiddleware(),
		corsMiddleware(corsOrigins),
		requestIDMiddleware(),
		zapLoggerMiddleware(logger),
		recoveryMiddleware(logger),
	)

	r.GET("/health", healthH.Check)
	r.POST("/contact", rateLimitMiddleware(limiter, logger), contactH.SubmitContact)

	admin := r.Group("/admin")
	// TODO: proteger /admin/messages cuando exista la capa de autorización.
	admin.GET("/messages", adminH.ListMessages)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "NotFoundError",
			"details": "route not found",
		})
	})

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
