package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-api/internal/service"
)

// ContactHandler mantiene dependencias para el endpoint de contacto.
type ContactHandler struct {
	logger     *zap.Logger
	contacts   *service.ContactService
	production bool
}

// NewContactHandler crea una instancia de ContactHandler.
// production controla si el campo debug se omite en errores de base.
func NewContactHandler(logger *zap.Logger, contacts *service.ContactService, production bool) *ContactHandler {
	return &ContactHandler{
		logger:     logger,
		contacts:   contacts,
		production: production,
	}
}

// SubmitContact maneja POST /contact.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid contact request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "MissingField",
			"details": "request body must be valid JSON with name, email, subject and message",
		})
		return
	}

	stored, err := h.contacts.Submit(c.Request.Context(), service.SubmitInput{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   verr.Code,
				"details": verr.Details,
			})
			return
		}
		if errors.Is(err, service.ErrDatabase) {
			h.logger.Error("contact message insert failed", zap.Error(err))
			resp := gin.H{
				"error":   "DatabaseError",
				"details": "could not store the message, try again later",
			}
			if !h.production {
				resp["debug"] = err.Error()
			}
			c.JSON(http.StatusInternalServerError, resp)
			return
		}
		h.logger.Error("contact submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "ServerError",
			"details": "an unexpected error occurred",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "message sent successfully",
		"data": gin.H{
			"id":        stored.ID,
			"timestamp": stored.CreatedAt,
		},
	})
}
