package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-api/internal/service"
)

// AdminHandler mantiene dependencias para los endpoints de administración.
type AdminHandler struct {
	logger   *zap.Logger
	contacts *service.ContactService
}

func NewAdminHandler(logger *zap.Logger, contacts *service.ContactService) *AdminHandler {
	return &AdminHandler{
		logger:   logger,
		contacts: contacts,
	}
}

// ListMessages maneja GET /admin/messages.
func (h *AdminHandler) ListMessages(c *gin.Context) {
	messages, err := h.contacts.ListMessages(c.Request.Context())
	if err != nil {
		h.logger.Error("list contact messages failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "DatabaseError",
			"details": "could not list messages",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    messages,
		"count":   len(messages),
	})
}
