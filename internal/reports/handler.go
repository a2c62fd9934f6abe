package reports

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) SalesHistory(c *gin.Context) {
	hours, err := h.service.SalesHistory(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching sales history data"})
		return
	}
	if hours == nil {
		hours = []HourlySales{}
	}
	c.JSON(http.StatusOK, gin.H{"hours": hours})
}
