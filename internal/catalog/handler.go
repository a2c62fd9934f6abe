package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pandapos/internal/pos"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// The cashier view reads one category at a time; each response is keyed
// by the plural category name, or carries an error field the view
// renders as "no items available".

func (h *Handler) Sides(c *gin.Context) {
	h.category(c, pos.CategorySide, "sides")
}

func (h *Handler) Entrees(c *gin.Context) {
	h.category(c, pos.CategoryEntree, "entrees")
}

func (h *Handler) Appetizers(c *gin.Context) {
	h.category(c, pos.CategoryAppetizer, "appetizers")
}

func (h *Handler) category(c *gin.Context, category pos.Category, key string) {
	foods, err := h.service.FetchCategory(c.Request.Context(), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching " + key})
		return
	}
	if foods == nil {
		foods = []Food{}
	}
	c.JSON(http.StatusOK, gin.H{key: foods})
}
