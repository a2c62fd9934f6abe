package assistant

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	client Client
}

func NewHandler(client Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) Chat(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message content is required."})
		return
	}

	reply, err := h.client.Reply(c.Request.Context(), req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process the request."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
