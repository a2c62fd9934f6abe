package pos

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ItemSource resolves a catalog food id into an addable menu item. It
// must reject unavailable items itself.
type ItemSource interface {
	Resolve(ctx context.Context, foodID int) (MenuItem, error)
}

type Handler struct {
	sessions *Registry
	items    ItemSource
}

func NewHandler(sessions *Registry, items ItemSource) *Handler {
	return &Handler{sessions: sessions, items: items}
}

func (h *Handler) CreateSession(c *gin.Context) {
	id, s := h.sessions.Create()
	c.JSON(http.StatusCreated, gin.H{
		"sessionId": id,
		"state":     s.State(),
	})
}

// CloseSession drops a terminal's session. Any pending transaction is
// abandoned with it.
func (h *Handler) CloseSession(c *gin.Context) {
	if _, ok := h.session(c); !ok {
		return
	}
	h.sessions.Close(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "session closed"})
}

func (h *Handler) GetState(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.State())
}

func (h *Handler) SelectSize(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req struct {
		Size string `json:"size"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	size, err := ParseMealSize(req.Size)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, s.SelectSize(size))
}

func (h *Handler) AddItem(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req struct {
		FoodID int `json:"foodId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	item, err := h.items.Resolve(c.Request.Context(), req.FoodID)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrItemNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	state, err := s.AddItem(item)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error(), "state": state})
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *Handler) SubmitOrder(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	state, err := s.SubmitOrder()
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error(), "state": state})
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *Handler) ResetOrder(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.ResetOrder())
}

func (h *Handler) FinishTransaction(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req struct {
		EmployeeID string `json:"employeeId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	id, state, err := s.FinishTransaction(c.Request.Context(), req.EmployeeID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error(), "state": state})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transactionId": id,
		"state":         state,
	})
}

func (h *Handler) session(c *gin.Context) (*Session, bool) {
	s, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return nil, false
	}
	return s, true
}

func statusFor(err error) int {
	var pe *PersistenceError
	switch {
	case errors.As(err, &pe):
		return http.StatusBadGateway
	case errors.Is(err, ErrCapacityExceeded):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
