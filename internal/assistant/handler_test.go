package assistant

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type stubClient struct {
	reply string
	err   error
}

func (s *stubClient) Reply(ctx context.Context, message string) (string, error) {
	return s.reply, s.err
}

func newChatRouter(client Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/assistant/chat", NewHandler(client).Chat)
	return r
}

func TestChatRequiresMessage(t *testing.T) {
	r := newChatRouter(&stubClient{reply: "hi"})

	req := httptest.NewRequest(http.MethodPost, "/assistant/chat", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestChatForwardsReply(t *testing.T) {
	r := newChatRouter(&stubClient{reply: "We close at 10pm."})

	req := httptest.NewRequest(http.MethodPost, "/assistant/chat",
		strings.NewReader(`{"message":"what time do you close?"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "We close at 10pm.") {
		t.Fatalf("reply not forwarded: %s", w.Body.String())
	}
}

func TestChatSurfacesUpstreamFailure(t *testing.T) {
	r := newChatRouter(&stubClient{err: errors.New("upstream down")})

	req := httptest.NewRequest(http.MethodPost, "/assistant/chat",
		strings.NewReader(`{"message":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
