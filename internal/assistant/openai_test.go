package assistant

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAIClientParsesReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing bearer token")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"Orange chicken is back."}}]}`))
	}))
	defer srv.Close()

	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_MODEL", "test-model")
	t.Setenv("OPENAI_BASE_URL", srv.URL)

	reply, err := NewOpenAIClient().Reply(context.Background(), "any orange chicken news?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Orange chicken is back." {
		t.Fatalf("reply = %q", reply)
	}
}

func TestOpenAIClientRejectsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_MODEL", "test-model")
	t.Setenv("OPENAI_BASE_URL", srv.URL)

	if _, err := NewOpenAIClient().Reply(context.Background(), "hello"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestOpenAIClientRejectsEmptyMessage(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_MODEL", "test-model")

	if _, err := NewOpenAIClient().Reply(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty message")
	}
}
