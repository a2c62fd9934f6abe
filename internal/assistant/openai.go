package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const systemPrompt = "You are a Panda Express service assistant."

type OpenAIClient struct {
	apiKey  string
	model   string
	baseURL string
}

func NewOpenAIClient() *OpenAIClient {
	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}
	return &OpenAIClient{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		model:   os.Getenv("OPENAI_MODEL"),
		baseURL: baseURL,
	}
}

// Reply forwards one customer message to the chat-completions endpoint
// and returns the assistant's reply verbatim. No state is shared with
// the order flow.
func (o *OpenAIClient) Reply(ctx context.Context, message string) (string, error) {
	if o.apiKey == "" {
		return "", errors.New("missing OPENAI_API_KEY")
	}
	if o.model == "" {
		return "", errors.New("missing OPENAI_MODEL")
	}
	if message == "" {
		return "", errors.New("empty message")
	}

	payload := map[string]any{
		"model": o.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": message},
		},
		"max_tokens": 150,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		o.baseURL+"/v1/chat/completions",
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai api error: %s", string(raw))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", errors.New("no reply generated")
	}

	return result.Choices[0].Message.Content, nil
}
