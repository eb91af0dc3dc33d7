package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"studenthub/internal/pkg/logger"
)

// Config points the service at an OpenAI-compatible chat completion API.
// Leave APIURL or APIKey empty to disable the assistant.
type Config struct {
	APIURL  string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type Service struct {
	cfg    Config
	client *http.Client
}

func NewService(cfg Config) *Service {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether an upstream API is configured.
func (s *Service) Enabled() bool {
	return s.cfg.APIURL != "" && s.cfg.APIKey != ""
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

// Chat forwards the conversation upstream and returns the assistant's reply.
func (s *Service) Chat(ctx context.Context, req ChatRequest) (*ChatMessage, error) {
	if !s.Enabled() {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model:    s.cfg.Model,
		Messages: req.Messages,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	url := strings.TrimRight(s.cfg.APIURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		logger.Warn("ai upstream unreachable", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logger.Warn("ai upstream error",
			"status", resp.StatusCode,
			"body", string(snippet))
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var out chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: bad response body", ErrUpstream)
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrUpstream)
	}

	msg := out.Choices[0].Message
	if msg.Role == "" {
		msg.Role = "assistant"
	}
	return &msg, nil
}
