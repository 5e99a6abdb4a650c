package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"hiredai/config"
)

const (
	openAIModel       = "gpt-3.5-turbo"
	answerSystemRole  = "You are an interview coach that writes concise, realistic STAR-format answers."
	fallbackStarReply = "💡 (Local fallback) Structure your answer with STAR: Situation, Task, Action, Result. " +
		"Mention one metric or outcome and what you learned. Keep it concise."
)

type OpenAIRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
	N           int       `json:"n,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatGPT struct {
	APIKey string
	URL    string
	Client *http.Client
}

func NewChatGPT(apiKey string) *ChatGPT {
	return &ChatGPT{
		APIKey: apiKey,
		URL:    "https://api.openai.com/v1/chat/completions",
		Client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Chat sends a system+user message pair and returns the first choice.
func (c *ChatGPT) Chat(ctx context.Context, model, systemPrompt, userMessage string, maxTokens int, temperature float64) (string, error) {
	requestData := OpenAIRequest{
		Model: model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
		N:           1,
	}

	payload, err := json.Marshal(requestData)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request data: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.APIKey))

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error: %s", string(body))
	}

	var responseData struct {
		Choices []struct {
			Message struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &responseData); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(responseData.Choices) == 0 {
		return "", fmt.Errorf("unexpected response format")
	}
	return responseData.Choices[0].Message.Content, nil
}

var (
	chatGPT      *ChatGPT
	answerLogger = zap.NewNop()
)

// InitAnswerService wires the answer-generation providers from config.
// With no API key configured the endpoint degrades to a canned tip.
func InitAnswerService(cfg *config.Config, logger *zap.Logger) error {
	if logger != nil {
		answerLogger = logger
	}
	if cfg.Openai.ApiKey != "" {
		chatGPT = NewChatGPT(cfg.Openai.ApiKey)
	}
	if cfg.Gemini.ApiKey != "" {
		if err := initGemini(cfg.Gemini.ApiKey); err != nil {
			return fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
	}
	return nil
}

// GenerateAnswer produces an interview answer for the prompt. Provider
// order: OpenAI, then Gemini, then the local STAR tip. Upstream
// failures are folded into the answer text, never into a transport
// error.
func GenerateAnswer(ctx context.Context, prompt string, maxTokens int, temperature float64) string {
	if chatGPT != nil {
		answer, err := chatGPT.Chat(ctx, openAIModel, answerSystemRole, prompt, maxTokens, temperature)
		if err != nil {
			answerLogger.Warn("openai generation failed", zap.Error(err))
			return fmt.Sprintf("Error: AI generation failed (%s)", err.Error())
		}
		return strings.TrimSpace(answer)
	}
	if geminiClient != nil {
		answer, err := generateGeminiAnswer(ctx, prompt, maxTokens, temperature)
		if err != nil {
			answerLogger.Warn("gemini generation failed", zap.Error(err))
			return fmt.Sprintf("Error: AI generation failed (%s)", err.Error())
		}
		return answer
	}
	return fallbackStarReply
}
