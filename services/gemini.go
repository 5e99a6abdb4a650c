package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModelName = "gemini-1.5-flash"

var geminiClient *genai.Client

func initGemini(apiKey string) error {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return err
	}
	geminiClient = client
	return nil
}

// generateGeminiAnswer is the Gemini-backed provider for the answer
// endpoint, used when only GEMINI_API_KEY is configured.
func generateGeminiAnswer(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	if geminiClient == nil {
		return "", errors.New("Gemini client not initialized")
	}

	model := geminiClient.GenerativeModel(geminiModelName)
	model.SetMaxOutputTokens(int32(maxTokens))
	model.SetTemperature(float32(temperature))
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(answerSystemRole)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty model response")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return strings.TrimSpace(string(text)), nil
		}
	}
	return "", errors.New("no text part in model response")
}
