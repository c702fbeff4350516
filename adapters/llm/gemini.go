package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/trueconnect/talk/domain/entities"
)

const defaultModel = "gemini-2.0-flash"

// GeminiConfig holds configuration for the Gemini translator.
// APIKey is required; a missing key is reported on the first Translate call,
// not at construction, so the server can start without credentials.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// GeminiTranslator implements repositories.Translator using Google's Gemini API
type GeminiTranslator struct {
	config GeminiConfig
	logger *zap.Logger

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiTranslator creates a new Gemini-backed translator
func NewGeminiTranslator(config GeminiConfig, logger *zap.Logger) *GeminiTranslator {
	if config.Model == "" {
		config.Model = defaultModel
	}
	return &GeminiTranslator{
		config: config,
		logger: logger,
	}
}

func (g *GeminiTranslator) ensureClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}
	if g.config.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	g.client = client
	return client, nil
}

// Translate sends one stateless instruction-following request. No retry and
// no caching: a failed call is surfaced as-is and the user re-triggers.
func (g *GeminiTranslator) Translate(ctx context.Context, text string, from entities.Language) (string, error) {
	client, err := g.ensureClient(ctx)
	if err != nil {
		return "", err
	}

	target := from.Complement()
	instruction := fmt.Sprintf(
		"You are a translator. Translate the following text to %s. Only output the translation, nothing else.",
		target.Name(),
	)

	contents := []*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
		Temperature:       genai.Ptr(float32(0)),
	}

	response, err := client.Models.GenerateContent(ctx, g.config.Model, contents, config)
	if err != nil {
		g.logger.Error("Translation request failed",
			zap.String("from", from.String()),
			zap.String("to", target.String()),
			zap.Error(err))
		return "", fmt.Errorf("translation request failed: %w", err)
	}

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return "", fmt.Errorf("translation returned no candidates")
	}

	var translated string
	for _, part := range response.Candidates[0].Content.Parts {
		translated += part.Text
	}
	translated = strings.TrimSpace(translated)
	if translated == "" {
		return "", fmt.Errorf("translation returned empty text")
	}

	g.logger.Debug("Translated text",
		zap.String("from", from.String()),
		zap.String("to", target.String()),
		zap.Int("inputLen", len(text)),
		zap.Int("outputLen", len(translated)))

	return translated, nil
}
