package service

import (
	"context"
	"fmt"
	"strings"

	"college-hub/pkg/config"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// generationFallback replaces an empty-but-successful model reply.
const generationFallback = "Please contact the office."

// Generator is the boundary to the external text generation capability.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// buildSystemInstruction creates the assistant persona used on every call.
func buildSystemInstruction(collegeName string) string {
	if collegeName == "" {
		collegeName = "National College, Bagepalli"
	}
	return fmt.Sprintf(`You are the official AI Assistant of %s.
The college was established in July 1978 and is managed by the National Education Society of Karnataka (NES).

Use both:
- Provided structured college information
- Real-time scraped website data

Rules:
- Keep answers short (3-5 lines).
- Use <strong> for bold text.
- Be professional and helpful.
- Never mention Gemini.`, collegeName)
}

// GeminiGenerator calls the Gemini API with a fixed system instruction and
// bounded output length. Provider errors are wrapped and classified by the
// chat pipeline; they never reach the HTTP caller.
type GeminiGenerator struct {
	client *genai.Client
	cfg    *config.GeminiConfig
	system string
	logger *zap.Logger
}

func NewGeminiGenerator(ctx context.Context, cfg *config.GeminiConfig, collegeName string, logger *zap.Logger) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiGenerator{
		client: client,
		cfg:    cfg,
		system: buildSystemInstruction(collegeName),
		logger: logger,
	}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.Model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(g.system, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.5),
		MaxOutputTokens:   g.cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		g.logger.Warn("Model returned empty text")
		return generationFallback, nil
	}

	g.logger.Debug("Generation completed", zap.Int("chars", len(text)))
	return text, nil
}
