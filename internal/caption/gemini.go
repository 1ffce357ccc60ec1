package caption

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"meme-market/utils"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is used when no model name is configured.
const DefaultGeminiModel = "gemini-2.0-flash-001"

type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiCaptioner asks Gemini for a caption and falls back to another Captioner on any failure.
type GeminiCaptioner struct {
	model    contentGenerator
	fallback Captioner
	closer   func() error
}

// NewGeminiCaptioner connects to Gemini with apiKey. fallback answers whenever Gemini cannot.
func NewGeminiCaptioner(ctx context.Context, apiKey, modelName string, fallback Captioner) (*GeminiCaptioner, error) {
	if apiKey == "" {
		return nil, errors.New("caption: gemini api key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("caption: create gemini client: %w", err)
	}
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"

	return &GeminiCaptioner{model: model, fallback: fallback, closer: client.Close}, nil
}

// Close releases the underlying client.
func (g *GeminiCaptioner) Close() error {
	if g.closer == nil {
		return nil
	}
	return g.closer()
}

// Caption asks Gemini for a JSON caption.
func (g *GeminiCaptioner) Caption(ctx context.Context, tags []string) (Result, error) {
	res, err := g.generate(ctx, tags)
	if err == nil {
		return res, nil
	}

	utils.Warn("gemini caption failed, using fallback", map[string]any{
		"tags":  tags,
		"error": err.Error(),
	})
	if g.fallback == nil {
		return Lookup(tags), nil
	}
	return g.fallback.Caption(ctx, tags)
}

func (g *GeminiCaptioner) generate(ctx context.Context, tags []string) (Result, error) {
	prompt := fmt.Sprintf(`
You write captions for a cyberpunk meme marketplace.
Tags: %s

Respond in JSON only:
{"caption": "one short funny caption", "vibe": "a two or three word vibe label"}
`, strings.Join(tags, ", "))

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return Result{}, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return Result{}, errors.New("empty response from gemini")
	}

	txt, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return Result{}, errors.New("unexpected response part type")
	}

	var res Result
	if err := json.Unmarshal([]byte(txt), &res); err != nil {
		return Result{}, fmt.Errorf("parse gemini json: %w", err)
	}
	if res.Caption == "" || res.Vibe == "" {
		return Result{}, errors.New("gemini response missing caption or vibe")
	}
	return res, nil
}
