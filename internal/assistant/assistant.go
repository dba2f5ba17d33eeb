// Package assistant bridges the storefront to a generative language model:
// listing metadata from free text, and catalog-grounded shopping chat.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/emmawebdev2005/ShopGenius/internal/domain"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	Greeting            = "Hi there! I'm ShopBot. Looking for something specific? Ask me about our products!"
	FallbackUnavailable = "Service temporarily unavailable."
	FallbackEmpty       = "Service response empty."

	directives = `You are ShopBot, a friendly and knowledgeable shopping assistant for "ShopGenius".
Your goal is to help customers find products from the available catalog.
Be concise, helpful, and enthusiastic.
If a user asks about products, recommend specific items from the provided catalog context.
Always be polite.`
)

var (
	ErrEmptyPrompt   = errors.New("listing description is empty")
	ErrEmptyResponse = errors.New("model returned empty response")
)

var listingSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":       {Type: genai.TypeString},
		"description": {Type: genai.TypeString},
		"price":       {Type: genai.TypeNumber},
		"category":    {Type: genai.TypeString},
		"tags": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"title", "description", "price", "category", "tags"},
}

var whitespace = regexp.MustCompile(`\s`)

type Config struct {
	GenerationModel string
	ChatModel       string
	Timeout         time.Duration
}

type Assistant struct {
	model  Model
	cfg    Config
	logger *zap.Logger
}

func New(model Model, cfg Config, logger *zap.Logger) *Assistant {
	return &Assistant{
		model:  model,
		cfg:    cfg,
		logger: logger,
	}
}

func (a *Assistant) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.cfg.Timeout)
}

// ImageURLFor derives a stable placeholder image from the merchant's input.
func ImageURLFor(input string) string {
	return "https://picsum.photos/seed/" + whitespace.ReplaceAllString(input, "") + "/500/500"
}

// GenerateListing asks the model for listing metadata and validates it before
// it can enter the catalog.
func (a *Assistant) GenerateListing(ctx context.Context, freeText string) (domain.ListingDraft, error) {
	input := strings.TrimSpace(freeText)
	if input == "" {
		return domain.ListingDraft{}, ErrEmptyPrompt
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	prompt := fmt.Sprintf(`Create a compelling e-commerce product listing based on this input: %q.
Generate a catchy title, a persuasive marketing description (2-3 sentences), a realistic price (USD), a category, and 3 relevant tags.`, input)

	out, err := a.model.Generate(ctx, Request{
		Model:  a.cfg.GenerationModel,
		Prompt: prompt,
		Schema: listingSchema,
	})
	if err != nil {
		a.logger.Error("Listing generation failed", zap.Error(err))
		return domain.ListingDraft{}, fmt.Errorf("failed to generate listing: %w", err)
	}

	out = stripFence(out)
	if out == "" {
		return domain.ListingDraft{}, ErrEmptyResponse
	}

	var draft domain.ListingDraft
	if err := json.Unmarshal([]byte(out), &draft); err != nil {
		a.logger.Warn("Listing response is not valid JSON", zap.Error(err))
		return domain.ListingDraft{}, fmt.Errorf("%w: %v", domain.ErrInvalidListing, err)
	}

	draft, err = draft.Validate()
	if err != nil {
		a.logger.Warn("Generated listing rejected", zap.Error(err))
		return domain.ListingDraft{}, err
	}
	draft.ImageURL = ImageURLFor(input)

	a.logger.Info("Listing generated",
		zap.String("title", draft.Title),
		zap.Float64("price", draft.Price),
		zap.String("category", draft.Category))

	return draft, nil
}

// stripFence removes a markdown code fence some models wrap JSON in.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// CatalogContext renders the catalog the way the chat model sees it.
func CatalogContext(products []domain.Product) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("%s ($%s): %s", p.Title, strconv.FormatFloat(p.Price, 'f', -1, 64), p.Description))
	}
	return strings.Join(lines, "\n")
}

// Chat answers message in the context of history and the catalog. It never
// fails: model errors turn into a fallback reply.
func (a *Assistant) Chat(ctx context.Context, history []domain.ChatTurn, message string, catalog []domain.Product) string {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	reply, err := a.model.Generate(ctx, Request{
		Model:   a.cfg.ChatModel,
		System:  directives + "\n\nCurrent Product Catalog:\n" + CatalogContext(catalog),
		History: history,
		Prompt:  message,
	})
	if err != nil {
		a.logger.Error("Assistant query failed", zap.Error(err))
		return FallbackUnavailable
	}
	if strings.TrimSpace(reply) == "" {
		return FallbackEmpty
	}
	return reply
}
