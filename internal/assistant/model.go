package assistant

import (
	"context"
	"errors"
	"fmt"

	"github.com/emmawebdev2005/ShopGenius/internal/domain"
	"google.golang.org/genai"
)

// Request is one call to the generative model.
type Request struct {
	Model   string
	System  string
	History []domain.ChatTurn
	Prompt  string
	// Schema, when set, asks for JSON output matching it.
	Schema *genai.Schema
}

type Model interface {
	Generate(ctx context.Context, req Request) (string, error)
}

var ErrModelUnavailable = errors.New("generative model is not configured")

// UnavailableModel stands in when no API key is configured.
type UnavailableModel struct{}

func (UnavailableModel) Generate(context.Context, Request) (string, error) {
	return "", ErrModelUnavailable
}

type GeminiModel struct {
	client *genai.Client
}

func NewGeminiModel(ctx context.Context, apiKey string) (*GeminiModel, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiModel{client: client}, nil
}

func (m *GeminiModel) Generate(ctx context.Context, req Request) (string, error) {
	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, turn := range req.History {
		var role genai.Role = genai.RoleUser
		if turn.Role == domain.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(req.Prompt, genai.RoleUser))

	cfg := &genai.GenerateContentConfig{}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = req.Schema
	}

	resp, err := m.client.Models.GenerateContent(ctx, req.Model, contents, cfg)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
