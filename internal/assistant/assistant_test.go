package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/emmawebdev2005/ShopGenius/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type MockModel struct {
	mock.Mock
}

func (m *MockModel) Generate(ctx context.Context, req Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func newAssistant(t *testing.T, m Model) *Assistant {
	return New(m, Config{GenerationModel: "gen-model", ChatModel: "chat-model"}, zaptest.NewLogger(t))
}

func TestGenerateListing(t *testing.T) {
	tests := []struct {
		name      string
		output    string
		genErr    error
		wantErrIs error
		want      domain.ListingDraft
	}{
		{
			name:   "valid",
			output: `{"title":" Vintage Camera Bag ","description":"Rugged canvas.","price":79.5,"category":"","tags":["Vintage"," ","Camera"]}`,
			want: domain.ListingDraft{
				Title:       "Vintage Camera Bag",
				Description: "Rugged canvas.",
				Price:       79.5,
				Category:    domain.DefaultCategory,
				Tags:        []string{"Vintage", "Camera"},
				ImageURL:    "https://picsum.photos/seed/Avintageleathercamerabag/500/500",
			},
		},
		{
			name:   "fenced_json",
			output: "```json\n{\"title\":\"Bag\",\"description\":\"d\",\"price\":10,\"category\":\"Accessories\",\"tags\":[]}\n```",
			want: domain.ListingDraft{
				Title:       "Bag",
				Description: "d",
				Price:       10,
				Category:    "Accessories",
				Tags:        []string{},
				ImageURL:    "https://picsum.photos/seed/Avintageleathercamerabag/500/500",
			},
		},
		{
			name:      "negative_price",
			output:    `{"title":"Bag","description":"d","price":-1,"category":"x","tags":[]}`,
			wantErrIs: domain.ErrInvalidListing,
		},
		{
			name:      "empty_title",
			output:    `{"title":"  ","description":"d","price":1,"category":"x","tags":[]}`,
			wantErrIs: domain.ErrInvalidListing,
		},
		{
			name:      "not_json",
			output:    "Sure! Here's a listing.",
			wantErrIs: domain.ErrInvalidListing,
		},
		{
			name:      "empty_output",
			output:    "   ",
			wantErrIs: ErrEmptyResponse,
		},
		{
			name:   "model_failure",
			genErr: errors.New("quota exceeded"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(MockModel)
			m.On("Generate", mock.Anything, mock.MatchedBy(func(r Request) bool {
				return r.Model == "gen-model" && r.Schema != nil && strings.Contains(r.Prompt, "A vintage leather camera bag")
			})).Return(tt.output, tt.genErr).Once()

			draft, err := newAssistant(t, m).GenerateListing(context.Background(), "A vintage leather camera bag")

			switch {
			case tt.genErr != nil:
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.genErr)
			case tt.wantErrIs != nil:
				require.ErrorIs(t, err, tt.wantErrIs)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, draft)
			}
			m.AssertExpectations(t)
		})
	}
}

func TestGenerateListing_EmptyInputSkipsModel(t *testing.T) {
	m := new(MockModel)
	_, err := newAssistant(t, m).GenerateListing(context.Background(), " \t")
	require.ErrorIs(t, err, ErrEmptyPrompt)
	m.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestChat(t *testing.T) {
	catalog := []domain.Product{
		{Title: "Artisan Coffee Blend", Price: 18.5, Description: "Dark roast."},
		{Title: "Succulent Trio", Price: 32, Description: "Three succulents."},
	}
	history := []domain.ChatTurn{{Role: domain.RoleModel, Text: Greeting}}

	m := new(MockModel)
	m.On("Generate", mock.Anything, mock.MatchedBy(func(r Request) bool {
		return r.Model == "chat-model" &&
			r.Prompt == "Any coffee?" &&
			len(r.History) == 1 &&
			strings.Contains(r.System, "ShopBot") &&
			strings.Contains(r.System, "Artisan Coffee Blend ($18.5): Dark roast.") &&
			strings.Contains(r.System, "Succulent Trio ($32): Three succulents.")
	})).Return("Try the Artisan Coffee Blend!", nil).Once()

	reply := newAssistant(t, m).Chat(context.Background(), history, "Any coffee?", catalog)
	assert.Equal(t, "Try the Artisan Coffee Blend!", reply)
	m.AssertExpectations(t)
}

func TestChat_Fallbacks(t *testing.T) {
	m := new(MockModel)
	m.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("network down")).Once()
	m.On("Generate", mock.Anything, mock.Anything).Return("", nil).Once()

	a := newAssistant(t, m)
	assert.Equal(t, FallbackUnavailable, a.Chat(context.Background(), nil, "hi", nil))
	assert.Equal(t, FallbackEmpty, a.Chat(context.Background(), nil, "hi", nil))
	m.AssertExpectations(t)
}

func TestImageURLFor(t *testing.T) {
	assert.Equal(t, "https://picsum.photos/seed/redmug/500/500", ImageURLFor("red mug"))
	assert.Equal(t, "https://picsum.photos/seed/abc/500/500", ImageURLFor(" a\tb\nc "))
}

func TestUnavailableModel(t *testing.T) {
	a := New(UnavailableModel{}, Config{}, zaptest.NewLogger(t))

	_, err := a.GenerateListing(context.Background(), "wool scarf")
	assert.ErrorIs(t, err, ErrModelUnavailable)
	assert.Equal(t, FallbackUnavailable, a.Chat(context.Background(), nil, "hello", nil))
}
