package caption

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want Result
	}{
		{
			name: "single known tag",
			tags: []string{"doge"},
			want: Result{Caption: "Such cyber, very neon, wow matrix", Vibe: "Ironic Nostalgia"},
		},
		{
			name: "first known tag wins",
			tags: []string{"unknown", "glitch", "cat"},
			want: Result{Caption: "Have you tried turning the universe off and on again?", Vibe: "Error Core Vibe"},
		},
		{
			name: "no known tag",
			tags: []string{"potato"},
			want: Fallback(),
		},
		{
			name: "no tags",
			tags: nil,
			want: Fallback(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Lookup(tt.tags))
		})
	}
}

func TestTableCaptioner_CoversEveryTag(t *testing.T) {
	c := NewTableCaptioner(0)
	for tag, e := range table {
		res, err := c.Caption(context.Background(), []string{tag})
		require.NoError(t, err)
		require.Equal(t, e.caption, res.Caption)
		require.Equal(t, e.vibe, res.Vibe)
	}
	require.Len(t, table, 8)
}

func TestTableCaptioner_WaitsForDelay(t *testing.T) {
	c := NewTableCaptioner(30 * time.Millisecond)

	start := time.Now()
	res, err := c.Caption(context.Background(), []string{"neon"})
	require.NoError(t, err)
	require.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	require.Equal(t, "Electric Dreams", res.Vibe)
}

func TestTableCaptioner_ContextCancelled(t *testing.T) {
	c := NewTableCaptioner(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Caption(ctx, []string{"neon"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewTableCaptioner_NegativeDelay(t *testing.T) {
	require.Equal(t, time.Duration(0), NewTableCaptioner(-time.Second).Delay)
}

type fakeGenerator struct {
	resp *genai.GenerateContentResponse
	err  error
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	return f.resp, f.err
}

func textResponse(txt string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(txt)}}},
		},
	}
}

func TestGeminiCaptioner_Caption(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fallback := NewMockCaptioner(ctrl)
	fromFallback := Result{Caption: "fallback caption", Vibe: "Fallback Vibe"}

	tests := []struct {
		name        string
		gen         *fakeGenerator
		useFallback bool
		want        Result
	}{
		{
			name: "valid json",
			gen:  &fakeGenerator{resp: textResponse(`{"caption":"Packets of pure joy","vibe":"Hyper Neon"}`)},
			want: Result{Caption: "Packets of pure joy", Vibe: "Hyper Neon"},
		},
		{
			name:        "transport error",
			gen:         &fakeGenerator{err: errors.New("quota exceeded")},
			useFallback: true,
			want:        fromFallback,
		},
		{
			name:        "no candidates",
			gen:         &fakeGenerator{resp: &genai.GenerateContentResponse{}},
			useFallback: true,
			want:        fromFallback,
		},
		{
			name:        "malformed json",
			gen:         &fakeGenerator{resp: textResponse(`not json`)},
			useFallback: true,
			want:        fromFallback,
		},
		{
			name:        "missing vibe",
			gen:         &fakeGenerator{resp: textResponse(`{"caption":"only a caption"}`)},
			useFallback: true,
			want:        fromFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.useFallback {
				fallback.EXPECT().Caption(gomock.Any(), []string{"cat"}).Return(fromFallback, nil)
			}
			g := &GeminiCaptioner{model: tt.gen, fallback: fallback}

			res, err := g.Caption(context.Background(), []string{"cat"})
			require.NoError(t, err)
			require.Equal(t, tt.want, res)
		})
	}
}

func TestGeminiCaptioner_NilFallbackUsesTable(t *testing.T) {
	g := &GeminiCaptioner{model: &fakeGenerator{err: errors.New("down")}}

	res, err := g.Caption(context.Background(), []string{"stonks"})
	require.NoError(t, err)
	require.Equal(t, "Dystopian Market Energy", res.Vibe)
	require.NoError(t, g.Close())
}

func TestNewGeminiCaptioner_RequiresKey(t *testing.T) {
	_, err := NewGeminiCaptioner(context.Background(), "", "", nil)
	require.Error(t, err)
}
