package enrichment

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameforge/internal/model"
)

func TestDetectGenre(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"a story about a dragon", GenreFantasy},
		{"MAGIC school", GenreFantasy},
		{"robots in space", GenreSciFi},
		{"a scary night", GenreHorror},
		{"Horror at the lake", GenreHorror},
		{"a dragon in space", GenreFantasy},
		{"pirates and treasure", GenreAdventure},
		{"", GenreAdventure},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectGenre(tt.text))
		})
	}
}

func TestResolveGenre_HintWins(t *testing.T) {
	assert.Equal(t, GenreHorror, ResolveGenre(Request{Prompt: "a dragon", GenreHint: "Horror"}))
	assert.Equal(t, GenreFantasy, ResolveGenre(Request{Prompt: "a dragon"}))
}

func sampleTemplate() model.Template {
	return model.Template{
		ID:   "snake",
		Name: "Snake",
		Structure: model.GameStructure{
			Mechanics: []string{"grid-movement", "growth"},
		},
		Prebuilt: model.PrebuiltContent{
			Story: model.PrebuiltStory{Title: "The Hungry Snake", Premise: "A small snake.", Characters: []string{"The Snake"}},
			Gameplay: model.PrebuiltGameplay{
				Objectives:  []string{"Eat"},
				Controls:    []string{"Arrows"},
				Progression: "Faster over time.",
			},
		},
	}
}

func TestMockEnricher_Content(t *testing.T) {
	m := NewMockEnricher(42)
	c, err := m.Enrich(context.Background(), Request{Prompt: "a story about a dragon", Template: sampleTemplate()})
	require.NoError(t, err)

	assert.Equal(t, SourceMock, c.Source)
	assert.Equal(t, GenreFantasy, c.Genre)
	assert.Equal(t, GenreFantasy, c.Story.Genre)
	assert.Equal(t, "The Hungry Snake", c.Story.Title)
	assert.Contains(t, mockData[GenreFantasy].settings, c.Story.Setting)
	assert.Contains(t, c.Story.Plot, "A small snake.")

	require.Len(t, c.Story.Characters, 2)
	assert.Equal(t, "The Snake", c.Story.Characters[0].Name)
	assert.Len(t, c.Assets.Characters, 2)
	assert.Len(t, c.Assets.Environments, 2)
	assert.Len(t, c.Assets.Items, 2)
	assert.NotEqual(t, c.Assets.Items[0].Name, c.Assets.Items[1].Name)

	assert.Equal(t, []string{"grid-movement", "growth"}, c.Gameplay.Mechanics)
	assert.Equal(t, "Eat", c.Gameplay.Objectives[0])
	assert.Len(t, c.Gameplay.Objectives, 2)
	assert.Equal(t, "Faster over time.", c.Gameplay.Progression)
}

func TestMockEnricher_DeterministicWithSeed(t *testing.T) {
	req := Request{Prompt: "robots", Template: sampleTemplate()}
	a, err := NewMockEnricherWithRand(rand.New(rand.NewSource(7))).Enrich(context.Background(), req)
	require.NoError(t, err)
	b, err := NewMockEnricherWithRand(rand.New(rand.NewSource(7))).Enrich(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestMockEnricher_UnknownHintFallsBackToAdventureData(t *testing.T) {
	c, err := NewMockEnricher(1).Enrich(context.Background(), Request{GenreHint: "western", Template: sampleTemplate()})
	require.NoError(t, err)
	assert.Equal(t, "western", c.Genre)
	assert.Contains(t, mockData[GenreAdventure].settings, c.Story.Setting)
}

func TestMockEnricher_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMockEnricher(1).Enrich(ctx, Request{Template: sampleTemplate()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseContent(t *testing.T) {
	fenced := "Here you go:\n```json\n{\"genre\":\"sci-fi\",\"story\":{\"title\":\"Orbit\"}}\n```"
	c, err := parseContent(fenced)
	require.NoError(t, err)
	assert.Equal(t, "sci-fi", c.Genre)
	assert.Equal(t, "Orbit", c.Story.Title)

	_, err = parseContent("no json here")
	assert.Error(t, err)

	_, err = parseContent("{not json}")
	assert.Error(t, err)
}

func chatReply(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1,
		"model":   "test-model",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
	}
}

func TestOpenAIEnricher_RetriesThenParses(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if n == 1 {
			_ = json.NewEncoder(w).Encode(chatReply("sorry, I cannot"))
			return
		}
		_ = json.NewEncoder(w).Encode(chatReply("```json\n{\"story\":{\"title\":\"Star Snake\",\"plot\":\"Eat stars.\"}}\n```"))
	}))
	defer srv.Close()

	e, err := NewOpenAIEnricher(OpenAIConfig{APIKey: "test", BaseURL: srv.URL + "/v1", Model: "test-model", Timeout: 5 * time.Second, MaxRetries: 3, Backoff: time.Millisecond}, zerolog.Nop())
	require.NoError(t, err)

	c, err := e.Enrich(context.Background(), Request{Prompt: "space snake", Template: sampleTemplate()})
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, SourceOpenAI, c.Source)
	assert.Equal(t, GenreSciFi, c.Genre)
	assert.Equal(t, GenreSciFi, c.Story.Genre)
	assert.Equal(t, "Star Snake", c.Story.Title)
}

func TestOpenAIEnricher_GivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"error":{"message":"boom","type":"server_error"}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	e, err := NewOpenAIEnricher(OpenAIConfig{APIKey: "test", BaseURL: srv.URL + "/v1", MaxRetries: 2, Backoff: time.Millisecond}, zerolog.Nop())
	require.NoError(t, err)

	_, err = e.Enrich(context.Background(), Request{Template: sampleTemplate()})
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestOpenAIEnricher_BackoffStopsOnContextDone(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"error":{"message":"boom","type":"server_error"}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	e, err := NewOpenAIEnricher(OpenAIConfig{APIKey: "test", BaseURL: srv.URL + "/v1", MaxRetries: 3, Backoff: time.Hour}, zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err = e.Enrich(ctx, Request{Template: sampleTemplate()})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 10*time.Second, "waiting between attempts must end with the context")
	assert.Equal(t, int32(1), calls.Load(), "no retry after the context is done")
}

func TestNewOpenAIEnricher_RequiresKey(t *testing.T) {
	_, err := NewOpenAIEnricher(OpenAIConfig{}, zerolog.Nop())
	assert.Error(t, err)
}
