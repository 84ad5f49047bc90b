package enrichment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"gameforge/internal/model"
)

// OpenAIConfig configures an OpenAIEnricher.
type OpenAIConfig struct {
	APIKey     string
	BaseURL    string // empty uses the OpenAI default
	Model      string
	Timeout    time.Duration
	MaxRetries int
	Backoff    time.Duration // wait before the first retry, doubled after each failure
}

// OpenAIEnricher asks a chat-completion model for project content.
type OpenAIEnricher struct {
	client     *openai.Client
	model      string
	timeout    time.Duration
	maxRetries int
	backoff    time.Duration
	logger     zerolog.Logger
}

var errEmptyResponse = errors.New("empty response from model")

const contentSystemPrompt = `You design small browser games. Reply with a single JSON object and nothing else, using this shape:
{"genre": string,
 "story": {"title": string, "genre": string, "setting": string, "theme": string, "plot": string,
           "characters": [{"name": string, "role": string, "description": string}]},
 "assets": {"style": string,
            "characters": [{"name": string, "type": string, "description": string}],
            "environments": [{"name": string, "type": string, "description": string}],
            "items": [{"name": string, "type": string, "description": string}]},
 "gameplay": {"mechanics": [string], "objectives": [string], "controls": [string], "progression": string}}
Keep every text short. Do not change the game's controls or mechanics, only describe them.`

// NewOpenAIEnricher creates an enricher backed by the chat completions API.
func NewOpenAIEnricher(cfg OpenAIConfig, logger zerolog.Logger) (*OpenAIEnricher, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai enricher: api key is required")
	}
	if cfg.Model == "" {
		cfg.Model = openai.GPT4oMini
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = 500 * time.Millisecond
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAIEnricher{
		client:     openai.NewClientWithConfig(clientCfg),
		model:      cfg.Model,
		timeout:    cfg.Timeout,
		maxRetries: cfg.MaxRetries,
		backoff:    cfg.Backoff,
		logger:     logger.With().Str("component", "openai_enricher").Logger(),
	}, nil
}

// Enrich implements Enricher.
func (e *OpenAIEnricher) Enrich(ctx context.Context, req Request) (*model.Content, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	genre := ResolveGenre(req)
	chatReq := openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: contentSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(req, genre)},
		},
		Temperature: 0.8,
		MaxTokens:   1200,
	}

	var lastErr error
	for attempt := 1; attempt <= e.maxRetries; attempt++ {
		resp, err := e.client.CreateChatCompletion(ctx, chatReq)
		if err == nil && len(resp.Choices) == 0 {
			err = errEmptyResponse
		}
		if err == nil {
			var content *model.Content
			content, err = parseContent(resp.Choices[0].Message.Content)
			if err == nil {
				return finish(content, genre), nil
			}
		}

		lastErr = err
		e.logger.Warn().Err(err).Int("attempt", attempt).Str("template_id", req.Template.ID).Msg("content request failed")
		if attempt == e.maxRetries {
			break
		}
		timer := time.NewTimer(e.backoff << (attempt - 1))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("openai enrichment stopped after %d attempts: %w", attempt, errors.Join(lastErr, ctx.Err()))
		case <-timer.C:
		}
	}
	return nil, fmt.Errorf("openai enrichment failed after %d attempts: %w", e.maxRetries, lastErr)
}

func userPrompt(req Request, genre string) string {
	t := req.Template
	var b strings.Builder
	fmt.Fprintf(&b, "Game template: %s (%s)\n", t.Name, t.Description)
	fmt.Fprintf(&b, "Genre: %s\n", genre)
	if len(t.Structure.Mechanics) > 0 {
		fmt.Fprintf(&b, "Mechanics: %s\n", strings.Join(t.Structure.Mechanics, ", "))
	}
	if len(t.Prebuilt.Gameplay.Controls) > 0 {
		fmt.Fprintf(&b, "Controls: %s\n", strings.Join(t.Prebuilt.Gameplay.Controls, "; "))
	}
	if req.Prompt != "" {
		fmt.Fprintf(&b, "Player request: %s\n", req.Prompt)
	}
	return b.String()
}

// parseContent extracts the JSON object from a reply that may be wrapped in
// a markdown code fence or surrounded by prose.
func parseContent(reply string) (*model.Content, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("no JSON object in reply: %q", truncate(reply, 80))
	}

	var content model.Content
	if err := json.Unmarshal([]byte(reply[start:end+1]), &content); err != nil {
		return nil, fmt.Errorf("invalid JSON in reply: %w", err)
	}
	return &content, nil
}

func finish(c *model.Content, genre string) *model.Content {
	c.Source = SourceOpenAI
	if c.Genre == "" {
		c.Genre = genre
	}
	if c.Story.Genre == "" {
		c.Story.Genre = c.Genre
	}
	return c
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
