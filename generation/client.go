// Package generation invokes the Gemini backend with a channel-styled prompt
// and accumulates its streamed output into a single description.
package generation

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	apperrors "yt-describe/errors"
	"yt-describe/prompts"
)

// MinTranscriptLength guards against submitting degenerate input to the
// backend; shorter SRT text fails fast as a validation error.
const MinTranscriptLength = 50

type Config struct {
	APIKey string
	Model  string
}

type Client struct {
	config  Config
	once    sync.Once
	api     *genai.Client
	initErr error
	logger  zerolog.Logger
}

func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-pro"
	}
	return &Client{
		config: cfg,
		logger: zerolog.New(os.Stdout).With().
			Timestamp().
			Str("component", "generation").
			Logger(),
	}
}

// ensure constructs the backend client on first use, so a missing key
// surfaces per job rather than at process start.
func (c *Client) ensure(ctx context.Context) error {
	c.once.Do(func() {
		if c.config.APIKey == "" {
			c.initErr = apperrors.Configuration(
				"GenerationClient", nil, "GEMINI_API_KEY not found in environment")
			return
		}
		c.api, c.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  c.config.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	return c.initErr
}

// Describe builds the style prompt around the raw SRT text, streams the
// backend response with the search tool enabled, and writes the accumulated
// description to <srt stem>_description.txt. Returns the description path
// and text.
func (c *Client) Describe(ctx context.Context, style, srt, srtPath string) (string, string, error) {
	const op = "GenerationClient.Describe"

	if len(strings.TrimSpace(srt)) < MinTranscriptLength {
		return "", "", apperrors.InvalidInput(op, nil,
			fmt.Sprintf("SRT content is too short (%d chars); file may be empty or corrupted", len(srt)))
	}

	if err := c.ensure(ctx); err != nil {
		return "", "", err
	}

	prompt := prompts.Build(style, srt)
	c.logger.Info().
		Str("style", style).
		Int("prompt_length", len(prompt)).
		Msg("Generating description")

	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}

	var b strings.Builder
	for resp, err := range c.api.Models.GenerateContentStream(ctx, c.config.Model, genai.Text(prompt), config) {
		if err != nil {
			return "", "", apperrors.GenerationFailed(op, err, "description generation failed")
		}
		b.WriteString(resp.Text())
	}

	text := b.String()
	descPath := descriptionPath(srtPath)
	if err := os.WriteFile(descPath, []byte(text), 0o644); err != nil {
		return "", "", apperrors.GenerationFailed(op, err, "failed to save description file")
	}

	c.logger.Info().
		Str("description", descPath).
		Int("length", len(text)).
		Msg("Saved generated description")

	return descPath, text, nil
}

// descriptionPath derives the description filename from the SRT path: same
// stem, _description.txt suffix.
func descriptionPath(srtPath string) string {
	return strings.TrimSuffix(srtPath, ".srt") + "_description.txt"
}
