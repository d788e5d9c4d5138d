// Package transcription turns a local audio file into English SRT subtitles
// via the Whisper translations endpoint. Translation, not transcription: the
// backend renders any source language into English.
package transcription

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	apperrors "yt-describe/errors"
)

type Config struct {
	APIKey  string
	Model   string
	WorkDir string
}

// translationAPI is the slice of the OpenAI client Translate needs.
type translationAPI interface {
	CreateTranslation(ctx context.Context, request openai.AudioRequest) (openai.AudioResponse, error)
}

type Client struct {
	config Config
	api    translationAPI
	logger zerolog.Logger
}

func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = string(openai.Whisper1)
	}

	c := &Client{
		config: cfg,
		logger: zerolog.New(os.Stdout).With().
			Timestamp().
			Str("component", "transcription").
			Logger(),
	}
	if cfg.APIKey != "" {
		c.api = openai.NewClient(cfg.APIKey)
	}
	return c
}

// Translate sends the audio file for translation and persists the raw SRT
// next to the audio as <safeTitle>.srt. The returned text keeps its timing
// lines; downstream chapter extraction depends on them.
func (c *Client) Translate(ctx context.Context, audioPath, safeTitle string) (string, string, error) {
	const op = "TranscriptionClient.Translate"

	if c.api == nil {
		return "", "", apperrors.Configuration(op, nil, "OPENAI_API_KEY not found in environment")
	}

	c.logger.Info().Str("audio", audioPath).Msg("Translating audio to English")

	resp, err := c.api.CreateTranslation(ctx, openai.AudioRequest{
		Model:    c.config.Model,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatSRT,
	})
	if err != nil {
		return "", "", apperrors.TranscriptionFailed(op, err, "audio translation failed")
	}

	srtPath := filepath.Join(c.config.WorkDir, safeTitle+".srt")
	if err := os.WriteFile(srtPath, []byte(resp.Text), 0o644); err != nil {
		return "", "", apperrors.TranscriptionFailed(op, err, "failed to save SRT file")
	}

	c.logger.Info().
		Str("srt", srtPath).
		Int("length", len(resp.Text)).
		Msg("Saved SRT transcript")

	return srtPath, resp.Text, nil
}
