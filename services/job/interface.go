package job

import (
	"context"

	"yt-describe/download"
	"yt-describe/models"
)

type Service interface {
	// Process validates the request, registers a session and starts the
	// pipeline in the background. The returned record is the initial
	// snapshot; progress is observed through Get.
	Process(ctx context.Context, url, channel string) (*models.Job, error)

	// Get returns a snapshot of the session's job record.
	Get(ctx context.Context, id string) (*models.Job, error)

	// FilePath resolves a produced artifact ("srt" or "description") to its
	// on-disk path.
	FilePath(ctx context.Context, id, fileType string) (string, error)
}

// Downloader acquires an audio file for a URL through the strategy chain.
type Downloader interface {
	Download(ctx context.Context, url string) (*download.Result, error)
}

// Translator produces English SRT text from a local audio file and persists
// it, returning the SRT path and raw text.
type Translator interface {
	Translate(ctx context.Context, audioPath, safeTitle string) (srtPath, srtText string, err error)
}

// Generator turns raw SRT text into a channel-styled description, persisting
// it next to the SRT.
type Generator interface {
	Describe(ctx context.Context, style, srt, srtPath string) (descPath, text string, err error)
}

type Config struct {
	// HasCredentials gates the whole pipeline: when false the job fails as a
	// configuration error before any backend call.
	HasCredentials bool
}
