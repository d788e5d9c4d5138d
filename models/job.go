package models

import (
	"time"
)

type Status string

const (
	StatusStarting     Status = "Starting..."
	StatusDownloading  Status = "Downloading audio..."
	StatusTranscribing Status = "Translating audio to English..."
	StatusGenerating   Status = "Generating description..."
	StatusCompleted    Status = "Completed"
	StatusFailed       Status = "Failed"
	StatusConfigError  Status = "Configuration error - check API keys"
)

// Job is the per-session record mutated by exactly one pipeline goroutine
// and read concurrently by progress polls. All access goes through the
// session store, which copies on read.
type Job struct {
	ID              string    `json:"session_id"`
	Status          Status    `json:"status"`
	Progress        int       `json:"progress"`
	VideoTitle      string    `json:"video_title"`
	AudioFile       string    `json:"audio_file,omitempty"`
	SRTFile         string    `json:"srt_file,omitempty"`
	DescriptionFile string    `json:"description_file,omitempty"`
	Channel         string    `json:"channel"`
	StrategyUsed    string    `json:"strategy_used,omitempty"`
	Error           string    `json:"error,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (j *Job) IsCompleted() bool { return j.Status == StatusCompleted }

func (j *Job) IsFailed() bool {
	return j.Status == StatusFailed || j.Status == StatusConfigError
}

// IsTerminal reports whether no further stage will run for this job.
func (j *Job) IsTerminal() bool {
	return j.IsCompleted() || j.IsFailed()
}
