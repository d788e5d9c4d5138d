package generation

import (
	"context"
	"strings"
	"testing"

	apperrors "yt-describe/errors"
)

func TestDescribeRejectsShortTranscript(t *testing.T) {
	tests := []struct {
		name string
		srt  string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\n\t  "},
		{"just under the limit", strings.Repeat("x", MinTranscriptLength-1)},
	}

	// No API key configured: a short transcript must fail validation before
	// the backend client is ever constructed.
	client := NewClient(Config{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := client.Describe(context.Background(), "trakin_tech", tt.srt, "video.srt")
			if err == nil {
				t.Fatal("Describe() error = nil, want validation error")
			}
			if !apperrors.IsKind(err, apperrors.KindValidation) {
				t.Errorf("error kind = %q, want %q", apperrors.KindOf(err), apperrors.KindValidation)
			}
		})
	}
}

func TestDescribeMissingKeyIsConfigurationError(t *testing.T) {
	client := NewClient(Config{})
	srt := strings.Repeat("subtitle text ", 10)

	_, _, err := client.Describe(context.Background(), "trakin_tech", srt, "video.srt")
	if err == nil {
		t.Fatal("Describe() error = nil, want configuration error")
	}
	if !apperrors.IsKind(err, apperrors.KindConfiguration) {
		t.Errorf("error kind = %q, want %q", apperrors.KindOf(err), apperrors.KindConfiguration)
	}
}

func TestDescriptionPath(t *testing.T) {
	tests := []struct {
		srtPath string
		want    string
	}{
		{"/data/My Video.srt", "/data/My Video_description.txt"},
		{"clip.srt", "clip_description.txt"},
		{"no-extension", "no-extension_description.txt"},
	}

	for _, tt := range tests {
		if got := descriptionPath(tt.srtPath); got != tt.want {
			t.Errorf("descriptionPath(%q) = %q, want %q", tt.srtPath, got, tt.want)
		}
	}
}
