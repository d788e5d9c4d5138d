package validation

import (
	"testing"

	"yt-describe/config"
)

func TestValidateURL(t *testing.T) {
	cfg := &config.Config{}
	validator := NewValidator(cfg)

	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{
			name:    "Empty URL",
			url:     "",
			wantErr: true,
		},
		{
			name:    "JavaScript URL",
			url:     "javascript:alert(1)",
			wantErr: true,
		},
		{
			name:    "Invalid URL format",
			url:     "not-a-url",
			wantErr: true,
		},
		{
			name:    "Non-HTTP scheme",
			url:     "ftp://example.com",
			wantErr: true,
		},
		{
			name:    "Valid YouTube URL",
			url:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantErr: false,
		},
		{
			name:    "Valid YouTube shorts URL",
			url:     "https://www.youtube.com/shorts/dQw4w9WgXcQ",
			wantErr: false,
		},
		{
			name:    "Valid YouTube short URL",
			url:     "https://youtu.be/dQw4w9WgXcQ",
			wantErr: false,
		},
		{
			name:    "Mobile YouTube URL",
			url:     "https://m.youtube.com/watch?v=dQw4w9WgXcQ",
			wantErr: false,
		},
		{
			name:    "Lookalike domain",
			url:     "https://notyoutube.com/watch?v=dQw4w9WgXcQ",
			wantErr: true,
		},
		{
			name:    "Non-YouTube URL",
			url:     "https://example.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateURLAllowNonYouTube(t *testing.T) {
	cfg := &config.Config{}
	cfg.Download.AllowNonYouTubeURLs = true
	validator := NewValidator(cfg)

	if err := validator.ValidateURL("https://example.com/video"); err != nil {
		t.Errorf("ValidateURL() error = %v, expected no error when non-YouTube URLs are allowed", err)
	}
}
