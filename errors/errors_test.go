package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "message only",
			err:  InvalidInput("op", nil, "URL is required"),
			want: "URL is required",
		},
		{
			name: "message with cause",
			err:  DownloadFailed("op", errors.New("403 forbidden"), "all download strategies failed"),
			want: "all download strategies failed: 403 forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKinds(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind Kind
		wantCode int
	}{
		{"configuration", Configuration("op", nil, "missing key"), KindConfiguration, http.StatusInternalServerError},
		{"download", DownloadFailed("op", nil, "exhausted"), KindDownload, http.StatusBadGateway},
		{"transcription", TranscriptionFailed("op", nil, "failed"), KindTranscription, http.StatusBadGateway},
		{"generation", GenerationFailed("op", nil, "failed"), KindGeneration, http.StatusBadGateway},
		{"validation", InvalidInput("op", nil, "bad input"), KindValidation, http.StatusBadRequest},
		{"not found has no kind", NotFound("op", nil, "missing"), Kind(""), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.wantKind {
				t.Errorf("KindOf() = %q, want %q", got, tt.wantKind)
			}
			var appErr *AppError
			if !errors.As(tt.err, &appErr) {
				t.Fatal("expected *AppError")
			}
			if appErr.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", appErr.Code, tt.wantCode)
			}
		})
	}
}

func TestKindOfWrapped(t *testing.T) {
	cause := Configuration("op", nil, "GEMINI_API_KEY not set")
	wrapped := fmt.Errorf("pipeline: %w", cause)

	if got := KindOf(wrapped); got != KindConfiguration {
		t.Errorf("KindOf(wrapped) = %q, want %q", got, KindConfiguration)
	}
	if !IsKind(wrapped, KindConfiguration) {
		t.Error("IsKind(wrapped, KindConfiguration) = false, want true")
	}
	if KindOf(errors.New("plain")) != "" {
		t.Error("KindOf(plain error) should be empty")
	}
}
