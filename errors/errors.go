package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies pipeline failures so the orchestrator can pick the right
// terminal status without inspecting message text.
type Kind string

const (
	KindConfiguration Kind = "configuration"
	KindDownload      Kind = "download"
	KindTranscription Kind = "transcription"
	KindValidation    Kind = "validation"
	KindGeneration    Kind = "generation"
)

type AppError struct {
	Code    int    `json:"-"`
	Kind    Kind   `json:"-"`
	Message string `json:"error"`
	Op      string `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func InvalidInput(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func NotFound(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func Internal(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// Configuration marks missing or unusable credentials. Fatal for the job,
// never retried.
func Configuration(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindConfiguration,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// DownloadFailed means every download strategy was exhausted.
func DownloadFailed(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusBadGateway,
		Kind:    KindDownload,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func TranscriptionFailed(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusBadGateway,
		Kind:    KindTranscription,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func GenerationFailed(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusBadGateway,
		Kind:    KindGeneration,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// KindOf returns the Kind of the first AppError in err's chain, or "" if
// there is none.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
