package models

import "testing"

func TestJobStates(t *testing.T) {
	tests := []struct {
		name         string
		status       Status
		wantComplete bool
		wantFailed   bool
		wantTerminal bool
	}{
		{"starting", StatusStarting, false, false, false},
		{"downloading", StatusDownloading, false, false, false},
		{"transcribing", StatusTranscribing, false, false, false},
		{"generating", StatusGenerating, false, false, false},
		{"completed", StatusCompleted, true, false, true},
		{"failed", StatusFailed, false, true, true},
		{"config error", StatusConfigError, false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := &Job{Status: tt.status}
			if got := j.IsCompleted(); got != tt.wantComplete {
				t.Errorf("IsCompleted() = %v, want %v", got, tt.wantComplete)
			}
			if got := j.IsFailed(); got != tt.wantFailed {
				t.Errorf("IsFailed() = %v, want %v", got, tt.wantFailed)
			}
			if got := j.IsTerminal(); got != tt.wantTerminal {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.wantTerminal)
			}
		})
	}
}
