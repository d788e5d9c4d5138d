package prompts

import (
	"strings"
	"testing"
)

const sampleSRT = "1\n00:00:00,000 --> 00:00:03,000\nAaj hum iPhone 17 unbox kar rahe hain\n"

func TestBuildEmbedsTranscript(t *testing.T) {
	for _, style := range Styles() {
		t.Run(style, func(t *testing.T) {
			prompt := Build(style, sampleSRT)
			if !strings.Contains(prompt, sampleSRT) {
				t.Error("prompt does not embed the transcript verbatim")
			}
			if !strings.Contains(prompt, "<Transcript>") {
				t.Error("prompt missing <Transcript> input block")
			}
		})
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	first := Build("trakin_tech_marathi", sampleSRT)
	second := Build("trakin_tech_marathi", sampleSRT)
	if first != second {
		t.Error("Build() is not deterministic for identical inputs")
	}
}

func TestBuildUnknownStyleFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		style string
	}{
		{"empty style", ""},
		{"unknown style", "trakin_auto"},
		{"case mismatch", "Trakin_Tech_Marathi"},
	}

	want := Build(DefaultStyle, sampleSRT)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.style, sampleSRT)
			if got == "" {
				t.Fatal("Build() returned empty prompt")
			}
			if got != want {
				t.Error("unknown style did not fall back to the default template")
			}
		})
	}
}

func TestStyleContent(t *testing.T) {
	tests := []struct {
		style    string
		contains []string
	}{
		{
			style: "trakin_tech_marathi",
			contains: []string{
				"Marathi YouTube video description",
				"Social Media Handles",
				"Chapter titles with timestamps",
				"hashtags",
			},
		},
		{
			style: "trakin_tech_tamil",
			contains: []string{
				"Tamil YouTube video description",
				"Subscribe to our other channels",
			},
		},
		{
			style: "trakin_tech",
			contains: []string{
				"description in Hindi",
				"Video Highlights",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			prompt := Build(tt.style, sampleSRT)
			for _, want := range tt.contains {
				if !strings.Contains(prompt, want) {
					t.Errorf("prompt for %s missing %q", tt.style, want)
				}
			}
		})
	}
}
