package download

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Runner abstracts command execution so the strategy chain can be exercised
// without a real yt-dlp binary.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := lastLine(stderr.String())
		if detail != "" {
			return nil, errors.Wrapf(err, "%s: %s", name, detail)
		}
		return nil, errors.Wrap(err, name)
	}

	return stdout.Bytes(), nil
}

// lastLine picks the final non-empty stderr line, which for yt-dlp carries
// the actual extractor error.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
