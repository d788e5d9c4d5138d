package download

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	apperrors "yt-describe/errors"
)

type Config struct {
	// BinPath is the yt-dlp executable.
	BinPath string
	// WorkDir receives the downloaded audio files.
	WorkDir string
	// CookiesFile is optional session cookie material, consumed only by
	// strategies that opt in.
	CookiesFile string
	// CallTimeout bounds each individual yt-dlp invocation.
	CallTimeout time.Duration
	// AttemptInterval paces strategy attempts against the source.
	AttemptInterval time.Duration
}

// Result is a successful acquisition: a local audio file plus the sanitized
// title later stages derive their filenames from.
type Result struct {
	AudioPath string
	Title     string
	SafeTitle string
	Strategy  string
}

// Downloader walks an ordered strategy chain until one strategy produces an
// audio file. A strategy fails closed on any error and control falls through
// to the next one; only full exhaustion surfaces as a download failure.
type Downloader struct {
	config     Config
	strategies []Strategy
	runner     Runner
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

type Option func(*Downloader)

// WithRunner replaces the exec-backed command runner.
func WithRunner(r Runner) Option {
	return func(d *Downloader) { d.runner = r }
}

func NewDownloader(cfg Config, strategies []Strategy, opts ...Option) *Downloader {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	interval := cfg.AttemptInterval
	if interval <= 0 {
		interval = time.Second
	}

	d := &Downloader{
		config:     cfg,
		strategies: strategies,
		runner:     execRunner{},
		limiter:    rate.NewLimiter(rate.Every(interval), 1),
		logger: zerolog.New(os.Stdout).With().
			Timestamp().
			Str("component", "downloader").
			Logger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Download tries each strategy in order and returns the first success. When
// every strategy has failed it returns a download failure carrying the last
// underlying error for diagnostics.
func (d *Downloader) Download(ctx context.Context, url string) (*Result, error) {
	const op = "Downloader.Download"

	var lastErr error
	for _, strategy := range d.strategies {
		if err := d.limiter.Wait(ctx); err != nil {
			return nil, apperrors.DownloadFailed(op, err, "download aborted")
		}

		result, err := d.attempt(ctx, url, strategy)
		if err != nil {
			lastErr = err
			d.logger.Warn().
				Str("strategy", strategy.Name).
				Str("url", url).
				Err(err).
				Msg("Download strategy failed")
			continue
		}

		result.Strategy = strategy.Name
		d.logger.Info().
			Str("strategy", strategy.Name).
			Str("title", result.Title).
			Msg("Download succeeded")
		return result, nil
	}

	return nil, apperrors.DownloadFailed(op, lastErr, "all download strategies failed")
}

// attempt probes metadata first, then fetches the audio stream. Either step
// failing fails the whole strategy.
func (d *Downloader) attempt(ctx context.Context, url string, strategy Strategy) (*Result, error) {
	title, err := d.probeTitle(ctx, url, strategy)
	if err != nil {
		return nil, errors.Wrap(err, "metadata probe")
	}

	safeTitle := SanitizeTitle(title)
	if safeTitle == "" {
		safeTitle = "audio"
	}
	audioPath := filepath.Join(d.config.WorkDir, safeTitle+".m4a")

	callCtx, cancel := d.callContext(ctx)
	defer cancel()

	args := strategy.args(d.config,
		"-f", "bestaudio[ext=m4a]/bestaudio",
		"-o", audioPath,
		url,
	)
	if _, err := d.runner.Run(callCtx, d.config.BinPath, args...); err != nil {
		return nil, errors.Wrap(err, "audio fetch")
	}

	if _, err := os.Stat(audioPath); err != nil {
		return nil, errors.Wrap(err, "audio file missing after download")
	}

	return &Result{
		AudioPath: audioPath,
		Title:     title,
		SafeTitle: safeTitle,
	}, nil
}

func (d *Downloader) probeTitle(ctx context.Context, url string, strategy Strategy) (string, error) {
	callCtx, cancel := d.callContext(ctx)
	defer cancel()

	args := strategy.args(d.config, "--print", "title", "--skip-download", url)
	out, err := d.runner.Run(callCtx, d.config.BinPath, args...)
	if err != nil {
		return "", err
	}

	title, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	title = strings.TrimSpace(title)
	if title == "" {
		return "", errors.New("extractor returned an empty title")
	}
	return title, nil
}

func (d *Downloader) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.config.CallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d.config.CallTimeout)
}

// SanitizeTitle keeps alphanumerics, spaces, hyphens and underscores and
// trims trailing spaces. Deterministic; titles differing only in stripped
// characters can collide, which is a documented limitation of the naming
// scheme rather than something to silently repair.
func SanitizeTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " ")
}
