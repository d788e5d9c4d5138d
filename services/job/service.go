package job

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"yt-describe/errors"
	"yt-describe/models"
	"yt-describe/session"
	"yt-describe/subtitles"
	"yt-describe/validation"
)

type service struct {
	store      *session.Store
	downloader Downloader
	translator Translator
	generator  Generator
	validator  *validation.Validator
	config     Config
	logger     zerolog.Logger
}

func NewService(
	store *session.Store,
	downloader Downloader,
	translator Translator,
	generator Generator,
	validator *validation.Validator,
	config Config,
) Service {
	return &service{
		store:      store,
		downloader: downloader,
		translator: translator,
		generator:  generator,
		validator:  validator,
		config:     config,
		logger: zerolog.New(os.Stdout).With().
			Timestamp().
			Str("component", "job").
			Logger(),
	}
}

func (s *service) Process(ctx context.Context, url, channel string) (*models.Job, error) {
	const op = "JobService.Process"

	if url == "" {
		return nil, errors.InvalidInput(op, nil, "No URL provided")
	}
	if channel == "" {
		return nil, errors.InvalidInput(op, nil, "No channel selected")
	}
	if err := s.validator.ValidateURL(url); err != nil {
		return nil, err
	}

	now := time.Now()
	record := &models.Job{
		ID:        uuid.New().String(),
		Status:    models.StatusStarting,
		Progress:  0,
		Channel:   channel,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// The record must be in the store before the goroutine starts so an
	// immediate poll never races against absence.
	s.store.Create(record)
	snapshot := *record

	s.logger.Info().
		Str("session_id", record.ID).
		Str("url", url).
		Str("channel", channel).
		Msg("Job created")

	go s.run(record.ID, url, channel)

	return &snapshot, nil
}

func (s *service) Get(ctx context.Context, id string) (*models.Job, error) {
	const op = "JobService.Get"

	record, ok := s.store.Get(id)
	if !ok {
		return nil, errors.NotFound(op, nil, "Session not found")
	}
	return &record, nil
}

func (s *service) FilePath(ctx context.Context, id, fileType string) (string, error) {
	const op = "JobService.FilePath"

	record, ok := s.store.Get(id)
	if !ok {
		return "", errors.NotFound(op, nil, "Session not found")
	}

	var path string
	switch fileType {
	case "srt":
		path = record.SRTFile
	case "description":
		path = record.DescriptionFile
	default:
		return "", errors.InvalidInput(op, nil, "Invalid file type")
	}

	if path == "" {
		return "", errors.NotFound(op, nil, "File not found")
	}
	if _, err := os.Stat(path); err != nil {
		return "", errors.NotFound(op, err, "File not found")
	}
	return path, nil
}

// run is the whole pipeline for one job: strictly linear, single writer, no
// cancellation and no orchestrator-level timeout. The first stage error is
// terminal.
func (s *service) run(id, url, channel string) {
	logger := s.logger.With().Str("session_id", id).Logger()
	ctx := context.Background()

	if !s.config.HasCredentials {
		err := errors.Configuration("JobService.run", nil,
			"OPENAI_API_KEY or GEMINI_API_KEY not found in environment")
		s.fail(id, "Configuration error", err)
		logger.Error().Msg("Job aborted: missing API credentials")
		return
	}

	s.update(id, func(j *models.Job) {
		j.Status = models.StatusDownloading
		j.Progress = 10
	})
	result, err := s.downloader.Download(ctx, url)
	if err != nil {
		s.fail(id, "Download error", err)
		return
	}
	s.update(id, func(j *models.Job) {
		j.VideoTitle = result.Title
		j.Progress = 30
	})
	s.update(id, func(j *models.Job) {
		j.AudioFile = result.AudioPath
		j.StrategyUsed = result.Strategy
		j.Progress = 50
	})

	// The audio file is pipeline-internal; drop it whether or not the
	// remaining stages succeed. Transcript and description files stay.
	defer func() {
		if err := os.Remove(result.AudioPath); err != nil && !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("audio", result.AudioPath).Msg("Failed to remove audio file")
		}
	}()

	s.update(id, func(j *models.Job) {
		j.Status = models.StatusTranscribing
		j.Progress = 60
	})
	srtPath, srtText, err := s.translator.Translate(ctx, result.AudioPath, result.SafeTitle)
	if err != nil {
		s.fail(id, "Translation error", err)
		return
	}
	logger.Debug().
		Int("srt_chars", len(srtText)).
		Int("transcript_words", len(strings.Fields(subtitles.ToPlainText(srtText)))).
		Msg("Transcription finished")
	s.update(id, func(j *models.Job) {
		j.SRTFile = srtPath
		j.Progress = 80
	})

	s.update(id, func(j *models.Job) {
		j.Status = models.StatusGenerating
		j.Progress = 90
	})
	descPath, _, err := s.generator.Describe(ctx, channel, srtText, srtPath)
	if err != nil {
		s.fail(id, "Description generation error", err)
		return
	}

	s.update(id, func(j *models.Job) {
		j.DescriptionFile = descPath
		j.Status = models.StatusCompleted
		j.Progress = 100
	})
	logger.Info().
		Str("strategy", result.Strategy).
		Str("srt", srtPath).
		Str("description", descPath).
		Msg("Job completed")
}

func (s *service) update(id string, fn func(*models.Job)) {
	s.store.Update(id, fn)
}

// fail records the first error with its stage prefix and moves the job to
// its terminal state. Configuration errors get a distinct status so pollers
// can tell a credentials problem from an operational failure.
func (s *service) fail(id, stage string, err error) {
	s.logger.Error().Str("session_id", id).Str("stage", stage).Err(err).Msg("Job failed")
	s.store.Update(id, func(j *models.Job) {
		j.Error = stage + ": " + err.Error()
		if errors.IsKind(err, errors.KindConfiguration) {
			j.Status = models.StatusConfigError
		} else {
			j.Status = models.StatusFailed
		}
	})
}
