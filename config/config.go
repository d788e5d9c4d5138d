package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Config struct {
	// Server settings
	ServerPort   string        `json:"server_port"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
	IdleTimeout  time.Duration `json:"idle_timeout"`
	Debug        bool          `json:"debug"`

	// Application paths
	WorkDir   string `json:"work_dir"`
	LogDir    string `json:"log_dir"`
	StaticDir string `json:"static_dir"`

	// Session store
	SessionTTL time.Duration `json:"session_ttl"`

	// External backends. Keys are deliberately not validated here; a missing
	// key surfaces through the job record, not as a startup failure.
	OpenAIAPIKey string `json:"-"`
	GeminiAPIKey string `json:"-"`
	WhisperModel string `json:"whisper_model"`
	GeminiModel  string `json:"gemini_model"`

	// Download settings
	Download DownloadConfig `json:"download"`

	// CORS Configuration
	CORS CORSConfig `json:"cors"`

	// Rate Limiting
	RateLimit RateLimitConfig `json:"rate_limit"`

	// Application version
	Version string `json:"version"`

	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type DownloadConfig struct {
	BinPath             string        `json:"bin_path"`
	CookiesFile         string        `json:"cookies_file"`
	CallTimeout         time.Duration `json:"call_timeout"`
	AttemptInterval     time.Duration `json:"attempt_interval"`
	AllowNonYouTubeURLs bool          `json:"allow_non_youtube_urls"`
}

type CORSConfig struct {
	AllowedOrigins []string `json:"allowed_origins"`
	AllowedMethods []string `json:"allowed_methods"`
	AllowedHeaders []string `json:"allowed_headers"`
}

type RateLimitConfig struct {
	Enabled           bool `json:"enabled"`
	RequestsPerMinute int  `json:"requests_per_minute"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		ReadTimeout:  getEnvAsDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout: getEnvAsDuration("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:  getEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
		Debug:        getEnvAsBool("DEBUG", false),

		WorkDir:   getEnv("WORK_DIR", "./data"),
		LogDir:    getEnv("LOG_DIR", "./logs"),
		StaticDir: getEnv("STATIC_DIR", "./static"),

		SessionTTL: getEnvAsDuration("SESSION_TTL", 24*time.Hour),

		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		WhisperModel: getEnv("WHISPER_MODEL", "whisper-1"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-pro"),

		Download: DownloadConfig{
			BinPath:             getEnv("YTDLP_PATH", "yt-dlp"),
			CookiesFile:         getEnv("YOUTUBE_COOKIES_FILE", ""),
			CallTimeout:         getEnvAsDuration("DOWNLOAD_CALL_TIMEOUT", 5*time.Minute),
			AttemptInterval:     getEnvAsDuration("DOWNLOAD_ATTEMPT_INTERVAL", 2*time.Second),
			AllowNonYouTubeURLs: getEnvAsBool("ALLOW_NON_YOUTUBE_URLS", false),
		},

		CORS: CORSConfig{
			AllowedOrigins: getEnvAsStringSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods: getEnvAsStringSlice(
				"CORS_ALLOWED_METHODS",
				[]string{"GET", "POST", "OPTIONS"},
			),
			AllowedHeaders: getEnvAsStringSlice("CORS_ALLOWED_HEADERS", []string{"Content-Type"}),
		},

		RateLimit: RateLimitConfig{
			Enabled:           getEnvAsBool("RATE_LIMIT_ENABLED", true),
			RequestsPerMinute: getEnvAsInt("RATE_LIMIT_RPM", 60),
		},

		Version: getEnv("VERSION", "1.0.0"),

		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validatePaths(c); err != nil {
		return err
	}
	if err := validateTimeouts(c); err != nil {
		return err
	}
	return nil
}

func validatePaths(c *Config) error {
	paths := []struct {
		path string
		name string
	}{
		{c.WorkDir, "work directory"},
		{c.LogDir, "log directory"},
	}

	for _, p := range paths {
		if err := os.MkdirAll(p.path, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create %s", p.name)
		}
	}

	if c.Download.CookiesFile != "" {
		if _, err := os.Stat(c.Download.CookiesFile); err != nil {
			return errors.Wrapf(err, "cookies file %s", filepath.Clean(c.Download.CookiesFile))
		}
	}

	return nil
}

func validateTimeouts(c *Config) error {
	if c.ReadTimeout <= 0 {
		return errors.New("read timeout must be positive")
	}
	if c.WriteTimeout <= 0 {
		return errors.New("write timeout must be positive")
	}
	if c.Download.CallTimeout <= 0 {
		return errors.New("download call timeout must be positive")
	}
	if c.SessionTTL <= 0 {
		return errors.New("session TTL must be positive")
	}
	return nil
}

// HasCredentials reports whether both backend API keys are configured.
func (c *Config) HasCredentials() bool {
	return c.OpenAIAPIKey != "" && c.GeminiAPIKey != ""
}

// Helper functions for reading environment variables
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsStringSlice(key string, defaultValue []string) []string {
	if value, exists := os.LookupEnv(key); exists {
		if value = strings.TrimSpace(value); value != "" {
			return strings.Split(value, ",")
		}
	}
	return defaultValue
}
