package download

import (
	"sort"
	"strings"
)

// Strategy is one extraction identity tried against the video source. The
// chain walks strategies strictly in order, so ordering is policy: highest
// audio quality first, blocking-resistant identities last.
type Strategy struct {
	Name         string            `json:"name"`
	PlayerClient string            `json:"player_client"`
	UserAgent    string            `json:"user_agent"`
	Headers      map[string]string `json:"headers,omitempty"`
	// SkipFlags are passed to the extractor as player_skip values, trimming
	// requests that trip bot detection.
	SkipFlags []string `json:"skip_flags,omitempty"`
	// UseCookies attaches the configured cookie file, when present. Reserved
	// for the highest-priority strategy.
	UseCookies bool `json:"use_cookies,omitempty"`
}

// DefaultStrategies returns the built-in chain. Callers may supply their own
// ordered list instead; nothing below is hard-coded into the chain walk.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{
			Name:         "android",
			PlayerClient: "android",
			UserAgent:    "com.google.android.youtube/19.09.37 (Linux; U; Android 11) gzip",
			SkipFlags:    []string{"webpage", "configs"},
			UseCookies:   true,
		},
		{
			Name:         "ios",
			PlayerClient: "ios",
			UserAgent:    "com.google.ios.youtube/19.09.3 (iPhone14,3; U; CPU iOS 15_6 like Mac OS X)",
			SkipFlags:    []string{"webpage"},
		},
		{
			Name:         "web",
			PlayerClient: "web",
			UserAgent:    "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
			Headers: map[string]string{
				"Accept-Language": "en-US,en;q=0.9",
			},
		},
		{
			Name:         "tv_embedded",
			PlayerClient: "tv_embedded",
			UserAgent:    "Mozilla/5.0 (SMART-TV; LINUX; Tizen 6.5) AppleWebKit/537.36 (KHTML, like Gecko) Safari/537.36",
		},
	}
}

// args builds the yt-dlp argument list for this strategy, appending the
// call-specific extra arguments last.
func (s Strategy) args(cfg Config, extra ...string) []string {
	args := []string{"--no-playlist", "--no-warnings", "--socket-timeout", "15"}

	extractorArgs := "youtube:player_client=" + s.PlayerClient
	if len(s.SkipFlags) > 0 {
		extractorArgs += ";player_skip=" + strings.Join(s.SkipFlags, ",")
	}
	args = append(args, "--extractor-args", extractorArgs)

	if s.UserAgent != "" {
		args = append(args, "--user-agent", s.UserAgent)
	}
	for _, key := range sortedKeys(s.Headers) {
		args = append(args, "--add-header", key+":"+s.Headers[key])
	}
	if s.UseCookies && cfg.CookiesFile != "" {
		args = append(args, "--cookies", cfg.CookiesFile)
	}

	return append(args, extra...)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
