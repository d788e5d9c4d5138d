package validation

import (
	"net/url"
	"strings"

	"yt-describe/config"
	"yt-describe/errors"
)

type Validator struct {
	config *config.Config
}

func NewValidator(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// ValidateURL performs URL validation
func (v *Validator) ValidateURL(urlStr string) error {
	const op = "Validator.ValidateURL"

	if urlStr == "" {
		return errors.InvalidInput(op, nil, "No URL provided")
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return errors.InvalidInput(op, err, "Invalid URL format")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.InvalidInput(op, nil, "URL must use HTTP or HTTPS")
	}

	if v.config.Download.AllowNonYouTubeURLs {
		return nil
	}

	if !isYouTubeDomain(parsedURL.Hostname()) {
		return errors.InvalidInput(op, nil, "Only YouTube URLs are supported")
	}

	return nil
}

func isYouTubeDomain(host string) bool {
	host = strings.ToLower(host)
	return host == "youtube.com" ||
		strings.HasSuffix(host, ".youtube.com") ||
		host == "youtu.be"
}
