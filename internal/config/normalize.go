package config

import (
	"fmt"
	"os"
	"strings"
)

// Environment variables that override file values when set and non-empty.
const (
	EnvAccessToken = "ACCESS_TOKEN"
	EnvBaseURL     = "BASE_URL"
	EnvDraftsFile  = "DRAFTS_FILE"
	EnvLogLevel    = "THREADS_LOG_LEVEL"
	EnvLogFormat   = "THREADS_LOG_FORMAT"
)

func (c *Config) normalize() error {
	c.normalizeAPI()
	c.normalizeDrafts()
	return c.normalizeLogging()
}

func (c *Config) normalizeAPI() {
	if value, ok := lookupEnv(EnvAccessToken); ok {
		c.API.AccessToken = value
	}
	c.API.AccessToken = strings.TrimSpace(c.API.AccessToken)

	if value, ok := lookupEnv(EnvBaseURL); ok {
		c.API.BaseURL = value
	}
	c.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaultBaseURL
	}
	if c.API.TimeoutSeconds == 0 {
		c.API.TimeoutSeconds = defaultTimeoutSeconds
	}
	c.API.UserAgent = strings.TrimSpace(c.API.UserAgent)
	if c.API.UserAgent == "" {
		c.API.UserAgent = defaultUserAgent
	}
}

// normalizeDrafts leaves the file value unexpanded: a bare filename must reach
// the drafts path resolver untouched.
func (c *Config) normalizeDrafts() {
	if value, ok := lookupEnv(EnvDraftsFile); ok {
		c.Drafts.File = value
	}
	c.Drafts.File = strings.TrimSpace(c.Drafts.File)
	if c.Drafts.File == "" {
		c.Drafts.File = defaultDraftsFile
	}
}

func (c *Config) normalizeLogging() error {
	if value, ok := lookupEnv(EnvLogLevel); ok {
		c.Logging.Level = value
	}
	if value, ok := lookupEnv(EnvLogFormat); ok {
		c.Logging.Format = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) != "" {
		expanded, err := expandPath(strings.TrimSpace(c.Logging.File))
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}

func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return strings.TrimSpace(value), true
}
