package config

const (
	appName = "threads-cli"

	defaultBaseURL        = "https://graph.threads.net/v1.0"
	defaultTimeoutSeconds = 30
	defaultUserAgent      = "threads-cli/dev"
	defaultDraftsFile     = "drafts.json"
	defaultLogFormat      = "console"
	defaultLogLevel       = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		API: API{
			BaseURL:        defaultBaseURL,
			TimeoutSeconds: defaultTimeoutSeconds,
			UserAgent:      defaultUserAgent,
		},
		Drafts: Drafts{
			File: defaultDraftsFile,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
