package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"threads-cli/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with a unique temp drafts file per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.API.AccessToken = "test-token"
	cfgVal.API.TimeoutSeconds = 5
	cfgVal.Drafts.File = filepath.Join(base, "drafts.json")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithAccessToken sets the API token on the test config. An empty token
// simulates a user who never configured credentials.
func WithAccessToken(token string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.API.AccessToken = token
	}
}

// WithBaseURL points the test config at a fake API server.
func WithBaseURL(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.API.BaseURL = url
	}
}

// WithDraftsFile overrides the drafts file on the test config.
func WithDraftsFile(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Drafts.File = path
	}
}

// WriteConfig encodes cfg as TOML at path, creating parent directories.
func WriteConfig(t testing.TB, path string, cfg *config.Config) {
	t.Helper()

	data, err := cfg.EncodeTOML()
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

// IsolateEnv points HOME and the XDG directories at a fresh temp tree, clears
// every threads-cli environment override and changes into an empty working
// directory. It returns the temp root.
func IsolateEnv(t *testing.T) string {
	t.Helper()

	base := t.TempDir()
	home := filepath.Join(base, "home")
	work := filepath.Join(base, "work")
	for _, dir := range []string{home, work} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(base, "cache"))
	for _, key := range []string{
		config.EnvAccessToken,
		config.EnvBaseURL,
		config.EnvDraftsFile,
		config.EnvLogLevel,
		config.EnvLogFormat,
	} {
		t.Setenv(key, "")
	}
	t.Chdir(work)
	return base
}
