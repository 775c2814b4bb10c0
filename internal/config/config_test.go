package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"threads-cli/internal/config"
)

// isolate points HOME and XDG dirs at a temp tree, clears overrides and moves
// into an empty working directory so no stray .env or threads-cli.toml leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	t.Setenv("HOME", base)
	t.Setenv("XDG_CONFIG_HOME", "")
	for _, key := range []string{
		config.EnvAccessToken,
		config.EnvBaseURL,
		config.EnvDraftsFile,
		config.EnvLogLevel,
		config.EnvLogFormat,
	} {
		t.Setenv(key, "")
	}
	work := filepath.Join(base, "work")
	if err := os.MkdirAll(work, 0o755); err != nil {
		t.Fatalf("mkdir work dir: %v", err)
	}
	t.Chdir(work)
	return base
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	wantPath := filepath.Join(home, ".config", "threads-cli", "config.toml")
	if resolved != wantPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, wantPath)
	}
	if cfg.API.BaseURL != "https://graph.threads.net/v1.0" {
		t.Fatalf("unexpected base url: %q", cfg.API.BaseURL)
	}
	if cfg.API.AccessToken != "" {
		t.Fatalf("expected empty access token, got %q", cfg.API.AccessToken)
	}
	if cfg.Drafts.File != "drafts.json" {
		t.Fatalf("unexpected drafts file: %q", cfg.Drafts.File)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Timeout().Seconds() != 30 {
		t.Fatalf("unexpected timeout: %s", cfg.Timeout())
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvAccessToken, " token-abc ")
	t.Setenv(config.EnvBaseURL, "http://127.0.0.1:9999/v1.0/")
	t.Setenv(config.EnvDraftsFile, "other.json")
	t.Setenv(config.EnvLogLevel, "DEBUG")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.AccessToken != "token-abc" {
		t.Fatalf("unexpected token: %q", cfg.API.AccessToken)
	}
	if cfg.API.BaseURL != "http://127.0.0.1:9999/v1.0" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.API.BaseURL)
	}
	if cfg.Drafts.File != "other.json" {
		t.Fatalf("unexpected drafts file: %q", cfg.Drafts.File)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.Logging.Level)
	}
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvBaseURL, "https://env.example.com")
	// dotenv only fills variables that are absent, not ones set to "".
	os.Unsetenv(config.EnvAccessToken)
	dotenv := "ACCESS_TOKEN=from-dotenv\nBASE_URL=https://dotenv.example.com\n"
	if err := os.WriteFile(".env", []byte(dotenv), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.BaseURL != "https://env.example.com" {
		t.Fatalf("expected environment to win over .env, got %q", cfg.API.BaseURL)
	}
	if cfg.API.AccessToken != "from-dotenv" {
		t.Fatalf("expected token from .env, got %q", cfg.API.AccessToken)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	configPath := filepath.Join(t.TempDir(), "threads.toml")

	type payload struct {
		API struct {
			AccessToken    string `toml:"access_token"`
			BaseURL        string `toml:"base_url"`
			TimeoutSeconds int    `toml:"timeout_seconds"`
		} `toml:"api"`
		Drafts struct {
			File string `toml:"file"`
		} `toml:"drafts"`
	}
	custom := payload{}
	custom.API.AccessToken = "file-token"
	custom.API.BaseURL = "https://example.com/threads"
	custom.API.TimeoutSeconds = 5
	custom.Drafts.File = "/tmp/custom-drafts.json"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.API.AccessToken != "file-token" {
		t.Fatalf("expected token from file, got %q", cfg.API.AccessToken)
	}
	if cfg.API.BaseURL != "https://example.com/threads" {
		t.Fatalf("unexpected base url: %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 5 {
		t.Fatalf("unexpected timeout: %d", cfg.API.TimeoutSeconds)
	}
	if cfg.Drafts.File != "/tmp/custom-drafts.json" {
		t.Fatalf("unexpected drafts file: %q", cfg.Drafts.File)
	}

	t.Setenv(config.EnvAccessToken, "env-token")
	cfg, _, _, err = config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.AccessToken != "env-token" {
		t.Fatalf("expected environment to override file, got %q", cfg.API.AccessToken)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	isolate(t)
	configPath := filepath.Join(t.TempDir(), "threads.toml")
	if err := os.WriteFile(configPath, []byte("[api]\nbogus = 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]func(*config.Config){
		"relative base url": func(c *config.Config) { c.API.BaseURL = "graph.threads.net" },
		"ftp base url":      func(c *config.Config) { c.API.BaseURL = "ftp://graph.threads.net" },
		"zero timeout":      func(c *config.Config) { c.API.TimeoutSeconds = 0 },
		"empty drafts file": func(c *config.Config) { c.Drafts.File = " " },
		"log format":        func(c *config.Config) { c.Logging.Format = "xml" },
		"log level":         func(c *config.Config) { c.Logging.Level = "verbose" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestCreateSampleLoads(t *testing.T) {
	isolate(t)
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if cfg.Drafts.File != "drafts.json" {
		t.Fatalf("unexpected drafts file from sample: %q", cfg.Drafts.File)
	}
}

func TestDefaultConfigPathHonoursXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path, err := config.DefaultConfigPath()
	if err != nil {
		t.Fatalf("DefaultConfigPath: %v", err)
	}
	if want := filepath.Join(dir, "threads-cli", "config.toml"); path != want {
		t.Fatalf("unexpected path: got %q want %q", path, want)
	}
}

func TestRedactedMasksToken(t *testing.T) {
	cfg := config.Default()
	cfg.API.AccessToken = "THQWabcdef1234"
	redacted := cfg.Redacted()
	if strings.Contains(redacted.API.AccessToken, "abcdef") {
		t.Fatalf("expected token to be masked, got %q", redacted.API.AccessToken)
	}
	if !strings.HasSuffix(redacted.API.AccessToken, "1234") {
		t.Fatalf("expected last four characters kept, got %q", redacted.API.AccessToken)
	}
	if cfg.API.AccessToken != "THQWabcdef1234" {
		t.Fatal("expected original config to be unchanged")
	}

	data, err := redacted.EncodeTOML()
	if err != nil {
		t.Fatalf("EncodeTOML: %v", err)
	}
	if !strings.Contains(string(data), "[api]") {
		t.Fatalf("expected api table in output, got %q", data)
	}
}
