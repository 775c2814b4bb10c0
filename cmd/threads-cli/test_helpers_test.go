package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"threads-cli/internal/config"
	"threads-cli/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	server     *testsupport.ThreadsServer
	configPath string
	draftsPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	base := testsupport.IsolateEnv(t)
	server := testsupport.NewThreadsServer(t, "test-token")

	opts = append([]testsupport.ConfigOption{testsupport.WithBaseURL(server.URL + "/v1.0")}, opts...)
	cfg := testsupport.NewConfig(t, opts...)
	configPath := filepath.Join(base, "threads-cli.toml")
	testsupport.WriteConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		server:     server,
		configPath: configPath,
		draftsPath: cfg.Drafts.File,
		baseDir:    base,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
