package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"threads-cli/internal/config"
	"threads-cli/internal/drafts"
	"threads-cli/internal/logging"
	"threads-cli/internal/threads"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	correlationID string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	loggerOnce sync.Once
	logger     *slog.Logger

	clientOnce sync.Once
	client     *threads.Client
	clientErr  error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
		correlationID: uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		if level := flagValue(c.logLevelFlag); level != "" {
			cfg.Logging.Level = strings.ToLower(level)
		}
		if format := flagValue(c.logFormatFlag); format != "" {
			cfg.Logging.Format = strings.ToLower(format)
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

// loggerFor returns the CLI logger annotated with the command's context fields.
// Config errors fall back to a warn-level console logger.
func (c *commandContext) loggerFor(cmd *cobra.Command) *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, _ := c.ensureConfig()
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			logger, _ = logging.NewFromConfig(nil)
		}
		c.logger = logger
	})
	return logging.WithContext(cmd.Context(), c.logger)
}

func (c *commandContext) threadsClient(cmd *cobra.Command) (*threads.Client, error) {
	c.clientOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.clientErr = err
			return
		}
		c.client, c.clientErr = threads.New(threads.Config{
			AccessToken: cfg.API.AccessToken,
			BaseURL:     cfg.API.BaseURL,
			UserAgent:   cfg.API.UserAgent,
			Timeout:     cfg.Timeout(),
			Logger:      c.loggerFor(cmd),
		})
	})
	return c.client, c.clientErr
}

// requestContext bounds a single API operation by the configured timeout.
func (c *commandContext) requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	cfg, err := c.ensureConfig()
	if err != nil || cfg.Timeout() <= 0 {
		return context.WithCancel(cmd.Context())
	}
	return context.WithTimeout(cmd.Context(), cfg.Timeout())
}

// draftStore resolves the drafts file, preferring override over the configured
// value, and opens a store on it.
func (c *commandContext) draftStore(cmd *cobra.Command, override string) (*drafts.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	target := cfg.Drafts.File
	if strings.TrimSpace(override) != "" {
		target = strings.TrimSpace(override)
	}
	path, err := drafts.ResolvePath(target)
	if err != nil {
		return nil, err
	}
	logger := c.loggerFor(cmd)
	logger.Debug("drafts file resolved", logging.String("path", path))
	return drafts.NewStore(path, logger), nil
}

// lazyPublisher defers building the API client until a draft is actually
// published, so draft lookups never require credentials.
type lazyPublisher struct {
	ctx *commandContext
	cmd *cobra.Command
}

func (p lazyPublisher) CreatePost(ctx context.Context, text string) (string, error) {
	client, err := p.ctx.threadsClient(p.cmd)
	if err != nil {
		return "", err
	}
	return client.CreatePost(ctx, text)
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
