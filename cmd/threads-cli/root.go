package main

import (
	"github.com/spf13/cobra"

	"threads-cli/internal/logging"
	"threads-cli/internal/services"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var logFormatFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag, &logFormatFlag)

	rootCmd := &cobra.Command{
		Use:           "threads-cli",
		Short:         "Post to Threads and manage local drafts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			runCtx := services.WithRequestID(cmd.Context(), ctx.correlationID)
			cmd.SetContext(services.WithCommand(runCtx, cmd.Name()))
			if shouldSkipConfig(cmd) {
				return nil
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			ctx.loggerFor(cmd).Debug("configuration loaded",
				logging.String("config_path", ctx.configPath),
				logging.Bool("config_exists", ctx.configExists),
				logging.String("drafts_file", cfg.Drafts.File))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format override (console, json)")

	rootCmd.AddCommand(newGetProfileCommand(ctx))
	rootCmd.AddCommand(newGetRecentPostsCommand(ctx))
	rootCmd.AddCommand(newCreateTextPostCommand(ctx))
	rootCmd.AddCommand(newCreateDraftCommand(ctx))
	rootCmd.AddCommand(newGetDraftsCommand(ctx))
	rootCmd.AddCommand(newSendDraftCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
