package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"threads-cli/internal/drafts"
	"threads-cli/internal/logging"
	"threads-cli/internal/services"
	"threads-cli/internal/textutil"
)

const draftPreviewWidth = 60

func newCreateDraftCommand(ctx *commandContext) *cobra.Command {
	var draftsFile string

	cmd := &cobra.Command{
		Use:   "create-draft TEXT",
		Short: "Save a post locally without publishing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.draftStore(cmd, draftsFile)
			if err != nil {
				return err
			}
			if n := textutil.PostLength(args[0]); n > textutil.MaxPostLength {
				ctx.loggerFor(cmd).Warn("draft exceeds post limit",
					logging.Int("text_length", n),
					logging.Int("limit", textutil.MaxPostLength),
					logging.String(logging.FieldErrorHint, "shorten the draft before sending it"))
			}
			draft, err := store.Create(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Draft created with ID: %d\n", draft.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&draftsFile, "drafts-file", "", "Drafts file (bare names resolve into the cache directory)")
	return cmd
}

func newGetDraftsCommand(ctx *commandContext) *cobra.Command {
	var draftsFile string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get-drafts",
		Short: "List saved drafts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.draftStore(cmd, draftsFile)
			if err != nil {
				return err
			}
			items, err := store.List()
			if err != nil {
				return err
			}
			if asJSON {
				if items == nil {
					items = []drafts.Draft{}
				}
				return writeJSON(cmd, items)
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "No drafts found.")
				return nil
			}
			rows := make([][]string, 0, len(items))
			for _, d := range items {
				rows = append(rows, []string{
					strconv.Itoa(d.ID),
					textutil.Preview(d.Text, draftPreviewWidth),
					strconv.Itoa(textutil.PostLength(d.Text)),
				})
			}
			printSection(out, "Drafts")
			fmt.Fprintln(out, renderTable(out, []string{"ID", "Text", "Length"}, rows,
				[]columnAlignment{alignRight, alignLeft, alignRight}))
			return nil
		},
	}

	cmd.Flags().StringVar(&draftsFile, "drafts-file", "", "Drafts file (bare names resolve into the cache directory)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output drafts as JSON")
	return cmd
}

func newSendDraftCommand(ctx *commandContext) *cobra.Command {
	var draftsFile string

	cmd := &cobra.Command{
		Use:   "send-draft ID",
		Short: "Publish a saved draft and remove it from the drafts file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil {
				return services.Wrap(services.ErrValidation, "cli", "send-draft",
					fmt.Sprintf("draft id must be an integer, got %q", args[0]), nil)
			}
			store, err := ctx.draftStore(cmd, draftsFile)
			if err != nil {
				return err
			}

			runCtx, cancel := ctx.requestContext(cmd)
			defer cancel()

			out := cmd.OutOrStdout()
			_, postID, err := store.Send(runCtx, id, lazyPublisher{ctx: ctx, cmd: cmd})
			switch {
			case errors.Is(err, drafts.ErrDraftNotFound):
				fmt.Fprintf(out, "Draft with ID %d not found.\n", id)
				return &silentExitError{err: err}
			case err != nil && postID != "":
				logging.ErrorWithContext(ctx.loggerFor(cmd), "draft published but not removed", "draft_cleanup_failed", err,
					logging.Int(logging.FieldDraftID, id),
					logging.String("post_id", postID),
					logging.String(logging.FieldErrorHint, "delete the draft from "+store.Path()+" to avoid posting it twice"))
				return err
			case err != nil:
				return err
			}
			fmt.Fprintf(out, "Draft with ID %d sent and removed from drafts.\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&draftsFile, "drafts-file", "", "Drafts file (bare names resolve into the cache directory)")
	return cmd
}
