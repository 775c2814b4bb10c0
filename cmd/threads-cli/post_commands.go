package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"threads-cli/internal/textutil"
	"threads-cli/internal/threads"
)

const (
	defaultRecentPostsLimit = 10
	postPreviewWidth        = 60
)

func newCreateTextPostCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "create-text-post TEXT",
		Short: "Publish a text post immediately",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.threadsClient(cmd)
			if err != nil {
				return err
			}
			runCtx, cancel := ctx.requestContext(cmd)
			defer cancel()

			id, err := client.CreatePost(runCtx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Post created with ID: %s\n", id)
			return nil
		},
	}
}

func newGetProfileCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get-profile",
		Short: "Show the authenticated user's profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.threadsClient(cmd)
			if err != nil {
				return err
			}
			runCtx, cancel := ctx.requestContext(cmd)
			defer cancel()

			profile, err := client.GetProfile(runCtx)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, profile)
			}

			out := cmd.OutOrStdout()
			printSection(out, "Profile")
			fmt.Fprintln(out, renderTable(out, []string{"Field", "Value"}, profileRows(profile), nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the profile as JSON")
	return cmd
}

func profileRows(p threads.Profile) [][]string {
	rows := [][]string{
		{"ID", p.ID},
		{"Username", p.Username},
	}
	if p.Name != "" {
		rows = append(rows, []string{"Name", p.Name})
	}
	if p.Biography != "" {
		rows = append(rows, []string{"Biography", textutil.Preview(p.Biography, postPreviewWidth)})
	}
	if p.ProfilePictureURL != "" {
		rows = append(rows, []string{"Picture", p.ProfilePictureURL})
	}
	return rows
}

func newGetRecentPostsCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get-recent-posts",
		Short: "List the most recent published posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.threadsClient(cmd)
			if err != nil {
				return err
			}
			runCtx, cancel := ctx.requestContext(cmd)
			defer cancel()

			posts, err := client.GetRecentPosts(runCtx, limit)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, posts)
			}

			out := cmd.OutOrStdout()
			printSection(out, "Recent Posts")
			if len(posts) == 0 {
				fmt.Fprintln(out, "No posts found.")
				return nil
			}
			rows := make([][]string, 0, len(posts))
			for _, p := range posts {
				rows = append(rows, []string{
					p.ID,
					p.Timestamp,
					textutil.Preview(p.Text, postPreviewWidth),
				})
			}
			fmt.Fprintln(out, renderTable(out, []string{"ID", "Published", "Text"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultRecentPostsLimit, fmt.Sprintf("Number of posts to fetch (1-%d)", threads.MaxRecentPostsLimit))
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output posts as JSON")
	return cmd
}
