package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or remove the file cache of fetched entities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show how many entities are cached and how old the oldest one is",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			f, err := c.app.CacheStatus(cmd.Context(), configPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if f.Empty() {
				_, _ = fmt.Fprintln(out, "No file cache found")
				return nil
			}
			_, _ = fmt.Fprintf(out, "%d cached entities, oldest age %s\n", f.Files, f.FormatAge())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clean",
		Short: "Remove all cached entities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			return c.app.CleanCache(cmd.Context(), configPath)
		},
	})

	return cmd
}
