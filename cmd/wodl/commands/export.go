package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/wodl/internal/app"
	"go.trai.ch/wodl/internal/core/domain"
)

func (c *CLI) newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download all work orders and write them to a CSV file",
		Long: "Signs in, downloads up to the configured number of work orders, replaces asset, " +
			"location and user references with the referenced data and writes a timestamped CSV file.",
		Args: cobra.NoArgs,
		RunE: c.runExport,
	}
	addExportFlags(cmd)
	return cmd
}

func addExportFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("email", "e", "", "Account email (default $WODL_EMAIL, else prompted)")
	cmd.Flags().String("reuse-cache", "", "Reuse the file cache: ask, always or never (default from config)")
	cmd.Flags().IntP("concurrency", "j", 0, "Number of work orders enriched in parallel (default from config)")
	cmd.Flags().StringP("out-dir", "o", "", "Directory for the CSV export (default from config)")
	cmd.Flags().String("cache-dir", "", "Directory of the file cache (default from config)")
}

func (c *CLI) runExport(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	email, _ := cmd.Flags().GetString("email")
	reuse, _ := cmd.Flags().GetString("reuse-cache")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	outDir, _ := cmd.Flags().GetString("out-dir")
	cacheDir, _ := cmd.Flags().GetString("cache-dir")

	return c.app.Export(cmd.Context(), app.ExportOptions{
		ConfigPath:  configPath,
		Email:       email,
		Reuse:       domain.ReuseMode(reuse),
		Concurrency: concurrency,
		OutDir:      outDir,
		CacheDir:    cacheDir,
	})
}
