package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Write the sitemap index and per-category sitemaps",
	Long: `Sitemap writes sitemap.xml (the index), sitemap-main.xml and one
sitemap-<category>.xml per tool category to the output directory. Tools are read
from the catalog named by sitemap.catalog, or the built-in catalog.`,
	RunE: runSitemap,
}

var sitemapSplitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split an existing sitemap.xml into per-category sitemaps",
	Long: `Split reads a urlset sitemap and buckets every URL by category: tool pages
by their catalog category, category landing pages by name, anything else into
main. One sitemap-<category>.xml is written per non-empty bucket, plus a
sitemap.xml index referencing them.`,
	Example: `  calculator-api sitemap split --in public/sitemap.xml --out public`,
	RunE:    runSitemapSplit,
}

func init() {
	sitemapCmd.Flags().StringP("out", "o", "sitemaps", "output directory")

	sitemapSplitCmd.Flags().StringP("in", "i", "sitemap.xml", "sitemap to split")
	sitemapSplitCmd.Flags().StringP("out", "o", "sitemaps", "output directory")
	sitemapCmd.AddCommand(sitemapSplitCmd)
}

func runSitemapSplit(cmd *cobra.Command, args []string) error {
	in, _ := cmd.Flags().GetString("in")
	dir, _ := cmd.Flags().GetString("out")

	data, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", in, err)
	}

	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	files, err := a.sitemaps.WriteSplit(dir, data)
	if err != nil {
		return err
	}
	return reportFiles(cmd, files)
}

func runSitemap(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("out")

	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	files, err := a.sitemaps.WriteAll(dir)
	if err != nil {
		return err
	}
	return reportFiles(cmd, files)
}

func reportFiles(cmd *cobra.Command, files []string) error {
	if jsonOutput || yamlOutput {
		return render(cmd.OutOrStdout(), "Sitemaps", map[string]any{"files": files})
	}
	out := cmd.OutOrStdout()
	for _, f := range files {
		printSuccess(out, "%s", f)
	}
	return nil
}
