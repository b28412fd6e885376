package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/axscope/axscope/internal/browser"
	"github.com/axscope/axscope/internal/output"
	"github.com/axscope/axscope/internal/platform"
	"github.com/axscope/axscope/internal/strategy"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract the accessibility tree from a running browser",
	Long: `Extract tabs, frames, and web content elements from a browser's
accessibility tree. Without --app or --pid, the active application is
detected first. With --find, fuzzy-matched elements are returned
instead of the full tree.

Examples:
  axscope extract
  axscope extract --app Safari
  axscope extract --app "Google Chrome" --find "sign in"`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().String("app", "", "Application name (default: detect the active app)")
	extractCmd.Flags().Int("pid", 0, "Target by process ID")
	extractCmd.Flags().String("find", "", "Fuzzy-match elements against this query")
}

func runExtract(cmd *cobra.Command, args []string) error {
	appName, _ := cmd.Flags().GetString("app")
	pid, _ := cmd.Flags().GetInt("pid")
	query, _ := cmd.Flags().GetString("find")

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	info, err := resolveTarget(context.Background(), provider, appName, pid)
	if err != nil {
		return permissionHint(err)
	}

	extractor := browser.NewExtractor(provider.AX, browser.NewTreeCache(appConfig.TreeCacheTTL), logger)
	tree, err := extractor.Extract(info)
	if err != nil {
		return permissionHint(err)
	}

	if query != "" {
		st := strategy.NewSelector(logger).Select(info)
		return output.Print(browser.FindElements(tree, query, strategy.Adapt(st, query)))
	}
	return output.Print(tree)
}
