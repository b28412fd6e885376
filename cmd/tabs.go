package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/axscope/axscope/internal/browser"
	"github.com/axscope/axscope/internal/output"
	"github.com/axscope/axscope/internal/platform"
)

var tabsCmd = &cobra.Command{
	Use:   "tabs",
	Short: "List browser tabs ranked by content volume",
	Long: `Extract the browser's accessibility tree and list its tabs ordered by
the number of elements extracted from each.

Examples:
  axscope tabs
  axscope tabs --app Safari`,
	RunE: runTabs,
}

func init() {
	rootCmd.AddCommand(tabsCmd)
	tabsCmd.Flags().String("app", "", "Application name (default: detect the active app)")
	tabsCmd.Flags().Int("pid", 0, "Target by process ID")
}

func runTabs(cmd *cobra.Command, args []string) error {
	appName, _ := cmd.Flags().GetString("app")
	pid, _ := cmd.Flags().GetInt("pid")

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
	return output.Print(browser.RankTabsByContent(tree))
}
