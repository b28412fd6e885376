package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/axscope/axscope/internal/appkind"
	"github.com/axscope/axscope/internal/output"
	"github.com/axscope/axscope/internal/platform"
	"github.com/axscope/axscope/internal/strategy"
)

var strategyCmd = &cobra.Command{
	Use:   "strategy",
	Short: "Show the element detection strategy for an application",
	Long: `Show the roles, attributes, timeouts, and traversal limits used to
search an application's accessibility tree. Without --name, the active
application is detected first.

Examples:
  axscope strategy --name "Google Chrome" --bundle-id com.google.Chrome
  axscope strategy`,
	RunE: runStrategy,
}

func init() {
	rootCmd.AddCommand(strategyCmd)
	strategyCmd.Flags().String("name", "", "Application name (default: detect the active app)")
	strategyCmd.Flags().String("bundle-id", "", "Bundle identifier")
}

// strategyTarget builds the ApplicationInfo the strategy and params
// commands select for: offline from flags, or via live detection.
func strategyTarget(cmd *cobra.Command) (*appkind.ApplicationInfo, error) {
	name, _ := cmd.Flags().GetString("name")
	bundleID, _ := cmd.Flags().GetString("bundle-id")

	if name == "" {
		provider, err := platform.NewProvider()
		if err != nil {
			return nil, err
		}
		return resolveTarget(context.Background(), provider, "", 0)
	}

	if bundleID == "" {
		bundleID = appkind.BundleUnknown
	}
	category, family, confidence := appkind.Classify(name, bundleID)
	return &appkind.ApplicationInfo{
		Name:       name,
		BundleID:   bundleID,
		Category:   category,
		Family:     family,
		Confidence: confidence,
	}, nil
}

func runStrategy(cmd *cobra.Command, args []string) error {
	info, err := strategyTarget(cmd)
	if err != nil {
		return permissionHint(err)
	}
	st := strategy.NewSelector(logger).Select(info)
	return output.Print(st)
}
