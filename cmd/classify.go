package cmd

import (
	"github.com/spf13/cobra"

	"github.com/axscope/axscope/internal/appkind"
	"github.com/axscope/axscope/internal/output"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify an application by name and bundle ID",
	Long: `Classify an application offline: no running process is inspected.
The bundle ID may be omitted or given as 'unknown' to force the
name-based classification path.

Examples:
  axscope classify --name "Google Chrome" --bundle-id com.google.Chrome
  axscope classify --name Safari`,
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().String("name", "", "Application name")
	classifyCmd.Flags().String("bundle-id", "", "Bundle identifier")
	_ = classifyCmd.MarkFlagRequired("name")
}

func runClassify(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	bundleID, _ := cmd.Flags().GetString("bundle-id")
	if bundleID == "" {
		bundleID = appkind.BundleUnknown
	}

	category, family, confidence := appkind.Classify(name, bundleID)
	return output.Print(&appkind.ApplicationInfo{
		Name:       name,
		BundleID:   bundleID,
		Category:   category,
		Family:     family,
		Confidence: confidence,
	})
}
