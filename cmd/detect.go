package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/axscope/axscope/internal/detect"
	"github.com/axscope/axscope/internal/output"
	"github.com/axscope/axscope/internal/platform"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect the active user-facing application",
	Long: `Detect the application the user is working in, skipping development
tools and system shell processes, and classify it.

Examples:
  axscope detect
  axscope detect --format json --pretty`,
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	resolver := detect.NewResolver(provider, detect.NewInfoCache(), logger)
	resolver.SetScriptTimeout(appConfig.ScriptTimeout)

	info, err := resolver.Resolve(context.Background())
	if err != nil {
		return permissionHint(err)
	}
	return output.Print(info)
}
