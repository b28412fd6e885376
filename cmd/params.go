package cmd

import (
	"github.com/spf13/cobra"

	"github.com/axscope/axscope/internal/output"
	"github.com/axscope/axscope/internal/strategy"
)

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Show search parameters adapted to a command",
	Long: `Show the search parameters derived from an application's detection
strategy, with role priorities reordered for the given command text.

Examples:
  axscope params --name "Google Chrome" --command "click the login button"
  axscope params --command "type into the search field"`,
	RunE: runParams,
}

func init() {
	rootCmd.AddCommand(paramsCmd)
	paramsCmd.Flags().String("name", "", "Application name (default: detect the active app)")
	paramsCmd.Flags().String("bundle-id", "", "Bundle identifier")
	paramsCmd.Flags().String("command", "", "Command text to adapt role priorities to")
}

func runParams(cmd *cobra.Command, args []string) error {
	info, err := strategyTarget(cmd)
	if err != nil {
		return permissionHint(err)
	}
	command, _ := cmd.Flags().GetString("command")

	st := strategy.NewSelector(logger).Select(info)
	return output.Print(strategy.Adapt(st, command))
}
