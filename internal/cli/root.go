package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	okColor    = color.New(color.FgGreen, color.Bold)
	warnColor  = color.New(color.FgYellow, color.Bold)
	titleColor = color.New(color.FgCyan, color.Bold)
)

// NewRootCmd builds the plates command tree. Every call returns fresh
// commands and flag state.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "plates",
		Version: version,
		Short:   "Barbell plate loading calculator",
		Long: `plates works out which plates go on each side of a barbell to reach a target weight.

It uses the same greedy loading rules as the gymplates backend, including the
deadlift rule that keeps the bar at pulling height.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")

	rootCmd.AddCommand(
		newSolveCmd(solveModeRegular),
		newSolveCmd(solveModeDeadlift),
		newClassifyCmd(),
	)

	return rootCmd
}

func Execute(version string) error {
	return NewRootCmd(version).Execute()
}
