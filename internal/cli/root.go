package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "sigwatch",
	Short: "Check whether a signal emits within a time window",
	Long: `sigwatch drives a signal with the values you give it and reports
the verdict of the same emission matchers the signaltest package exposes
to Go tests, including the diagnostic a failing assertion would print.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("sigwatch version {{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
