package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

// Exit codes
const (
	ExitSuccess    = 0
	ExitFailure    = 1
	ExitUsageError = 2
)

var rootCmd = &cobra.Command{
	Use:   "cabertoss",
	Short: "Copy Kodi log files, credentials redacted, to a safe destination",
	Long: "Cabertoss gathers the Kodi log files for this platform (kodi.log,\n" +
		"kodi.old.log, and the most recent crash report), strips embedded\n" +
		"usernames and passwords from the text logs, and copies everything\n" +
		"into a timestamped folder at the configured destination.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print cabertoss version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "cabertoss version %s\n", version)
	},
}
