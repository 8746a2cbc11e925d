package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bossanova808/cabertoss/internal/redact"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [file]",
	Short: "Redact credentials from a log file (or stdin) and print the result",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
		}
		content := strings.ToValidUTF8(string(data), "�")
		fmt.Fprint(cmd.OutOrStdout(), redact.Clean(content))
		return nil
	},
}
