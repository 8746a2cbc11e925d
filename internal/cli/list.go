package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bossanova808/cabertoss/internal/collect"
	"github.com/bossanova808/cabertoss/internal/config"
	"github.com/bossanova808/cabertoss/internal/logging"
	"github.com/bossanova808/cabertoss/internal/platform"
)

var flagListJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the log files that would be collected",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		log := logging.Init(cfg.LogLevel, cfg.LogFile)

		c := collect.New(cfg, platform.Detect(), log)
		entries := c.Gather()

		if flagListJSON {
			return writeEntriesJSON(os.Stdout, entries)
		}
		for _, entry := range entries {
			fmt.Fprintf(os.Stdout, "%-9s %s\n", entry.Kind, entry.SourcePath)
		}
		return nil
	},
}

func init() {
	addCollectFlags(listCmd)
	listCmd.Flags().BoolVar(&flagListJSON, "json", false, "Emit the file list as JSON")
}

func writeEntriesJSON(w io.Writer, entries []collect.LogFileEntry) error {
	type entryView struct {
		Kind       string `json:"kind"`
		SourcePath string `json:"sourcePath"`
	}
	views := make([]entryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, entryView{Kind: entry.Kind.String(), SourcePath: entry.SourcePath})
	}
	data, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
