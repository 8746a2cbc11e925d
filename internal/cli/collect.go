package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/ternarybob/arbor"

	"github.com/bossanova808/cabertoss/internal/collect"
	"github.com/bossanova808/cabertoss/internal/config"
	"github.com/bossanova808/cabertoss/internal/logging"
	"github.com/bossanova808/cabertoss/internal/notify"
	"github.com/bossanova808/cabertoss/internal/platform"
	"github.com/bossanova808/cabertoss/internal/redact"
)

// Shared collection flags
var (
	flagDest    string
	flagMaxDays int
	flagLogDir  string
	flagDryRun  bool
)

func addCollectFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDest, "dest", "", "Destination path for the copied logs")
	cmd.Flags().IntVar(&flagMaxDays, "max-days", 0, "Ignore crash reports older than this many days")
	cmd.Flags().StringVar(&flagLogDir, "log-dir", "", "Kodi log directory (default: platform-detected)")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagDest != "" {
		m["destinationPath"] = flagDest
	}
	if flagMaxDays > 0 {
		m["crashlogMaxDays"] = strconv.Itoa(flagMaxDays)
	}
	if flagLogDir != "" {
		m["logDir"] = flagLogDir
	}
	return m
}

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Gather and copy the Kodi log files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		log := logging.Init(cfg.LogLevel, cfg.LogFile)
		done := logging.Start(log, version)
		defer done()

		exitCode = runCollect(cfg, log)
		return nil
	},
}

func init() {
	addCollectFlags(collectCmd)
	collectCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "List what would be copied without copying")
}

// runCollect is the orchestration entry point: it sequences config check,
// gather, and copy, translating outcomes into user notifications. Every
// failure is reported and turned into an exit code; nothing propagates.
func runCollect(cfg config.Config, log arbor.ILogger) int {
	if cfg.DestinationPath == "" {
		log.Warn().Msg("No path set to toss logs to")
		notify.Error("No destination path is configured - run 'cabertoss config set destinationPath <path>' first")
		return ExitFailure
	}
	// Destination may itself be a URL with embedded credentials.
	log.Info().Str("destination", redact.Clean(cfg.DestinationPath)).Msg("Logs will be tossed to")

	c := collect.New(cfg, platform.Detect(), log)

	if flagDryRun {
		for _, entry := range c.Gather() {
			notify.Info(fmt.Sprintf("would copy %s %s", entry.Kind, entry.SourcePath))
		}
		return ExitSuccess
	}

	notify.Info("Copying Kodi log files...")
	entries := c.Gather()
	dest, err := c.Copy(entries)
	if err != nil {
		log.Error().Err(err).Msg("Log copy failed")
		notify.Error("Failed to copy log files: " + err.Error())
		return ExitFailure
	}
	notify.Info(fmt.Sprintf("Copied %d log files to %s", len(entries), dest))
	return ExitSuccess
}
