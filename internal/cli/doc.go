// Package cli wires together the Cobra command tree for the cabertoss
// binary.
//
// It defines the root command and all subcommands (collect, list, clean,
// config, version), binds flags, reads configuration, runs the collector,
// and translates outcomes into user notifications and exit codes.
package cli
