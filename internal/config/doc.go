// Package config loads and merges cabertoss configuration from multiple
// sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (CABERTOSS_DESTINATION, CABERTOSS_CRASHLOG_MAX_DAYS, etc.)
//  3. Config file ($XDG_CONFIG_HOME/cabertoss/config.json)
//  4. Built-in defaults
//
// crashlogMaxDays always resolves to a positive value: anything unset,
// unparsable, or non-positive falls back to 3 days.
package config
