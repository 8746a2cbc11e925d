// Package notify prints user-facing status lines, the CLI stand-in for the
// popup notifications the Kodi addon shows. Informational messages go to
// stdout, errors to stderr.
package notify
