// Package collect gathers the Kodi log files for the current platform and
// copies them into a timestamped folder under the configured destination.
//
// A run always includes kodi.log, includes kodi.old.log when present, and
// appends the most recent crash report(s) found via the platform lookup
// table — at most one, or two on Windows where crashes produce a paired
// .dmp and stacktrace. Text logs pass through the redact package on the
// way out; crash reports are copied verbatim.
//
// All failures are returned as values ([ErrNoLogFiles], [DestError],
// [CopyError]); crash-report discovery problems degrade to "no crash log"
// rather than aborting collection of the base logs.
package collect
