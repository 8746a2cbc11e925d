// Cabertoss copies the Kodi log files somewhere safe to share.
//
// It locates kodi.log, kodi.old.log, and the most recent crash report for
// the current platform, redacts embedded usernames and passwords from the
// text logs, and writes everything into a timestamped folder at the
// configured destination.
//
// Usage:
//
//	cabertoss collect                 # gather, redact, and copy the logs
//	cabertoss collect --dry-run       # show what would be copied
//	cabertoss list --json             # list discovered log files
//	cabertoss clean kodi.log          # redact a single file to stdout
//	cabertoss config set destinationPath /mnt/backup/kodi
package main
