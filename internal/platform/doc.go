// Package platform detects the host operating system and resolves the
// platform-specific locations Kodi writes its logs and crash reports to.
//
// Crash-report locations are expressed as a lookup from [Platform] to a
// [CrashReportSpec] (directory plus filename-substring filter). The *ELEC
// embedded distributions are a precedence rule layered on top: when their
// companion settings add-on is present, crash logs live in the Kodi log
// directory regardless of the underlying platform.
package platform
