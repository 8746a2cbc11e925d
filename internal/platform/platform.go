package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

// Platform identifies the host operating system Kodi is running on.
type Platform int

const (
	Unknown Platform = iota
	Linux
	MacOS
	Windows
	IOS
	Android
)

var platformNames = map[Platform]string{
	Unknown: "unknown",
	Linux:   "linux",
	MacOS:   "osx",
	Windows: "windows",
	IOS:     "ios",
	Android: "android",
}

func (p Platform) String() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return "unknown"
}

// Detect maps the Go runtime to a Platform.
func Detect() Platform {
	switch runtime.GOOS {
	case "linux":
		return Linux
	case "darwin":
		return MacOS
	case "windows":
		return Windows
	case "ios":
		return IOS
	case "android":
		return Android
	default:
		return Unknown
	}
}

// CrashReportSpec describes where a platform writes Kodi crash reports and
// how their filenames are recognised.
type CrashReportSpec struct {
	// Dir is the directory to scan. Empty means crash reports are not
	// supported on this platform.
	Dir string
	// Match is the substring a crash report filename must contain.
	Match string
	// Paired is true when crash events produce two files (Windows writes
	// a .dmp plus a stacktrace) and both should be collected.
	Paired bool
}

// elecSpec is the *ELEC override: the embedded distributions write crash
// logs into the Kodi log directory with a fixed prefix. It takes precedence
// over the per-platform table whenever the companion settings add-on is
// installed. Paired selection is a platform property, not part of the
// override, so Windows keeps it.
func elecSpec(logDir string, paired bool) CrashReportSpec {
	return CrashReportSpec{Dir: logDir, Match: "kodi_crashlog_", Paired: paired}
}

// CrashReports resolves the crash-report location for a platform.
// homeDir is the user home directory and logDir the Kodi log directory;
// elec reports whether a *ELEC companion settings add-on is installed.
// ok is false when the platform has no crash-report support (Android logs
// an informational message upstream and nothing more).
func CrashReports(p Platform, elec bool, homeDir, logDir string) (spec CrashReportSpec, ok bool) {
	if elec {
		return elecSpec(logDir, p == Windows), true
	}
	switch p {
	case MacOS:
		return CrashReportSpec{Dir: filepath.Join(homeDir, "Library", "Logs", "DiagnosticReports"), Match: "Kodi"}, true
	case IOS:
		return CrashReportSpec{Dir: "/var/mobile/Library/Logs/CrashReporter", Match: "Kodi"}, true
	case Linux:
		// Not 100% accurate: crash logs can also land in the directory
		// Kodi was started from. Upstream never documented the real rule.
		return CrashReportSpec{Dir: homeDir, Match: "kodi_crashlog"}, true
	case Windows:
		return CrashReportSpec{Dir: logDir, Match: "kodi_", Paired: true}, true
	default:
		return CrashReportSpec{}, false
	}
}

// DefaultLogDir returns the usual Kodi log directory for a platform.
// Users with portable or non-standard installs override this in config.
func DefaultLogDir(p Platform, homeDir string) string {
	switch p {
	case MacOS:
		return filepath.Join(homeDir, "Library", "Logs")
	case Windows:
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "Kodi")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "Kodi")
	default:
		return filepath.Join(homeDir, ".kodi", "temp")
	}
}

// elecAddonIDs are the companion settings add-ons shipped by the *ELEC
// family of embedded distributions.
var elecAddonIDs = []string{
	"service.coreelec.settings",
	"service.libreelec.settings",
}

// HasELECAddon reports whether a *ELEC companion settings add-on is
// installed under the given Kodi home directory (the parent of the addons
// folder, typically ~/.kodi or /storage/.kodi).
func HasELECAddon(kodiHome string) bool {
	for _, id := range elecAddonIDs {
		info, err := os.Stat(filepath.Join(kodiHome, "addons", id))
		if err == nil && info.IsDir() {
			return true
		}
	}
	return false
}
