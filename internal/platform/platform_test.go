package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCrashReports(t *testing.T) {
	home := "/home/kodi"
	logDir := "/home/kodi/.kodi/temp"

	tests := []struct {
		name      string
		platform  Platform
		elec      bool
		wantOK    bool
		wantDir   string
		wantMatch string
		wantPair  bool
	}{
		{"macos", MacOS, false, true, filepath.Join(home, "Library", "Logs", "DiagnosticReports"), "Kodi", false},
		{"ios", IOS, false, true, "/var/mobile/Library/Logs/CrashReporter", "Kodi", false},
		{"linux", Linux, false, true, home, "kodi_crashlog", false},
		{"windows", Windows, false, true, logDir, "kodi_", true},
		{"android unsupported", Android, false, false, "", "", false},
		{"unknown unsupported", Unknown, false, false, "", "", false},
		{"elec overrides linux", Linux, true, true, logDir, "kodi_crashlog_", false},
		{"elec overrides unsupported platform", Android, true, true, logDir, "kodi_crashlog_", false},
		{"elec on windows keeps paired selection", Windows, true, true, logDir, "kodi_crashlog_", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, ok := CrashReports(tt.platform, tt.elec, home, logDir)
			if ok != tt.wantOK {
				t.Fatalf("CrashReports ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if spec.Dir != tt.wantDir {
				t.Errorf("Dir = %q, want %q", spec.Dir, tt.wantDir)
			}
			if spec.Match != tt.wantMatch {
				t.Errorf("Match = %q, want %q", spec.Match, tt.wantMatch)
			}
			if spec.Paired != tt.wantPair {
				t.Errorf("Paired = %v, want %v", spec.Paired, tt.wantPair)
			}
		})
	}
}

func TestHasELECAddon(t *testing.T) {
	kodiHome := t.TempDir()
	if HasELECAddon(kodiHome) {
		t.Error("HasELECAddon = true for empty kodi home")
	}

	addonDir := filepath.Join(kodiHome, "addons", "service.libreelec.settings")
	if err := os.MkdirAll(addonDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if !HasELECAddon(kodiHome) {
		t.Error("HasELECAddon = false with service.libreelec.settings installed")
	}
}

func TestHasELECAddon_FileNotDir(t *testing.T) {
	kodiHome := t.TempDir()
	if err := os.MkdirAll(filepath.Join(kodiHome, "addons"), 0o755); err != nil {
		t.Fatal(err)
	}
	// A stray file with the addon name is not an installed addon.
	path := filepath.Join(kodiHome, "addons", "service.coreelec.settings")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if HasELECAddon(kodiHome) {
		t.Error("HasELECAddon = true for a plain file")
	}
}

func TestPlatformString(t *testing.T) {
	tests := []struct {
		platform Platform
		want     string
	}{
		{Linux, "linux"},
		{MacOS, "osx"},
		{Windows, "windows"},
		{IOS, "ios"},
		{Android, "android"},
		{Unknown, "unknown"},
		{Platform(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.platform.String(); got != tt.want {
			t.Errorf("Platform(%d).String() = %q, want %q", tt.platform, got, tt.want)
		}
	}
}

func TestDefaultLogDir(t *testing.T) {
	home := "/home/kodi"
	if got := DefaultLogDir(Linux, home); got != filepath.Join(home, ".kodi", "temp") {
		t.Errorf("linux log dir = %q", got)
	}
	if got := DefaultLogDir(MacOS, home); got != filepath.Join(home, "Library", "Logs") {
		t.Errorf("macos log dir = %q", got)
	}
}
