package config

import (
	"os"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.DestinationPath != "" {
		t.Errorf("Default destinationPath = %q, want empty", cfg.DestinationPath)
	}
	if cfg.CrashlogMaxDays != 3 {
		t.Errorf("Default crashlogMaxDays = %d, want 3", cfg.CrashlogMaxDays)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Default logLevel = %q, want %q", cfg.LogLevel, "info")
	}
}

func TestMergeEnv(t *testing.T) {
	envKeys := []string{"CABERTOSS_DESTINATION", "CABERTOSS_CRASHLOG_MAX_DAYS", "CABERTOSS_LOG_DIR", "CABERTOSS_LOG_LEVEL", "CABERTOSS_LOG_FILE"}
	orig := map[string]string{}
	for _, k := range envKeys {
		orig[k] = os.Getenv(k)
	}
	defer func() {
		for k, v := range orig {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	os.Setenv("CABERTOSS_DESTINATION", "/mnt/backup/logs")
	os.Setenv("CABERTOSS_CRASHLOG_MAX_DAYS", "7")
	os.Setenv("CABERTOSS_LOG_DIR", "/opt/kodi/temp")
	os.Setenv("CABERTOSS_LOG_LEVEL", "debug")
	os.Setenv("CABERTOSS_LOG_FILE", "/var/log/cabertoss.log")

	cfg := Default()
	mergeEnv(&cfg)

	if cfg.DestinationPath != "/mnt/backup/logs" {
		t.Errorf("DestinationPath = %q", cfg.DestinationPath)
	}
	if cfg.CrashlogMaxDays != 7 {
		t.Errorf("CrashlogMaxDays = %d, want 7", cfg.CrashlogMaxDays)
	}
	if cfg.LogDir != "/opt/kodi/temp" {
		t.Errorf("LogDir = %q", cfg.LogDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.LogFile != "/var/log/cabertoss.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
}

func TestMergeEnv_BadMaxDaysIgnored(t *testing.T) {
	orig := os.Getenv("CABERTOSS_CRASHLOG_MAX_DAYS")
	defer os.Setenv("CABERTOSS_CRASHLOG_MAX_DAYS", orig)

	for _, bad := range []string{"nope", "-1", "0"} {
		os.Setenv("CABERTOSS_CRASHLOG_MAX_DAYS", bad)
		cfg := Default()
		mergeEnv(&cfg)
		if cfg.CrashlogMaxDays != 3 {
			t.Errorf("CrashlogMaxDays after env %q = %d, want 3", bad, cfg.CrashlogMaxDays)
		}
	}
}

func TestMergeFile(t *testing.T) {
	dst := Default()
	mergeFile(&dst, Config{DestinationPath: "/srv/kodi-logs", CrashlogMaxDays: 14})
	if dst.DestinationPath != "/srv/kodi-logs" {
		t.Errorf("DestinationPath = %q", dst.DestinationPath)
	}
	if dst.CrashlogMaxDays != 14 {
		t.Errorf("CrashlogMaxDays = %d, want 14", dst.CrashlogMaxDays)
	}

	// Zero values in the file never clobber the defaults.
	dst = Default()
	mergeFile(&dst, Config{})
	if dst.CrashlogMaxDays != 3 || dst.LogLevel != "info" {
		t.Errorf("zero-value merge changed defaults: %+v", dst)
	}
}

func TestMergeOverrides(t *testing.T) {
	cfg := Default()
	mergeOverrides(&cfg, map[string]string{
		"destinationPath": "/tmp/out",
		"crashlogMaxDays": "5",
	})
	if cfg.DestinationPath != "/tmp/out" {
		t.Errorf("DestinationPath = %q", cfg.DestinationPath)
	}
	if cfg.CrashlogMaxDays != 5 {
		t.Errorf("CrashlogMaxDays = %d, want 5", cfg.CrashlogMaxDays)
	}

	cfg = Default()
	mergeOverrides(&cfg, nil)
	if cfg.CrashlogMaxDays != 3 {
		t.Errorf("nil overrides changed config: %+v", cfg)
	}
}

func TestSetField(t *testing.T) {
	cfg := Default()

	if err := SetField(&cfg, "destinationPath", "/data"); err != nil {
		t.Fatal(err)
	}
	if cfg.DestinationPath != "/data" {
		t.Errorf("DestinationPath = %q", cfg.DestinationPath)
	}

	if err := SetField(&cfg, "crashlogMaxDays", "10"); err != nil {
		t.Fatal(err)
	}
	if cfg.CrashlogMaxDays != 10 {
		t.Errorf("CrashlogMaxDays = %d", cfg.CrashlogMaxDays)
	}

	if err := SetField(&cfg, "logFile", "/tmp/ct.log"); err != nil {
		t.Fatal(err)
	}
	if cfg.LogFile != "/tmp/ct.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}

	if err := SetField(&cfg, "crashlogMaxDays", "soon"); err == nil {
		t.Error("expected error for non-integer crashlogMaxDays")
	}
	if err := SetField(&cfg, "bogus", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestLoad_FallbackMaxDays(t *testing.T) {
	// Point the config file somewhere empty so only defaults apply.
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)
	os.Setenv("XDG_CONFIG_HOME", t.TempDir())

	origDays := os.Getenv("CABERTOSS_CRASHLOG_MAX_DAYS")
	defer os.Setenv("CABERTOSS_CRASHLOG_MAX_DAYS", origDays)
	os.Unsetenv("CABERTOSS_CRASHLOG_MAX_DAYS")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CrashlogMaxDays != 3 {
		t.Errorf("CrashlogMaxDays = %d, want 3", cfg.CrashlogMaxDays)
	}
}
