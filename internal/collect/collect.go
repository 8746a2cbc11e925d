package collect

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/bossanova808/cabertoss/internal/config"
	"github.com/bossanova808/cabertoss/internal/platform"
	"github.com/bossanova808/cabertoss/internal/redact"
)

// Kind classifies a discovered log file and selects its processing path:
// text logs are redacted before writing, crash reports are copied verbatim.
type Kind int

const (
	Log Kind = iota
	OldLog
	CrashLog
)

func (k Kind) String() string {
	switch k {
	case Log:
		return "log"
	case OldLog:
		return "oldlog"
	case CrashLog:
		return "crashlog"
	default:
		return "unknown"
	}
}

// LogFileEntry is one discovered file to process. Entries are built during
// Gather and consumed once by Copy.
type LogFileEntry struct {
	Kind       Kind
	SourcePath string
}

// ErrNoLogFiles is returned by Copy when there is nothing to copy.
var ErrNoLogFiles = errors.New("no log files found")

// DestError reports a destination folder that could not be created.
type DestError struct {
	Path string
	Err  error
}

func (e *DestError) Error() string {
	return fmt.Sprintf("creating destination folder %s: %v", e.Path, e.Err)
}

func (e *DestError) Unwrap() error { return e.Err }

// CopyError reports a single entry that failed to copy. Remaining entries
// are not attempted.
type CopyError struct {
	Entry LogFileEntry
	Err   error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copying %s %s: %v", e.Entry.Kind, e.Entry.SourcePath, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }

// Collector discovers the Kodi log files for the current platform and
// copies them, credentials redacted, to the configured destination.
type Collector struct {
	cfg     config.Config
	plat    platform.Platform
	log     arbor.ILogger
	logDir  string
	homeDir string
	elec    bool

	// injectable for tests
	now      func() time.Time
	hostname func() (string, error)
}

// New builds a Collector from the effective configuration. The Kodi log
// directory comes from cfg.LogDir when set, otherwise from the platform
// default.
func New(cfg config.Config, plat platform.Platform, log arbor.ILogger) *Collector {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn().Err(err).Msg("Cannot determine home directory")
	}
	logDir := cfg.LogDir
	if logDir == "" {
		logDir = platform.DefaultLogDir(plat, home)
	}
	elec := platform.HasELECAddon(filepath.Join(home, ".kodi")) ||
		platform.HasELECAddon("/storage/.kodi")
	return &Collector{
		cfg:      cfg,
		plat:     plat,
		log:      log,
		logDir:   logDir,
		homeDir:  home,
		elec:     elec,
		now:      time.Now,
		hostname: os.Hostname,
	}
}

// Gather returns the log files to copy: always kodi.log, kodi.old.log when
// it exists, and the most recent crash report(s) within the configured age
// window. Discovery never fails; missing or unreadable crash-report
// directories simply yield no crash entries.
func (c *Collector) Gather() []LogFileEntry {
	entries := []LogFileEntry{
		{Kind: Log, SourcePath: filepath.Join(c.logDir, "kodi.log")},
	}

	oldLog := filepath.Join(c.logDir, "kodi.old.log")
	if info, err := os.Stat(oldLog); err == nil && info.Mode().IsRegular() {
		entries = append(entries, LogFileEntry{Kind: OldLog, SourcePath: oldLog})
	}

	for _, path := range c.crashReportCandidates() {
		entries = append(entries, LogFileEntry{Kind: CrashLog, SourcePath: path})
	}

	for _, entry := range entries {
		c.log.Info().Str("kind", entry.Kind.String()).
			Str("file", filepath.Base(entry.SourcePath)).
			Msg("Found log file to copy")
	}
	return entries
}

// Copy writes every entry into a fresh timestamped folder under the
// configured destination and returns that folder's path. Text logs are
// read with invalid UTF-8 replaced, redacted, and rewritten; crash reports
// are copied byte for byte. The first failure aborts the remaining entries.
func (c *Collector) Copy(entries []LogFileEntry) (string, error) {
	if len(entries) == 0 {
		return "", ErrNoLogFiles
	}

	host, err := c.hostname()
	if err != nil || host == "" {
		host = "localhost"
	}
	folder := fmt.Sprintf("%s_Kodi_Logs_%s", host, c.now().Format("2006-01-02_15-04-05"))
	dest := filepath.Join(c.cfg.DestinationPath, folder)

	c.log.Info().Str("path", dest).Msg("Making destination folder")
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return "", &DestError{Path: dest, Err: err}
	}

	for _, entry := range entries {
		c.log.Info().Str("kind", entry.Kind.String()).
			Str("source", entry.SourcePath).Msg("Copying")
		if err := c.copyEntry(entry, dest); err != nil {
			return dest, &CopyError{Entry: entry, Err: err}
		}
	}
	return dest, nil
}

func (c *Collector) copyEntry(entry LogFileEntry, destDir string) error {
	destPath := filepath.Join(destDir, filepath.Base(entry.SourcePath))
	switch entry.Kind {
	case Log, OldLog:
		data, err := os.ReadFile(entry.SourcePath)
		if err != nil {
			return fmt.Errorf("reading source: %w", err)
		}
		sanitised := redact.Clean(strings.ToValidUTF8(string(data), "�"))
		if err := os.WriteFile(destPath, []byte(sanitised), 0o644); err != nil {
			return fmt.Errorf("writing sanitised copy: %w", err)
		}
		return nil
	default:
		return copyFile(entry.SourcePath, destPath)
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating destination: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying bytes: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing destination: %w", err)
	}
	return nil
}
