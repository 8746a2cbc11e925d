package collect

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bossanova808/cabertoss/internal/platform"
)

// crashReportCandidates resolves the platform's crash-report location and
// returns the paths of the most recent matching report(s): the last one by
// modification time, or the last two on Windows where a crash produces a
// .dmp and stacktrace pair. Any failure here means "no crash log found",
// never an aborted run.
func (c *Collector) crashReportCandidates() []string {
	spec, ok := platform.CrashReports(c.plat, c.elec, c.homeDir, c.logDir)
	if !ok {
		if c.plat == platform.Android {
			c.log.Info().Msg("Crash log detection is not supported on Android")
		}
		return nil
	}
	if c.elec {
		c.log.Info().Msg("System is *ELEC")
	}

	listing, err := os.ReadDir(spec.Dir)
	if err != nil {
		c.log.Warn().Err(err).Str("dir", spec.Dir).Msg("Cannot list crash report directory")
		return nil
	}

	cutoff := c.now().AddDate(0, 0, -c.cfg.CrashlogMaxDays)

	type candidate struct {
		path  string
		mtime time.Time
	}
	var candidates []candidate
	for _, item := range listing {
		if !strings.Contains(item.Name(), spec.Match) {
			continue
		}
		info, err := item.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		// Don't bother with older crash reports.
		if !info.ModTime().After(cutoff) {
			continue
		}
		candidates = append(candidates, candidate{
			path:  filepath.Join(spec.Dir, item.Name()),
			mtime: info.ModTime(),
		})
	}

	// Stable sort keeps the directory's name order for equal mtimes, so
	// the selected "last" entries are deterministic.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].mtime.Before(candidates[j].mtime)
	})

	keep := 1
	if spec.Paired {
		keep = 2
	}
	if len(candidates) > keep {
		candidates = candidates[len(candidates)-keep:]
	}

	paths := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		paths = append(paths, cand.path)
	}
	return paths
}
