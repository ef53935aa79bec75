package workbook

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ListBackups returns the backups of path made by Backup, oldest first.
func ListBackups(path string) ([]string, error) {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)
	pattern := filepath.Join(filepath.Dir(path), escapeGlob(stem)+"_backup_*"+escapeGlob(ext))
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list workbook backups")
	}
	type backup struct {
		name    string
		at      time.Time
		counter int
	}
	backups := make([]backup, 0, len(matches))
	for _, name := range matches {
		suffix := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(name), stem+"_backup_"), ext)
		at, counter, ok := parseBackupSuffix(suffix)
		if !ok {
			continue
		}
		backups = append(backups, backup{name: name, at: at, counter: counter})
	}
	sort.Slice(backups, func(a, b int) bool {
		if !backups[a].at.Equal(backups[b].at) {
			return backups[a].at.Before(backups[b].at)
		}
		return backups[a].counter < backups[b].counter
	})
	list := make([]string, 0, len(backups))
	for _, b := range backups {
		list = append(list, b.name)
	}
	return list, nil
}

// parseBackupSuffix reads "<YYYYmmdd_HHMMSS>" or "<YYYYmmdd_HHMMSS>_<n>".
func parseBackupSuffix(suffix string) (at time.Time, counter int, ok bool) {
	if len(suffix) < len(backupTimeLayout) {
		return at, 0, false
	}
	at, err := time.Parse(backupTimeLayout, suffix[:len(backupTimeLayout)])
	if err != nil {
		return at, 0, false
	}
	rest := suffix[len(backupTimeLayout):]
	if rest == "" {
		return at, 0, true
	}
	if !strings.HasPrefix(rest, "_") {
		return at, 0, false
	}
	counter, err = strconv.Atoi(rest[1:])
	if err != nil || counter < 1 {
		return at, 0, false
	}
	return at, counter, true
}

// PruneBackups removes all but the newest keep backups of path.
func PruneBackups(path string, keep int) (removed []string, err error) {
	if keep < 1 {
		return nil, errors.Errorf("backups to keep must be positive, got %d", keep)
	}
	list, err := ListBackups(path)
	if err != nil {
		return nil, err
	}
	if len(list) <= keep {
		return nil, nil
	}
	for _, name := range list[:len(list)-keep] {
		if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
			return removed, errors.Wrapf(err, "unable to remove backup %s", name)
		}
		removed = append(removed, name)
	}
	return removed, nil
}

func escapeGlob(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`)
	return r.Replace(s)
}
