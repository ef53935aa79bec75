package lock

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrLocked is returned when the workbook is held by another writer.
var ErrLocked = errors.New("workbook is currently locked by another session, try again shortly")

// in-process wait before giving up on a busy workbook
const inProcessWait = 5 * time.Second

// FileLock is an advisory sentinel file next to a shared file.
//
// The lock is cooperative only: exclusive create protects against writers on the same
// filesystem that also check it, but any process may ignore the file, and a synced folder
// can let two machines create it at once. Callers must not treat it as mutual exclusion.
type FileLock struct {
	path string
}

func PathFor(target string) string {
	return target + ".lock"
}

// AcquireFile creates the lock file for target, failing with ErrLocked if it already exists.
func AcquireFile(target string) (*FileLock, error) {
	lockPath := PathFor(target)
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil, ErrLocked
		}
		return nil, errors.Wrap(err, "unable to create lock file")
	}
	defer f.Close()
	host, _ := os.Hostname()
	_, err = fmt.Fprintf(f, "locked at %s by %s pid %d\n", time.Now().Format(time.RFC3339), host, os.Getpid())
	if err != nil {
		log.WithError(err).WithField("lock", lockPath).Warn("unable to write lock file details")
	}
	return &FileLock{path: lockPath}, nil
}

func (l *FileLock) Release() {
	if l == nil {
		return
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		log.WithError(err).WithField("lock", l.path).Error("unable to remove lock file")
	}
}

// WithWorkbook serialises writers of target inside this process and, when useFile is set,
// holds the advisory lock file while safeCode runs.
func WithWorkbook(ctx context.Context, target string, useFile bool, safeCode func() error) error {
	success, err := WithDelay(ctx, target, inProcessWait, func() error {
		if !useFile {
			return safeCode()
		}
		fileLock, err := AcquireFile(target)
		if err != nil {
			return err
		}
		defer fileLock.Release()
		return safeCode()
	})
	if !success {
		return ErrLocked
	}
	return err
}
