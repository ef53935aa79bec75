package workbook

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

var (
	ErrWorkbookNotFound = errors.New("workbook not found")
	ErrNotXLSX          = errors.New("workbook must be an .xlsx file")
	ErrSheetNotFound    = errors.New("workbook sheet not found")
)

// CheckPath verifies that path points at an existing .xlsx file.
func CheckPath(path string) error {
	if path == "" {
		return errors.Wrap(ErrWorkbookNotFound, "workbook path is not configured")
	}
	if strings.ToLower(filepath.Ext(path)) != ".xlsx" {
		return ErrNotXLSX
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(ErrWorkbookNotFound, "%s", path)
		}
		return errors.Wrap(err, "unable to access workbook")
	}
	if info.IsDir() {
		return errors.Wrapf(ErrWorkbookNotFound, "%s is a directory", path)
	}
	return nil
}

func Open(path string) (*excelize.File, error) {
	if err := CheckPath(path); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open workbook")
	}
	return f, nil
}

func Close(f *excelize.File) {
	if err := f.Close(); err != nil {
		log.WithError(err).Error("unable to close workbook")
	}
}

// Save writes f to a temp file next to path and renames it over path.
// The existing workbook is untouched if anything fails before the rename.
func Save(f *excelize.File, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "unable to create temp workbook")
	}
	tmpName := tmp.Name()
	_, err = f.WriteTo(tmp)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "unable to write workbook")
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "unable to replace workbook")
	}
	return nil
}

const backupTimeLayout = "20060102_150405"

// BackupName is <stem>_backup_<YYYYmmdd_HHMMSS><ext> next to path.
func BackupName(path string, now time.Time) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)
	return filepath.Join(filepath.Dir(path), fmt.Sprintf("%s_backup_%s%s", stem, now.Format(backupTimeLayout), ext))
}

// Backup copies the workbook to a timestamped sibling and returns the copy's path.
func Backup(path string, now time.Time) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "unable to open workbook for backup")
	}
	defer src.Close()

	backupPath := BackupName(path, now)
	dst, err := os.OpenFile(backupPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	// two backups within the same second get a counter suffix
	base := strings.TrimSuffix(backupPath, filepath.Ext(backupPath))
	for n := 1; err != nil && os.IsExist(err) && n < 100; n++ {
		backupPath = fmt.Sprintf("%s_%d%s", base, n, filepath.Ext(path))
		dst, err = os.OpenFile(backupPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	}
	if err != nil {
		return "", errors.Wrap(err, "unable to create workbook backup")
	}
	_, err = io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(backupPath)
		return "", errors.Wrap(err, "unable to copy workbook backup")
	}
	return backupPath, nil
}

// isTruthy treats any non-empty cell as set except zero and false.
func isTruthy(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "false") {
		return false
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f != 0
	}
	return true
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "y":
		return true
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
		return f != 0
	}
	return false
}
