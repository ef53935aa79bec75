package leavesheetstore

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	leavestore "leave-tools-backend/lib/leave/store"
	"leave-tools-backend/lib/utils/lock"
	"leave-tools-backend/lib/workbook"
	"leave-tools-backend/models"
)

// NewInstance keeps requests directly as rows of the leave sheet.
// Every write takes the workbook lock, optionally backs the file up and saves in place.
func NewInstance(path, sheet string, backup, useLockFile bool) leavestore.Provider {
	return &impl{
		path:        path,
		sheet:       sheet,
		backup:      backup,
		useLockFile: useLockFile,
		now:         time.Now,
	}
}

type impl struct {
	path        string
	sheet       string
	backup      bool
	useLockFile bool
	now         func() time.Time
}

func (i impl) Create(rec models.LeaveRequest) error {
	if rec.RequestID == "" {
		return leavestore.ErrInvalidID
	}
	return i.write(func(s *workbook.LeaveSheet) error {
		if _, exists := s.RowOf(rec.RequestID); exists {
			return leavestore.ErrAlreadyExists
		}
		_, _, err := s.Put(rec)
		return err
	})
}

func (i impl) ReadAll() ([]models.LeaveRequest, error) {
	f, err := workbook.Open(i.path)
	if err != nil {
		return nil, err
	}
	defer workbook.Close(f)
	s, err := workbook.LoadLeaveSheet(f, i.sheet)
	if err != nil {
		return nil, err
	}
	return s.Records(), nil
}

func (i impl) Get(id string) (*models.LeaveRequest, error) {
	list, err := i.ReadAll()
	if err != nil {
		return nil, err
	}
	for _, rec := range list {
		if rec.RequestID == id {
			return &rec, nil
		}
	}
	return nil, leavestore.ErrNotFound
}

func (i impl) Update(rec models.LeaveRequest) error {
	return i.write(func(s *workbook.LeaveSheet) error {
		if _, err := liveRow(s, rec.RequestID); err != nil {
			return err
		}
		_, _, err := s.Put(rec)
		return err
	})
}

// Delete blanks the row without shifting the rows below it.
func (i impl) Delete(id string) error {
	return i.write(func(s *workbook.LeaveSheet) error {
		if _, err := liveRow(s, id); err != nil {
			return err
		}
		return s.Remove(id)
	})
}

func liveRow(s *workbook.LeaveSheet, id string) (int, error) {
	row, ok := s.RowOf(id)
	if !ok || s.IsBlank(row) {
		return 0, leavestore.ErrNotFound
	}
	return row, nil
}

func (i impl) write(change func(s *workbook.LeaveSheet) error) error {
	return lock.WithWorkbook(context.Background(), i.path, i.useLockFile, func() error {
		f, err := workbook.Open(i.path)
		if err != nil {
			return err
		}
		defer workbook.Close(f)
		s, err := workbook.LoadLeaveSheet(f, i.sheet)
		if err != nil {
			return err
		}
		if err := change(s); err != nil {
			return err
		}
		if i.backup {
			backupPath, err := workbook.Backup(i.path, i.now())
			if err != nil {
				return err
			}
			log.WithField("backup", backupPath).Debug("workbook backup created")
		}
		return workbook.Save(f, i.path)
	})
}
