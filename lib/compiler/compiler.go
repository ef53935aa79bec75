package compiler

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	compilehistorystore "leave-tools-backend/lib/compile-history/store"
	filestorage "leave-tools-backend/lib/file-storage"
	"leave-tools-backend/lib/gate"
	leavehandler "leave-tools-backend/lib/leave"
	leavestore "leave-tools-backend/lib/leave/store"
	"leave-tools-backend/lib/smtp"
	initchecker "leave-tools-backend/lib/utils/init-checker"
	"leave-tools-backend/lib/utils/lock"
	"leave-tools-backend/lib/workbook"
	compileapimodels "leave-tools-backend/models/api/compile"
	dbmodels "leave-tools-backend/models/db"
)

type Options struct {
	WorkbookPath string
	Sheet        string
	Backup       bool
	UseLockFile  bool
	NotifyTo     string

	// ReplaceLegacyRows clears named rows without a request id, as left by earlier tools.
	ReplaceLegacyRows bool
}

// Deps are optional side channels; nil members are skipped.
type Deps struct {
	BackupStorage filestorage.Provider
	History       compilehistorystore.Provider
	Mailer        smtp.Provider
}

type Provider interface {
	// Compile merges every stored request into the leave sheet.
	// Two processes compiling at once are not coordinated beyond the advisory lock file.
	Compile(ctx context.Context, sess gate.Session) (compileapimodels.CompileResult, error)
	History(limit int) ([]dbmodels.CompileRun, error)
}

var Instance Provider

func NewHandler(store leavestore.Provider, opts Options, deps Deps) {
	Instance = New(store, opts, deps)
}

func New(store leavestore.Provider, opts Options, deps Deps) Provider {
	instance := impl{
		store: store,
		opts:  opts,
		deps:  deps,
		now:   time.Now,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store leavestore.Provider
	opts  Options
	deps  Deps
	now   func() time.Time
}

var ErrHistoryDisabled = errors.New("compile history is not enabled")

func (i impl) Compile(ctx context.Context, sess gate.Session) (result compileapimodels.CompileResult, err error) {
	if err = gate.Require(sess); err != nil {
		return result, err
	}
	logger := log.WithFields(log.Fields{
		"session":  sess.ID,
		"workbook": i.opts.WorkbookPath,
	})
	if err = workbook.CheckPath(i.opts.WorkbookPath); err != nil {
		return result, err
	}
	err = lock.WithWorkbook(ctx, i.opts.WorkbookPath, i.opts.UseLockFile, func() error {
		var compileErr error
		result, compileErr = i.compile(ctx)
		return compileErr
	})
	i.record(sess, result, err)
	if err != nil {
		logger.WithError(err).Error("compile failed")
		return result, err
	}
	logger.WithFields(log.Fields{
		"total":    result.Total,
		"updated":  result.Updated,
		"appended": result.Appended,
		"cleared":  result.Cleared,
	}).Info("leave requests compiled into workbook")
	i.notify(result)
	return result, nil
}

func (i impl) compile(ctx context.Context) (result compileapimodels.CompileResult, err error) {
	f, err := workbook.Open(i.opts.WorkbookPath)
	if err != nil {
		return result, err
	}
	defer workbook.Close(f)
	sheet, err := workbook.LoadLeaveSheet(f, i.opts.Sheet)
	if err != nil {
		return result, err
	}

	list, err := i.store.ReadAll()
	if err != nil {
		return result, errors.Wrap(err, "unable to read leave requests")
	}
	leavehandler.SortRecords(list)
	result.Total = len(list)

	live := make(map[string]bool, len(list))
	for _, rec := range list {
		live[rec.RequestID] = true
		_, appended, err := sheet.Put(rec)
		if err != nil {
			return result, err
		}
		if appended {
			result.Appended++
		} else {
			result.Updated++
		}
	}
	for id, row := range sheet.IDs() {
		if live[id] || sheet.IsBlank(row) {
			continue
		}
		if err := sheet.Clear(row); err != nil {
			return result, err
		}
		result.Cleared++
	}
	if i.opts.ReplaceLegacyRows {
		for id, row := range sheet.LegacyIDs() {
			if live[id] {
				continue
			}
			if err := sheet.ClearAll(row); err != nil {
				return result, err
			}
			result.Cleared++
		}
	}
	for _, row := range sheet.Duplicates() {
		if err := sheet.ClearAll(row); err != nil {
			return result, err
		}
		result.Cleared++
	}

	// backup right before the overwrite so it holds the last published state
	if i.opts.Backup {
		result.BackupPath, err = i.backup(ctx)
		if err != nil {
			return result, errors.Wrap(err, "backup failed, compile aborted")
		}
	}
	if err := workbook.Save(f, i.opts.WorkbookPath); err != nil {
		return result, err
	}
	return result, nil
}

func (i impl) backup(ctx context.Context) (string, error) {
	backupPath, err := workbook.Backup(i.opts.WorkbookPath, i.now())
	if err != nil {
		return "", err
	}
	if i.deps.BackupStorage != nil {
		if _, err := i.deps.BackupStorage.UploadBackup(ctx, backupPath); err != nil {
			return backupPath, err
		}
	}
	return backupPath, nil
}

func (i impl) record(sess gate.Session, result compileapimodels.CompileResult, compileErr error) {
	if i.deps.History == nil {
		return
	}
	rec := dbmodels.CompileRun{
		SessionID:    sess.ID,
		WorkbookPath: i.opts.WorkbookPath,
		Status:       dbmodels.CompileStatusSuccess,
		Total:        result.Total,
		Updated:      result.Updated,
		Appended:     result.Appended,
		Cleared:      result.Cleared,
		BackupPath:   result.BackupPath,
	}
	if compileErr != nil {
		rec.Status = dbmodels.CompileStatusFail
		rec.Error = compileErr.Error()
	}
	if err := i.deps.History.Save(rec); err != nil {
		log.WithError(err).Error("unable to record compile run")
	}
}

func (i impl) notify(result compileapimodels.CompileResult) {
	if i.deps.Mailer == nil || i.opts.NotifyTo == "" {
		return
	}
	message := fmt.Sprintf("Compiled %d leave requests into %s: %d updated, %d added, %d cleared.",
		result.Total, i.opts.WorkbookPath, result.Updated, result.Appended, result.Cleared)
	if err := i.deps.Mailer.SendEMail(i.opts.NotifyTo, message, "workbook compiled"); err != nil {
		log.WithError(err).Warn("unable to send compile notification")
	}
}

func (i impl) History(limit int) ([]dbmodels.CompileRun, error) {
	if i.deps.History == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return i.deps.History.List(limit)
}
