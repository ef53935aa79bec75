package backuppruneworker

import (
	"context"
	"time"

	baseworker "leave-tools-backend/lib/utils/base-worker"
	"leave-tools-backend/lib/utils/helpers"
	"leave-tools-backend/lib/workbook"
)

// StartWorker keeps only the newest keep local backups of the workbook.
func StartWorker(ctx context.Context, workbookPath string, keep int) {
	i := &impl{
		BaseImpl:     *baseworker.NewInstance("BackupPruneWorker", 30*time.Second, 60*time.Minute),
		workbookPath: workbookPath,
		keep:         keep,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	workbookPath string
	keep         int
}

func (i impl) handle(ctx context.Context) {
	if helpers.IsContextDone(ctx) {
		return
	}
	logger := i.GetLogger()
	removed, err := workbook.PruneBackups(i.workbookPath, i.keep)
	if err != nil {
		logger.WithError(err).Error("unable to prune workbook backups")
		return
	}
	if len(removed) != 0 {
		logger.WithField("removed", removed).Info("old workbook backups removed")
	}
}
