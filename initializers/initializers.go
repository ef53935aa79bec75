package initializers

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"leave-tools-backend/config"
	"leave-tools-backend/db"
	"leave-tools-backend/fiberlog"
	backuppruneworker "leave-tools-backend/lib/backup-prune-worker"
	compilehistorystore "leave-tools-backend/lib/compile-history/store"
	"leave-tools-backend/lib/compiler"
	"leave-tools-backend/lib/consultants"
	pdfexport "leave-tools-backend/lib/export/pdf"
	xlsexport "leave-tools-backend/lib/export/xls"
	filestorage "leave-tools-backend/lib/file-storage"
	"leave-tools-backend/lib/gate"
	leavehandler "leave-tools-backend/lib/leave"
	leavesheetstore "leave-tools-backend/lib/leave/sheet-store"
	leavestore "leave-tools-backend/lib/leave/store"
	"leave-tools-backend/lib/smtp"
)

const backendWorkbook = "workbook"

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	InitLeaveServices()
	initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	if config.Conf.Leave.BackupKeep > 0 {
		backuppruneworker.StartWorker(ctx, config.ExpandHome(config.Conf.Leave.WorkbookPath), config.Conf.Leave.BackupKeep)
	}
}

// InitLeaveServices wires the request store, gate, roster, exports and compiler from config.Conf.
func InitLeaveServices() {
	workbookPath := config.ExpandHome(config.Conf.Leave.WorkbookPath)
	store, err := initStore(workbookPath)
	if err != nil {
		panic(err.Error())
	}

	consultants.NewHandler(workbookPath, config.Conf.Leave.ConsultantsSheet)
	leavehandler.NewHandler(store, *config.Conf.Leave.StrictNames, consultants.Instance.List)
	gate.NewHandler(config.Conf.Admin.Password, config.Conf.Session.JWTSecret,
		time.Duration(config.Conf.Session.JWTExpireInSec)*time.Second)
	xlsexport.NewHandler()
	pdfexport.NewHandler()

	deps := compiler.Deps{}
	if filestorage.Instance != nil {
		deps.BackupStorage = filestorage.Instance
	}
	if db.DB != nil {
		deps.History = compilehistorystore.NewInstance(db.DB)
	}
	if smtp.Instance != nil {
		deps.Mailer = smtp.Instance
	}
	compiler.NewHandler(store, compiler.Options{
		WorkbookPath: workbookPath,
		Sheet:        config.Conf.Leave.SheetName,
		Backup:       *config.Conf.Leave.BackupOnCompile,
		UseLockFile:  *config.Conf.Leave.UseLockFile,
		NotifyTo:     config.Conf.Smtp.NotifyTo,

		ReplaceLegacyRows: *config.Conf.Leave.ReplaceLegacyRows,
	}, deps)
}

func initStore(workbookPath string) (leavestore.Provider, error) {
	if config.Conf.Leave.Backend == backendWorkbook {
		log.WithField("workbook", workbookPath).Info("leave requests are stored in the workbook sheet")
		return leavesheetstore.NewInstance(workbookPath, config.Conf.Leave.SheetName,
			*config.Conf.Leave.BackupOnCompile, *config.Conf.Leave.UseLockFile), nil
	}
	dir := config.ExpandHome(config.Conf.Leave.RequestsDir)
	log.WithField("dir", dir).Info("leave requests are stored as json files")
	return leavestore.NewInstance(dir)
}
