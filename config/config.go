package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		// 5xx responses are reported here, empty disables it
		ErrNotifyAddr string `default:"" env:"ERR_NOTIFY_ADDR"`
	}
	Leave struct {
		Backend          string `default:"json" env:"LEAVE_BACKEND"` // json | workbook
		RequestsDir      string `default:"" env:"LEAVE_REQUESTS_DIR"`
		WorkbookPath     string `default:"" env:"ROTA_WORKBOOK_PATH"`
		SheetName        string `default:"Leave" env:"LEAVE_SHEET_NAME"`
		ConsultantsSheet string `default:"Consultants" env:"CONSULTANTS_SHEET_NAME"`
		BackupOnCompile  *bool  `default:"true" env:"LEAVE_BACKUP_ON_COMPILE"`
		UseLockFile      *bool  `default:"true" env:"LEAVE_USE_LOCK_FILE"`
		StrictNames      *bool  `default:"false" env:"LEAVE_STRICT_NAMES"`
		// compile clears rows without a RequestID instead of keeping them
		ReplaceLegacyRows *bool `default:"false" env:"LEAVE_REPLACE_LEGACY_ROWS"`
		// newest local backups kept by the prune worker, 0 keeps everything
		BackupKeep int `default:"0" env:"LEAVE_BACKUP_KEEP"`
	}
	Admin struct {
		Password string `default:"" env:"ADMIN_PASSWORD"`
	}
	Session struct {
		JWTSecret      string `default:"" env:"SESSION_JWT_SECRET"`
		JWTExpireInSec int    `default:"28800" env:"SESSION_JWT_EXPIRE_IN_SEC"`
	}
	Database struct {
		Enabled        *bool  `default:"false" env:"DB_ENABLED"`
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"leave-tools" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"rota-backups" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"true" env:"S3_USE_SSL"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		NotifyTo   string `default:"" env:"SMTP_NOTIFY_TO"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}

// ExpandHome resolves a leading "~" against the current user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
