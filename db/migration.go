package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "leave-tools-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.CompileRun{}); err != nil {
		return errors.Wrap(err, "unable to migrate CompileRun")
	}
	log.Info("migrations finished")
	return nil
}
