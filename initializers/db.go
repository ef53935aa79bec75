package initializers

import (
	"leave-tools-backend/config"
	"leave-tools-backend/db"

	log "github.com/sirupsen/logrus"
)

func InitDBConnection() {
	if !*config.Conf.Database.Enabled {
		log.Info("database is disabled, compile history will not be kept")
		return
	}
	err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart)
	if err != nil {
		panic(err.Error())
	}
}
