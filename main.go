package main

import (
	log "github.com/sirupsen/logrus"
)

// @title			Leave tools API
// @version		1.0
// @description	Rota leave requests and workbook compilation.
// @securityDefinitions.apikey	ApiKeyAuth
// @in							header
// @name						Authorization
func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
