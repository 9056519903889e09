package main

import (
	"os"

	"mercadovecino/config"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg := config.Load()

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logger.WithError(err).Fatal("conectando a la base de datos")
	}

	if err := config.AutoMigrate(db); err != nil {
		logger.WithError(err).Fatal("ejecutando migraciones")
	}

	logger.Info("migraciones aplicadas")
}
