package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/shan3520/smartspend/api"
	"github.com/shan3520/smartspend/internal/config"
	"github.com/shan3520/smartspend/internal/logging"
	"github.com/shan3520/smartspend/internal/operator"
	"github.com/shan3520/smartspend/internal/service"
	"github.com/shan3520/smartspend/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("smartspend starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}

	// A single worker serializes all sqlite writes.
	delegator := operator.NewOperatorDelegator(dbStorage, 1)
	delegator.Start()

	svc := service.NewService(dbStorage, delegator)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.Port,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
