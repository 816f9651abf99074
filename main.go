package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/oakmere-labs/ledger-server/api"
	"github.com/oakmere-labs/ledger-server/internal/config"
	"github.com/oakmere-labs/ledger-server/internal/logging"
	"github.com/oakmere-labs/ledger-server/internal/operator"
	"github.com/oakmere-labs/ledger-server/internal/service"
	"github.com/oakmere-labs/ledger-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("ledger-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)

	delegator := operator.NewOperatorDelegator(dbStorage, 1)
	delegator.Start()

	svc := service.NewService(dbStorage, delegator)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Config:  envConfig,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
