package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/oakmere-labs/ledger-server/internal/config"
	"github.com/oakmere-labs/ledger-server/internal/handlers/v1/account"
	"github.com/oakmere-labs/ledger-server/internal/handlers/v1/budget"
	"github.com/oakmere-labs/ledger-server/internal/handlers/v1/debt"
	"github.com/oakmere-labs/ledger-server/internal/handlers/v1/forecast"
	"github.com/oakmere-labs/ledger-server/internal/handlers/v1/goal"
	"github.com/oakmere-labs/ledger-server/internal/handlers/v1/recurring"
	"github.com/oakmere-labs/ledger-server/internal/handlers/v1/status"
	"github.com/oakmere-labs/ledger-server/internal/handlers/v1/transaction"
	"github.com/oakmere-labs/ledger-server/internal/logging"
	"github.com/oakmere-labs/ledger-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Config  *config.Config
	Service *service.Service
}

func (r *Rest) Serve() {
	router := chi.NewRouter()

	statusHandler := status.NewHandler()
	router.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humachi.New(router, huma.DefaultConfig("ledger-server", "1.0.0"))

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	account.NewCreateAccountHandler(r.Service.Account).Register(humaAPI)
	account.NewListAccountsHandler(r.Service.Account).Register(humaAPI)
	budget.NewCreateBudgetHandler(r.Service.Budget).Register(humaAPI)
	budget.NewBudgetStatusesHandler(r.Service.Budget).Register(humaAPI)
	debt.NewCreateObligationHandler(r.Service.Debt).Register(humaAPI)
	debt.NewOverviewHandler(r.Service.Debt).Register(humaAPI)
	debt.NewRecordPaymentHandler(r.Service.Debt).Register(humaAPI)
	forecast.NewProjectionHandler(r.Service.Forecast, r.Config.MaxProjectionHorizonDays).Register(humaAPI)
	recurring.NewCreateRuleHandler(r.Service.Recurring).Register(humaAPI)
	recurring.NewSweepHandler(r.Service.Recurring).Register(humaAPI)
	goal.NewCreateGoalHandler(r.Service.Goal).Register(humaAPI)
	goal.NewListGoalsHandler(r.Service.Goal).Register(humaAPI)
	goal.NewUpdateSavedHandler(r.Service.Goal).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Config.HTTPPort,
		Handler:           router,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
