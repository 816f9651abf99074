package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/oakmere-labs/ledger-server/internal/config"
	"github.com/oakmere-labs/ledger-server/internal/storage/sqlconfig"
)

// Storage is the root access point for all persisted data. Table fields
// are interfaces so tests can swap in mocks.
type Storage struct {
	DB *sql.DB

	Accounts       sqlconfig.IAccountTable
	Transactions   sqlconfig.ITransactionTable
	Budgets        sqlconfig.IBudgetTable
	Obligations    sqlconfig.IObligationTable
	Liabilities    sqlconfig.ILiabilityTable
	RecurringRules sqlconfig.IRecurringRuleTable
	Goals          sqlconfig.IGoalTable

	bdb bob.DB
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		log.Fatal(err)
	}

	bdb := bob.NewDB(db)
	return &Storage{
		DB:             db,
		Accounts:       sqlconfig.NewAccountsTable(bdb),
		Transactions:   sqlconfig.NewTransactionsTable(bdb),
		Budgets:        sqlconfig.NewBudgetsTable(bdb),
		Obligations:    sqlconfig.NewObligationsTable(bdb),
		Liabilities:    sqlconfig.NewLiabilitiesTable(bdb),
		RecurringRules: sqlconfig.NewRecurringRulesTable(bdb),
		Goals:          sqlconfig.NewGoalsTable(bdb),
		bdb:            bdb,
	}
}

// Write opens a transaction and returns a Writer whose tables are bound
// to it. The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bdb.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
