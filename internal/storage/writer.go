package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/oakmere-labs/ledger-server/internal/storage/sqlconfig"
)

// Writer bundles table access bound to a single open transaction.
type Writer struct {
	tx bob.Tx

	Accounts       sqlconfig.IAccountTable
	Transactions   sqlconfig.ITransactionTable
	Obligations    sqlconfig.IObligationTable
	Liabilities    sqlconfig.ILiabilityTable
	RecurringRules sqlconfig.IRecurringRuleTable
	Goals          sqlconfig.IGoalTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:             tx,
		Accounts:       sqlconfig.NewAccountsTable(tx),
		Transactions:   sqlconfig.NewTransactionsTable(tx),
		Obligations:    sqlconfig.NewObligationsTable(tx),
		Liabilities:    sqlconfig.NewLiabilitiesTable(tx),
		RecurringRules: sqlconfig.NewRecurringRulesTable(tx),
		Goals:          sqlconfig.NewGoalsTable(tx),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
