package actions

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/oakmere-labs/ledger-server/internal/storage"
	"github.com/oakmere-labs/ledger-server/internal/storage/sqlconfig"
)

var ErrSplitMismatch = errors.New("split amounts do not sum to transaction amount")

type CreateTransaction struct {
	AccountID       uuid.UUID
	CategoryID      uuid.UUID
	Amount          decimal.Decimal
	Type            sqlconfig.TransactionType
	TransactionName string
	TransactionDate time.Time
	Splits          []sqlconfig.Split

	// CreatedID is set after a successful Perform.
	CreatedID uuid.UUID

	IAction
}

// Perform inserts the transaction and adjusts the account balance inside
// the writer's transaction. Split portions must sum to the total amount.
func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.Accounts.FindByID(ctx, t.AccountID)
	if err != nil {
		return err
	}
	if account == nil {
		return errors.New("account not found")
	}

	isSplit := len(t.Splits) > 0
	if isSplit {
		sum := decimal.Zero
		for _, s := range t.Splits {
			sum = sum.Add(s.Amount)
		}
		if !sum.Equal(t.Amount) {
			return ErrSplitMismatch
		}
	}

	categoryID := t.CategoryID
	if isSplit {
		categoryID = uuid.Nil
	}
	createdID, err := writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		AccountID:       t.AccountID,
		CategoryID:      categoryID,
		Amount:          t.Amount,
		Type:            t.Type,
		TransactionName: t.TransactionName,
		TransactionDate: t.TransactionDate,
		IsSplit:         isSplit,
		Splits:          t.Splits,
	})
	if err != nil {
		return err
	}
	t.CreatedID = createdID

	delta := t.Amount
	if t.Type == sqlconfig.TransactionTypeExpense {
		delta = delta.Neg()
	}
	return writer.Accounts.UpdateBalance(ctx, t.AccountID, account.Balance.Add(delta))
}
