package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/oakmere-labs/ledger-server/internal/storage"
	"github.com/oakmere-labs/ledger-server/internal/storage/sqlconfig"
)

type CreateAccount struct {
	Name            string
	Type            sqlconfig.AccountType
	SubType         string
	StartingBalance decimal.Decimal
	DueDayOfMonth   *int16

	IAction
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	_, err := writer.Accounts.Insert(ctx, &sqlconfig.AccountCreate{
		Name:            c.Name,
		Type:            c.Type,
		SubType:         c.SubType,
		Balance:         c.StartingBalance,
		StartingBalance: c.StartingBalance,
		DueDayOfMonth:   c.DueDayOfMonth,
	})
	return err
}
