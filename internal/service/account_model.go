package service

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/oakmere-labs/ledger-server/internal/storage/sqlconfig"
)

// AccountType represents an account type in the service layer.
type AccountType int8

const (
	AccountTypeCash AccountType = iota
	AccountTypeCreditCards
	AccountTypeInvestments
	AccountTypeLoans
	AccountTypeAssets
)

// Account represents an account in the service layer. DueDayOfMonth is nil
// except for credit card accounts with a statement due day configured.
type Account struct {
	ID            uuid.UUID
	Name          string
	Type          AccountType
	SubType       string
	Balance       decimal.Decimal
	DueDayOfMonth *int16
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

func accountTypeToStorage(t AccountType) sqlconfig.AccountType {
	return sqlconfig.AccountType(t)
}

func accountTypeFromStorage(t sqlconfig.AccountType) AccountType {
	return AccountType(t)
}

func accountFromRow(row *sqlconfig.Account) Account {
	account := Account{
		ID:      row.ID,
		Name:    row.Name,
		Type:    accountTypeFromStorage(row.Type),
		SubType: row.SubType,
		Balance: row.Balance,
	}
	if row.DueDayOfMonth.Valid {
		day := row.DueDayOfMonth.Int16
		account.DueDayOfMonth = &day
	}
	return account
}
