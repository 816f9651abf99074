package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Frequency is how often a recurring rule fires.
type Frequency int16

const (
	FrequencyDaily Frequency = iota
	FrequencyWeekly
	FrequencyMonthly
	FrequencyYearly
)

// RecurringRule represents a recurring transaction definition. DayOfWeek
// applies to weekly rules, DayOfMonth to monthly and yearly ones; both are
// null when unset.
type RecurringRule struct {
	ID            uuid.UUID       `db:"id"`
	Name          string          `db:"rule_name"`
	Amount        decimal.Decimal `db:"amount"`
	Type          TransactionType `db:"type"`
	AccountID     uuid.UUID       `db:"account_id"`
	CategoryID    uuid.UUID       `db:"category_id"`
	Frequency     Frequency       `db:"frequency"`
	DayOfWeek     sql.NullInt16   `db:"day_of_week"`
	DayOfMonth    sql.NullInt16   `db:"day_of_month"`
	StartDate     time.Time       `db:"start_date"`
	EndDate       sql.NullTime    `db:"end_date"`
	LastProcessed sql.NullTime    `db:"last_processed"`
	Active        bool            `db:"active"`
	CreatedAt     time.Time       `db:"created_at"`
}

// RecurringRuleCreate is the input for creating a new recurring rule.
type RecurringRuleCreate struct {
	Name       string
	Amount     decimal.Decimal
	Type       TransactionType
	AccountID  uuid.UUID
	CategoryID uuid.UUID
	Frequency  Frequency
	DayOfWeek  *int16
	DayOfMonth *int16
	StartDate  time.Time
	EndDate    time.Time // zero for no end
}

// RecurringRuleFilter specifies filters for listing recurring rules.
type RecurringRuleFilter struct {
	ActiveOnly bool
}

// IRecurringRuleTable defines the interface for recurring rule storage
// operations.
//
//go:generate mockery --name IRecurringRuleTable --output mock_IRecurringRuleTable.go
type IRecurringRuleTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RecurringRule, error)
	Insert(ctx context.Context, create *RecurringRuleCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *RecurringRuleFilter) ([]*RecurringRule, error)
	UpdateLastProcessed(ctx context.Context, id uuid.UUID, lastProcessed time.Time) error
}
