package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var liabilityColumns = []string{
	"id", "kind", "name", "original_amount", "monthly_payment", "due_date",
	"payment_structure", "number_of_installments", "payment_day_of_month", "created_at",
}

var liabilityPaymentColumns = []string{
	"id", "liability_id", "amount", "paid_on", "created_at",
}

var _ ILiabilityTable = (*LiabilitiesTable)(nil)

type LiabilitiesTable struct {
	exec bob.Executor
}

func NewLiabilitiesTable(exec bob.Executor) *LiabilitiesTable {
	return &LiabilitiesTable{exec: exec}
}

// FindByID retrieves a liability by primary key.
func (t *LiabilitiesTable) FindByID(ctx context.Context, id uuid.UUID) (*Liability, error) {
	query := psql.Select(
		sm.Columns(toAnySlice(liabilityColumns)...),
		sm.From("liabilities"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Liability]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new liability and returns its generated ID.
func (t *LiabilitiesTable) Insert(ctx context.Context, create *LiabilityCreate) (uuid.UUID, error) {
	setter := insertSetter{}
	setter.set("kind", create.Kind)
	setter.set("name", create.Name)
	setter.set("original_amount", create.OriginalAmount)
	setter.set("monthly_payment", create.MonthlyPayment)
	setter.set("payment_structure", create.Structure)
	setter.set("number_of_installments", create.NumberOfInstallments)
	setter.set("payment_day_of_month", create.PaymentDayOfMonth)

	dueDate := omit.Val[interface{}]{}
	if !create.DueDate.IsZero() {
		dueDate = omit.From[interface{}](create.DueDate)
	}
	setter.setOpt("due_date", dueDate)

	query := psql.Insert(
		im.Into("liabilities", setter.columns...),
		im.Values(psql.Arg(setter.values...)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
}

// List returns liabilities matching the filter.
func (t *LiabilitiesTable) List(ctx context.Context, filter *LiabilityFilter) ([]*Liability, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(toAnySlice(liabilityColumns)...),
		sm.From("liabilities"),
	}
	if filter != nil && filter.Kind != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("kind").EQ(psql.Arg(*filter.Kind))))
	}
	queryMods = append(queryMods,
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Liability]())
	if err != nil {
		return nil, err
	}
	return toPointerSlice(rows), nil
}

// InsertPayment records a payment toward a liability.
func (t *LiabilitiesTable) InsertPayment(ctx context.Context, liabilityID uuid.UUID, amount decimal.Decimal, paidOn time.Time) (uuid.UUID, error) {
	setter := insertSetter{}
	setter.set("liability_id", liabilityID)
	setter.set("amount", amount)
	setter.set("paid_on", paidOn)

	query := psql.Insert(
		im.Into("liability_payments", setter.columns...),
		im.Values(psql.Arg(setter.values...)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
}

// ListPayments returns a liability's payments in ascending date order.
func (t *LiabilitiesTable) ListPayments(ctx context.Context, liabilityID uuid.UUID) ([]*LiabilityPayment, error) {
	query := psql.Select(
		sm.Columns(toAnySlice(liabilityPaymentColumns)...),
		sm.From("liability_payments"),
		sm.Where(psql.Quote("liability_id").EQ(psql.Arg(liabilityID))),
		sm.OrderBy("paid_on").Asc(),
		sm.OrderBy("created_at").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[LiabilityPayment]())
	if err != nil {
		return nil, err
	}
	return toPointerSlice(rows), nil
}
