package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var obligationColumns = []string{
	"id", "kind", "name", "total_amount", "due_date", "created_at",
}

var obligationPaymentColumns = []string{
	"id", "obligation_id", "amount", "paid_on", "created_at",
}

var _ IObligationTable = (*ObligationsTable)(nil)

type ObligationsTable struct {
	exec bob.Executor
}

func NewObligationsTable(exec bob.Executor) *ObligationsTable {
	return &ObligationsTable{exec: exec}
}

// FindByID retrieves an obligation by primary key.
func (t *ObligationsTable) FindByID(ctx context.Context, id uuid.UUID) (*Obligation, error) {
	query := psql.Select(
		sm.Columns(toAnySlice(obligationColumns)...),
		sm.From("obligations"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Obligation]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new obligation and returns its generated ID.
func (t *ObligationsTable) Insert(ctx context.Context, create *ObligationCreate) (uuid.UUID, error) {
	setter := insertSetter{}
	setter.set("kind", create.Kind)
	setter.set("name", create.Name)
	setter.set("total_amount", create.TotalAmount)
	setter.set("due_date", create.DueDate)

	query := psql.Insert(
		im.Into("obligations", setter.columns...),
		im.Values(psql.Arg(setter.values...)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
}

// List returns obligations matching the filter, soonest due first.
func (t *ObligationsTable) List(ctx context.Context, filter *ObligationFilter) ([]*Obligation, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(toAnySlice(obligationColumns)...),
		sm.From("obligations"),
	}
	if filter != nil && filter.Kind != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("kind").EQ(psql.Arg(*filter.Kind))))
	}
	queryMods = append(queryMods,
		sm.OrderBy("due_date").Asc(),
		sm.OrderBy("id").Asc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Obligation]())
	if err != nil {
		return nil, err
	}
	return toPointerSlice(rows), nil
}

// InsertPayment records a payment toward an obligation.
func (t *ObligationsTable) InsertPayment(ctx context.Context, obligationID uuid.UUID, amount decimal.Decimal, paidOn time.Time) (uuid.UUID, error) {
	setter := insertSetter{}
	setter.set("obligation_id", obligationID)
	setter.set("amount", amount)
	setter.set("paid_on", paidOn)

	query := psql.Insert(
		im.Into("obligation_payments", setter.columns...),
		im.Values(psql.Arg(setter.values...)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
}

// ListPayments returns an obligation's payments in ascending date order.
func (t *ObligationsTable) ListPayments(ctx context.Context, obligationID uuid.UUID) ([]*ObligationPayment, error) {
	query := psql.Select(
		sm.Columns(toAnySlice(obligationPaymentColumns)...),
		sm.From("obligation_payments"),
		sm.Where(psql.Quote("obligation_id").EQ(psql.Arg(obligationID))),
		sm.OrderBy("paid_on").Asc(),
		sm.OrderBy("created_at").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[ObligationPayment]())
	if err != nil {
		return nil, err
	}
	return toPointerSlice(rows), nil
}
