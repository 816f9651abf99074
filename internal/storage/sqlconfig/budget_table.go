package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var budgetColumns = []string{
	"id", "category_id", "limit_amount", "start_date", "rollover_enabled", "created_at",
}

var _ IBudgetTable = (*BudgetsTable)(nil)

type BudgetsTable struct {
	exec bob.Executor
}

func NewBudgetsTable(exec bob.Executor) *BudgetsTable {
	return &BudgetsTable{exec: exec}
}

// Insert creates a new budget and returns its generated ID.
func (t *BudgetsTable) Insert(ctx context.Context, create *BudgetCreate) (uuid.UUID, error) {
	setter := insertSetter{}
	setter.set("category_id", create.CategoryID)
	setter.set("limit_amount", create.LimitAmount)
	setter.set("start_date", create.StartDate)
	setter.set("rollover_enabled", create.RolloverEnabled)

	query := psql.Insert(
		im.Into("budgets", setter.columns...),
		im.Values(psql.Arg(setter.values...)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
}

// List returns budgets matching the filter, oldest month first so rollover
// chains come back in computation order.
func (t *BudgetsTable) List(ctx context.Context, filter *BudgetFilter) ([]*Budget, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(toAnySlice(budgetColumns)...),
		sm.From("budgets"),
	}
	if filter != nil && filter.CategoryID != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("category_id").EQ(psql.Arg(*filter.CategoryID))))
	}
	queryMods = append(queryMods,
		sm.OrderBy("start_date").Asc(),
		sm.OrderBy("created_at").Asc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Budget]())
	if err != nil {
		return nil, err
	}
	return toPointerSlice(rows), nil
}
