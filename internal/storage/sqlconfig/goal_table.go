package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var goalColumns = []string{
	"id", "goal_name", "target_amount", "saved_amount", "target_date", "created_at",
}

// GoalsTable provides access to the goals table.
type GoalsTable struct {
	exec bob.Executor
}

var _ IGoalTable = (*GoalsTable)(nil)

func NewGoalsTable(exec bob.Executor) *GoalsTable {
	return &GoalsTable{exec: exec}
}

// FindByID retrieves a goal by primary key.
func (t *GoalsTable) FindByID(ctx context.Context, id uuid.UUID) (*FinancialGoal, error) {
	query := psql.Select(
		sm.Columns(toAnySlice(goalColumns)...),
		sm.From("goals"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[FinancialGoal]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new goal and returns its generated ID.
func (t *GoalsTable) Insert(ctx context.Context, create *FinancialGoalCreate) (uuid.UUID, error) {
	setter := insertSetter{}
	setter.set("goal_name", create.Name)
	setter.set("target_amount", create.TargetAmount)
	setter.set("saved_amount", create.SavedAmount)
	setter.set("target_date", create.TargetDate)

	query := psql.Insert(
		im.Into("goals", setter.columns...),
		im.Values(psql.Arg(setter.values...)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
}

// List returns all goals ordered by target date.
func (t *GoalsTable) List(ctx context.Context) ([]*FinancialGoal, error) {
	query := psql.Select(
		sm.Columns(toAnySlice(goalColumns)...),
		sm.From("goals"),
		sm.OrderBy("target_date").Asc(),
		sm.OrderBy("id").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[FinancialGoal]())
	if err != nil {
		return nil, err
	}
	return toPointerSlice(rows), nil
}

// UpdateSavedAmount sets the saved amount for a goal.
func (t *GoalsTable) UpdateSavedAmount(ctx context.Context, id uuid.UUID, saved decimal.Decimal) error {
	query := psql.Update(
		um.Table("goals"),
		um.SetCol("saved_amount").ToArg(saved),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, query)
	return err
}
