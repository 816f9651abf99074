package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var recurringRuleColumns = []string{
	"id", "rule_name", "amount", "type", "account_id", "category_id", "frequency",
	"day_of_week", "day_of_month", "start_date", "end_date", "last_processed",
	"active", "created_at",
}

var _ IRecurringRuleTable = (*RecurringRulesTable)(nil)

type RecurringRulesTable struct {
	exec bob.Executor
}

func NewRecurringRulesTable(exec bob.Executor) *RecurringRulesTable {
	return &RecurringRulesTable{exec: exec}
}

// FindByID retrieves a recurring rule by primary key.
func (t *RecurringRulesTable) FindByID(ctx context.Context, id uuid.UUID) (*RecurringRule, error) {
	query := psql.Select(
		sm.Columns(toAnySlice(recurringRuleColumns)...),
		sm.From("recurring_rules"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[RecurringRule]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new recurring rule and returns its generated ID.
func (t *RecurringRulesTable) Insert(ctx context.Context, create *RecurringRuleCreate) (uuid.UUID, error) {
	setter := insertSetter{}
	setter.set("rule_name", create.Name)
	setter.set("amount", create.Amount)
	setter.set("type", create.Type)
	setter.set("account_id", create.AccountID)
	setter.set("category_id", create.CategoryID)
	setter.set("frequency", create.Frequency)
	setter.set("start_date", create.StartDate)

	dayOfWeek := omit.Val[interface{}]{}
	if create.DayOfWeek != nil {
		dayOfWeek = omit.From[interface{}](*create.DayOfWeek)
	}
	setter.setOpt("day_of_week", dayOfWeek)

	dayOfMonth := omit.Val[interface{}]{}
	if create.DayOfMonth != nil {
		dayOfMonth = omit.From[interface{}](*create.DayOfMonth)
	}
	setter.setOpt("day_of_month", dayOfMonth)

	endDate := omit.Val[interface{}]{}
	if !create.EndDate.IsZero() {
		endDate = omit.From[interface{}](create.EndDate)
	}
	setter.setOpt("end_date", endDate)

	query := psql.Insert(
		im.Into("recurring_rules", setter.columns...),
		im.Values(psql.Arg(setter.values...)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
}

// List returns recurring rules, optionally only active ones.
func (t *RecurringRulesTable) List(ctx context.Context, filter *RecurringRuleFilter) ([]*RecurringRule, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(toAnySlice(recurringRuleColumns)...),
		sm.From("recurring_rules"),
	}
	if filter != nil && filter.ActiveOnly {
		queryMods = append(queryMods, sm.Where(psql.Quote("active").EQ(psql.Arg(true))))
	}
	queryMods = append(queryMods,
		sm.OrderBy("start_date").Asc(),
		sm.OrderBy("id").Asc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[RecurringRule]())
	if err != nil {
		return nil, err
	}
	return toPointerSlice(rows), nil
}

// UpdateLastProcessed advances a rule's last materialized occurrence date.
func (t *RecurringRulesTable) UpdateLastProcessed(ctx context.Context, id uuid.UUID, lastProcessed time.Time) error {
	query := psql.Update(
		um.Table("recurring_rules"),
		um.SetCol("last_processed").ToArg(lastProcessed),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, query)
	return err
}
