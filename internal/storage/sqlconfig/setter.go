package sqlconfig

import (
	"github.com/aarondl/opt/omit"
)

// insertSetter accumulates column/value pairs for insert statements so
// optional columns can fall back to their database defaults.
type insertSetter struct {
	columns []string
	values  []interface{}
}

func (s *insertSetter) set(column string, value interface{}) {
	s.columns = append(s.columns, column)
	s.values = append(s.values, value)
}

func (s *insertSetter) setOpt(column string, value omit.Val[interface{}]) {
	if !value.IsValue() {
		return
	}
	s.set(column, value.MustGet())
}

func toAnySlice(columns []string) []any {
	out := make([]any, len(columns))
	for i, column := range columns {
		out[i] = column
	}
	return out
}

func toPointerSlice[T any](rows []T) []*T {
	out := make([]*T, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out
}
