package dto

import (
	"fmt"
	"maps"
	"strings"
)

const (
	FilterOperatorEq    = "eq"
	FilterOperatorNotEq = "not_eq"
	FilterOperatorLike  = "like"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// Filter renders one named-parameter condition. ArgName defaults to Field and must be set
// when the same column appears twice in one statement, as in a guarded UPDATE.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string
	Table    string
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	column := f.Field
	if f.Table != "" {
		column = f.Table + "." + f.Field
	}

	arg := f.ArgName
	if arg == "" {
		arg = f.Field
	}

	switch f.Operator {
	case FilterOperatorEq:
		return fmt.Sprintf("%s = :%s", column, arg), map[string]any{arg: f.Value}
	case FilterOperatorNotEq:
		return fmt.Sprintf("%s != :%s", column, arg), map[string]any{arg: f.Value}
	case FilterOperatorLike:
		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s)", column, arg), map[string]any{arg: fmt.Sprintf("%%%v%%", f.Value)}
	default:
		return "", map[string]any{}
	}
}

// FilterGroup joins Filter and nested FilterGroup values with Operator, defaulting to AND.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := make([]string, 0, len(f.Filters))

	for _, item := range f.Filters {
		var (
			where string
			arg   map[string]any
		)

		switch filter := item.(type) {
		case Filter:
			where, arg = filter.GetWhereClause()
		case FilterGroup:
			where, arg = filter.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		clauses = append(clauses, where)
		maps.Copy(args, arg)
	}

	if len(clauses) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return "(" + strings.Join(clauses, " "+operator+" ") + ")", args
}
