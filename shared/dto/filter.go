package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq   = "eq"
	FilterOperatorNe   = "ne"
	FilterOperatorLike = "like"
	FilterOperatorIn   = "in"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// Condition is a fragment of a WHERE clause using sqlx named parameters.
// An empty fragment means the condition does not apply.
type Condition interface {
	Where() (string, map[string]any)
}

// Filter compares one column against Value.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq ne like in"`
	Table    string
}

func (f Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f Filter) arg() string {
	if f.ArgName != "" {
		return f.ArgName
	}

	return f.Field
}

func (f Filter) Where() (string, map[string]any) {
	column, arg := f.column(), f.arg()

	switch f.Operator {
	case FilterOperatorEq:
		return column + " = :" + arg, map[string]any{arg: f.Value}
	case FilterOperatorNe:
		return column + " <> :" + arg, map[string]any{arg: f.Value}
	case FilterOperatorLike:
		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s)", column, arg), map[string]any{arg: fmt.Sprintf("%%%v%%", f.Value)}
	case FilterOperatorIn:
		return f.whereIn(column, arg)
	}

	return "", map[string]any{}
}

// whereIn expands a slice value into one named parameter per element.
func (f Filter) whereIn(column, arg string) (string, map[string]any) {
	args := map[string]any{}

	values := reflect.ValueOf(f.Value)
	if kind := values.Kind(); kind != reflect.Slice && kind != reflect.Array {
		return "", args
	}

	if values.Len() == 0 {
		return "", args
	}

	params := make([]string, 0, values.Len())

	for i := range values.Len() {
		name := fmt.Sprintf("%s_%d", arg, i)
		args[name] = values.Index(i).Interface()
		params = append(params, ":"+name)
	}

	return fmt.Sprintf("%s IN (%s)", column, strings.Join(params, ", ")), args
}

// FilterGroup joins its conditions with Operator (AND when empty) and wraps them in parentheses.
type FilterGroup struct {
	Filters  []Condition
	Operator string
}

func (g FilterGroup) Where() (string, map[string]any) {
	args := map[string]any{}
	parts := make([]string, 0, len(g.Filters))

	for _, condition := range g.Filters {
		where, conditionArgs := condition.Where()
		if where == "" {
			continue
		}

		parts = append(parts, where)
		maps.Copy(args, conditionArgs)
	}

	if len(parts) == 0 {
		return "", args
	}

	operator := g.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return "(" + strings.Join(parts, " "+operator+" ") + ")", args
}
