// Package querybuilder assembles parameterized Postgres statements from
// small composable pieces. It covers only the shapes the repositories
// actually issue.
package querybuilder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Condition renders one WHERE fragment. Args map 1:1 onto the
// placeholders the fragment introduces.
type Condition struct {
	fragment string
	args     []any
}

func Eq(column string, value any) Condition {
	return Condition{fragment: column + " = ?", args: []any{value}}
}

func IsNull(column string) Condition {
	return Condition{fragment: column + " IS NULL"}
}

func Expr(fragment string, args ...any) Condition {
	return Condition{fragment: fragment, args: args}
}

type SelectBuilder struct {
	columns string
	table   string
	where   []Condition
	orderBy string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: strings.Join(columns, ", ")}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(clause string) *SelectBuilder {
	b.orderBy = clause
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if b.columns == "" {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var buf strings.Builder
	buf.WriteString("SELECT " + b.columns + " FROM " + b.table)
	args := appendWhere(&buf, b.where, 1)
	if b.orderBy != "" {
		buf.WriteString(" ORDER BY " + b.orderBy)
	}
	if b.limit > 0 {
		buf.WriteString(" LIMIT " + strconv.Itoa(b.limit))
	}

	return buf.String(), args, nil
}

// InsertModel builds an INSERT from a struct's db-tagged fields. The
// optional suffix is appended verbatim (ON CONFLICT, RETURNING).
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	columns, values, err := dbColumns(model)
	if err != nil {
		return "", nil, err
	}

	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = "$" + strconv.Itoa(i+1)
	}

	query := "INSERT INTO " + table +
		" (" + strings.Join(columns, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") + ")"
	if suffix = strings.TrimSpace(suffix); suffix != "" {
		query += " " + suffix
	}

	return query, values, nil
}

// UpdateModel builds an UPDATE setting every db-tagged field of the model,
// constrained by the given conditions.
func UpdateModel(table string, model any, conditions ...Condition) (string, []any, error) {
	columns, values, err := dbColumns(model)
	if err != nil {
		return "", nil, err
	}

	var buf strings.Builder
	buf.WriteString("UPDATE " + table + " SET ")
	for i, column := range columns {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(column + " = $" + strconv.Itoa(i+1))
	}
	args := append(values, appendWhere(&buf, conditions, len(columns)+1)...)

	return buf.String(), args, nil
}

func Delete(table string, conditions ...Condition) (string, []any, error) {
	if len(conditions) == 0 {
		return "", nil, fmt.Errorf("delete requires conditions")
	}

	var buf strings.Builder
	buf.WriteString("DELETE FROM " + table)
	args := appendWhere(&buf, conditions, 1)

	return buf.String(), args, nil
}

func appendWhere(buf *strings.Builder, conditions []Condition, argIndex int) []any {
	if len(conditions) == 0 {
		return nil
	}

	buf.WriteString(" WHERE ")
	var args []any
	for i, condition := range conditions {
		if i > 0 {
			buf.WriteString(" AND ")
		}
		fragment := condition.fragment
		for _, arg := range condition.args {
			fragment = strings.Replace(fragment, "?", "$"+strconv.Itoa(argIndex), 1)
			args = append(args, arg)
			argIndex++
		}
		buf.WriteString(fragment)
	}
	return args
}

func dbColumns(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be a struct")
	}

	typ := value.Type()
	columns := make([]string, 0, typ.NumField())
	values := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		column := strings.TrimSpace(strings.Split(field.Tag.Get("db"), ",")[0])
		if column == "" || column == "-" {
			continue
		}
		columns = append(columns, column)
		values = append(values, value.Field(i).Interface())
	}
	if len(columns) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}

	return columns, values, nil
}
