package query

import (
	"fmt"
	"strings"
)

type condition struct {
	clause string
	args   []any
}

// Builder constructs SQL queries using a fluent API with automatic parameter numbering.
type Builder struct {
	projection  *ProjectionMap
	conditions  []condition
	orderBy     string
	descending  bool
	defaultSort string
}

// NewBuilder creates a Builder for the given projection with a default sort field.
func NewBuilder(projection *ProjectionMap, defaultSort string) *Builder {
	return &Builder{
		projection:  projection,
		conditions:  make([]condition, 0),
		defaultSort: defaultSort,
	}
}

// BuildCount returns a COUNT(*) query with the current conditions.
func (b *Builder) BuildCount() (string, []any) {
	where, args := b.buildWhere()
	sql := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", b.projection.Table(), where)
	return sql, args
}

// BuildPage returns a paginated SELECT query with ordering, limit, and offset.
func (b *Builder) BuildPage(page, pageSize int) (string, []any) {
	where, args := b.buildWhere()
	orderBy := b.buildOrderBy()
	offset := (page - 1) * pageSize

	sql := fmt.Sprintf(
		"SELECT %s FROM %s%s%s LIMIT %d OFFSET %d",
		b.projection.Columns(),
		b.projection.Table(),
		where,
		orderBy,
		pageSize,
		offset,
	)

	return sql, args
}

// BuildSingle returns a SELECT query for a single record by the given field.
func (b *Builder) BuildSingle(field string, value any) (string, []any) {
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		b.projection.Columns(),
		b.projection.Table(),
		b.projection.Column(field),
	)
	return sql, []any{value}
}

// OrderBy sets the sort field and direction. Unknown or empty fields fall
// back to the default sort.
func (b *Builder) OrderBy(field string, descending bool) *Builder {
	if col := b.projection.Column(field); col != "" {
		b.orderBy = col
	}
	b.descending = descending
	return b
}

// WhereEquals adds an equality condition. Nil values are ignored.
func (b *Builder) WhereEquals(field string, value any) *Builder {
	if value == nil {
		return b
	}
	b.conditions = append(b.conditions, condition{
		clause: fmt.Sprintf("%s = $%%d", b.projection.Column(field)),
		args:   []any{value},
	})
	return b
}

// WhereContains adds a case-insensitive ILIKE condition. Nil or empty values are ignored.
func (b *Builder) WhereContains(field string, value *string) *Builder {
	if value == nil || *value == "" {
		return b
	}
	b.conditions = append(b.conditions, condition{
		clause: fmt.Sprintf("%s ILIKE $%%d", b.projection.Column(field)),
		args:   []any{"%" + *value + "%"},
	})
	return b
}

func (b *Builder) buildOrderBy() string {
	orderCol := b.orderBy
	if orderCol == "" {
		orderCol = b.projection.Column(b.defaultSort)
	}

	dir := "ASC"
	if b.descending {
		dir = "DESC"
	}

	return fmt.Sprintf(" ORDER BY %s %s", orderCol, dir)
}

func (b *Builder) buildWhere() (string, []any) {
	if len(b.conditions) == 0 {
		return "", nil
	}

	clauses := make([]string, 0, len(b.conditions))
	args := make([]any, 0)
	paramIdx := 1

	for _, cond := range b.conditions {
		clause := cond.clause
		for _, arg := range cond.args {
			clause = strings.Replace(clause, "$%d", fmt.Sprintf("$%d", paramIdx), 1)
			args = append(args, arg)
			paramIdx++
		}
		clauses = append(clauses, clause)
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}
