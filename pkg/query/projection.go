// Package query provides a fluent SQL builder with positional parameter
// numbering over declarative column-to-field projections.
package query

import "strings"

type projectedColumn struct {
	column string
	field  string
}

// ProjectionMap declares the mapping between database columns and the struct
// fields they populate, along with the table the projection reads from.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	columns []projectedColumn
}

// NewProjectionMap creates a projection for the given schema-qualified table
// with a short alias used to qualify column references.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
	}
}

// Project appends a column-to-field mapping and returns the projection for chaining.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	p.columns = append(p.columns, projectedColumn{column: column, field: field})
	return p
}

// Table returns the aliased FROM clause target.
func (p *ProjectionMap) Table() string {
	return p.schema + "." + p.table + " " + p.alias
}

// Column returns the alias-qualified column for a projected field, or the
// empty string when the field is not part of the projection.
func (p *ProjectionMap) Column(field string) string {
	for _, c := range p.columns {
		if c.field == field {
			return p.alias + "." + c.column
		}
	}
	return ""
}

// Columns returns the full alias-qualified select list in declaration order.
func (p *ProjectionMap) Columns() string {
	parts := make([]string, len(p.columns))
	for i, c := range p.columns {
		parts[i] = p.alias + "." + c.column
	}
	return strings.Join(parts, ", ")
}
