package display

import "fmt"

// DefaultOrder is the position given to columns created without one.
const DefaultOrder = 1

// Column presents a batch of values as one named, ordered column.
type Column struct {
	name       string
	values     []any
	dataType   string
	order      int
	sortable   bool
	filterable bool
}

// NewColumn creates a sortable, filterable column at DefaultOrder.
func NewColumn(name, dataType string) *Column {
	return NewOrderedColumn(name, dataType, DefaultOrder)
}

// NewOrderedColumn creates a sortable, filterable column at order.
func NewOrderedColumn(name, dataType string, order int) *Column {
	return &Column{
		name:       name,
		dataType:   dataType,
		order:      order,
		sortable:   true,
		filterable: true,
	}
}

// NewColumnWith creates a fully specified column. values is used as is.
func NewColumnWith(name string, values []any, dataType string, order int, sortable, filterable bool) *Column {
	return &Column{
		name:       name,
		values:     values,
		dataType:   dataType,
		order:      order,
		sortable:   sortable,
		filterable: filterable,
	}
}

func (c *Column) Name() string        { return c.name }
func (c *Column) SetName(name string) { c.name = name }

// Values returns the column values. An empty, unallocated column yields an
// empty slice that is not retained.
func (c *Column) Values() []any {
	if c.values == nil {
		return make([]any, 0, 1)
	}
	return c.values
}

func (c *Column) SetValues(values []any) { c.values = values }

// AddValue appends v, allocating the backing slice on first use.
func (c *Column) AddValue(v any) {
	if c.values == nil {
		c.values = make([]any, 0, 4)
	}
	c.values = append(c.values, v)
}

// Len returns the number of stored values.
func (c *Column) Len() int { return len(c.values) }

func (c *Column) DataType() string            { return c.dataType }
func (c *Column) SetDataType(dataType string) { c.dataType = dataType }

// Kind classifies the column data type for presentation.
func (c *Column) Kind() ColumnType { return ColumnTypeFor(c.dataType) }

func (c *Column) Order() int         { return c.order }
func (c *Column) SetOrder(order int) { c.order = order }

func (c *Column) Sortable() bool            { return c.sortable }
func (c *Column) SetSortable(sortable bool) { c.sortable = sortable }

func (c *Column) Filterable() bool              { return c.filterable }
func (c *Column) SetFilterable(filterable bool) { c.filterable = filterable }

func (c *Column) String() string {
	return fmt.Sprintf("Column [ %s : %s ( %d | %d ) ]", c.name, c.dataType, len(c.values), c.order)
}
