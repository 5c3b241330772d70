package tabular

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// column describes one exported field of the row type, addressed by its json
// tag when present or its lowercased field name otherwise.
type column struct {
	name  string
	title string
	index []int
}

// columnsOf discovers the columns of T. Embedded structs are flattened one
// level, matching how the models embed their base fields.
func columnsOf[T any]() []column {
	var zero T
	t := reflect.TypeOf(zero)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	return structColumns(t, nil)
}

func structColumns(t reflect.Type, prefix []int) []column {
	var cols []column
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		index := append(append([]int(nil), prefix...), i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			cols = append(cols, structColumns(f.Type, index)...)
			continue
		}
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		cols = append(cols, column{name: name, title: f.Name, index: index})
	}
	return cols
}

// Columns returns the column names of the view's row type, in declaration
// order.
func (v *View[T]) Columns() []string {
	out := make([]string, 0, len(v.columns))
	for _, c := range v.columns {
		out = append(out, c.name)
	}
	return out
}

func fieldValue(row interface{}, col column) reflect.Value {
	rv := reflect.ValueOf(row)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	for _, i := range col.index {
		rv = rv.Field(i)
	}
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

// cellString renders a field for searching and export. Nil pointers render
// empty, times render as RFC 3339.
func cellString(row interface{}, col column) string {
	rv := fieldValue(row, col)
	if !rv.IsValid() {
		return ""
	}
	if ts, ok := rv.Interface().(time.Time); ok {
		return ts.Format(time.RFC3339)
	}
	return fmt.Sprint(rv.Interface())
}

func rowMatches[T any](row T, cols []column, q string) bool {
	for _, c := range cols {
		if strings.Contains(strings.ToLower(cellString(row, c)), q) {
			return true
		}
	}
	return false
}

// lessRows orders two rows on a column: numerically when both cells parse as
// numbers, case-insensitive lexicographic otherwise. Time fields compare
// chronologically via their RFC 3339 rendering.
func lessRows[T any](a, b T, col column) bool {
	sa, sb := cellString(a, col), cellString(b, col)
	na, errA := strconv.ParseFloat(sa, 64)
	nb, errB := strconv.ParseFloat(sb, 64)
	if errA == nil && errB == nil {
		return na < nb
	}
	return strings.ToLower(sa) < strings.ToLower(sb)
}
