package tabular

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
	"go.uber.org/zap"
)

// PageSizes lists the page sizes a view accepts.
var PageSizes = []int{5, 10, 20, 50, 100}

const defaultPageSize = 10

// Deleter removes a single record by id.
type Deleter func(ctx context.Context, id string) error

// ReorderFunc persists a new row ordering, expressed as the full ordered id
// list of the current result set.
type ReorderFunc func(ctx context.Context, orderedIDs []string) error

// View drives a searchable, sortable, paginated table over an in-memory
// dataset of rows of type T. Selection is tracked by row id so it survives
// searching, sorting and page navigation.
type View[T any] struct {
	mu  sync.Mutex
	id  func(T) string
	log logger.ZapLogger

	rows     []T
	visible  []int // indexes into rows, after search and sort
	search   string
	sortKey  string
	sortAsc  bool
	page     int
	pageSize int
	selected map[string]struct{}

	columns []column
}

// New builds a view over rows, identified by id. The zero state is page 1,
// ten rows per page, unsorted, unfiltered.
func New[T any](rows []T, id func(T) string, log logger.ZapLogger) *View[T] {
	if log == nil {
		log = logger.NewNop()
	}
	v := &View[T]{
		id:       id,
		log:      log,
		page:     1,
		pageSize: defaultPageSize,
		selected: map[string]struct{}{},
		columns:  columnsOf[T](),
	}
	v.rows = append([]T(nil), rows...)
	v.recompute()
	return v
}

// SetRows replaces the dataset. Selections whose rows are gone are pruned;
// the rest survive the refresh. The current page is re-clamped.
func (v *View[T]) SetRows(rows []T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rows = append([]T(nil), rows...)
	live := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		live[v.id(r)] = struct{}{}
	}
	for id := range v.selected {
		if _, ok := live[id]; !ok {
			delete(v.selected, id)
		}
	}
	v.recompute()
}

// Search filters rows to those where any field's text representation
// contains q, case-insensitively. Changing the query returns to page 1.
func (v *View[T]) Search(q string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.search == q {
		return
	}
	v.search = q
	v.page = 1
	v.recompute()
}

// SortBy sorts on the named column, ascending. Sorting the same column again
// flips the direction. Unknown columns are ignored.
func (v *View[T]) SortBy(key string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.hasColumn(key) {
		return
	}
	if v.sortKey == key {
		v.sortAsc = !v.sortAsc
	} else {
		v.sortKey = key
		v.sortAsc = true
	}
	v.recompute()
}

// SetPageSize switches to one of the allowed page sizes and returns to
// page 1. Disallowed sizes are ignored.
func (v *View[T]) SetPageSize(size int) {
	allowed := false
	for _, s := range PageSizes {
		if s == size {
			allowed = true
			break
		}
	}
	if !allowed {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pageSize = size
	v.page = 1
	v.recompute()
}

// SetPage navigates to the given page, clamped to the valid range.
func (v *View[T]) SetPage(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page = page
	v.clampPage()
}

// Page returns the rows of the current page.
func (v *View[T]) Page() []T {
	v.mu.Lock()
	defer v.mu.Unlock()
	lo, hi := v.pageBounds()
	out := make([]T, 0, hi-lo)
	for _, idx := range v.visible[lo:hi] {
		out = append(out, v.rows[idx])
	}
	return out
}

// PageNumber returns the current 1-based page.
func (v *View[T]) PageNumber() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

// TotalPages returns the page count for the current filter, never below 1.
func (v *View[T]) TotalPages() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.totalPages()
}

// TotalRows returns the number of rows matching the current filter.
func (v *View[T]) TotalRows() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.visible)
}

// ToggleSelect flips the selection state of a single row id.
func (v *View[T]) ToggleSelect(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.selected[id]; ok {
		delete(v.selected, id)
	} else {
		v.selected[id] = struct{}{}
	}
}

// ToggleSelectPage selects every row on the current page, or deselects them
// all when the whole page is already selected. Rows on other pages are not
// touched.
func (v *View[T]) ToggleSelectPage() {
	v.mu.Lock()
	defer v.mu.Unlock()
	lo, hi := v.pageBounds()

	allSelected := hi > lo
	for _, idx := range v.visible[lo:hi] {
		if _, ok := v.selected[v.id(v.rows[idx])]; !ok {
			allSelected = false
			break
		}
	}
	for _, idx := range v.visible[lo:hi] {
		id := v.id(v.rows[idx])
		if allSelected {
			delete(v.selected, id)
		} else {
			v.selected[id] = struct{}{}
		}
	}
}

// IsSelected reports whether the row id is selected.
func (v *View[T]) IsSelected(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	_, ok := v.selected[id]
	return ok
}

// SelectedIDs returns the selected ids in the order of the current result
// set.
func (v *View[T]) SelectedIDs() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]string, 0, len(v.selected))
	for _, idx := range v.visible {
		id := v.id(v.rows[idx])
		if _, ok := v.selected[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// ClearSelection drops every selection.
func (v *View[T]) ClearSelection() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selected = map[string]struct{}{}
}

// DeleteSelected deletes each selected row through del, best-effort: a
// failure on one row is logged and does not stop the others. Rows deleted
// successfully are removed from the view; failed ones stay, still selected.
// The number of successful deletions is returned.
func (v *View[T]) DeleteSelected(ctx context.Context, del Deleter) int {
	ids := v.SelectedIDs()

	deleted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if err := del(ctx, id); err != nil {
			v.log.Error("failed to delete row", zap.String("id", id), zap.Error(err))
			continue
		}
		deleted[id] = struct{}{}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	kept := v.rows[:0]
	for _, r := range v.rows {
		if _, ok := deleted[v.id(r)]; ok {
			delete(v.selected, v.id(r))
			continue
		}
		kept = append(kept, r)
	}
	v.rows = kept
	v.recompute()
	return len(deleted)
}

// Reorder moves the row at page position from to page position to, both
// 0-based within the current page, then persists the full ordering of the
// current result set through persist. The move is rolled back if persisting
// fails.
func (v *View[T]) Reorder(ctx context.Context, from, to int, persist ReorderFunc) error {
	v.mu.Lock()
	lo, hi := v.pageBounds()
	n := hi - lo
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		v.mu.Unlock()
		return nil
	}

	prev := append([]int(nil), v.visible...)
	moved := v.visible[lo+from]
	rest := append([]int(nil), v.visible[:lo+from]...)
	rest = append(rest, v.visible[lo+from+1:]...)
	v.visible = append(rest[:lo+to], append([]int{moved}, rest[lo+to:]...)...)

	ids := make([]string, 0, len(v.visible))
	for _, idx := range v.visible {
		ids = append(ids, v.id(v.rows[idx]))
	}
	v.mu.Unlock()

	if persist == nil {
		return nil
	}
	if err := persist(ctx, ids); err != nil {
		v.mu.Lock()
		v.visible = prev
		v.mu.Unlock()
		return err
	}
	return nil
}

// --- internals, callers hold v.mu ---

func (v *View[T]) recompute() {
	q := strings.ToLower(strings.TrimSpace(v.search))

	v.visible = v.visible[:0]
	for i, r := range v.rows {
		if q == "" || rowMatches(r, v.columns, q) {
			v.visible = append(v.visible, i)
		}
	}

	if v.sortKey != "" {
		if col, ok := v.columnFor(v.sortKey); ok {
			asc := v.sortAsc
			sort.SliceStable(v.visible, func(a, b int) bool {
				ra, rb := v.rows[v.visible[a]], v.rows[v.visible[b]]
				if asc {
					return lessRows(ra, rb, col)
				}
				return lessRows(rb, ra, col)
			})
		}
	}

	v.clampPage()
}

func (v *View[T]) clampPage() {
	if total := v.totalPages(); v.page > total {
		v.page = total
	}
	if v.page < 1 {
		v.page = 1
	}
}

func (v *View[T]) totalPages() int {
	pages := (len(v.visible) + v.pageSize - 1) / v.pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

func (v *View[T]) pageBounds() (lo, hi int) {
	lo = (v.page - 1) * v.pageSize
	if lo > len(v.visible) {
		lo = len(v.visible)
	}
	hi = lo + v.pageSize
	if hi > len(v.visible) {
		hi = len(v.visible)
	}
	return lo, hi
}

func (v *View[T]) hasColumn(key string) bool {
	_, ok := v.columnFor(key)
	return ok
}

func (v *View[T]) columnFor(key string) (column, bool) {
	for _, c := range v.columns {
		if c.name == key {
			return c, true
		}
	}
	return column{}, false
}
