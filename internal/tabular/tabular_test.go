package tabular

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func itemID(i item) string { return i.ID }

func testItems(n int) []item {
	items := make([]item, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, item{
			ID:    fmt.Sprintf("id-%02d", i),
			Name:  fmt.Sprintf("Item %02d", i),
			Price: float64(n - i),
		})
	}
	return items
}

func pageIDs[T any](v *View[T], id func(T) string) []string {
	rows := v.Page()
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, id(r))
	}
	return out
}

func TestPagination(t *testing.T) {
	t.Parallel()

	v := New(testItems(23), itemID, nil)
	assert.Equal(t, 3, v.TotalPages())
	assert.Equal(t, 23, v.TotalRows())
	assert.Len(t, v.Page(), 10)

	v.SetPage(3)
	assert.Len(t, v.Page(), 3)

	// Out-of-range pages clamp instead of failing.
	v.SetPage(5)
	assert.Equal(t, 3, v.PageNumber())
	v.SetPage(0)
	assert.Equal(t, 1, v.PageNumber())
}

func TestSetPageSizeResetsToFirstPage(t *testing.T) {
	t.Parallel()

	v := New(testItems(23), itemID, nil)
	v.SetPage(3)
	v.SetPageSize(5)
	assert.Equal(t, 1, v.PageNumber())
	assert.Equal(t, 5, v.TotalPages())

	// Sizes outside the allowed set are ignored.
	v.SetPageSize(7)
	assert.Equal(t, 5, v.TotalPages())
}

func TestSearchFiltersAndResetsPage(t *testing.T) {
	t.Parallel()

	v := New(testItems(23), itemID, nil)
	v.SetPage(3)

	v.Search("item 1")
	assert.Equal(t, 1, v.PageNumber())
	// Names are zero padded, so this matches Item 10 through Item 19.
	assert.Equal(t, 10, v.TotalRows())

	v.Search("ITEM 23")
	assert.Equal(t, 1, v.TotalRows())

	v.Search("no such thing")
	assert.Equal(t, 0, v.TotalRows())
	assert.Equal(t, 1, v.TotalPages())
	assert.Empty(t, v.Page())

	v.Search("")
	assert.Equal(t, 23, v.TotalRows())
}

func TestSearchCoversEveryField(t *testing.T) {
	t.Parallel()

	rows := []item{
		{ID: "a", Name: "Widget", Price: 42.5},
		{ID: "b", Name: "Gadget", Price: 7},
	}
	v := New(rows, itemID, nil)

	v.Search("42.5")
	assert.Equal(t, []string{"a"}, pageIDs(v, itemID))

	v.Search("gad")
	assert.Equal(t, []string{"b"}, pageIDs(v, itemID))
}

func TestSortToggles(t *testing.T) {
	t.Parallel()

	rows := []item{
		{ID: "a", Name: "banana", Price: 3},
		{ID: "b", Name: "Apple", Price: 10},
		{ID: "c", Name: "cherry", Price: 2},
	}
	v := New(rows, itemID, nil)

	v.SortBy("name")
	assert.Equal(t, []string{"b", "a", "c"}, pageIDs(v, itemID), "name sort is case insensitive")

	v.SortBy("name")
	assert.Equal(t, []string{"c", "a", "b"}, pageIDs(v, itemID), "second click flips direction")

	v.SortBy("price")
	assert.Equal(t, []string{"c", "a", "b"}, pageIDs(v, itemID), "price sorts numerically, ascending again")

	// Unknown columns leave the ordering alone.
	v.SortBy("bogus")
	assert.Equal(t, []string{"c", "a", "b"}, pageIDs(v, itemID))
}

func TestSelectionSurvivesNavigationAndFiltering(t *testing.T) {
	t.Parallel()

	v := New(testItems(23), itemID, nil)
	v.ToggleSelect("id-03")
	v.ToggleSelect("id-15")

	v.SetPage(2)
	v.Search("item")
	v.SortBy("name")
	assert.ElementsMatch(t, []string{"id-03", "id-15"}, v.SelectedIDs())

	v.ToggleSelect("id-03")
	assert.Equal(t, []string{"id-15"}, v.SelectedIDs())
}

func TestToggleSelectPageScopedToCurrentPage(t *testing.T) {
	t.Parallel()

	v := New(testItems(23), itemID, nil)
	v.SetPage(2)
	v.ToggleSelectPage()

	selected := v.SelectedIDs()
	assert.Len(t, selected, 10)
	for _, id := range selected {
		assert.True(t, strings.HasPrefix(id, "id-1"), "only page 2 rows: %s", id)
	}

	// A second toggle on a fully selected page deselects it.
	v.ToggleSelectPage()
	assert.Empty(t, v.SelectedIDs())
}

func TestSetRowsPrunesDeadSelections(t *testing.T) {
	t.Parallel()

	v := New(testItems(5), itemID, nil)
	v.ToggleSelect("id-02")
	v.ToggleSelect("id-04")

	v.SetRows(testItems(3)) // id-04 and id-05 are gone
	assert.Equal(t, []string{"id-02"}, v.SelectedIDs())
}

func TestDeleteSelectedBestEffort(t *testing.T) {
	t.Parallel()

	v := New(testItems(5), itemID, nil)
	v.ToggleSelect("id-02")
	v.ToggleSelect("id-03")
	v.ToggleSelect("id-05")

	deleted := v.DeleteSelected(context.Background(), func(_ context.Context, id string) error {
		if id == "id-03" {
			return errors.New("referenced by an order")
		}
		return nil
	})

	assert.Equal(t, 2, deleted)
	assert.Equal(t, 3, v.TotalRows())
	// The failed row stays, still selected, for a retry.
	assert.Equal(t, []string{"id-03"}, v.SelectedIDs())
}

func TestDeleteSelectedReclampsPage(t *testing.T) {
	t.Parallel()

	v := New(testItems(11), itemID, nil)
	v.SetPage(2)
	v.ToggleSelectPage() // selects id-11 only
	v.DeleteSelected(context.Background(), func(context.Context, string) error { return nil })

	assert.Equal(t, 1, v.PageNumber())
	assert.Equal(t, 1, v.TotalPages())
}

func TestReorderPersistsFullOrdering(t *testing.T) {
	t.Parallel()

	v := New(testItems(5), itemID, nil)

	var got []string
	err := v.Reorder(context.Background(), 0, 2, func(_ context.Context, ids []string) error {
		got = append([]string(nil), ids...)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"id-02", "id-03", "id-01", "id-04", "id-05"}, got)
	assert.Equal(t, got, pageIDs(v, itemID))
}

func TestReorderRollsBackOnPersistFailure(t *testing.T) {
	t.Parallel()

	v := New(testItems(5), itemID, nil)
	before := pageIDs(v, itemID)

	err := v.Reorder(context.Background(), 0, 4, func(context.Context, []string) error {
		return errors.New("write failed")
	})
	require.Error(t, err)
	assert.Equal(t, before, pageIDs(v, itemID))
}

func TestReorderIgnoresOutOfRange(t *testing.T) {
	t.Parallel()

	v := New(testItems(3), itemID, nil)
	before := pageIDs(v, itemID)
	require.NoError(t, v.Reorder(context.Background(), 0, 9, nil))
	assert.Equal(t, before, pageIDs(v, itemID))
}

func TestColumnsUseJSONTags(t *testing.T) {
	t.Parallel()

	v := New([]item{}, itemID, nil)
	assert.Equal(t, []string{"id", "name", "price"}, v.Columns())
}

func TestExportCSV(t *testing.T) {
	t.Parallel()

	rows := []item{
		{ID: "a", Name: "Widget", Price: 42.5},
		{ID: "b", Name: "Gadget", Price: 7},
	}
	v := New(rows, itemID, nil)
	v.SortBy("price")

	var buf bytes.Buffer
	require.NoError(t, v.ExportCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,Name,Price", lines[0])
	assert.Equal(t, "b,Gadget,7", lines[1])
	assert.Equal(t, "a,Widget,42.5", lines[2])
}

func TestExportCSVHonorsFilter(t *testing.T) {
	t.Parallel()

	v := New(testItems(23), itemID, nil)
	v.Search("item 23")

	var buf bytes.Buffer
	require.NoError(t, v.ExportCSV(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2, "header plus the single match")
}

func TestExportXLSX(t *testing.T) {
	t.Parallel()

	v := New(testItems(3), itemID, nil)
	var buf bytes.Buffer
	require.NoError(t, v.ExportXLSX(&buf, "Products"))
	assert.NotZero(t, buf.Len())
}

func TestExportIncludesAllPages(t *testing.T) {
	t.Parallel()

	v := New(testItems(23), itemID, nil)
	v.SetPage(2)

	var buf bytes.Buffer
	require.NoError(t, v.ExportCSV(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 24)
}
