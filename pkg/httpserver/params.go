package httpserver

import (
	"net/http"
	"strconv"
)

// QueryInt reads an integer query parameter, falling back on absence or
// garbage.
func QueryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// QueryBoolPtr reads an optional boolean query parameter; nil means absent.
func QueryBoolPtr(r *http.Request, key string) *bool {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &b
}

// Pagination reads the standard page and page_size parameters. Page defaults
// to 1, page size to 20.
func Pagination(r *http.Request) (page, pageSize int) {
	page = QueryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize = QueryInt(r, "page_size", 20)
	if pageSize < 0 {
		pageSize = 20
	}
	return page, pageSize
}
