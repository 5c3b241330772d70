package editor

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestCategoryCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		existing []string
		want     string
	}{
		{"single word", "Shirt", nil, "SHIRT"},
		{"single long word truncated", "Electronics", nil, "ELECT"},
		{"multi word initials", "Blue Jeans", nil, "BJ"},
		{"initials capped at five", "A B C D E F G", nil, "ABCDE"},
		{"collision gets numeric suffix", "Blue Jeans", []string{"BJ"}, "BJ1"},
		{"collision walks the suffix", "Blue Jeans", []string{"BJ", "BJ1"}, "BJ2"},
		{"collision is case insensitive", "Blue Jeans", []string{"bj"}, "BJ1"},
		{"empty name", "", nil, ""},
		{"whitespace only", "   ", nil, ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SuggestCategoryCode(tt.input, tt.existing))
		})
	}
}

func TestGenerateSKU(t *testing.T) {
	t.Parallel()

	fixed := func(lo, hi int) int { return lo }
	random := func(lo, hi int) int { return lo + rand.Intn(hi-lo+1) }

	assert.Equal(t, "RED-HAT-1000", GenerateSKU("Red Hat", fixed))
	assert.Equal(t, "SHIRT-1000", GenerateSKU("shirt", fixed))
	// Name portion is capped at ten characters before the suffix.
	assert.Equal(t, "LONG-SLEEV-1000", GenerateSKU("Long Sleeve Shirt", fixed))
	assert.Regexp(t, `^RED-HAT-\d{4}$`, GenerateSKU("Red Hat", random))
}

func TestGenerateBarcode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "BC100000000", GenerateBarcode(func(lo, hi int) int { return lo }))
	assert.Equal(t, "BC999999999", GenerateBarcode(func(lo, hi int) int { return hi }))
	assert.Regexp(t, `^BC\d{9}$`, GenerateBarcode(func(lo, hi int) int { return lo + rand.Intn(hi-lo+1) }))
}

func TestValidityRoundTrip(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	formatted := FormatValidity(start, end)
	assert.Equal(t, "2024-01-01 to 2024-01-31", formatted)

	gotStart, gotEnd, ok := ParseValidity(formatted)
	require.True(t, ok)
	assert.True(t, gotStart.Equal(start))
	assert.True(t, gotEnd.Equal(end))

	_, _, ok = ParseValidity("not a range")
	assert.False(t, ok)
	_, _, ok = ParseValidity("")
	assert.False(t, ok)
}

func TestNormalizeSellingType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input interface{}
		want  []string
	}{
		{"nil", nil, []string{}},
		{"empty string", "", []string{}},
		{"plain string", "online", []string{"online"}},
		{"json list string", `["online","in_store"]`, []string{"online", "in_store"}},
		{"malformed json kept verbatim", `["online`, []string{`["online`}},
		{"string slice", []string{"online", "in_store"}, []string{"online", "in_store"}},
		{"interface slice", []interface{}{"online", "in_store"}, []string{"online", "in_store"}},
		{"single element list with embedded json", []interface{}{`["online","in_store"]`}, []string{"online", "in_store"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeSellingType(tt.input))
		})
	}
}
