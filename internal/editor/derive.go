package editor

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// deriveState tracks whether a derived field still follows its source field
// or has been taken over by the user.
type deriveState int

const (
	deriveAuto deriveState = iota
	deriveOverridden
)

// SuggestCategoryCode derives a category code from a name: a single word
// contributes its first five characters, multiple words contribute their
// initials (up to five). Collisions against existing codes are resolved,
// case-insensitively, with an increasing numeric suffix.
func SuggestCategoryCode(name string, existingCodes []string) string {
	if strings.TrimSpace(name) == "" {
		return ""
	}
	words := strings.Fields(name)
	var base string
	if len(words) == 1 {
		base = strings.ToUpper(truncate(words[0], 5))
	} else {
		var initials strings.Builder
		for _, w := range words {
			initials.WriteString(strings.ToUpper(w[:1]))
		}
		base = truncate(initials.String(), 5)
	}

	codes := make(map[string]struct{}, len(existingCodes))
	for _, c := range existingCodes {
		codes[strings.ToUpper(c)] = struct{}{}
	}

	suggestion := base
	for suffix := 1; ; suffix++ {
		if _, taken := codes[suggestion]; !taken {
			return suggestion
		}
		suggestion = base + strconv.Itoa(suffix)
	}
}

// GenerateSKU builds a SKU from a product name: uppercased, whitespace runs
// collapsed to single hyphens, truncated to ten characters, with a random
// four-digit suffix.
func GenerateSKU(name string, randInt func(lo, hi int) int) string {
	base := strings.Join(strings.Fields(strings.ToUpper(name)), "-")
	base = truncate(base, 10)
	return base + "-" + strconv.Itoa(randInt(1000, 9999))
}

// GenerateBarcode produces a "BC"-prefixed random nine-digit barcode.
func GenerateBarcode(randInt func(lo, hi int) int) string {
	return "BC" + strconv.Itoa(randInt(100000000, 999999999))
}

const validityDateLayout = "2006-01-02"

// FormatValidity renders a discount validity range as
// "yyyy-MM-dd to yyyy-MM-dd".
func FormatValidity(start, end time.Time) string {
	return fmt.Sprintf("%s to %s", start.Format(validityDateLayout), end.Format(validityDateLayout))
}

// ParseValidity splits a stored validity string back into its date pair.
func ParseValidity(validity string) (start, end time.Time, ok bool) {
	if !strings.Contains(validity, "to") {
		return time.Time{}, time.Time{}, false
	}
	parts := strings.SplitN(validity, "to", 2)
	start, err1 := time.Parse(validityDateLayout, strings.TrimSpace(parts[0]))
	end, err2 := time.Parse(validityDateLayout, strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// NormalizeSellingType flattens the persisted selling-type value into a list
// of strings. It accepts a real list, a single-element list whose only entry
// is a JSON-encoded list, a JSON-encoded list as a string, or a plain
// non-empty string. Malformed JSON is treated as non-list input.
func NormalizeSellingType(value interface{}) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case []string:
		if len(v) == 1 && strings.HasPrefix(v[0], "[") {
			if decoded := decodeJSONList(v[0]); decoded != nil {
				return decoded
			}
		}
		return append([]string(nil), v...)
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) == 1 && strings.HasPrefix(out[0], "[") {
			if decoded := decodeJSONList(out[0]); decoded != nil {
				return decoded
			}
		}
		return out
	case string:
		if strings.HasPrefix(v, "[") {
			if decoded := decodeJSONList(v); decoded != nil {
				return decoded
			}
		}
		if v != "" {
			return []string{v}
		}
		return []string{}
	default:
		return []string{}
	}
}

func decodeJSONList(s string) []string {
	var decoded []string
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		return nil
	}
	return decoded
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
