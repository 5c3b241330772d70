package editor

import (
	"strconv"
	"time"
)

// Fields is the editor's working copy of a record. Text inputs are held as
// strings, exactly as they come off the form; coercion to numbers happens
// only at normalization time.
type Fields struct {
	Name        string
	Description string
	Code        string
	Symbol      string
	Address     string
	Phone       string
	Email       string
	Values      []string
	ImageURL    string
	IsActive    bool
	CategoryID  string

	// warehouses
	ContactPerson    string
	WarehouseEmail   string
	WarehouseAddress string

	// discounts
	Value        string
	PlanID       string
	StartDate    time.Time
	EndDate      time.Time
	Validity     string
	DiscountCode string
	DiscountType string
	StoreID      string

	// products
	WarehouseID       string
	Quantity          string
	Price             string
	CostPrice         string
	TaxType           string
	TaxPercentage     string
	ChargeTax         bool
	SKU               string
	SubcategoryID     string
	BrandID           string
	UnitID            string
	Barcode           string
	VariantAttributes map[string]string
	SellingType       []string

	// expenses
	Title             string
	Amount            string
	ExpenseDate       string
	ExpenseCategoryID string
	PaymentMethod     string
	Status            string
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func str(rec Record, key string) string {
	if rec == nil {
		return ""
	}
	switch v := rec[key].(type) {
	case string:
		return v
	case float64:
		return trimFloat(v)
	case int:
		return trimFloat(float64(v))
	default:
		return ""
	}
}

func boolOr(rec Record, key string, fallback bool) bool {
	if rec == nil {
		return fallback
	}
	if v, ok := rec[key].(bool); ok {
		return v
	}
	return fallback
}

func num(rec Record, key string) (float64, bool) {
	if rec == nil {
		return 0, false
	}
	switch v := rec[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func stringMap(rec Record, key string) map[string]string {
	if rec == nil {
		return nil
	}
	switch v := rec[key].(type) {
	case map[string]string:
		out := make(map[string]string, len(v))
		for k, val := range v {
			out[k] = val
		}
		return out
	case map[string]interface{}:
		out := make(map[string]string, len(v))
		for k, val := range v {
			if s, ok := val.(string); ok {
				out[k] = s
			}
		}
		return out
	default:
		return nil
	}
}

func stringList(rec Record, key string) []string {
	if rec == nil {
		return nil
	}
	switch v := rec[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
