// Package editor implements the polymorphic record editor behind the
// back-office Add/Edit forms: per-kind field defaults, derived-field
// suggestion, validation and payload normalization for every entity kind the
// application manages.
package editor

import "encoding/json"

// Kind selects which entity a record editor instance works on. The values
// match the API resource names.
type Kind string

const (
	KindCategory         Kind = "categories"
	KindSubcategory      Kind = "subcategories"
	KindBrand            Kind = "brands"
	KindUnit             Kind = "units"
	KindStore            Kind = "stores"
	KindWarehouse        Kind = "warehouses"
	KindCustomer         Kind = "customers"
	KindDiscount         Kind = "discounts"
	KindPlan             Kind = "plans"
	KindVariantAttribute Kind = "variant_attributes"
	KindProduct          Kind = "products"
	KindExpense          Kind = "expenses"
	KindExpenseCategory  Kind = "expense-categories"
)

var kindLabels = map[Kind]string{
	KindCategory:         "Category",
	KindSubcategory:      "Sub Category",
	KindBrand:            "Brand",
	KindUnit:             "Unit",
	KindStore:            "Store",
	KindWarehouse:        "Warehouse",
	KindCustomer:         "Customer",
	KindDiscount:         "Discount",
	KindPlan:             "Discount Plan",
	KindProduct:          "Product",
	KindExpense:          "Expense",
	KindExpenseCategory:  "Expense Category",
	KindVariantAttribute: "Variant Attribute",
}

// Label returns the human-readable entity name for modal titles.
func (k Kind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return "Item"
}

// Record is a loosely typed record as it arrives from the API or the
// persistence layer. Absence of an "id" key means the record is new.
type Record map[string]interface{}

// Payload is the normalized save payload the editor hands back on submit.
type Payload map[string]interface{}

// Decode maps the payload onto a typed input struct via its json tags.
func (p Payload) Decode(dst interface{}) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

// Option is one entry of a dropdown option list.
type Option struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Code       string `json:"code,omitempty"`
	CategoryID string `json:"category_id,omitempty"`
	Values     string `json:"values,omitempty"`
}
