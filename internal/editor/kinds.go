package editor

import (
	"errors"
	"strconv"
	"strings"
)

// kindSpec bundles everything that varies by entity kind: initial field
// state, dependent option fetches, the ordered validation rules and the
// payload normalizer. Each kind is an isolated, independently testable unit.
type kindSpec struct {
	defaults  func(e *Editor, existing Record)
	fetches   []fetchSpec
	validate  func(f *Fields) error
	normalize func(f *Fields) Payload
}

type fetchSpec struct {
	resource string
	apply    func(e *Editor, options []Option)
}

func specFor(kind Kind) kindSpec {
	if s, ok := kindSpecs[kind]; ok {
		return s
	}
	return defaultSpec
}

var kindSpecs map[Kind]kindSpec

func init() {
	kindSpecs = map[Kind]kindSpec{
		KindCategory: {
			defaults: func(e *Editor, rec Record) {
				baseDefaults(e, rec)
				e.f.Code = str(rec, "code")
			},
			validate: requireOnly("Name is required", func(f *Fields) string { return f.Name }),
			normalize: func(f *Fields) Payload {
				return Payload{
					"name":        strings.TrimSpace(f.Name),
					"code":        strings.TrimSpace(f.Code),
					"image_url":   f.ImageURL,
					"is_active":   f.IsActive,
					"description": strings.TrimSpace(f.Description),
				}
			},
		},

		KindSubcategory: {
			defaults: func(e *Editor, rec Record) {
				baseDefaults(e, rec)
				e.f.CategoryID = str(rec, "category_id")
				if e.f.CategoryID == "" && len(e.categories) > 0 {
					e.f.CategoryID = e.categories[0].ID
				}
			},
			validate: requireOnly("Name is required", func(f *Fields) string { return f.Name }),
			normalize: func(f *Fields) Payload {
				return Payload{
					"name":        strings.TrimSpace(f.Name),
					"category_id": f.CategoryID,
					"image_url":   f.ImageURL,
					"is_active":   f.IsActive,
					"description": strings.TrimSpace(f.Description),
				}
			},
		},

		KindBrand: defaultSpec,

		KindUnit: {
			defaults: func(e *Editor, rec Record) {
				baseDefaults(e, rec)
				e.f.Symbol = str(rec, "symbol")
			},
			validate: ruleChain(
				rule("Unit is required", func(f *Fields) bool { return isBlank(f.Name) }),
				rule("Symbol is required", func(f *Fields) bool { return isBlank(f.Symbol) }),
			),
			normalize: func(f *Fields) Payload {
				return Payload{
					"name":      strings.TrimSpace(f.Name),
					"symbol":    strings.TrimSpace(f.Symbol),
					"is_active": f.IsActive,
				}
			},
		},

		KindStore: {
			defaults: func(e *Editor, rec Record) {
				baseDefaults(e, rec)
				e.f.Address = str(rec, "address")
				e.f.Phone = str(rec, "phone")
				e.f.Email = str(rec, "email")
			},
			validate: ruleChain(
				rule("Store Name is required", func(f *Fields) bool { return isBlank(f.Name) }),
				rule("Address is required", func(f *Fields) bool { return isBlank(f.Address) }),
				rule("Phone is required", func(f *Fields) bool { return isBlank(f.Phone) }),
				rule("Email is required", func(f *Fields) bool { return isBlank(f.Email) }),
			),
			normalize: func(f *Fields) Payload {
				return Payload{
					"name":      strings.TrimSpace(f.Name),
					"address":   strings.TrimSpace(f.Address),
					"phone":     strings.TrimSpace(f.Phone),
					"email":     strings.TrimSpace(f.Email),
					"is_active": f.IsActive,
				}
			},
		},

		KindWarehouse: {
			defaults: func(e *Editor, rec Record) {
				baseDefaults(e, rec)
				e.f.ContactPerson = str(rec, "contact_person")
				e.f.Phone = str(rec, "phone")
				e.f.WarehouseEmail = str(rec, "email")
				e.f.WarehouseAddress = str(rec, "address")
			},
			fetches: []fetchSpec{
				{"users", func(e *Editor, o []Option) { e.users = o }},
			},
			validate: ruleChain(
				rule("Warehouse is required", func(f *Fields) bool { return isBlank(f.Name) }),
				rule("Contact Person is required", func(f *Fields) bool { return isBlank(f.ContactPerson) }),
				rule("Phone is required", func(f *Fields) bool { return isBlank(f.Phone) }),
				rule("Email is required", func(f *Fields) bool { return isBlank(f.WarehouseEmail) }),
				rule("Address is required", func(f *Fields) bool { return isBlank(f.WarehouseAddress) }),
			),
			normalize: func(f *Fields) Payload {
				return Payload{
					"name":           strings.TrimSpace(f.Name),
					"contact_person": strings.TrimSpace(f.ContactPerson),
					"phone":          strings.TrimSpace(f.Phone),
					"email":          strings.TrimSpace(f.WarehouseEmail),
					"address":        strings.TrimSpace(f.WarehouseAddress),
					"is_active":      f.IsActive,
				}
			},
		},

		KindCustomer: {
			defaults: func(e *Editor, rec Record) {
				baseDefaults(e, rec)
				e.f.Address = str(rec, "address")
				e.f.Phone = str(rec, "phone")
				e.f.Email = str(rec, "email")
			},
			validate: ruleChain(
				rule("Name is required", func(f *Fields) bool { return isBlank(f.Name) }),
				rule("Phone is required", func(f *Fields) bool { return isBlank(f.Phone) }),
			),
			normalize: func(f *Fields) Payload {
				return Payload{
					"name":      strings.TrimSpace(f.Name),
					"email":     strings.TrimSpace(f.Email),
					"phone":     strings.TrimSpace(f.Phone),
					"address":   strings.TrimSpace(f.Address),
					"is_active": f.IsActive,
				}
			},
		},

		KindDiscount: {
			defaults: func(e *Editor, rec Record) {
				baseDefaults(e, rec)
				e.f.Value = str(rec, "value")
				e.f.PlanID = str(rec, "plan_id")
				if e.f.PlanID == "" && len(e.categories) > 0 {
					e.f.PlanID = e.categories[0].ID
				}
				e.f.DiscountCode = str(rec, "discount_code")
				e.f.DiscountType = str(rec, "discount_type")
				if e.f.DiscountType == "" {
					e.f.DiscountType = "percentage"
				}
				e.f.StoreID = str(rec, "store_id")
				if e.f.StoreID == "" {
					e.f.StoreID = "all"
				}
				if start, end, ok := ParseValidity(str(rec, "validity")); ok {
					e.f.StartDate, e.f.EndDate = start, end
				} else {
					now := e.now()
					e.f.StartDate, e.f.EndDate = now, now
				}
				e.f.Validity = FormatValidity(e.f.StartDate, e.f.EndDate)
			},
			fetches: []fetchSpec{
				{"stores", func(e *Editor, o []Option) { e.stores = o }},
			},
			validate: ruleChain(
				rule("Name is required", func(f *Fields) bool { return isBlank(f.Name) }),
				rule("Value is required", func(f *Fields) bool { return f.Value == "" }),
				rule("Discount Plan is required", func(f *Fields) bool { return f.PlanID == "" }),
				rule("Validity is required", func(f *Fields) bool { return f.Validity == "" }),
				rule("Discount Code is required", func(f *Fields) bool { return isBlank(f.DiscountCode) }),
			),
			normalize: func(f *Fields) Payload {
				var storeID interface{}
				if f.StoreID != "all" && f.StoreID != "" {
					storeID = f.StoreID
				}
				return Payload{
					"name":          strings.TrimSpace(f.Name),
					"value":         f.Value,
					"plan_id":       f.PlanID,
					"validity":      f.Validity,
					"discount_code": strings.TrimSpace(f.DiscountCode),
					"discount_type": f.DiscountType,
					"store_id":      storeID,
					"is_active":     f.IsActive,
				}
			},
		},

		KindPlan: {
			defaults: baseDefaults,
			validate: requireOnly("Plan Name is required", func(f *Fields) string { return f.Name }),
			normalize: func(f *Fields) Payload {
				return Payload{
					"name":        strings.TrimSpace(f.Name),
					"description": strings.TrimSpace(f.Description),
					"is_active":   f.IsActive,
				}
			},
		},

		KindVariantAttribute: {
			defaults: func(e *Editor, rec Record) {
				baseDefaults(e, rec)
				e.f.Values = seedValues(rec)
			},
			validate: ruleChain(
				rule("Variant is required", func(f *Fields) bool { return isBlank(f.Name) }),
				rule("At least one value is required", func(f *Fields) bool { return len(f.Values) == 0 }),
			),
			normalize: func(f *Fields) Payload {
				return Payload{
					"name":      strings.TrimSpace(f.Name),
					"values":    strings.Join(f.Values, ","),
					"is_active": f.IsActive,
				}
			},
		},

		KindProduct: {
			defaults: func(e *Editor, rec Record) {
				baseDefaults(e, rec)
				e.f.Quantity = str(rec, "quantity")
				e.f.Price = str(rec, "price")
				e.f.CostPrice = str(rec, "cost_price")
				e.f.TaxType = str(rec, "tax_type")
				if e.f.TaxType == "" {
					e.f.TaxType = "exclusive"
				}
				e.f.TaxPercentage = str(rec, "tax_percentage")
				taxPct, _ := num(rec, "tax_percentage")
				e.f.ChargeTax = taxPct > 0 || str(rec, "tax_type") != ""
				e.f.SKU = str(rec, "sku")
				e.f.Barcode = str(rec, "barcode")
				e.f.StoreID = str(rec, "store_id")
				e.f.WarehouseID = str(rec, "warehouse_id")
				e.f.CategoryID = str(rec, "category_id")
				e.f.SubcategoryID = str(rec, "subcategory_id")
				e.f.BrandID = str(rec, "brand_id")
				e.f.UnitID = str(rec, "unit_id")
				e.f.VariantAttributes = stringMap(rec, "variant_attributes")
				e.f.SellingType = NormalizeSellingType(recValue(rec, "selling_type"))
			},
			fetches: []fetchSpec{
				{"stores", func(e *Editor, o []Option) { e.stores = o }},
				{"warehouses", func(e *Editor, o []Option) { e.warehouses = o }},
				{"categories", func(e *Editor, o []Option) { e.categories = o }},
				{"subcategories", func(e *Editor, o []Option) { e.subcategories = o }},
				{"brands", func(e *Editor, o []Option) { e.brands = o }},
				{"units", func(e *Editor, o []Option) { e.units = o }},
				{"variant-attributes", func(e *Editor, o []Option) { e.variantAttributes = o }},
			},
			validate: ruleChain(
				rule("Store is required", func(f *Fields) bool { return f.StoreID == "" }),
				rule("Warehouse is required", func(f *Fields) bool { return f.WarehouseID == "" }),
				rule("Product Name is required", func(f *Fields) bool { return isBlank(f.Name) }),
				rule("Quantity is required", func(f *Fields) bool { return isBlank(f.Quantity) }),
				rule("Price is required", func(f *Fields) bool { return isBlank(f.Price) }),
				rule("Cost Price is required", func(f *Fields) bool { return isBlank(f.CostPrice) }),
				rule("Tax Percentage is required", func(f *Fields) bool {
					return f.ChargeTax && isBlank(f.TaxPercentage)
				}),
				rule("Tax Percentage must be a number between 0 and 100", func(f *Fields) bool {
					if !f.ChargeTax {
						return false
					}
					pct, err := strconv.ParseFloat(strings.TrimSpace(f.TaxPercentage), 64)
					return err != nil || pct < 0 || pct > 100
				}),
				rule("SKU is required", func(f *Fields) bool { return isBlank(f.SKU) }),
				rule("Category is required", func(f *Fields) bool { return f.CategoryID == "" }),
				rule("Unit is required", func(f *Fields) bool { return f.UnitID == "" }),
			),
			normalize: func(f *Fields) Payload {
				var taxType, taxPct interface{}
				if f.ChargeTax {
					taxType = f.TaxType
					taxPct = numberOrNil(f.TaxPercentage)
				}
				var attrs interface{}
				if len(f.VariantAttributes) > 0 {
					attrs = f.VariantAttributes
				}
				return Payload{
					"name":               strings.TrimSpace(f.Name),
					"quantity":           numberOrNil(f.Quantity),
					"price":              numberOrNil(f.Price),
					"cost_price":         numberOrNil(f.CostPrice),
					"tax_type":           taxType,
					"tax_percentage":     taxPct,
					"sku":                strings.TrimSpace(f.SKU),
					"store_id":           idOrNil(f.StoreID),
					"warehouse_id":       idOrNil(f.WarehouseID),
					"category_id":        idOrNil(f.CategoryID),
					"subcategory_id":     idOrNil(f.SubcategoryID),
					"brand_id":           idOrNil(f.BrandID),
					"unit_id":            idOrNil(f.UnitID),
					"barcode":            strings.TrimSpace(f.Barcode),
					"image_url":          f.ImageURL,
					"variant_attributes": attrs,
					"is_active":          f.IsActive,
				}
			},
		},

		KindExpense: {
			defaults: func(e *Editor, rec Record) {
				e.f.Title = str(rec, "title")
				e.f.Amount = str(rec, "amount")
				e.f.ExpenseDate = str(rec, "expense_date")
				if e.f.ExpenseDate == "" {
					e.f.ExpenseDate = e.now().Format("2006-01-02")
				}
				e.f.ExpenseCategoryID = str(rec, "expense_category_id")
				e.f.PaymentMethod = str(rec, "payment_method")
				if e.f.PaymentMethod == "" {
					e.f.PaymentMethod = "cash"
				}
				e.f.Status = str(rec, "status")
				if e.f.Status == "" {
					e.f.Status = "paid"
				}
				e.f.Description = str(rec, "description")
			},
			fetches: []fetchSpec{
				{"expense-categories", func(e *Editor, o []Option) { e.expenseCategories = o }},
			},
			validate: ruleChain(
				rule("Title is required", func(f *Fields) bool { return isBlank(f.Title) }),
				rule("Amount is required", func(f *Fields) bool { return isBlank(f.Amount) }),
				rule("Date is required", func(f *Fields) bool { return f.ExpenseDate == "" }),
				rule("Amount must be a positive number", func(f *Fields) bool {
					amount, err := strconv.ParseFloat(strings.TrimSpace(f.Amount), 64)
					return err != nil || amount <= 0
				}),
			),
			normalize: func(f *Fields) Payload {
				return Payload{
					"title":               strings.TrimSpace(f.Title),
					"amount":              f.Amount,
					"expense_date":        f.ExpenseDate,
					"expense_category_id": idOrNil(f.ExpenseCategoryID),
					"payment_method":      f.PaymentMethod,
					"status":              f.Status,
					"description":         strings.TrimSpace(f.Description),
				}
			},
		},

		KindExpenseCategory: {
			defaults: baseDefaults,
			validate: requireOnly("Name is required", func(f *Fields) string { return f.Name }),
			normalize: func(f *Fields) Payload {
				return Payload{
					"name":        strings.TrimSpace(f.Name),
					"description": strings.TrimSpace(f.Description),
				}
			},
		},
	}
}

// defaultSpec covers the plain name-only kinds (brands and anything new).
var defaultSpec = kindSpec{
	defaults: baseDefaults,
	validate: requireOnly("Name is required", func(f *Fields) string { return f.Name }),
	normalize: func(f *Fields) Payload {
		return Payload{
			"name":        strings.TrimSpace(f.Name),
			"image_url":   f.ImageURL,
			"is_active":   f.IsActive,
			"description": strings.TrimSpace(f.Description),
		}
	},
}

func baseDefaults(e *Editor, rec Record) {
	e.f.Name = str(rec, "name")
	e.f.Description = str(rec, "description")
	e.f.ImageURL = str(rec, "image_url")
	e.f.IsActive = boolOr(rec, "is_active", true)
}

func seedValues(rec Record) []string {
	if list := stringList(rec, "values"); list != nil {
		return list
	}
	raw := str(rec, "values")
	if raw == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func recValue(rec Record, key string) interface{} {
	if rec == nil {
		return nil
	}
	return rec[key]
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// numberOrNil coerces a numeric text input to a float, or nil when empty or
// unparseable. The payload never carries an empty string for a number.
func numberOrNil(s string) interface{} {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return n
}

func idOrNil(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

type checkFunc struct {
	message string
	failed  func(f *Fields) bool
}

func rule(message string, failed func(f *Fields) bool) checkFunc {
	return checkFunc{message: message, failed: failed}
}

// ruleChain evaluates rules in order and stops at the first violation.
func ruleChain(rules ...checkFunc) func(f *Fields) error {
	return func(f *Fields) error {
		for _, r := range rules {
			if r.failed(f) {
				return errors.New(r.message)
			}
		}
		return nil
	}
}

func requireOnly(message string, get func(f *Fields) string) func(f *Fields) error {
	return ruleChain(rule(message, func(f *Fields) bool {
		return isBlank(get(f))
	}))
}
