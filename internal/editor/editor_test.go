package editor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	lists map[string][]Option
	err   error
}

func (s *stubSource) FetchOptionList(_ context.Context, resource string) ([]Option, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.lists[resource], nil
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
}

func lowRand(lo, _ int) int { return lo }

func TestNewDetectsEditMode(t *testing.T) {
	t.Parallel()

	add := New(KindCategory, Record{"name": "Drinks"}, Options{})
	assert.False(t, add.IsEdit(), "record without id is a new record")

	edit := New(KindCategory, Record{"id": "cat-1", "name": "Drinks"}, Options{})
	assert.True(t, edit.IsEdit())
}

func TestCategoryCodeSuggestion(t *testing.T) {
	t.Parallel()

	related := []Option{{ID: "1", Name: "Beverages", Code: "BJ"}}
	e := New(KindCategory, nil, Options{Related: related})

	e.SetName("Blue Jeans")
	assert.Equal(t, "BJ1", e.Fields().Code, "suggestion skips codes already in use")

	e.SetName("Shirt")
	assert.Equal(t, "SHIRT", e.Fields().Code)

	// A manual edit pins the code against further name changes.
	e.SetCode("custom")
	assert.Equal(t, "CUSTOM", e.Fields().Code)
	e.SetName("Something Else")
	assert.Equal(t, "CUSTOM", e.Fields().Code)

	// Clearing the name hands the code back to auto-suggestion.
	e.SetName("")
	e.SetName("Blue Jeans")
	assert.Equal(t, "BJ1", e.Fields().Code)
}

func TestCategoryCodeNotSuggestedWhenEditing(t *testing.T) {
	t.Parallel()

	e := New(KindCategory, Record{"id": "cat-1", "name": "Drinks", "code": "DRK"}, Options{})
	e.SetName("Drinks and Snacks")
	assert.Equal(t, "DRK", e.Fields().Code)
}

func TestProductSKUAndBarcodeDerivation(t *testing.T) {
	t.Parallel()

	e := New(KindProduct, nil, Options{RandInt: lowRand})

	e.SetName("Red Hat")
	f := e.Fields()
	assert.Equal(t, "RED-HAT-1000", f.SKU)
	assert.Equal(t, "BC100000000", f.Barcode)

	// Name changes keep regenerating the SKU until it is edited by hand.
	e.SetName("Blue Hat")
	assert.Equal(t, "BLUE-HAT-1000", e.Fields().SKU)

	e.SetSKU("MANUAL-1")
	e.SetName("Green Hat")
	assert.Equal(t, "MANUAL-1", e.Fields().SKU)

	// Clearing the name does not unfreeze a manually edited SKU.
	e.SetName("")
	assert.Equal(t, "MANUAL-1", e.Fields().SKU)
}

func TestProductBarcodeKeptWhenEditing(t *testing.T) {
	t.Parallel()

	e := New(KindProduct, Record{"id": "p-1", "name": "Red Hat", "barcode": "BC555555555"}, Options{RandInt: lowRand})
	e.SetName("Red Hat XL")
	assert.Equal(t, "BC555555555", e.Fields().Barcode)
}

func TestProductSKUClearedWithName(t *testing.T) {
	t.Parallel()

	e := New(KindProduct, nil, Options{RandInt: lowRand})
	e.SetName("Red Hat")
	e.SetName("")
	assert.Empty(t, e.Fields().SKU)
}

func TestDiscountValidityDerivation(t *testing.T) {
	t.Parallel()

	e := New(KindDiscount, nil, Options{Now: fixedNow})
	assert.Equal(t, "2024-06-15 to 2024-06-15", e.Fields().Validity)

	e.SetDateRange(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	)
	assert.Equal(t, "2024-01-01 to 2024-01-31", e.Fields().Validity)
}

func TestDiscountValiditySeededFromExisting(t *testing.T) {
	t.Parallel()

	e := New(KindDiscount, Record{"id": "d-1", "validity": "2024-03-01 to 2024-03-31"}, Options{Now: fixedNow})
	f := e.Fields()
	assert.Equal(t, "2024-03-01 to 2024-03-31", f.Validity)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), f.StartDate)
}

func TestValidationFirstErrorWins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind  Kind
		setup func(e *Editor)
		want  string
	}{
		{KindCategory, nil, "Name is required"},
		{KindBrand, nil, "Name is required"},
		{KindPlan, nil, "Plan Name is required"},
		{KindUnit, nil, "Unit is required"},
		{KindUnit, func(e *Editor) { e.SetName("Kilogram") }, "Symbol is required"},
		{KindStore, nil, "Store Name is required"},
		{KindStore, func(e *Editor) { e.SetName("Main") }, "Address is required"},
		{KindWarehouse, nil, "Warehouse is required"},
		{KindWarehouse, func(e *Editor) { e.SetName("Central") }, "Contact Person is required"},
		{KindCustomer, nil, "Name is required"},
		{KindCustomer, func(e *Editor) { e.SetName("Jo") }, "Phone is required"},
		{KindVariantAttribute, nil, "Variant is required"},
		{KindVariantAttribute, func(e *Editor) { e.SetName("Size") }, "At least one value is required"},
		{KindExpenseCategory, nil, "Name is required"},
		{KindProduct, nil, "Store is required"},
		{KindProduct, func(e *Editor) { e.SetStoreID("s-1") }, "Warehouse is required"},
		{KindExpense, nil, "Title is required"},
		{KindExpense, func(e *Editor) { e.SetTitle("Rent") }, "Amount is required"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.kind)+"/"+tt.want, func(t *testing.T) {
			t.Parallel()
			e := New(tt.kind, nil, Options{Now: fixedNow, RandInt: lowRand})
			if tt.setup != nil {
				tt.setup(e)
			}
			err := e.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestDiscountValidationOrder(t *testing.T) {
	t.Parallel()

	e := New(KindDiscount, nil, Options{Now: fixedNow})
	err := e.Validate()
	require.Error(t, err)
	assert.Equal(t, "Name is required", err.Error())

	e.SetName("Summer Sale")
	assert.EqualError(t, e.Validate(), "Value is required")

	e.SetValue("10")
	assert.EqualError(t, e.Validate(), "Discount Plan is required")

	e.SetPlanID("plan-1")
	// Validity defaults to today's single-day window, so the next gap is the code.
	assert.EqualError(t, e.Validate(), "Discount Code is required")

	e.SetDiscountCode("summer10")
	assert.NoError(t, e.Validate())
}

func TestProductTaxValidation(t *testing.T) {
	t.Parallel()

	base := func() *Editor {
		e := New(KindProduct, nil, Options{RandInt: lowRand})
		e.SetStoreID("s-1")
		e.SetWarehouseID("w-1")
		e.SetName("Red Hat")
		e.SetQuantity("5")
		e.SetPrice("100")
		e.SetCostPrice("60")
		e.SetCategoryID("c-1")
		e.SetUnitID("u-1")
		return e
	}

	e := base()
	assert.NoError(t, e.Validate(), "tax fields are optional while tax is off")

	e.SetChargeTax(true)
	assert.EqualError(t, e.Validate(), "Tax Percentage is required")

	e.SetTaxPercentage("abc")
	assert.EqualError(t, e.Validate(), "Tax Percentage must be a number between 0 and 100")

	e.SetTaxPercentage("101")
	assert.EqualError(t, e.Validate(), "Tax Percentage must be a number between 0 and 100")

	e.SetTaxPercentage("15")
	assert.NoError(t, e.Validate())
}

func TestExpenseAmountValidation(t *testing.T) {
	t.Parallel()

	e := New(KindExpense, nil, Options{Now: fixedNow})
	e.SetTitle("Rent")
	e.SetAmount("-5")
	assert.EqualError(t, e.Validate(), "Amount must be a positive number")

	e.SetAmount("0")
	assert.EqualError(t, e.Validate(), "Amount must be a positive number")

	e.SetAmount("1200.50")
	assert.NoError(t, e.Validate())
}

func TestSubmitRejectsWithoutCallingSave(t *testing.T) {
	t.Parallel()

	e := New(KindStore, nil, Options{})
	called := false
	err := e.Submit(context.Background(), func(context.Context, Payload) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called, "save must not run for an invalid form")
	assert.Equal(t, "Store Name is required", e.Error())
}

func TestSubmitBuildsNormalizedPayload(t *testing.T) {
	t.Parallel()

	e := New(KindDiscount, nil, Options{Now: fixedNow})
	e.SetName("  Summer Sale  ")
	e.SetValue("10")
	e.SetPlanID("plan-1")
	e.SetDiscountCode("summer10")

	var got Payload
	err := e.Submit(context.Background(), func(_ context.Context, p Payload) error {
		got = p
		return nil
	})
	require.NoError(t, err)
	assert.Empty(t, e.Error())

	assert.Equal(t, "Summer Sale", got["name"])
	assert.Equal(t, "SUMMER10", got["discount_code"])
	assert.Equal(t, "percentage", got["discount_type"])
	assert.Nil(t, got["store_id"], "the all-stores sentinel becomes null")
	assert.Equal(t, "2024-06-15 to 2024-06-15", got["validity"])
}

func TestSubmitSurfacesSaveError(t *testing.T) {
	t.Parallel()

	e := New(KindCustomer, nil, Options{})
	e.SetName("Jo")
	e.SetPhone("555-0100")

	err := e.Submit(context.Background(), func(context.Context, Payload) error {
		return errors.New("phone already registered")
	})
	require.Error(t, err)
	assert.Equal(t, "phone already registered", e.Error())
	assert.False(t, e.Loading())
}

func TestProductPayloadCoercions(t *testing.T) {
	t.Parallel()

	e := New(KindProduct, nil, Options{RandInt: lowRand})
	e.SetStoreID("s-1")
	e.SetWarehouseID("w-1")
	e.SetName("Red Hat")
	e.SetQuantity("5")
	e.SetPrice("100")
	e.SetCostPrice("60")
	e.SetCategoryID("c-1")
	e.SetUnitID("u-1")

	p := e.BuildPayload()
	assert.Equal(t, 5.0, p["quantity"])
	assert.Equal(t, 100.0, p["price"])
	assert.Nil(t, p["tax_type"], "tax fields are null while tax is off")
	assert.Nil(t, p["tax_percentage"])
	assert.Nil(t, p["subcategory_id"], "unselected references become null")
	assert.Nil(t, p["brand_id"])
	assert.Nil(t, p["variant_attributes"])
	assert.Equal(t, "RED-HAT-1000", p["sku"])

	e.SetChargeTax(true)
	e.SetTaxPercentage("15")
	e.SetVariantAttribute("attr-1", "Red")
	p = e.BuildPayload()
	assert.Equal(t, "exclusive", p["tax_type"])
	assert.Equal(t, 15.0, p["tax_percentage"])
	assert.Equal(t, map[string]string{"attr-1": "Red"}, p["variant_attributes"])
}

func TestVariantAttributeValues(t *testing.T) {
	t.Parallel()

	e := New(KindVariantAttribute, nil, Options{})
	e.SetName("Size")
	e.AddValue("  S ")
	e.AddValue("M")
	e.AddValue("S") // duplicate
	e.AddValue("   ")

	assert.Equal(t, []string{"S", "M"}, e.Fields().Values)

	e.RemoveValue("S")
	assert.Equal(t, []string{"M"}, e.Fields().Values)

	p := e.BuildPayload()
	assert.Equal(t, "M", p["values"])
}

func TestVariantValuesSeededFromCommaString(t *testing.T) {
	t.Parallel()

	e := New(KindVariantAttribute, Record{"id": "v-1", "name": "Size", "values": "S, M ,L"}, Options{})
	assert.Equal(t, []string{"S", "M", "L"}, e.Fields().Values)
}

func TestOpenPopulatesOptionLists(t *testing.T) {
	t.Parallel()

	src := &stubSource{lists: map[string][]Option{
		"stores":     {{ID: "s-1", Name: "Main"}},
		"warehouses": {{ID: "w-1", Name: "Central"}},
		"categories": {{ID: "c-1", Name: "Apparel"}},
		"units":      {{ID: "u-1", Name: "Piece"}},
	}}
	e := New(KindProduct, nil, Options{Source: src, RandInt: lowRand})
	e.Open(context.Background())
	e.WaitForOptions()

	assert.Len(t, e.Stores(), 1)
	assert.Len(t, e.Warehouses(), 1)
	assert.Len(t, e.Categories(), 1)
	assert.Len(t, e.Units(), 1)
	assert.Empty(t, e.Brands())
}

func TestOpenDegradesToEmptyListsOnError(t *testing.T) {
	t.Parallel()

	src := &stubSource{err: errors.New("service unavailable")}
	e := New(KindProduct, nil, Options{Source: src, RandInt: lowRand})
	e.Open(context.Background())
	e.WaitForOptions()

	assert.Empty(t, e.Stores())
	assert.Empty(t, e.Error(), "option failures never surface as form errors")
}

func TestCloseDropsLateOptionResponses(t *testing.T) {
	t.Parallel()

	src := &stubSource{lists: map[string][]Option{"stores": {{ID: "s-1", Name: "Main"}}}}
	e := New(KindDiscount, nil, Options{Source: src, Now: fixedNow})
	e.Close()
	e.Open(context.Background())
	e.WaitForOptions()

	assert.Empty(t, e.Stores())
}

func TestAddCategoryInline(t *testing.T) {
	t.Parallel()

	e := New(KindProduct, nil, Options{
		RandInt: lowRand,
		CreateCategory: func(_ context.Context, name string) (Option, error) {
			return Option{ID: "c-9", Name: name}, nil
		},
	})
	require.NoError(t, e.AddCategoryInline(context.Background(), "  Hats "))

	cats := e.Categories()
	require.Len(t, cats, 1)
	assert.Equal(t, "Hats", cats[0].Name)
	assert.Equal(t, "c-9", e.Fields().CategoryID)
}

func TestSubcategoryDefaultsToFirstRelatedCategory(t *testing.T) {
	t.Parallel()

	related := []Option{{ID: "c-1", Name: "Apparel"}, {ID: "c-2", Name: "Footwear"}}
	e := New(KindSubcategory, nil, Options{Related: related})
	assert.Equal(t, "c-1", e.Fields().CategoryID)
}

func TestPrepare(t *testing.T) {
	t.Parallel()

	payload, err := Prepare(KindStore, Record{
		"name":    "Main",
		"address": "1 High St",
		"phone":   "555-0100",
		"email":   "main@example.com",
	}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "Main", payload["name"])
	assert.Equal(t, true, payload["is_active"])

	_, err = Prepare(KindStore, Record{"name": "Main"}, Options{})
	assert.EqualError(t, err, "Address is required")
}
