package editor

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
	"go.uber.org/zap"
)

// OptionSource loads dropdown option lists by resource name. Implementations
// must degrade gracefully; the editor treats any error as an empty list.
type OptionSource interface {
	FetchOptionList(ctx context.Context, resource string) ([]Option, error)
}

// Saver persists a normalized payload. The error message, if any, is
// surfaced verbatim to the user.
type Saver func(ctx context.Context, payload Payload) error

// CategoryCreator creates a category inline, without leaving the editor.
type CategoryCreator func(ctx context.Context, name string) (Option, error)

// Options configures a new editor instance.
type Options struct {
	// Related is the option list the caller already has on hand: categories
	// for subcategory editing, discount plans for discount editing.
	Related        []Option
	Source         OptionSource
	CreateCategory CategoryCreator
	Logger         logger.ZapLogger
	Now            func() time.Time
	RandInt        func(lo, hi int) int
}

// Editor is a stateful form controller for a single record of some Kind.
// All mutation goes through its setters; option-list fetches run in the
// background and are dropped once the editor is closed.
type Editor struct {
	mu   sync.Mutex
	kind Kind
	edit bool // editing an existing record

	f         Fields
	codeState deriveState
	skuState  deriveState
	errMsg    string
	loading   bool
	closed    bool
	gen       uint64

	categories        []Option
	subcategories     []Option
	brands            []Option
	units             []Option
	stores            []Option
	warehouses        []Option
	users             []Option
	variantAttributes []Option
	expenseCategories []Option

	src            OptionSource
	createCategory CategoryCreator
	log            logger.ZapLogger
	now            func() time.Time
	randInt        func(lo, hi int) int

	fetches sync.WaitGroup
}

// New builds an editor for the given kind, seeded from existing when
// editing or from kind-specific defaults when adding.
func New(kind Kind, existing Record, opts Options) *Editor {
	edit := false
	if existing != nil {
		if id, ok := existing["id"].(string); ok && id != "" {
			edit = true
		}
	}
	e := &Editor{
		kind:           kind,
		edit:           edit,
		src:            opts.Source,
		createCategory: opts.CreateCategory,
		log:            opts.Logger,
		now:            opts.Now,
		randInt:        opts.RandInt,
		categories:     append([]Option(nil), opts.Related...),
	}
	if e.log == nil {
		e.log = logger.NewNop()
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.randInt == nil {
		e.randInt = func(lo, hi int) int { return lo + rand.Intn(hi-lo+1) }
	}

	spec := specFor(kind)
	spec.defaults(e, existing)
	return e
}

// Open kicks off the kind's dependent option-list fetches. Responses landing
// after Close are dropped.
func (e *Editor) Open(ctx context.Context) {
	if e.src == nil {
		return
	}

	e.mu.Lock()
	gen := e.gen
	fetches := specFor(e.kind).fetches
	e.mu.Unlock()

	for _, f := range fetches {
		f := f
		e.fetches.Add(1)
		go func() {
			defer e.fetches.Done()
			options, err := e.src.FetchOptionList(ctx, f.resource)
			if err != nil {
				e.log.Warn("failed to fetch option list",
					zap.String("resource", f.resource), zap.Error(err))
				options = nil
			}

			e.mu.Lock()
			defer e.mu.Unlock()
			if e.closed || e.gen != gen {
				return
			}
			f.apply(e, options)
		}()
	}
}

// WaitForOptions blocks until all in-flight option fetches settle.
func (e *Editor) WaitForOptions() {
	e.fetches.Wait()
}

// Close discards the editor. Any in-flight fetch or save response arriving
// afterwards is ignored.
func (e *Editor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.gen++
}

// Validate runs the kind's rules in order and returns the first violation.
func (e *Editor) Validate() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return specFor(e.kind).validate(&e.f)
}

// BuildPayload returns the kind's normalized save payload. Callers should
// validate first; normalization does not re-check.
func (e *Editor) BuildPayload() Payload {
	e.mu.Lock()
	defer e.mu.Unlock()
	return specFor(e.kind).normalize(&e.f)
}

// Submit validates, normalizes and hands the payload to save. A rejection
// is recorded as the editor's inline error and returned; the field state is
// left untouched for retry.
func (e *Editor) Submit(ctx context.Context, save Saver) error {
	e.mu.Lock()
	e.errMsg = ""
	spec := specFor(e.kind)
	if err := spec.validate(&e.f); err != nil {
		e.errMsg = err.Error()
		e.mu.Unlock()
		return err
	}
	payload := spec.normalize(&e.f)
	gen := e.gen
	e.loading = true
	e.mu.Unlock()

	err := save(ctx, payload)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.gen != gen {
		// Editor was dismissed while the save was in flight.
		return err
	}
	e.loading = false
	if err != nil {
		e.errMsg = err.Error()
	}
	return err
}

// AddCategoryInline creates a category through the injected creator, appends
// it to the in-memory list and selects it.
func (e *Editor) AddCategoryInline(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" || e.createCategory == nil {
		return nil
	}
	created, err := e.createCategory(ctx, name)
	if err != nil {
		e.log.Error("failed to add category", zap.Error(err))
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.categories = append(e.categories, created)
	e.f.CategoryID = created.ID
	return nil
}

// --- field handlers ---

// SetName updates the name and re-derives dependent fields: the category
// code suggestion while it is still automatic, the product SKU, and the
// barcode of a brand-new product. Clearing the name re-arms code
// auto-suggestion.
func (e *Editor) SetName(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.f.Name = name
	if e.codeState == deriveOverridden && name == "" {
		e.codeState = deriveAuto
	}

	if e.kind == KindCategory && !e.edit && e.codeState == deriveAuto {
		codes := make([]string, 0, len(e.categories))
		for _, c := range e.categories {
			codes = append(codes, c.Code)
		}
		e.f.Code = SuggestCategoryCode(name, codes)
	}

	if e.kind == KindProduct {
		if e.skuState == deriveAuto {
			if name == "" {
				e.f.SKU = ""
			} else {
				e.f.SKU = GenerateSKU(name, e.randInt)
			}
		}
		if !e.edit && name != "" && e.f.Barcode == "" {
			e.f.Barcode = GenerateBarcode(e.randInt)
		}
	}
}

// SetCode records a manual code edit, permanently disabling auto-suggestion
// until the name is cleared.
func (e *Editor) SetCode(code string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.f.Code = strings.ToUpper(code)
	e.codeState = deriveOverridden
}

// SetSKU records a manual SKU edit; name changes no longer regenerate it.
func (e *Editor) SetSKU(sku string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.f.SKU = sku
	e.skuState = deriveOverridden
}

// SetDateRange updates the discount validity window and its derived string.
func (e *Editor) SetDateRange(start, end time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.f.StartDate = start
	e.f.EndDate = end
	if e.kind == KindDiscount {
		e.f.Validity = FormatValidity(start, end)
	}
}

// AddValue appends a trimmed, non-duplicate entry to the value list.
func (e *Editor) AddValue(v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, existing := range e.f.Values {
		if existing == v {
			return
		}
	}
	e.f.Values = append(e.f.Values, v)
}

func (e *Editor) RemoveValue(v string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := e.f.Values[:0]
	for _, existing := range e.f.Values {
		if existing != v {
			out = append(out, existing)
		}
	}
	e.f.Values = out
}

func (e *Editor) SetVariantAttribute(attributeID, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.f.VariantAttributes == nil {
		e.f.VariantAttributes = map[string]string{}
	}
	e.f.VariantAttributes[attributeID] = value
}

func (e *Editor) SetDescription(v string)  { e.set(func(f *Fields) { f.Description = v }) }
func (e *Editor) SetSymbol(v string)       { e.set(func(f *Fields) { f.Symbol = v }) }
func (e *Editor) SetAddress(v string)      { e.set(func(f *Fields) { f.Address = v }) }
func (e *Editor) SetPhone(v string)        { e.set(func(f *Fields) { f.Phone = v }) }
func (e *Editor) SetEmail(v string)        { e.set(func(f *Fields) { f.Email = v }) }
func (e *Editor) SetImageURL(v string)     { e.set(func(f *Fields) { f.ImageURL = v }) }
func (e *Editor) SetActive(v bool)         { e.set(func(f *Fields) { f.IsActive = v }) }
func (e *Editor) SetCategoryID(v string)   { e.set(func(f *Fields) { f.CategoryID = v }) }
func (e *Editor) SetSubcategoryID(v string) { e.set(func(f *Fields) { f.SubcategoryID = v }) }
func (e *Editor) SetBrandID(v string)      { e.set(func(f *Fields) { f.BrandID = v }) }
func (e *Editor) SetUnitID(v string)       { e.set(func(f *Fields) { f.UnitID = v }) }
func (e *Editor) SetStoreID(v string)      { e.set(func(f *Fields) { f.StoreID = v }) }
func (e *Editor) SetWarehouseID(v string)  { e.set(func(f *Fields) { f.WarehouseID = v }) }
func (e *Editor) SetContactPerson(v string) { e.set(func(f *Fields) { f.ContactPerson = v }) }
func (e *Editor) SetWarehouseEmail(v string) { e.set(func(f *Fields) { f.WarehouseEmail = v }) }
func (e *Editor) SetWarehouseAddress(v string) { e.set(func(f *Fields) { f.WarehouseAddress = v }) }
func (e *Editor) SetValue(v string)        { e.set(func(f *Fields) { f.Value = v }) }
func (e *Editor) SetPlanID(v string)       { e.set(func(f *Fields) { f.PlanID = v }) }
func (e *Editor) SetDiscountType(v string) { e.set(func(f *Fields) { f.DiscountType = v }) }
func (e *Editor) SetQuantity(v string)     { e.set(func(f *Fields) { f.Quantity = v }) }
func (e *Editor) SetPrice(v string)        { e.set(func(f *Fields) { f.Price = v }) }
func (e *Editor) SetCostPrice(v string)    { e.set(func(f *Fields) { f.CostPrice = v }) }
func (e *Editor) SetTaxType(v string)      { e.set(func(f *Fields) { f.TaxType = v }) }
func (e *Editor) SetTaxPercentage(v string) { e.set(func(f *Fields) { f.TaxPercentage = v }) }
func (e *Editor) SetChargeTax(v bool)      { e.set(func(f *Fields) { f.ChargeTax = v }) }
func (e *Editor) SetBarcode(v string)      { e.set(func(f *Fields) { f.Barcode = v }) }
func (e *Editor) SetSellingType(v []string) { e.set(func(f *Fields) { f.SellingType = append([]string(nil), v...) }) }
func (e *Editor) SetTitle(v string)        { e.set(func(f *Fields) { f.Title = v }) }
func (e *Editor) SetAmount(v string)       { e.set(func(f *Fields) { f.Amount = v }) }
func (e *Editor) SetExpenseDate(v string)  { e.set(func(f *Fields) { f.ExpenseDate = v }) }
func (e *Editor) SetExpenseCategoryID(v string) { e.set(func(f *Fields) { f.ExpenseCategoryID = v }) }
func (e *Editor) SetPaymentMethod(v string) { e.set(func(f *Fields) { f.PaymentMethod = v }) }
func (e *Editor) SetStatus(v string)       { e.set(func(f *Fields) { f.Status = v }) }

func (e *Editor) SetDiscountCode(v string) {
	e.set(func(f *Fields) { f.DiscountCode = strings.ToUpper(v) })
}

func (e *Editor) set(fn func(f *Fields)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.f)
}

// --- accessors ---

func (e *Editor) Kind() Kind  { return e.kind }
func (e *Editor) IsEdit() bool { return e.edit }

// Fields returns a copy of the current field state.
func (e *Editor) Fields() Fields {
	e.mu.Lock()
	defer e.mu.Unlock()
	f := e.f
	f.Values = append([]string(nil), e.f.Values...)
	f.SellingType = append([]string(nil), e.f.SellingType...)
	if e.f.VariantAttributes != nil {
		f.VariantAttributes = make(map[string]string, len(e.f.VariantAttributes))
		for k, v := range e.f.VariantAttributes {
			f.VariantAttributes[k] = v
		}
	}
	return f
}

// Error returns the current inline error message, empty when none.
func (e *Editor) Error() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.errMsg
}

func (e *Editor) Loading() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loading
}

func (e *Editor) Categories() []Option        { return e.options(&e.categories) }
func (e *Editor) Subcategories() []Option     { return e.options(&e.subcategories) }
func (e *Editor) Brands() []Option            { return e.options(&e.brands) }
func (e *Editor) Units() []Option             { return e.options(&e.units) }
func (e *Editor) Stores() []Option            { return e.options(&e.stores) }
func (e *Editor) Warehouses() []Option        { return e.options(&e.warehouses) }
func (e *Editor) Users() []Option             { return e.options(&e.users) }
func (e *Editor) VariantAttributes() []Option { return e.options(&e.variantAttributes) }
func (e *Editor) ExpenseCategories() []Option { return e.options(&e.expenseCategories) }

func (e *Editor) options(list *[]Option) []Option {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Option(nil), *list...)
}

// Prepare validates and normalizes a raw record for the given kind without
// standing up an interactive session. This is the path the HTTP handlers use.
func Prepare(kind Kind, rec Record, opts Options) (Payload, error) {
	e := New(kind, rec, opts)
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e.BuildPayload(), nil
}
