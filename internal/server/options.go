package server

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-backoffice-service/internal/catalog"
	catalogdto "github.com/fekuna/omnipos-backoffice-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/discount"
	discountdto "github.com/fekuna/omnipos-backoffice-service/internal/discount/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/editor"
	"github.com/fekuna/omnipos-backoffice-service/internal/expense"
	expensedto "github.com/fekuna/omnipos-backoffice-service/internal/expense/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/party"
	partydto "github.com/fekuna/omnipos-backoffice-service/internal/party/dto"
)

// OptionSource serves the editor's dropdown lists from the feature use
// cases. Unpaginated on purpose: option lists are small reference data.
type OptionSource struct {
	Catalog   catalog.UseCase
	Party     party.UseCase
	Discounts discount.UseCase
	Expenses  expense.UseCase
}

func (s *OptionSource) FetchOptionList(ctx context.Context, resource string) ([]editor.Option, error) {
	switch resource {
	case "categories":
		items, _, err := s.Catalog.ListCategories(ctx, &catalogdto.ListFilters{})
		if err != nil {
			return nil, err
		}
		opts := make([]editor.Option, 0, len(items))
		for _, c := range items {
			opts = append(opts, editor.Option{ID: c.ID, Name: c.Name, Code: c.Code})
		}
		return opts, nil
	case "subcategories":
		items, _, err := s.Catalog.ListSubcategories(ctx, &catalogdto.SubcategoryFilters{})
		if err != nil {
			return nil, err
		}
		opts := make([]editor.Option, 0, len(items))
		for _, sc := range items {
			opts = append(opts, editor.Option{ID: sc.ID, Name: sc.Name, CategoryID: sc.CategoryID})
		}
		return opts, nil
	case "brands":
		items, _, err := s.Catalog.ListBrands(ctx, &catalogdto.ListFilters{})
		if err != nil {
			return nil, err
		}
		opts := make([]editor.Option, 0, len(items))
		for _, b := range items {
			opts = append(opts, editor.Option{ID: b.ID, Name: b.Name})
		}
		return opts, nil
	case "units":
		items, _, err := s.Catalog.ListUnits(ctx, &catalogdto.ListFilters{})
		if err != nil {
			return nil, err
		}
		opts := make([]editor.Option, 0, len(items))
		for _, u := range items {
			opts = append(opts, editor.Option{ID: u.ID, Name: u.Name})
		}
		return opts, nil
	case "variant-attributes":
		items, _, err := s.Catalog.ListVariantAttributes(ctx, &catalogdto.ListFilters{})
		if err != nil {
			return nil, err
		}
		opts := make([]editor.Option, 0, len(items))
		for _, va := range items {
			opts = append(opts, editor.Option{ID: va.ID, Name: va.Name, Values: va.Values})
		}
		return opts, nil
	case "stores":
		items, _, err := s.Party.ListStores(ctx, &partydto.ListFilters{})
		if err != nil {
			return nil, err
		}
		opts := make([]editor.Option, 0, len(items))
		for _, st := range items {
			opts = append(opts, editor.Option{ID: st.ID, Name: st.Name})
		}
		return opts, nil
	case "warehouses":
		items, _, err := s.Party.ListWarehouses(ctx, &partydto.ListFilters{})
		if err != nil {
			return nil, err
		}
		opts := make([]editor.Option, 0, len(items))
		for _, wh := range items {
			opts = append(opts, editor.Option{ID: wh.ID, Name: wh.Name})
		}
		return opts, nil
	case "users":
		items, _, err := s.Party.ListUsers(ctx, &partydto.ListFilters{})
		if err != nil {
			return nil, err
		}
		opts := make([]editor.Option, 0, len(items))
		for _, u := range items {
			opts = append(opts, editor.Option{ID: u.ID, Name: u.FullName})
		}
		return opts, nil
	case "plans":
		items, _, err := s.Discounts.ListPlans(ctx, &discountdto.ListFilters{})
		if err != nil {
			return nil, err
		}
		opts := make([]editor.Option, 0, len(items))
		for _, p := range items {
			opts = append(opts, editor.Option{ID: p.ID, Name: p.Name})
		}
		return opts, nil
	case "expense-categories":
		items, _, err := s.Expenses.ListCategories(ctx, &expensedto.ListFilters{})
		if err != nil {
			return nil, err
		}
		opts := make([]editor.Option, 0, len(items))
		for _, ec := range items {
			opts = append(opts, editor.Option{ID: ec.ID, Name: ec.Name})
		}
		return opts, nil
	default:
		return nil, fmt.Errorf("unknown option resource: %s", resource)
	}
}
