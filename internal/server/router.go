package server

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-backoffice-service/internal/catalog"
	cataloghandler "github.com/fekuna/omnipos-backoffice-service/internal/catalog/handler"
	"github.com/fekuna/omnipos-backoffice-service/internal/dashboard"
	dashboardhandler "github.com/fekuna/omnipos-backoffice-service/internal/dashboard/handler"
	"github.com/fekuna/omnipos-backoffice-service/internal/discount"
	discounthandler "github.com/fekuna/omnipos-backoffice-service/internal/discount/handler"
	"github.com/fekuna/omnipos-backoffice-service/internal/editor"
	"github.com/fekuna/omnipos-backoffice-service/internal/expense"
	expensehandler "github.com/fekuna/omnipos-backoffice-service/internal/expense/handler"
	"github.com/fekuna/omnipos-backoffice-service/internal/inventory"
	inventoryhandler "github.com/fekuna/omnipos-backoffice-service/internal/inventory/handler"
	"github.com/fekuna/omnipos-backoffice-service/internal/order"
	orderhandler "github.com/fekuna/omnipos-backoffice-service/internal/order/handler"
	"github.com/fekuna/omnipos-backoffice-service/internal/party"
	partyhandler "github.com/fekuna/omnipos-backoffice-service/internal/party/handler"
	"github.com/fekuna/omnipos-backoffice-service/internal/product"
	producthandler "github.com/fekuna/omnipos-backoffice-service/internal/product/handler"
	"github.com/fekuna/omnipos-backoffice-service/internal/purchase"
	purchasehandler "github.com/fekuna/omnipos-backoffice-service/internal/purchase/handler"
	"github.com/fekuna/omnipos-backoffice-service/pkg/httpserver"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

// Deps collects the use cases the router mounts.
type Deps struct {
	Catalog   catalog.UseCase
	Party     party.UseCase
	Discounts discount.UseCase
	Products  product.UseCase
	Expenses  expense.UseCase
	Inventory inventory.UseCase
	Orders    order.UseCase
	Purchases purchase.UseCase
	Dashboard dashboard.UseCase
	Logger    logger.ZapLogger
}

func NewRouter(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	cataloghandler.NewHandler(d.Catalog, d.Logger).RegisterRoutes(mux)
	partyhandler.NewHandler(d.Party, d.Logger).RegisterRoutes(mux)
	discounthandler.NewHandler(d.Discounts, d.Logger).RegisterRoutes(mux)
	producthandler.NewHandler(d.Products, d.Logger).RegisterRoutes(mux)
	expensehandler.NewHandler(d.Expenses, d.Logger).RegisterRoutes(mux)
	inventoryhandler.NewHandler(d.Inventory, d.Logger).RegisterRoutes(mux)
	orderhandler.NewHandler(d.Orders, d.Logger).RegisterRoutes(mux)
	purchasehandler.NewHandler(d.Purchases, d.Logger).RegisterRoutes(mux)
	dashboardhandler.NewHandler(d.Dashboard, d.Logger).RegisterRoutes(mux)

	source := &OptionSource{
		Catalog:   d.Catalog,
		Party:     d.Party,
		Discounts: d.Discounts,
		Expenses:  d.Expenses,
	}
	mux.HandleFunc("GET /api/options/{resource}", func(w http.ResponseWriter, r *http.Request) {
		resource := r.PathValue("resource")
		opts, err := source.FetchOptionList(r.Context(), resource)
		if err != nil {
			// A broken dropdown must not block the form, so serve an
			// empty list instead of an error.
			d.Logger.Warn("failed to load option list", zap.String("resource", resource), zap.Error(err))
			opts = []editor.Option{}
		}
		httpserver.RespondOK(w, http.StatusOK, opts)
	})

	return mux
}
