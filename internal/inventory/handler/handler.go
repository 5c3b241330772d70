package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-backoffice-service/internal/inventory"
	"github.com/fekuna/omnipos-backoffice-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-backoffice-service/pkg/httpserver"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

type Handler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewHandler(uc inventory.UseCase, log logger.ZapLogger) *Handler {
	return &Handler{uc: uc, logger: log}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/inventory/{product_id}", h.getProductInventory)
	mux.HandleFunc("GET /api/inventory/low-stock", h.listLowStock)
	mux.HandleFunc("POST /api/inventory/adjust", h.adjustInventory)
	mux.HandleFunc("GET /api/inventory/movements", h.listMovements)
}

func storeIDParam(r *http.Request) *string {
	if v := r.URL.Query().Get("store_id"); v != "" {
		return &v
	}
	return nil
}

func (h *Handler) getProductInventory(w http.ResponseWriter, r *http.Request) {
	inv, err := h.uc.GetProductInventory(r.Context(), r.PathValue("product_id"), storeIDParam(r))
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, inv)
}

func (h *Handler) listLowStock(w http.ResponseWriter, r *http.Request) {
	page, pageSize := httpserver.Pagination(r)
	items, total, err := h.uc.ListLowStock(r.Context(), storeIDParam(r), page, pageSize)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, httpserver.ListData{Items: items, Total: total, Page: page, PageSize: pageSize})
}

func (h *Handler) adjustInventory(w http.ResponseWriter, r *http.Request) {
	var input dto.AdjustInventoryInput
	if err := httpserver.DecodeBody(r, &input); err != nil {
		httpserver.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.ProductID == "" {
		httpserver.RespondError(w, http.StatusBadRequest, "product_id is required")
		return
	}
	inv, err := h.uc.AdjustInventory(r.Context(), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, inv)
}

func (h *Handler) listMovements(w http.ResponseWriter, r *http.Request) {
	page, pageSize := httpserver.Pagination(r)
	f := &dto.MovementFilters{
		ProductID:    r.URL.Query().Get("product_id"),
		MovementType: r.URL.Query().Get("movement_type"),
		Page:         page,
		PageSize:     pageSize,
	}
	items, total, err := h.uc.ListMovements(r.Context(), f)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, httpserver.ListData{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize})
}
