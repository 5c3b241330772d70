package handler

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-backoffice-service/internal/editor"
	"github.com/fekuna/omnipos-backoffice-service/internal/product"
	"github.com/fekuna/omnipos-backoffice-service/internal/product/dto"
	"github.com/fekuna/omnipos-backoffice-service/pkg/httpserver"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

type Handler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewHandler(uc product.UseCase, log logger.ZapLogger) *Handler {
	return &Handler{uc: uc, logger: log}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/products", h.list)
	mux.HandleFunc("POST /api/products", h.create)
	mux.HandleFunc("GET /api/products/export", h.export)
	mux.HandleFunc("POST /api/products/bulk-delete", h.bulkDelete)
	mux.HandleFunc("GET /api/products/{id}", h.get)
	mux.HandleFunc("PUT /api/products/{id}", h.update)
	mux.HandleFunc("DELETE /api/products/{id}", h.delete)
}

func filtersFrom(r *http.Request) *dto.ProductFilters {
	page, pageSize := httpserver.Pagination(r)
	q := r.URL.Query()
	return &dto.ProductFilters{
		SearchQuery:   q.Get("search"),
		StoreID:       q.Get("store_id"),
		WarehouseID:   q.Get("warehouse_id"),
		CategoryID:    q.Get("category_id"),
		SubcategoryID: q.Get("subcategory_id"),
		BrandID:       q.Get("brand_id"),
		IsActive:      httpserver.QueryBoolPtr(r, "is_active"),
		SortBy:        q.Get("sort_by"),
		SortDir:       q.Get("sort_dir"),
		Page:          page,
		PageSize:      pageSize,
	}
}

func (h *Handler) preparedInput(w http.ResponseWriter, r *http.Request, dst *dto.ProductInput) bool {
	var rec editor.Record
	if err := httpserver.DecodeBody(r, &rec); err != nil {
		httpserver.RespondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	payload, err := editor.Prepare(editor.KindProduct, rec, editor.Options{Logger: h.logger})
	if err != nil {
		httpserver.RespondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	if err := payload.Decode(dst); err != nil {
		httpserver.RespondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	f := filtersFrom(r)
	items, total, err := h.uc.ListProducts(r.Context(), f)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, httpserver.ListData{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var input dto.ProductInput
	if !h.preparedInput(w, r, &input) {
		return
	}
	created, err := h.uc.CreateProduct(r.Context(), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusCreated, created)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	item, err := h.uc.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	if item == nil {
		httpserver.RespondError(w, http.StatusNotFound, "product not found")
		return
	}
	httpserver.RespondOK(w, http.StatusOK, item)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var input dto.ProductInput
	if !h.preparedInput(w, r, &input) {
		return
	}
	updated, err := h.uc.UpdateProduct(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, updated)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteProduct(r.Context(), r.PathValue("id")); err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, nil)
}

func (h *Handler) bulkDelete(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDs []string `json:"ids"`
	}
	if err := httpserver.DecodeBody(r, &body); err != nil {
		httpserver.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	deleted, err := h.uc.DeleteProducts(r.Context(), body.IDs)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, map[string]int{"deleted": deleted})
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	contentType := "text/csv"
	if format == "xlsx" {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=products.%s", format))

	if err := h.uc.ExportProducts(r.Context(), filtersFrom(r), format, w); err != nil {
		h.logger.Error("failed to export products", zap.Error(err))
	}
}
