package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-backoffice-service/internal/editor"
	"github.com/fekuna/omnipos-backoffice-service/internal/party"
	"github.com/fekuna/omnipos-backoffice-service/internal/party/dto"
	"github.com/fekuna/omnipos-backoffice-service/pkg/httpserver"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

type Handler struct {
	uc     party.UseCase
	logger logger.ZapLogger
}

func NewHandler(uc party.UseCase, log logger.ZapLogger) *Handler {
	return &Handler{uc: uc, logger: log}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/stores", h.listStores)
	mux.HandleFunc("POST /api/stores", h.createStore)
	mux.HandleFunc("GET /api/stores/{id}", h.getStore)
	mux.HandleFunc("PUT /api/stores/{id}", h.updateStore)
	mux.HandleFunc("DELETE /api/stores/{id}", h.deleteStore)

	mux.HandleFunc("GET /api/warehouses", h.listWarehouses)
	mux.HandleFunc("POST /api/warehouses", h.createWarehouse)
	mux.HandleFunc("GET /api/warehouses/{id}", h.getWarehouse)
	mux.HandleFunc("PUT /api/warehouses/{id}", h.updateWarehouse)
	mux.HandleFunc("DELETE /api/warehouses/{id}", h.deleteWarehouse)

	mux.HandleFunc("GET /api/customers", h.listCustomers)
	mux.HandleFunc("POST /api/customers", h.createCustomer)
	mux.HandleFunc("GET /api/customers/{id}", h.getCustomer)
	mux.HandleFunc("PUT /api/customers/{id}", h.updateCustomer)
	mux.HandleFunc("DELETE /api/customers/{id}", h.deleteCustomer)

	mux.HandleFunc("GET /api/users", h.listUsers)
}

func (h *Handler) preparedInput(w http.ResponseWriter, r *http.Request, kind editor.Kind, dst interface{}) bool {
	var rec editor.Record
	if err := httpserver.DecodeBody(r, &rec); err != nil {
		httpserver.RespondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	payload, err := editor.Prepare(kind, rec, editor.Options{Logger: h.logger})
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

func listFilters(r *http.Request) *dto.ListFilters {
	page, pageSize := httpserver.Pagination(r)
	return &dto.ListFilters{
		Search:   r.URL.Query().Get("search"),
		IsActive: httpserver.QueryBoolPtr(r, "is_active"),
		Page:     page,
		PageSize: pageSize,
	}
}

// --- stores ---

func (h *Handler) listStores(w http.ResponseWriter, r *http.Request) {
	f := listFilters(r)
	items, total, err := h.uc.ListStores(r.Context(), f)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, httpserver.ListData{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize})
}

func (h *Handler) createStore(w http.ResponseWriter, r *http.Request) {
	var input dto.StoreInput
	if !h.preparedInput(w, r, editor.KindStore, &input) {
		return
	}
	created, err := h.uc.CreateStore(r.Context(), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusCreated, created)
}

func (h *Handler) getStore(w http.ResponseWriter, r *http.Request) {
	item, err := h.uc.GetStore(r.Context(), r.PathValue("id"))
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	if item == nil {
		httpserver.RespondError(w, http.StatusNotFound, "store not found")
		return
	}
	httpserver.RespondOK(w, http.StatusOK, item)
}

func (h *Handler) updateStore(w http.ResponseWriter, r *http.Request) {
	var input dto.StoreInput
	if !h.preparedInput(w, r, editor.KindStore, &input) {
		return
	}
	updated, err := h.uc.UpdateStore(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, updated)
}

func (h *Handler) deleteStore(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteStore(r.Context(), r.PathValue("id")); err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, nil)
}

// --- warehouses ---

func (h *Handler) listWarehouses(w http.ResponseWriter, r *http.Request) {
	f := listFilters(r)
	items, total, err := h.uc.ListWarehouses(r.Context(), f)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, httpserver.ListData{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize})
}

func (h *Handler) createWarehouse(w http.ResponseWriter, r *http.Request) {
	var input dto.WarehouseInput
	if !h.preparedInput(w, r, editor.KindWarehouse, &input) {
		return
	}
	created, err := h.uc.CreateWarehouse(r.Context(), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusCreated, created)
}

func (h *Handler) getWarehouse(w http.ResponseWriter, r *http.Request) {
	item, err := h.uc.GetWarehouse(r.Context(), r.PathValue("id"))
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	if item == nil {
		httpserver.RespondError(w, http.StatusNotFound, "warehouse not found")
		return
	}
	httpserver.RespondOK(w, http.StatusOK, item)
}

func (h *Handler) updateWarehouse(w http.ResponseWriter, r *http.Request) {
	var input dto.WarehouseInput
	if !h.preparedInput(w, r, editor.KindWarehouse, &input) {
		return
	}
	updated, err := h.uc.UpdateWarehouse(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, updated)
}

func (h *Handler) deleteWarehouse(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteWarehouse(r.Context(), r.PathValue("id")); err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, nil)
}

// --- customers ---

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	f := listFilters(r)
	items, total, err := h.uc.ListCustomers(r.Context(), f)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, httpserver.ListData{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize})
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var input dto.CustomerInput
	if !h.preparedInput(w, r, editor.KindCustomer, &input) {
		return
	}
	created, err := h.uc.CreateCustomer(r.Context(), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusCreated, created)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	item, err := h.uc.GetCustomer(r.Context(), r.PathValue("id"))
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	if item == nil {
		httpserver.RespondError(w, http.StatusNotFound, "customer not found")
		return
	}
	httpserver.RespondOK(w, http.StatusOK, item)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	var input dto.CustomerInput
	if !h.preparedInput(w, r, editor.KindCustomer, &input) {
		return
	}
	updated, err := h.uc.UpdateCustomer(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, updated)
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteCustomer(r.Context(), r.PathValue("id")); err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, nil)
}

// --- users ---

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	f := listFilters(r)
	items, total, err := h.uc.ListUsers(r.Context(), f)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, httpserver.ListData{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize})
}
