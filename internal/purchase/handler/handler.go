package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-backoffice-service/internal/purchase"
	"github.com/fekuna/omnipos-backoffice-service/internal/purchase/dto"
	"github.com/fekuna/omnipos-backoffice-service/pkg/httpserver"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

type Handler struct {
	uc     purchase.UseCase
	logger logger.ZapLogger
}

func NewHandler(uc purchase.UseCase, log logger.ZapLogger) *Handler {
	return &Handler{uc: uc, logger: log}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/purchases", h.listPurchases)
	mux.HandleFunc("POST /api/purchases", h.createPurchase)
	mux.HandleFunc("GET /api/purchases/stats", h.hubStats)
	mux.HandleFunc("GET /api/purchases/{id}", h.getPurchase)
	mux.HandleFunc("PUT /api/purchases/{id}", h.updatePurchase)
	mux.HandleFunc("DELETE /api/purchases/{id}", h.deletePurchase)

	mux.HandleFunc("GET /api/purchase-orders", h.listOrders)
	mux.HandleFunc("POST /api/purchase-orders", h.createOrder)
	mux.HandleFunc("GET /api/purchase-orders/{id}", h.getOrder)
	mux.HandleFunc("PUT /api/purchase-orders/{id}", h.updateOrder)
	mux.HandleFunc("DELETE /api/purchase-orders/{id}", h.deleteOrder)

	mux.HandleFunc("GET /api/purchase-returns", h.listReturns)
	mux.HandleFunc("POST /api/purchase-returns", h.createReturn)
	mux.HandleFunc("GET /api/purchase-returns/{id}", h.getReturn)
	mux.HandleFunc("PUT /api/purchase-returns/{id}", h.updateReturn)
	mux.HandleFunc("DELETE /api/purchase-returns/{id}", h.deleteReturn)
}

func filters(r *http.Request) *dto.Filters {
	page, pageSize := httpserver.Pagination(r)
	return &dto.Filters{
		Search:   r.URL.Query().Get("search"),
		Status:   r.URL.Query().Get("status"),
		Page:     page,
		PageSize: pageSize,
	}
}

// --- purchases ---

func (h *Handler) listPurchases(w http.ResponseWriter, r *http.Request) {
	f := filters(r)
	items, total, err := h.uc.ListPurchases(r.Context(), f)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, httpserver.ListData{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize})
}

func (h *Handler) createPurchase(w http.ResponseWriter, r *http.Request) {
	var input dto.PurchaseInput
	if err := httpserver.DecodeBody(r, &input); err != nil {
		httpserver.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.uc.CreatePurchase(r.Context(), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusCreated, created)
}

func (h *Handler) getPurchase(w http.ResponseWriter, r *http.Request) {
	item, err := h.uc.GetPurchase(r.Context(), r.PathValue("id"))
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	if item == nil {
		httpserver.RespondError(w, http.StatusNotFound, "purchase not found")
		return
	}
	httpserver.RespondOK(w, http.StatusOK, item)
}

func (h *Handler) updatePurchase(w http.ResponseWriter, r *http.Request) {
	var input dto.PurchaseInput
	if err := httpserver.DecodeBody(r, &input); err != nil {
		httpserver.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.uc.UpdatePurchase(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, updated)
}

func (h *Handler) deletePurchase(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeletePurchase(r.Context(), r.PathValue("id")); err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, nil)
}

func (h *Handler) hubStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.uc.HubStats(r.Context())
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, stats)
}

// --- purchase orders ---

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	f := filters(r)
	items, total, err := h.uc.ListOrders(r.Context(), f)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, httpserver.ListData{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var input dto.OrderInput
	if err := httpserver.DecodeBody(r, &input); err != nil {
		httpserver.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.uc.CreateOrder(r.Context(), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusCreated, created)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	item, err := h.uc.GetOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	if item == nil {
		httpserver.RespondError(w, http.StatusNotFound, "purchase order not found")
		return
	}
	httpserver.RespondOK(w, http.StatusOK, item)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	var input dto.OrderInput
	if err := httpserver.DecodeBody(r, &input); err != nil {
		httpserver.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.uc.UpdateOrder(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, updated)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteOrder(r.Context(), r.PathValue("id")); err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, nil)
}

// --- purchase returns ---

func (h *Handler) listReturns(w http.ResponseWriter, r *http.Request) {
	f := filters(r)
	items, total, err := h.uc.ListReturns(r.Context(), f)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, httpserver.ListData{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize})
}

func (h *Handler) createReturn(w http.ResponseWriter, r *http.Request) {
	var input dto.ReturnInput
	if err := httpserver.DecodeBody(r, &input); err != nil {
		httpserver.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.uc.CreateReturn(r.Context(), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusCreated, created)
}

func (h *Handler) getReturn(w http.ResponseWriter, r *http.Request) {
	item, err := h.uc.GetReturn(r.Context(), r.PathValue("id"))
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	if item == nil {
		httpserver.RespondError(w, http.StatusNotFound, "purchase return not found")
		return
	}
	httpserver.RespondOK(w, http.StatusOK, item)
}

func (h *Handler) updateReturn(w http.ResponseWriter, r *http.Request) {
	var input dto.ReturnInput
	if err := httpserver.DecodeBody(r, &input); err != nil {
		httpserver.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.uc.UpdateReturn(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, updated)
}

func (h *Handler) deleteReturn(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteReturn(r.Context(), r.PathValue("id")); err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, nil)
}
