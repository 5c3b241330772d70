package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-backoffice-service/internal/dashboard"
	"github.com/fekuna/omnipos-backoffice-service/internal/dashboard/dto"
	"github.com/fekuna/omnipos-backoffice-service/pkg/httpserver"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

type Handler struct {
	uc     dashboard.UseCase
	logger logger.ZapLogger
}

func NewHandler(uc dashboard.UseCase, log logger.ZapLogger) *Handler {
	return &Handler{uc: uc, logger: log}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/dashboard", h.overview)
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := &dto.Filters{
		From:    q.Get("from"),
		To:      q.Get("to"),
		StoreID: q.Get("store_id"),
	}
	overview, err := h.uc.Overview(r.Context(), f)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, overview)
}
