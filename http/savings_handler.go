package http

import (
	"log/slog"
	"net/http"

	"mortgage-planner/service"
)

type SavingsHandler struct {
	service *service.SavingsService
	logger  *slog.Logger
}

func NewSavingsHandler(svc *service.SavingsService, logger *slog.Logger) *SavingsHandler {
	return &SavingsHandler{service: svc, logger: logger}
}

func (h *SavingsHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req service.SavingsRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	result, err := h.service.Calculate(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *SavingsHandler) Projection(w http.ResponseWriter, r *http.Request) {
	var req service.SavingsRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	projection, err := h.service.Projection(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, projection)
}
