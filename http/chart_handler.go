package http

import (
	"log/slog"
	"net/http"

	"mortgage-planner/service"
)

type ChartHandler struct {
	chart   *service.ChartService
	compare *service.CompareService
	tips    *service.TipService
	logger  *slog.Logger
}

func NewChartHandler(
	chart *service.ChartService,
	compare *service.CompareService,
	tips *service.TipService,
	logger *slog.Logger,
) *ChartHandler {
	return &ChartHandler{chart: chart, compare: compare, tips: tips, logger: logger}
}

func (h *ChartHandler) Chart(w http.ResponseWriter, r *http.Request) {
	var req service.ChartRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	result, err := h.chart.Chart(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ChartHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req service.CompareRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	report, err := h.compare.Compare(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *ChartHandler) Tip(w http.ResponseWriter, r *http.Request) {
	var req service.CompareRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	tip, err := h.tips.Tip(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, tip)
}
