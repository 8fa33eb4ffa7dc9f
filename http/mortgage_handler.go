package http

import (
	"log/slog"
	"net/http"

	"mortgage-planner/domain"
	"mortgage-planner/service"
)

type MortgageHandler struct {
	service   *service.MortgageService
	scenarios *service.ScenarioService
	logger    *slog.Logger
}

func NewMortgageHandler(svc *service.MortgageService, scenarios *service.ScenarioService, logger *slog.Logger) *MortgageHandler {
	return &MortgageHandler{service: svc, scenarios: scenarios, logger: logger}
}

func (h *MortgageHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req service.MortgageRequest
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

func (h *MortgageHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req service.MortgageRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	schedule, err := h.service.Schedule(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, schedule)
}

type scenarioBatch struct {
	Scenarios []service.MortgageRequest `json:"scenarios"`
}

type scenarioResults struct {
	Results []domain.ScenarioOutcome `json:"results"`
}

func (h *MortgageHandler) Scenarios(w http.ResponseWriter, r *http.Request) {
	var req scenarioBatch
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	outcomes, err := h.scenarios.CalculateMany(r.Context(), req.Scenarios)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, scenarioResults{Results: outcomes})
}
