package http

import (
	"net/http"
	"strconv"

	"github.com/ametis-rh/paie-backend-go/internal/domain/report"
	"github.com/ametis-rh/paie-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	AnnualDeclaration(w http.ResponseWriter, r *http.Request)
	NominativeReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func (h *reportHandlerImpl) AnnualDeclaration(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'year' must be an integer", nil)
		return
	}

	result, err := h.reportService.GenerateAnnualDeclaration(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) NominativeReport(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	startYear, err := strconv.Atoi(r.URL.Query().Get("start_year"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'start_year' must be an integer", nil)
		return
	}
	endYear, err := strconv.Atoi(r.URL.Query().Get("end_year"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'end_year' must be an integer", nil)
		return
	}

	result, err := h.reportService.GenerateNominativeReport(r.Context(), employeeID, startYear, endYear)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
