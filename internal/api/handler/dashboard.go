package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
	"github.com/vfg2006/marketplace-analytics-api/internal/usecases/account"
	"github.com/vfg2006/marketplace-analytics-api/internal/usecases/dashboarding"
	"github.com/vfg2006/marketplace-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/marketplace-analytics-api/pkg/utils"
)

func GetDashboard(service dashboarding.Dasher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, ok := parsePeriodFilters(w, r)
		if !ok {
			return
		}

		response, err := service.GetDashboard(id, filters)
		if err != nil {
			logrus.Error("Error computing dashboard:", err)
			writeDashboardError(w, err, "Erro ao calcular o dashboard")
			return
		}

		writeJSON(w, response)
	})
}

func GetReportSummaries(service dashboarding.Dasher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, ok := parsePeriodFilters(w, r)
		if !ok {
			return
		}

		summaries, err := service.GetReportSummaries(id, filters)
		if err != nil {
			logrus.Error("Error grouping financial reports:", err)
			writeDashboardError(w, err, "Erro ao agrupar os relatórios financeiros")
			return
		}

		writeJSON(w, summaries)
	})
}

func GetWeeklySummaries(service dashboarding.Dasher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, ok := parsePeriodFilters(w, r)
		if !ok {
			return
		}

		summaries, err := service.GetWeeklySummaries(id, filters)
		if err != nil {
			logrus.Error("Error grouping weekly summaries:", err)
			writeDashboardError(w, err, "Erro ao agrupar as semanas")
			return
		}

		writeJSON(w, summaries)
	})
}

func ListStocks(service dashboarding.Dasher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		stocks, err := service.GetStocks(id)
		if err != nil {
			logrus.Error("Error listing stocks:", err)
			writeDashboardError(w, err, "Erro ao buscar o estoque")
			return
		}

		writeJSON(w, stocks)
	})
}

// parsePeriodFilters extrai e valida os parâmetros start_date e end_date.
// Em caso de erro a resposta já foi escrita e o retorno é false.
func parsePeriodFilters(w http.ResponseWriter, r *http.Request) (*domain.PeriodFilters, bool) {
	startDateStr := r.URL.Query().Get("start_date")
	endDateStr := r.URL.Query().Get("end_date")

	if startDateStr == "" || endDateStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Os parâmetros start_date e end_date são obrigatórios", nil)
		return nil, false
	}

	startDate, err := utils.ParseDate(startDateStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro start_date inválido, use o formato YYYY-MM-DD", nil)
		return nil, false
	}

	endDate, err := utils.ParseDate(endDateStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro end_date inválido, use o formato YYYY-MM-DD", nil)
		return nil, false
	}

	if endDate.Before(*startDate) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "A data final não pode ser anterior à data inicial", nil)
		return nil, false
	}

	return &domain.PeriodFilters{StartDate: startDate, EndDate: endDate}, true
}

func writeDashboardError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, account.ErrAccountNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não encontrada", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
