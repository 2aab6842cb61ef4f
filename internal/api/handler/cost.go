package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
	"github.com/vfg2006/marketplace-analytics-api/internal/usecases/account"
	"github.com/vfg2006/marketplace-analytics-api/internal/usecases/costing"
	"github.com/vfg2006/marketplace-analytics-api/pkg/apiErrors"
)

func ListCosts(service costing.Coster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		costs, err := service.ListCosts(id)
		if err != nil {
			logrus.Error("Error listing costs:", err)
			writeCostError(w, err, "Erro ao listar custos")
			return
		}

		writeJSON(w, costs)
	})
}

func UpsertCost(service costing.Coster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var item domain.CostItem
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if err := service.UpsertCost(id, item); err != nil {
			logrus.Error("Error upserting cost:", err)
			writeCostError(w, err, "Erro ao gravar custo")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func BulkUpsertCosts(service costing.Coster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var items []domain.CostItem
		if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		count, err := service.BulkUpsertCosts(id, items)
		if err != nil {
			logrus.Error("Error bulk upserting costs:", err)
			writeCostError(w, err, "Erro ao gravar custos em lote")
			return
		}

		writeJSON(w, map[string]int{"count": count})
	})
}

func writeCostError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, account.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não encontrada", nil)
	case errors.Is(err, costing.ErrInvalidProduct) || errors.Is(err, costing.ErrNegativeCost):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
