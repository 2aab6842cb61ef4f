package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
	"github.com/vfg2006/marketplace-analytics-api/internal/usecases/account"
	"github.com/vfg2006/marketplace-analytics-api/pkg/apiErrors"
)

func ListAccounts(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accounts, err := service.ListAccounts()
		if err != nil {
			logrus.Error("Error listing accounts:", err)
			writeAccountError(w, err, "Erro ao listar contas")
			return
		}

		writeJSON(w, accounts)
	})
}

func GetAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		acc, err := service.GetAccount(id)
		if err != nil {
			logrus.Error("Error getting account:", err)
			writeAccountError(w, err, "Erro ao buscar conta")
			return
		}

		writeJSON(w, acc)
	})
}

func CreateAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		acc, err := service.CreateAccount(&request)
		if err != nil {
			logrus.Error("Error creating account:", err)
			writeAccountError(w, err, "Erro ao criar conta")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(acc); err != nil {
			logrus.WithError(err).Error("Erro ao codificar resposta")
		}
	})
}

func UpdateAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request domain.UpdateAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}
		request.ID = id

		acc, err := service.UpdateAccount(&request)
		if err != nil {
			logrus.Error("Error updating account:", err)
			writeAccountError(w, err, "Erro ao atualizar conta")
			return
		}

		writeJSON(w, acc)
	})
}

func DeleteAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteAccount(id); err != nil {
			logrus.Error("Error deleting account:", err)
			writeAccountError(w, err, "Erro ao remover conta")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ListSyncLogs(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		limit := 0
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		entries, err := service.ListSyncLogs(id, limit)
		if err != nil {
			logrus.Error("Error listing sync logs:", err)
			writeAccountError(w, err, "Erro ao buscar o log de sincronização")
			return
		}

		writeJSON(w, entries)
	})
}

// writeAccountError traduz os erros do caso de uso de contas para a resposta
// padronizada da API
func writeAccountError(w http.ResponseWriter, err error, fallback string) {
	var accountErr *account.AccountError
	if errors.As(err, &accountErr) {
		apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, account.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não encontrada", nil)
	case errors.Is(err, account.ErrFetchAccounts) || errors.Is(err, account.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar o banco de dados", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	writeJSONBody(w, payload)
}

func writeJSONBody(w http.ResponseWriter, payload any) {
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}
