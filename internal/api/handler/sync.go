package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-analytics-api/internal/scheduler"
	"github.com/vfg2006/marketplace-analytics-api/pkg/apiErrors"
)

// TriggerSync dispara manualmente a sincronização de todas as contas ativas.
// A execução acontece em segundo plano e a resposta volta imediatamente.
func TriggerSync(service *scheduler.WBSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - TriggerSync")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		service.TriggerManualSync()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		writeJSONBody(w, map[string]string{"message": "Sincronização iniciada"})
	})
}

// TriggerAccountSync dispara manualmente a sincronização de uma única conta
func TriggerAccountSync(service *scheduler.WBSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		if err := service.TriggerAccountSync(id); err != nil {
			logrus.Error("Error triggering account sync:", err)
			apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não encontrada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		writeJSONBody(w, map[string]string{"message": "Sincronização da conta iniciada"})
	})
}

// SyncStatus expõe o estado atual do agendador de sincronização
func SyncStatus(service *scheduler.WBSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		writeJSON(w, service.GetStatus())
	})
}
