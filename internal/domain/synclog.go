package domain

import "time"

// Status possíveis de uma entrada do log de sincronização
const (
	SyncStatusOK    = "ok"
	SyncStatusError = "error"
)

// Endpoints sincronizados (nomes usados no log de auditoria)
const (
	SyncEndpointOrders     = "orders"
	SyncEndpointSales      = "sales"
	SyncEndpointStocks     = "stocks"
	SyncEndpointFinancials = "financials"
	SyncEndpointCampaigns  = "campaigns"
)

// SyncLogEntry é o registro de auditoria (append-only) de uma fase de sincronização
type SyncLogEntry struct {
	ID        int64     `json:"id"`
	AccountID string    `json:"account_id"`
	Endpoint  string    `json:"endpoint"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	Count     int       `json:"count"`
	SyncedAt  time.Time `json:"synced_at"`
}
