package domain

import "time"

// Stock representa o snapshot de estoque de um produto em um armazém.
// As linhas de estoque de uma conta refletem sempre a última sincronização
// bem-sucedida (sem histórico).
type Stock struct {
	ID              int64     `json:"id"`
	AccountID       string    `json:"account_id"`
	NmID            int64     `json:"nm_id"`
	SupplierArticle string    `json:"supplier_article"`
	Subject         string    `json:"subject"`
	Quantity        int       `json:"quantity"`
	WarehouseName   string    `json:"warehouse_name"`
	UpdatedAt       time.Time `json:"updated_at"`
}
