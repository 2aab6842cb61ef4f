package domain

import "time"

// Cost representa o custo unitário de um produto, informado pelo vendedor
type Cost struct {
	ID              int64     `json:"id"`
	AccountID       string    `json:"account_id"`
	NmID            int64     `json:"nm_id"`
	SupplierArticle string    `json:"supplier_article"`
	Cost            float64   `json:"cost"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CostItem é um item de upsert em lote de custos
type CostItem struct {
	NmID            int64   `json:"nm_id"`
	SupplierArticle string  `json:"supplier_article"`
	Cost            float64 `json:"cost"`
}
