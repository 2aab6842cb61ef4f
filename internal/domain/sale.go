package domain

// Sale representa uma venda (ou devolução) normalizada, chaveada pelo saleID externo
type Sale struct {
	ID              int64   `json:"id"`
	AccountID       string  `json:"account_id"`
	SaleID          string  `json:"sale_id"`
	Date            string  `json:"date"`
	NmID            int64   `json:"nm_id"`
	SupplierArticle string  `json:"supplier_article"`
	Quantity        int     `json:"quantity"`
	PriceWithDisc   float64 `json:"price_with_disc"`
	ForPay          float64 `json:"for_pay"`
	FinishedPrice   float64 `json:"finished_price"`
	IsReturn        bool    `json:"is_return"`
	WarehouseName   string  `json:"warehouse_name"`
}
