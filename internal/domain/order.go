package domain

// Order representa um pedido normalizado, chaveado pelo identificador externo
type Order struct {
	ID              int64   `json:"id"`
	AccountID       string  `json:"account_id"`
	OrderID         string  `json:"order_id"`
	Date            string  `json:"date"`
	NmID            int64   `json:"nm_id"`
	SupplierArticle string  `json:"supplier_article"`
	Quantity        int     `json:"quantity"`
	TotalPrice      float64 `json:"total_price"`
	DiscountPercent float64 `json:"discount_percent"`
	WarehouseName   string  `json:"warehouse_name"`
	Status          string  `json:"status"`
	IsCancel        bool    `json:"is_cancel"`
}
