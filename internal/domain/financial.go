package domain

// Tipos de documento reportados pelo relatório financeiro do marketplace.
// Os valores são as strings retornadas pela própria API.
const (
	DocTypeSale   = "Продажа"
	DocTypeReturn = "Возврат"
)

// FinancialLine representa uma linha de um relatório financeiro do marketplace,
// identificada pela tupla (conta, relatório, produto, tipo de documento, artigo)
type FinancialLine struct {
	ID                   int64   `json:"id"`
	AccountID            string  `json:"account_id"`
	ReportID             int64   `json:"report_id"`
	DateFrom             string  `json:"date_from"`
	DateTo               string  `json:"date_to"`
	NmID                 int64   `json:"nm_id"`
	SupplierArticle      string  `json:"supplier_article"`
	Subject              string  `json:"subject"`
	RetailAmount         float64 `json:"retail_amount"`
	ReturnAmount         float64 `json:"return_amount"`
	DeliveryAmount       float64 `json:"delivery_amount"`
	StornoDeliveryAmount float64 `json:"storno_delivery_amount"`
	PpvzForPay           float64 `json:"ppvz_for_pay"`
	Penalty              float64 `json:"penalty"`
	AdditionalPayment    float64 `json:"additional_payment"`
	StorageAmount        float64 `json:"storage_amount"`
	DeductionAmount      float64 `json:"deduction_amount"`
	SiteCountry          string  `json:"site_country"`
	WarehouseName        string  `json:"warehouse_name"`
	ReportDate           string  `json:"report_date"`
	DocTypeName          string  `json:"doc_type_name"`
}

// ReportSummary agrega as linhas financeiras de um mesmo relatório
type ReportSummary struct {
	ReportID       int64   `json:"report_id"`
	DateFrom       string  `json:"date_from"`
	DateTo         string  `json:"date_to"`
	SalesRevenue   float64 `json:"sales_revenue"`
	ReturnsRevenue float64 `json:"returns_revenue"`
	Revenue        float64 `json:"revenue"`
	ForPay         float64 `json:"for_pay"`
	Logistics      float64 `json:"logistics"`
	Storage        float64 `json:"storage"`
	Penalty        float64 `json:"penalty"`
	Compensation   float64 `json:"compensation"`
	SalesCount     int     `json:"sales_count"`
	ReturnsCount   int     `json:"returns_count"`
}

// WeekSummary agrega as linhas financeiras por semana ISO (chave YYYY-Www)
type WeekSummary struct {
	Week           string  `json:"week"`
	SalesRevenue   float64 `json:"sales_revenue"`
	ReturnsRevenue float64 `json:"returns_revenue"`
	Revenue        float64 `json:"revenue"`
	ForPay         float64 `json:"for_pay"`
	Logistics      float64 `json:"logistics"`
	SalesCount     int     `json:"sales_count"`
	ReturnsCount   int     `json:"returns_count"`
}
