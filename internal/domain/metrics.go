package domain

import "time"

// PeriodFilters delimita a janela de datas de uma consulta de métricas
type PeriodFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// DashboardMetrics é o conjunto de KPIs financeiros derivados dos registros
// brutos de uma janela de datas. Todos os percentuais relativos à receita
// valem 0 quando a receita (ou o denominador correspondente) é zero.
type DashboardMetrics struct {
	// Pedidos
	OrdersRevenue    float64 `json:"ordersRevenue"`
	OrdersCount      int     `json:"ordersCount"`
	CancelledRevenue float64 `json:"cancelledRevenue"`
	CancelledCount   int     `json:"cancelledCount"`
	CancelRate       float64 `json:"cancelRate"`

	// Receita
	SalesRevenue   float64 `json:"salesRevenue"`
	ReturnsRevenue float64 `json:"returnsRevenue"`
	Revenue        float64 `json:"revenue"`
	AvgCheck       float64 `json:"avgCheck"`
	SalesCount     int     `json:"salesCount"`
	ReturnsCount   int     `json:"returnsCount"`
	ReturnRate     float64 `json:"returnRate"`
	BuyoutsCount   int     `json:"buyoutsCount"`
	BuyoutRate     float64 `json:"buyoutRate"`

	// Custo de mercadoria vendida
	Cogs        float64 `json:"cogs"`
	CogsPercent float64 `json:"cogsPercent"`
	AvgCogs     float64 `json:"avgCogs"`

	// Lucro bruto
	GrossProfit        float64 `json:"grossProfit"`
	GrossProfitPercent float64 `json:"grossProfitPercent"`

	// Despesas do marketplace
	Commission           float64 `json:"commission"`
	CommissionPercent    float64 `json:"commissionPercent"`
	Logistics            float64 `json:"logistics"`
	LogisticsPercent     float64 `json:"logisticsPercent"`
	Storage              float64 `json:"storage"`
	StoragePercent       float64 `json:"storagePercent"`
	Ads                  float64 `json:"ads"`
	AdsPercent           float64 `json:"adsPercent"`
	OtherServices        float64 `json:"otherServices"`
	OtherServicesPercent float64 `json:"otherServicesPercent"`
	Compensation         float64 `json:"compensation"`
	CompensationPercent  float64 `json:"compensationPercent"`
	TotalExpenses        float64 `json:"totalExpenses"`
	TotalExpensesPercent float64 `json:"totalExpensesPercent"`

	// Margem e imposto
	MarginalProfit        float64 `json:"marginalProfit"`
	MarginalProfitPercent float64 `json:"marginalProfitPercent"`
	Tax                   float64 `json:"tax"`
	TaxPercent            float64 `json:"taxPercent"`
	Profit                float64 `json:"profit"`
	ProfitPercent         float64 `json:"profitPercent"`
	ROI                   float64 `json:"roi"`
}

// DashboardResponse combina o snapshot do período solicitado com o do
// período imediatamente anterior (mesma duração) e as variações percentuais
// calculadas fora do motor de métricas
type DashboardResponse struct {
	Current  *DashboardMetrics  `json:"current"`
	Previous *DashboardMetrics  `json:"previous,omitempty"`
	Deltas   map[string]float64 `json:"deltas,omitempty"`
	Filters  *PeriodFilters     `json:"-"`
}
