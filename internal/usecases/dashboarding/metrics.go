package dashboarding

import (
	"math"

	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
)

// MetricsInput reúne os registros brutos de uma janela de datas. O motor de
// métricas não consulta nada: recebe tudo pronto e devolve o snapshot.
type MetricsInput struct {
	Orders     []*domain.Order
	Sales      []*domain.Sale
	Financials []*domain.FinancialLine
	Costs      []*domain.Cost
	Campaigns  []*domain.Campaign
}

// ComputeMetrics deriva o conjunto completo de KPIs a partir dos registros
// brutos. O cálculo é uma cascata: receita -> CMV -> lucro bruto -> despesas
// do marketplace -> lucro marginal -> imposto -> lucro líquido -> ROI.
// Percentuais sobre receita valem 0 quando a receita é zero ou negativa.
func ComputeMetrics(input MetricsInput, taxRate float64) *domain.DashboardMetrics {
	costByProduct := make(map[int64]float64, len(input.Costs))
	for _, c := range input.Costs {
		costByProduct[c.NmID] = c.Cost
	}

	m := &domain.DashboardMetrics{}

	// Pedidos
	for _, order := range input.Orders {
		if order.IsCancel {
			m.CancelledRevenue += order.TotalPrice
			m.CancelledCount += order.Quantity
		} else {
			m.OrdersRevenue += order.TotalPrice
			m.OrdersCount += order.Quantity
		}
	}

	totalOrders := m.OrdersCount + m.CancelledCount
	if totalOrders > 0 {
		m.CancelRate = float64(m.CancelledCount) / float64(totalOrders) * 100
	}

	// Vendas e devoluções
	var forPay float64
	for _, sale := range input.Sales {
		if sale.IsReturn {
			m.ReturnsRevenue += sale.PriceWithDisc
			m.ReturnsCount += sale.Quantity
		} else {
			m.SalesRevenue += sale.PriceWithDisc
			m.SalesCount += sale.Quantity
			forPay += sale.ForPay
			m.Cogs += costByProduct[sale.NmID] * float64(sale.Quantity)
		}
	}

	m.Revenue = m.SalesRevenue - m.ReturnsRevenue
	m.BuyoutsCount = m.SalesCount

	if m.SalesCount > 0 {
		m.ReturnRate = float64(m.ReturnsCount) / float64(m.SalesCount) * 100
		m.AvgCheck = m.SalesRevenue / float64(m.SalesCount)
		m.AvgCogs = m.Cogs / float64(m.SalesCount)
	}

	if total := m.OrdersCount + m.ReturnsCount; total > 0 {
		m.BuyoutRate = float64(m.BuyoutsCount) / float64(total) * 100
	}

	m.CogsPercent = percentOfRevenue(m.Cogs, m.Revenue)

	// Lucro bruto
	m.GrossProfit = m.Revenue - m.Cogs
	m.GrossProfitPercent = percentOfRevenue(m.GrossProfit, m.Revenue)

	// Despesas do marketplace (relatórios financeiros)
	for _, line := range input.Financials {
		m.Logistics += line.DeliveryAmount
		m.Storage += line.StorageAmount
		m.Compensation += line.AdditionalPayment
		m.OtherServices += line.Penalty
	}

	// A comissão não vem discriminada: é o que sobra entre a receita e o
	// repasse depois de descontar a logística, nunca negativa
	m.Commission = math.Max(0, m.Revenue-forPay-m.Logistics)
	m.CommissionPercent = percentOfRevenue(m.Commission, m.Revenue)

	for _, campaign := range input.Campaigns {
		m.Ads += campaign.Spent
	}

	m.LogisticsPercent = percentOfRevenue(m.Logistics, m.Revenue)
	m.StoragePercent = percentOfRevenue(m.Storage, m.Revenue)
	m.AdsPercent = percentOfRevenue(m.Ads, m.Revenue)
	m.OtherServicesPercent = percentOfRevenue(m.OtherServices, m.Revenue)
	m.CompensationPercent = percentOfRevenue(m.Compensation, m.Revenue)

	m.TotalExpenses = m.Commission + m.Logistics + m.Storage + m.Ads + m.OtherServices - m.Compensation
	m.TotalExpensesPercent = percentOfRevenue(m.TotalExpenses, m.Revenue)

	// Lucro marginal
	m.MarginalProfit = m.GrossProfit - m.TotalExpenses
	m.MarginalProfitPercent = percentOfRevenue(m.MarginalProfit, m.Revenue)

	// Imposto sobre a receita (regime simplificado)
	m.Tax = m.Revenue * taxRate
	m.TaxPercent = taxRate * 100

	// Lucro líquido
	m.Profit = m.MarginalProfit - m.Tax
	m.ProfitPercent = percentOfRevenue(m.Profit, m.Revenue)

	if m.Cogs > 0 {
		m.ROI = m.Profit / m.Cogs * 100
	}

	return m
}

func percentOfRevenue(value, revenue float64) float64 {
	if revenue <= 0 {
		return 0
	}
	return value / revenue * 100
}
