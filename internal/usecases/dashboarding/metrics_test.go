package dashboarding

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
)

const taxRate = 0.06

func TestComputeMetrics_Revenue(t *testing.T) {
	tests := []struct {
		name            string
		sales           []*domain.Sale
		expectedRevenue float64
	}{
		{
			name: "apenas vendas",
			sales: []*domain.Sale{
				{PriceWithDisc: 1000, Quantity: 1},
				{PriceWithDisc: 2000, Quantity: 1},
			},
			expectedRevenue: 3000,
		},
		{
			name: "vendas com devolução",
			sales: []*domain.Sale{
				{PriceWithDisc: 1000, Quantity: 1},
				{PriceWithDisc: 500, Quantity: 1, IsReturn: true},
			},
			expectedRevenue: 500,
		},
		{
			name:            "sem vendas",
			sales:           nil,
			expectedRevenue: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ComputeMetrics(MetricsInput{Sales: tt.sales}, taxRate)

			assert.Equal(t, tt.expectedRevenue, m.Revenue)
			assert.Equal(t, m.SalesRevenue-m.ReturnsRevenue, m.Revenue)
		})
	}
}

func TestComputeMetrics_CommissionAndGrossProfit(t *testing.T) {
	input := MetricsInput{
		Sales: []*domain.Sale{
			{NmID: 101, PriceWithDisc: 10000, ForPay: 8000, Quantity: 1},
		},
		Costs: []*domain.Cost{
			{NmID: 101, Cost: 2000},
		},
		Financials: []*domain.FinancialLine{
			{
				DeliveryAmount: 500,
				PpvzForPay:     8000,
				RetailAmount:   10000,
				DocTypeName:    domain.DocTypeSale,
			},
		},
	}

	m := ComputeMetrics(input, taxRate)

	// commission = receita - repasse - logística
	assert.Equal(t, 1500.0, m.Commission)
	assert.Equal(t, 2000.0, m.Cogs)
	assert.Equal(t, 8000.0, m.GrossProfit)
	assert.Equal(t, 500.0, m.Logistics)
}

func TestComputeMetrics_CommissionNeverNegative(t *testing.T) {
	// Repasse maior que a receita (promoções pagas pelo marketplace)
	input := MetricsInput{
		Sales: []*domain.Sale{
			{PriceWithDisc: 1000, ForPay: 1500, Quantity: 1},
		},
	}

	m := ComputeMetrics(input, taxRate)

	assert.Equal(t, 0.0, m.Commission)
}

func TestComputeMetrics_ZeroRevenueGuards(t *testing.T) {
	// Receita zero com despesas presentes: nenhum percentual pode virar NaN
	input := MetricsInput{
		Financials: []*domain.FinancialLine{
			{DeliveryAmount: 700, StorageAmount: 300, Penalty: 50, AdditionalPayment: 20},
		},
		Campaigns: []*domain.Campaign{
			{Spent: 400},
		},
	}

	m := ComputeMetrics(input, taxRate)

	assert.Equal(t, 0.0, m.Revenue)
	assert.Equal(t, 0.0, m.CogsPercent)
	assert.Equal(t, 0.0, m.GrossProfitPercent)
	assert.Equal(t, 0.0, m.CommissionPercent)
	assert.Equal(t, 0.0, m.LogisticsPercent)
	assert.Equal(t, 0.0, m.StoragePercent)
	assert.Equal(t, 0.0, m.AdsPercent)
	assert.Equal(t, 0.0, m.OtherServicesPercent)
	assert.Equal(t, 0.0, m.CompensationPercent)
	assert.Equal(t, 0.0, m.TotalExpensesPercent)
	assert.Equal(t, 0.0, m.MarginalProfitPercent)
	assert.Equal(t, 0.0, m.ProfitPercent)

	// Valores absolutos continuam agregados normalmente
	assert.Equal(t, 700.0, m.Logistics)
	assert.Equal(t, 400.0, m.Ads)
	assert.Equal(t, 50.0, m.OtherServices)
}

func TestComputeMetrics_OrderPartition(t *testing.T) {
	input := MetricsInput{
		Orders: []*domain.Order{
			{TotalPrice: 100, Quantity: 1},
			{TotalPrice: 200, Quantity: 2},
			{TotalPrice: 50, Quantity: 1, IsCancel: true},
		},
	}

	m := ComputeMetrics(input, taxRate)

	assert.Equal(t, 300.0, m.OrdersRevenue)
	assert.Equal(t, 3, m.OrdersCount)
	assert.Equal(t, 50.0, m.CancelledRevenue)
	assert.Equal(t, 1, m.CancelledCount)

	// cancelRate = cancelados / (ativos + cancelados)
	assert.InDelta(t, 25.0, m.CancelRate, 1e-9)
	assert.GreaterOrEqual(t, m.CancelRate, 0.0)
	assert.LessOrEqual(t, m.CancelRate, 100.0)
}

func TestComputeMetrics_CancelRateZeroWithoutOrders(t *testing.T) {
	m := ComputeMetrics(MetricsInput{}, taxRate)

	assert.Equal(t, 0.0, m.CancelRate)
}

func TestComputeMetrics_OrderIndependent(t *testing.T) {
	sales := []*domain.Sale{
		{NmID: 1, PriceWithDisc: 100, ForPay: 80, Quantity: 1},
		{NmID: 2, PriceWithDisc: 250, ForPay: 200, Quantity: 2},
		{NmID: 3, PriceWithDisc: 50, Quantity: 1, IsReturn: true},
		{NmID: 1, PriceWithDisc: 120, ForPay: 95, Quantity: 1},
	}

	expected := ComputeMetrics(MetricsInput{Sales: sales}, taxRate)

	shuffled := make([]*domain.Sale, len(sales))
	copy(shuffled, sales)
	rand.New(rand.NewSource(42)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	got := ComputeMetrics(MetricsInput{Sales: shuffled}, taxRate)

	assert.Equal(t, expected, got)
}

func TestComputeMetrics_Waterfall(t *testing.T) {
	input := MetricsInput{
		Sales: []*domain.Sale{
			{NmID: 7, PriceWithDisc: 10000, ForPay: 8000, Quantity: 2},
		},
		Costs: []*domain.Cost{
			{NmID: 7, Cost: 1000},
		},
		Financials: []*domain.FinancialLine{
			{DeliveryAmount: 500, StorageAmount: 200, Penalty: 100, AdditionalPayment: 50},
		},
		Campaigns: []*domain.Campaign{
			{Spent: 300},
		},
	}

	m := ComputeMetrics(input, taxRate)

	// receita 10000, cmv 2000, lucro bruto 8000
	assert.Equal(t, 10000.0, m.Revenue)
	assert.Equal(t, 2000.0, m.Cogs)
	assert.Equal(t, 8000.0, m.GrossProfit)

	// comissão = 10000 - 8000 - 500 = 1500
	assert.Equal(t, 1500.0, m.Commission)

	// totalExpenses = 1500 + 500 + 200 + 300 + 100 - 50 = 2550
	assert.Equal(t, 2550.0, m.TotalExpenses)

	// marginal = 8000 - 2550 = 5450; imposto = 600; lucro = 4850
	assert.Equal(t, 5450.0, m.MarginalProfit)
	assert.InDelta(t, 600.0, m.Tax, 1e-9)
	assert.InDelta(t, 4850.0, m.Profit, 1e-9)

	// roi = lucro / cmv * 100
	assert.InDelta(t, 242.5, m.ROI, 1e-9)
	assert.Equal(t, 6.0, m.TaxPercent)
}

func TestComputeMetrics_ROIZeroWithoutCogs(t *testing.T) {
	input := MetricsInput{
		Sales: []*domain.Sale{
			{PriceWithDisc: 1000, ForPay: 900, Quantity: 1},
		},
	}

	m := ComputeMetrics(input, taxRate)

	assert.Equal(t, 0.0, m.Cogs)
	assert.Equal(t, 0.0, m.ROI)
}

func TestComputeMetrics_CogsIgnoresReturns(t *testing.T) {
	input := MetricsInput{
		Sales: []*domain.Sale{
			{NmID: 1, PriceWithDisc: 500, Quantity: 1},
			{NmID: 1, PriceWithDisc: 500, Quantity: 1, IsReturn: true},
		},
		Costs: []*domain.Cost{
			{NmID: 1, Cost: 200},
		},
	}

	m := ComputeMetrics(input, taxRate)

	// O CMV considera só as vendas, não as devoluções
	assert.Equal(t, 200.0, m.Cogs)
}

func TestComputeMetrics_Rates(t *testing.T) {
	input := MetricsInput{
		Orders: []*domain.Order{
			{TotalPrice: 100, Quantity: 6},
		},
		Sales: []*domain.Sale{
			{NmID: 1, PriceWithDisc: 400, Quantity: 4},
			{NmID: 1, PriceWithDisc: 100, Quantity: 2, IsReturn: true},
		},
	}

	m := ComputeMetrics(input, taxRate)

	// returnRate = devoluções / vendas
	assert.InDelta(t, 50.0, m.ReturnRate, 1e-9)

	// buyoutRate = vendas / (pedidos ativos + devoluções)
	assert.Equal(t, 4, m.BuyoutsCount)
	assert.InDelta(t, 50.0, m.BuyoutRate, 1e-9)

	// avgCheck usa só a receita de vendas
	assert.InDelta(t, 100.0, m.AvgCheck, 1e-9)
}
