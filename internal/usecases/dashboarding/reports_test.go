package dashboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
)

func TestGroupByReport(t *testing.T) {
	lines := []*domain.FinancialLine{
		{
			ReportID:       10,
			DateFrom:       "2025-01-06",
			DateTo:         "2025-01-12",
			DocTypeName:    domain.DocTypeSale,
			RetailAmount:   1000,
			PpvzForPay:     800,
			DeliveryAmount: 50,
			StorageAmount:  10,
		},
		{
			ReportID:       10,
			DateFrom:       "2025-01-06",
			DateTo:         "2025-01-12",
			DocTypeName:    domain.DocTypeReturn,
			RetailAmount:   200,
			PpvzForPay:     -160,
			DeliveryAmount: 25,
			Penalty:        5,
		},
		{
			ReportID:          20,
			DateFrom:          "2025-01-13",
			DateTo:            "2025-01-19",
			DocTypeName:       domain.DocTypeSale,
			RetailAmount:      3000,
			PpvzForPay:        2400,
			DeliveryAmount:    100,
			AdditionalPayment: 30,
		},
	}

	summaries := GroupByReport(lines)
	require.Len(t, summaries, 2)

	// Relatório mais recente primeiro
	recent := summaries[0]
	assert.Equal(t, int64(20), recent.ReportID)
	assert.Equal(t, "2025-01-13", recent.DateFrom)
	assert.Equal(t, 3000.0, recent.SalesRevenue)
	assert.Equal(t, 3000.0, recent.Revenue)
	assert.Equal(t, 30.0, recent.Compensation)
	assert.Equal(t, 1, recent.SalesCount)

	older := summaries[1]
	assert.Equal(t, int64(10), older.ReportID)
	assert.Equal(t, 1000.0, older.SalesRevenue)
	assert.Equal(t, 200.0, older.ReturnsRevenue)
	assert.Equal(t, 800.0, older.Revenue)
	assert.Equal(t, 640.0, older.ForPay)
	assert.Equal(t, 75.0, older.Logistics)
	assert.Equal(t, 5.0, older.Penalty)
	assert.Equal(t, 1, older.SalesCount)
	assert.Equal(t, 1, older.ReturnsCount)
}

func TestGroupByReport_Empty(t *testing.T) {
	assert.Empty(t, GroupByReport(nil))
}

func TestGroupByWeek(t *testing.T) {
	lines := []*domain.FinancialLine{
		// Segunda e domingo da mesma semana ISO
		{DateFrom: "2025-01-06", DocTypeName: domain.DocTypeSale, RetailAmount: 100, PpvzForPay: 80, DeliveryAmount: 5},
		{DateFrom: "2025-01-12", DocTypeName: domain.DocTypeSale, RetailAmount: 200, PpvzForPay: 160, DeliveryAmount: 10},
		// Segunda da semana seguinte
		{DateFrom: "2025-01-13", DocTypeName: domain.DocTypeReturn, RetailAmount: 50},
	}

	summaries := GroupByWeek(lines)
	require.Len(t, summaries, 2)

	assert.Equal(t, "2025-W03", summaries[0].Week)
	assert.Equal(t, 50.0, summaries[0].ReturnsRevenue)
	assert.Equal(t, -50.0, summaries[0].Revenue)
	assert.Equal(t, 1, summaries[0].ReturnsCount)

	assert.Equal(t, "2025-W02", summaries[1].Week)
	assert.Equal(t, 300.0, summaries[1].SalesRevenue)
	assert.Equal(t, 240.0, summaries[1].ForPay)
	assert.Equal(t, 15.0, summaries[1].Logistics)
	assert.Equal(t, 2, summaries[1].SalesCount)
}

func TestIsoWeekKey(t *testing.T) {
	tests := []struct {
		date     string
		expected string
	}{
		{"2025-01-06", "2025-W02"},
		{"2025-01-12", "2025-W02"},
		{"2025-01-13", "2025-W03"},
		// 29/12 cai na primeira semana ISO do ano seguinte
		{"2025-12-29", "2026-W01"},
		// 01/01 pode pertencer à última semana do ano anterior
		{"2027-01-01", "2026-W53"},
		{"data inválida", "0000-W00"},
		{"", "0000-W00"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.expected, isoWeekKey(tt.date))
		})
	}
}
