package dashboarding

import (
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
)

// GroupByReport agrega as linhas financeiras por relatório de realização,
// ordenando do período mais recente para o mais antigo
func GroupByReport(lines []*domain.FinancialLine) []*domain.ReportSummary {
	byReport := make(map[int64]*domain.ReportSummary)

	for _, line := range lines {
		summary, ok := byReport[line.ReportID]
		if !ok {
			summary = &domain.ReportSummary{
				ReportID: line.ReportID,
				DateFrom: line.DateFrom,
				DateTo:   line.DateTo,
			}
			byReport[line.ReportID] = summary
		}

		switch line.DocTypeName {
		case domain.DocTypeSale:
			summary.SalesRevenue += line.RetailAmount
			summary.SalesCount++
		case domain.DocTypeReturn:
			summary.ReturnsRevenue += line.RetailAmount
			summary.ReturnsCount++
		}

		summary.ForPay += line.PpvzForPay
		summary.Logistics += line.DeliveryAmount
		summary.Storage += line.StorageAmount
		summary.Penalty += line.Penalty
		summary.Compensation += line.AdditionalPayment
	}

	summaries := make([]*domain.ReportSummary, 0, len(byReport))
	for _, summary := range byReport {
		summary.Revenue = summary.SalesRevenue - summary.ReturnsRevenue
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].DateFrom > summaries[j].DateFrom
	})

	return summaries
}

// GroupByWeek agrega as linhas financeiras por semana ISO (segunda-feira como
// início), usando a data de início do período de cada linha. As chaves têm o
// formato YYYY-Www e o resultado vem da semana mais recente para a mais antiga
func GroupByWeek(lines []*domain.FinancialLine) []*domain.WeekSummary {
	byWeek := make(map[string]*domain.WeekSummary)

	for _, line := range lines {
		key := isoWeekKey(line.DateFrom)

		summary, ok := byWeek[key]
		if !ok {
			summary = &domain.WeekSummary{Week: key}
			byWeek[key] = summary
		}

		switch line.DocTypeName {
		case domain.DocTypeSale:
			summary.SalesRevenue += line.RetailAmount
			summary.SalesCount++
		case domain.DocTypeReturn:
			summary.ReturnsRevenue += line.RetailAmount
			summary.ReturnsCount++
		}

		summary.ForPay += line.PpvzForPay
		summary.Logistics += line.DeliveryAmount
	}

	summaries := make([]*domain.WeekSummary, 0, len(byWeek))
	for _, summary := range byWeek {
		summary.Revenue = summary.SalesRevenue - summary.ReturnsRevenue
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Week > summaries[j].Week
	})

	return summaries
}

// isoWeekKey retorna a chave YYYY-Www da semana ISO da data informada.
// Datas inválidas caem em uma chave própria para não contaminar as semanas
func isoWeekKey(date string) string {
	parsed, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return "0000-W00"
	}

	year, week := parsed.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
