package dashboarding

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-analytics-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-analytics-api/internal/config"
	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
	"github.com/vfg2006/marketplace-analytics-api/internal/usecases/account"
	"github.com/vfg2006/marketplace-analytics-api/pkg/utils"
)

// Dasher expõe as consultas analíticas servidas pela API
type Dasher interface {
	// GetDashboard calcula os KPIs da janela informada, junto com o snapshot
	// do período anterior de mesma duração e as variações entre os dois
	GetDashboard(accountID string, filters *domain.PeriodFilters) (*domain.DashboardResponse, error)

	// GetReportSummaries agrega as linhas financeiras da janela por relatório
	GetReportSummaries(accountID string, filters *domain.PeriodFilters) ([]*domain.ReportSummary, error)

	// GetWeeklySummaries agrega as linhas financeiras da janela por semana ISO
	GetWeeklySummaries(accountID string, filters *domain.PeriodFilters) ([]*domain.WeekSummary, error)

	// GetStocks retorna o snapshot de estoque atual da conta
	GetStocks(accountID string) ([]*domain.Stock, error)
}

type Service struct {
	cfg                     *config.Config
	accountRepository       repository.AccountRepository
	orderRepository         repository.OrderRepository
	saleRepository          repository.SaleRepository
	financialLineRepository repository.FinancialLineRepository
	costRepository          repository.CostRepository
	campaignRepository      repository.CampaignRepository
	stockRepository         repository.StockRepository
}

func NewService(
	cfg *config.Config,
	accountRepo repository.AccountRepository,
	orderRepo repository.OrderRepository,
	saleRepo repository.SaleRepository,
	financialLineRepo repository.FinancialLineRepository,
	costRepo repository.CostRepository,
	campaignRepo repository.CampaignRepository,
	stockRepo repository.StockRepository,
) Dasher {
	return &Service{
		cfg:                     cfg,
		accountRepository:       accountRepo,
		orderRepository:         orderRepo,
		saleRepository:          saleRepo,
		financialLineRepository: financialLineRepo,
		costRepository:          costRepo,
		campaignRepository:      campaignRepo,
		stockRepository:         stockRepo,
	}
}

func (s *Service) GetDashboard(accountID string, filters *domain.PeriodFilters) (*domain.DashboardResponse, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, fmt.Errorf("é necessário informar as datas de início e fim")
	}

	acc, err := s.accountRepository.GetByID(accountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar a conta: %w", err)
	}

	if acc == nil {
		return nil, account.ErrAccountNotFound
	}

	current, err := s.computeWindow(accountID, *filters.StartDate, *filters.EndDate)
	if err != nil {
		return nil, err
	}

	// Janela anterior de mesma duração, terminando um dia antes do início
	// da janela atual
	duration := filters.EndDate.Sub(*filters.StartDate)
	prevEnd := filters.StartDate.AddDate(0, 0, -1)
	prevStart := prevEnd.Add(-duration)

	previous, err := s.computeWindow(accountID, prevStart, prevEnd)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).
			Warn("Erro ao calcular o período anterior, seguindo sem comparação")
		previous = nil
	}

	response := &domain.DashboardResponse{
		Current: current,
		Filters: filters,
	}

	if previous != nil {
		response.Previous = previous
		response.Deltas = computeDeltas(current, previous)
	}

	return response, nil
}

func (s *Service) GetReportSummaries(accountID string, filters *domain.PeriodFilters) ([]*domain.ReportSummary, error) {
	lines, err := s.financialLines(accountID, filters)
	if err != nil {
		return nil, err
	}

	return GroupByReport(lines), nil
}

func (s *Service) GetWeeklySummaries(accountID string, filters *domain.PeriodFilters) ([]*domain.WeekSummary, error) {
	lines, err := s.financialLines(accountID, filters)
	if err != nil {
		return nil, err
	}

	return GroupByWeek(lines), nil
}

func (s *Service) GetStocks(accountID string) ([]*domain.Stock, error) {
	acc, err := s.accountRepository.GetByID(accountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar a conta: %w", err)
	}

	if acc == nil {
		return nil, account.ErrAccountNotFound
	}

	return s.stockRepository.ListByAccount(accountID)
}

// computeWindow carrega os registros brutos da janela e delega o cálculo ao
// motor de métricas
func (s *Service) computeWindow(accountID string, start, end time.Time) (*domain.DashboardMetrics, error) {
	startDate := start.Format(time.DateOnly)
	endDate := end.Format(time.DateOnly)

	orders, err := s.orderRepository.ListByPeriod(accountID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar os pedidos: %w", err)
	}

	sales, err := s.saleRepository.ListByPeriod(accountID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar as vendas: %w", err)
	}

	financials, err := s.financialLineRepository.ListByPeriod(accountID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar as linhas financeiras: %w", err)
	}

	costs, err := s.costRepository.ListByAccount(accountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar os custos: %w", err)
	}

	// Só as campanhas tocadas dentro da janela entram no gasto de anúncios
	campaigns, err := s.campaignRepository.ListByPeriod(accountID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar as campanhas: %w", err)
	}

	input := MetricsInput{
		Orders:     orders,
		Sales:      sales,
		Financials: financials,
		Costs:      costs,
		Campaigns:  campaigns,
	}

	return ComputeMetrics(input, s.cfg.Metrics.TaxRate), nil
}

func (s *Service) financialLines(accountID string, filters *domain.PeriodFilters) ([]*domain.FinancialLine, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, fmt.Errorf("é necessário informar as datas de início e fim")
	}

	acc, err := s.accountRepository.GetByID(accountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar a conta: %w", err)
	}

	if acc == nil {
		return nil, account.ErrAccountNotFound
	}

	return s.financialLineRepository.ListByPeriod(
		accountID,
		filters.StartDate.Format(time.DateOnly),
		filters.EndDate.Format(time.DateOnly),
	)
}

// computeDeltas calcula a variação percentual dos principais KPIs entre os
// dois períodos. O cálculo fica fora do motor de métricas para que ele
// permaneça uma função pura de uma única janela.
func computeDeltas(current, previous *domain.DashboardMetrics) map[string]float64 {
	pairs := []struct {
		key      string
		now      float64
		previous float64
	}{
		{"ordersRevenue", current.OrdersRevenue, previous.OrdersRevenue},
		{"ordersCount", float64(current.OrdersCount), float64(previous.OrdersCount)},
		{"cancelledRevenue", current.CancelledRevenue, previous.CancelledRevenue},
		{"cancelledCount", float64(current.CancelledCount), float64(previous.CancelledCount)},
		{"cancelRate", current.CancelRate, previous.CancelRate},
		{"salesRevenue", current.SalesRevenue, previous.SalesRevenue},
		{"returnsRevenue", current.ReturnsRevenue, previous.ReturnsRevenue},
		{"revenue", current.Revenue, previous.Revenue},
		{"avgCheck", current.AvgCheck, previous.AvgCheck},
		{"salesCount", float64(current.SalesCount), float64(previous.SalesCount)},
		{"returnsCount", float64(current.ReturnsCount), float64(previous.ReturnsCount)},
		{"returnRate", current.ReturnRate, previous.ReturnRate},
		{"buyoutsCount", float64(current.BuyoutsCount), float64(previous.BuyoutsCount)},
		{"buyoutRate", current.BuyoutRate, previous.BuyoutRate},
		{"cogs", current.Cogs, previous.Cogs},
		{"grossProfit", current.GrossProfit, previous.GrossProfit},
		{"commission", current.Commission, previous.Commission},
		{"logistics", current.Logistics, previous.Logistics},
		{"storage", current.Storage, previous.Storage},
		{"ads", current.Ads, previous.Ads},
		{"otherServices", current.OtherServices, previous.OtherServices},
		{"compensation", current.Compensation, previous.Compensation},
		{"totalExpenses", current.TotalExpenses, previous.TotalExpenses},
		{"marginalProfit", current.MarginalProfit, previous.MarginalProfit},
		{"tax", current.Tax, previous.Tax},
		{"profit", current.Profit, previous.Profit},
		{"roi", current.ROI, previous.ROI},
	}

	deltas := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		deltas[pair.key] = utils.PercentChange(pair.now, pair.previous)
	}

	return deltas
}
