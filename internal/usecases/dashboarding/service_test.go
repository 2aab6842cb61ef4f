package dashboarding

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketplace-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketplace-analytics-api/internal/config"
	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
	"github.com/vfg2006/marketplace-analytics-api/internal/usecases/account"
	"go.uber.org/mock/gomock"
)

type dashTestMocks struct {
	accountRepo       *mocks.MockAccountRepository
	orderRepo         *mocks.MockOrderRepository
	saleRepo          *mocks.MockSaleRepository
	financialLineRepo *mocks.MockFinancialLineRepository
	costRepo          *mocks.MockCostRepository
	campaignRepo      *mocks.MockCampaignRepository
	stockRepo         *mocks.MockStockRepository
}

func newDashService(t *testing.T) (Dasher, *dashTestMocks) {
	ctrl := gomock.NewController(t)

	m := &dashTestMocks{
		accountRepo:       mocks.NewMockAccountRepository(ctrl),
		orderRepo:         mocks.NewMockOrderRepository(ctrl),
		saleRepo:          mocks.NewMockSaleRepository(ctrl),
		financialLineRepo: mocks.NewMockFinancialLineRepository(ctrl),
		costRepo:          mocks.NewMockCostRepository(ctrl),
		campaignRepo:      mocks.NewMockCampaignRepository(ctrl),
		stockRepo:         mocks.NewMockStockRepository(ctrl),
	}

	cfg := &config.Config{
		Metrics: config.Metrics{TaxRate: 0.06},
	}

	service := NewService(
		cfg,
		m.accountRepo,
		m.orderRepo,
		m.saleRepo,
		m.financialLineRepo,
		m.costRepo,
		m.campaignRepo,
		m.stockRepo,
	)

	return service, m
}

func periodFilters(start, end string) *domain.PeriodFilters {
	startDate, _ := time.Parse(time.DateOnly, start)
	endDate, _ := time.Parse(time.DateOnly, end)
	return &domain.PeriodFilters{StartDate: &startDate, EndDate: &endDate}
}

func (m *dashTestMocks) expectWindow(accountID, start, end string, sales []*domain.Sale) {
	m.orderRepo.EXPECT().ListByPeriod(accountID, start, end).Return(nil, nil)
	m.saleRepo.EXPECT().ListByPeriod(accountID, start, end).Return(sales, nil)
	m.financialLineRepo.EXPECT().ListByPeriod(accountID, start, end).Return(nil, nil)
	m.costRepo.EXPECT().ListByAccount(accountID).Return(nil, nil)
	m.campaignRepo.EXPECT().ListByPeriod(accountID, start, end).Return(nil, nil)
}

func TestGetDashboard(t *testing.T) {
	service, m := newDashService(t)

	m.accountRepo.EXPECT().GetByID("abc123").Return(&domain.Account{ID: "abc123"}, nil)

	// Janela atual de 7 dias e, para comparação, os 7 dias imediatamente
	// anteriores
	m.expectWindow("abc123", "2025-02-08", "2025-02-14", []*domain.Sale{
		{PriceWithDisc: 2000, Quantity: 1},
	})
	m.expectWindow("abc123", "2025-02-01", "2025-02-07", []*domain.Sale{
		{PriceWithDisc: 1000, Quantity: 1},
	})

	response, err := service.GetDashboard("abc123", periodFilters("2025-02-08", "2025-02-14"))

	require.NoError(t, err)
	require.NotNil(t, response.Current)
	require.NotNil(t, response.Previous)
	assert.Equal(t, 2000.0, response.Current.Revenue)
	assert.Equal(t, 1000.0, response.Previous.Revenue)
	assert.Equal(t, 100.0, response.Deltas["revenue"])
}

func TestGetDashboard_AdsScopedToWindow(t *testing.T) {
	service, m := newDashService(t)

	m.accountRepo.EXPECT().GetByID("abc123").Return(&domain.Account{ID: "abc123"}, nil)

	// A janela atual tem uma campanha ativa; a anterior, nenhuma. O gasto e
	// a variação de anúncios refletem cada janela, não o acumulado da conta.
	m.orderRepo.EXPECT().ListByPeriod("abc123", "2025-02-08", "2025-02-14").Return(nil, nil)
	m.saleRepo.EXPECT().ListByPeriod("abc123", "2025-02-08", "2025-02-14").Return(nil, nil)
	m.financialLineRepo.EXPECT().ListByPeriod("abc123", "2025-02-08", "2025-02-14").Return(nil, nil)
	m.costRepo.EXPECT().ListByAccount("abc123").Return(nil, nil)
	m.campaignRepo.EXPECT().ListByPeriod("abc123", "2025-02-08", "2025-02-14").
		Return([]*domain.Campaign{{CampaignID: 1, Spent: 400}}, nil)

	m.orderRepo.EXPECT().ListByPeriod("abc123", "2025-02-01", "2025-02-07").Return(nil, nil)
	m.saleRepo.EXPECT().ListByPeriod("abc123", "2025-02-01", "2025-02-07").Return(nil, nil)
	m.financialLineRepo.EXPECT().ListByPeriod("abc123", "2025-02-01", "2025-02-07").Return(nil, nil)
	m.costRepo.EXPECT().ListByAccount("abc123").Return(nil, nil)
	m.campaignRepo.EXPECT().ListByPeriod("abc123", "2025-02-01", "2025-02-07").Return(nil, nil)

	response, err := service.GetDashboard("abc123", periodFilters("2025-02-08", "2025-02-14"))

	require.NoError(t, err)
	assert.Equal(t, 400.0, response.Current.Ads)
	assert.Equal(t, 0.0, response.Previous.Ads)
	assert.Equal(t, 100.0, response.Deltas["ads"])
}

func TestGetDashboard_PreviousWindowFailure(t *testing.T) {
	service, m := newDashService(t)

	m.accountRepo.EXPECT().GetByID("abc123").Return(&domain.Account{ID: "abc123"}, nil)

	m.expectWindow("abc123", "2025-02-08", "2025-02-14", []*domain.Sale{
		{PriceWithDisc: 2000, Quantity: 1},
	})

	// O período anterior falha: o dashboard sai sem comparação
	m.orderRepo.EXPECT().ListByPeriod("abc123", "2025-02-01", "2025-02-07").
		Return(nil, errors.New("conexão recusada"))

	response, err := service.GetDashboard("abc123", periodFilters("2025-02-08", "2025-02-14"))

	require.NoError(t, err)
	require.NotNil(t, response.Current)
	assert.Nil(t, response.Previous)
	assert.Nil(t, response.Deltas)
}

func TestGetDashboard_AccountNotFound(t *testing.T) {
	service, m := newDashService(t)

	m.accountRepo.EXPECT().GetByID("zzz999").Return(nil, nil)

	_, err := service.GetDashboard("zzz999", periodFilters("2025-02-08", "2025-02-14"))

	require.ErrorIs(t, err, account.ErrAccountNotFound)
}

func TestGetDashboard_MissingFilters(t *testing.T) {
	service, _ := newDashService(t)

	_, err := service.GetDashboard("abc123", nil)

	require.Error(t, err)
}

func TestGetReportSummaries(t *testing.T) {
	service, m := newDashService(t)

	m.accountRepo.EXPECT().GetByID("abc123").Return(&domain.Account{ID: "abc123"}, nil)
	m.financialLineRepo.EXPECT().ListByPeriod("abc123", "2025-01-01", "2025-01-31").
		Return([]*domain.FinancialLine{
			{ReportID: 9, DateFrom: "2025-01-06", DocTypeName: domain.DocTypeSale, RetailAmount: 100},
		}, nil)

	summaries, err := service.GetReportSummaries("abc123", periodFilters("2025-01-01", "2025-01-31"))

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(9), summaries[0].ReportID)
	assert.Equal(t, 100.0, summaries[0].Revenue)
}

func TestGetStocks(t *testing.T) {
	service, m := newDashService(t)

	m.accountRepo.EXPECT().GetByID("abc123").Return(&domain.Account{ID: "abc123"}, nil)

	stocks := []*domain.Stock{{AccountID: "abc123", NmID: 7, Quantity: 3}}
	m.stockRepo.EXPECT().ListByAccount("abc123").Return(stocks, nil)

	got, err := service.GetStocks("abc123")

	require.NoError(t, err)
	assert.Equal(t, stocks, got)
}
