package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	wbmocks "github.com/vfg2006/marketplace-analytics-api/infrastructure/integrator/wildberries/mocks"
	repomocks "github.com/vfg2006/marketplace-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketplace-analytics-api/internal/config"
	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type syncTestMocks struct {
	accountRepo       *repomocks.MockAccountRepository
	orderRepo         *repomocks.MockOrderRepository
	saleRepo          *repomocks.MockSaleRepository
	stockRepo         *repomocks.MockStockRepository
	financialLineRepo *repomocks.MockFinancialLineRepository
	campaignRepo      *repomocks.MockCampaignRepository
	syncLogRepo       *repomocks.MockSyncLogRepository
	integrator        *wbmocks.MockIntegrator
}

func newSyncService(t *testing.T) (*WBSyncService, *syncTestMocks) {
	ctrl := gomock.NewController(t)

	m := &syncTestMocks{
		accountRepo:       repomocks.NewMockAccountRepository(ctrl),
		orderRepo:         repomocks.NewMockOrderRepository(ctrl),
		saleRepo:          repomocks.NewMockSaleRepository(ctrl),
		stockRepo:         repomocks.NewMockStockRepository(ctrl),
		financialLineRepo: repomocks.NewMockFinancialLineRepository(ctrl),
		campaignRepo:      repomocks.NewMockCampaignRepository(ctrl),
		syncLogRepo:       repomocks.NewMockSyncLogRepository(ctrl),
		integrator:        wbmocks.NewMockIntegrator(ctrl),
	}

	cfg := &config.Config{
		Sync: config.Sync{
			CronSchedule:           "0 */6 * * *",
			OrdersLookbackDays:     30,
			FinancialsLookbackDays: 90,
			Enabled:                true,
		},
	}

	service := NewWBSyncService(
		m.accountRepo,
		m.orderRepo,
		m.saleRepo,
		m.stockRepo,
		m.financialLineRepo,
		m.campaignRepo,
		m.syncLogRepo,
		m.integrator,
		cfg,
	)

	return service, m
}

func TestSyncAccount_AllPhasesSucceed(t *testing.T) {
	service, m := newSyncService(t)
	ctx := context.Background()

	acc := &domain.Account{ID: "abc123", Name: "Loja Teste", APIKey: "chave"}

	orders := []*domain.Order{{OrderID: "o1"}}
	sales := []*domain.Sale{{SaleID: "s1"}}
	stocks := []*domain.Stock{{NmID: 7}}
	campaigns := []*domain.Campaign{{CampaignID: 1}}

	m.integrator.EXPECT().FetchOrders(ctx, "chave", "abc123", gomock.Any()).Return(orders, nil)
	m.orderRepo.EXPECT().SaveOrUpdateBatch(orders).Return(1, nil)

	m.integrator.EXPECT().FetchSales(ctx, "chave", "abc123", gomock.Any()).Return(sales, nil)
	m.saleRepo.EXPECT().SaveOrUpdateBatch(sales).Return(1, nil)

	m.integrator.EXPECT().FetchStocks(ctx, "chave", "abc123", gomock.Any()).Return(stocks, nil)
	m.stockRepo.EXPECT().Replace(ctx, "abc123", stocks).Return(1, nil)

	m.integrator.EXPECT().
		FetchFinancialReport(ctx, "chave", "abc123", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _, _ string, handlePage func([]*domain.FinancialLine) error) (int, error) {
			lines := []*domain.FinancialLine{{ReportID: 9}}
			m.financialLineRepo.EXPECT().SaveOrUpdateBatch(lines).Return(1, nil)
			return 1, handlePage(lines)
		})

	m.integrator.EXPECT().FetchCampaigns(ctx, "chave", "abc123").Return(campaigns, nil)
	m.campaignRepo.EXPECT().SaveOrUpdateBatch(campaigns).Return(1, nil)

	var entries []*domain.SyncLogEntry
	m.syncLogRepo.EXPECT().Append(gomock.Any()).Times(5).
		DoAndReturn(func(entry *domain.SyncLogEntry) error {
			entries = append(entries, entry)
			return nil
		})

	m.accountRepo.EXPECT().UpdateLastSync("abc123", gomock.Any()).Return(nil)

	service.SyncAccount(ctx, acc)

	require.Len(t, entries, 5)
	expectedOrder := []string{
		domain.SyncEndpointOrders,
		domain.SyncEndpointSales,
		domain.SyncEndpointStocks,
		domain.SyncEndpointFinancials,
		domain.SyncEndpointCampaigns,
	}
	for i, entry := range entries {
		assert.Equal(t, expectedOrder[i], entry.Endpoint)
		assert.Equal(t, domain.SyncStatusOK, entry.Status)
		assert.Equal(t, 1, entry.Count)
		assert.Empty(t, entry.Error)
	}
}

func TestSyncAccount_PhaseFailureDoesNotStopOthers(t *testing.T) {
	service, m := newSyncService(t)
	ctx := context.Background()

	acc := &domain.Account{ID: "abc123", Name: "Loja Teste", APIKey: "chave"}

	// A fase de pedidos falha; as quatro seguintes rodam normalmente
	m.integrator.EXPECT().
		FetchOrders(ctx, "chave", "abc123", gomock.Any()).
		Return(nil, errors.New("HTTP 401: chave expirada"))

	m.integrator.EXPECT().FetchSales(ctx, "chave", "abc123", gomock.Any()).Return(nil, nil)
	m.saleRepo.EXPECT().SaveOrUpdateBatch(gomock.Any()).Return(0, nil)

	m.integrator.EXPECT().FetchStocks(ctx, "chave", "abc123", gomock.Any()).Return(nil, nil)
	m.stockRepo.EXPECT().Replace(ctx, "abc123", gomock.Any()).Return(0, nil)

	m.integrator.EXPECT().
		FetchFinancialReport(ctx, "chave", "abc123", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0, nil)

	m.integrator.EXPECT().FetchCampaigns(ctx, "chave", "abc123").Return(nil, nil)
	m.campaignRepo.EXPECT().SaveOrUpdateBatch(gomock.Any()).Return(0, nil)

	var entries []*domain.SyncLogEntry
	m.syncLogRepo.EXPECT().Append(gomock.Any()).Times(5).
		DoAndReturn(func(entry *domain.SyncLogEntry) error {
			entries = append(entries, entry)
			return nil
		})

	// O horário da última sincronização é registrado mesmo com fase falhando
	m.accountRepo.EXPECT().UpdateLastSync("abc123", gomock.Any()).Return(nil)

	service.SyncAccount(ctx, acc)

	require.Len(t, entries, 5)
	assert.Equal(t, domain.SyncStatusError, entries[0].Status)
	assert.Contains(t, entries[0].Error, "erro ao buscar pedidos")
	for _, entry := range entries[1:] {
		assert.Equal(t, domain.SyncStatusOK, entry.Status)
	}
}

func TestSyncAccount_StocksShareOrdersLookback(t *testing.T) {
	service, m := newSyncService(t)
	ctx := context.Background()

	acc := &domain.Account{ID: "abc123", Name: "Loja Teste", APIKey: "chave"}

	var ordersFrom, salesFrom, stocksFrom string

	m.integrator.EXPECT().FetchOrders(ctx, "chave", "abc123", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, dateFrom string) ([]*domain.Order, error) {
			ordersFrom = dateFrom
			return nil, nil
		})
	m.orderRepo.EXPECT().SaveOrUpdateBatch(gomock.Any()).Return(0, nil)

	m.integrator.EXPECT().FetchSales(ctx, "chave", "abc123", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, dateFrom string) ([]*domain.Sale, error) {
			salesFrom = dateFrom
			return nil, nil
		})
	m.saleRepo.EXPECT().SaveOrUpdateBatch(gomock.Any()).Return(0, nil)

	m.integrator.EXPECT().FetchStocks(ctx, "chave", "abc123", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, dateFrom string) ([]*domain.Stock, error) {
			stocksFrom = dateFrom
			return nil, nil
		})
	m.stockRepo.EXPECT().Replace(ctx, "abc123", gomock.Any()).Return(0, nil)

	m.integrator.EXPECT().
		FetchFinancialReport(ctx, "chave", "abc123", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0, nil)

	m.integrator.EXPECT().FetchCampaigns(ctx, "chave", "abc123").Return(nil, nil)
	m.campaignRepo.EXPECT().SaveOrUpdateBatch(gomock.Any()).Return(0, nil)

	m.syncLogRepo.EXPECT().Append(gomock.Any()).Times(5).Return(nil)
	m.accountRepo.EXPECT().UpdateLastSync("abc123", gomock.Any()).Return(nil)

	service.SyncAccount(ctx, acc)

	// Pedidos, vendas e estoque compartilham a mesma janela de retrovisão
	assert.Equal(t, ordersFrom, salesFrom)
	assert.Equal(t, ordersFrom, stocksFrom)
	assert.NotEmpty(t, ordersFrom)
}

func TestSyncAllAccounts_SkipsAccountsWithoutAPIKey(t *testing.T) {
	service, m := newSyncService(t)
	ctx := context.Background()

	withKey := &domain.Account{ID: "abc123", Name: "Com Chave", APIKey: "chave"}
	withoutKey := &domain.Account{ID: "def456", Name: "Sem Chave"}

	m.accountRepo.EXPECT().ListActive().Return([]*domain.Account{withoutKey, withKey}, nil)

	// Só a conta com chave passa pelas fases
	m.integrator.EXPECT().FetchOrders(ctx, "chave", "abc123", gomock.Any()).Return(nil, nil)
	m.orderRepo.EXPECT().SaveOrUpdateBatch(gomock.Any()).Return(0, nil)
	m.integrator.EXPECT().FetchSales(ctx, "chave", "abc123", gomock.Any()).Return(nil, nil)
	m.saleRepo.EXPECT().SaveOrUpdateBatch(gomock.Any()).Return(0, nil)
	m.integrator.EXPECT().FetchStocks(ctx, "chave", "abc123", gomock.Any()).Return(nil, nil)
	m.stockRepo.EXPECT().Replace(ctx, "abc123", gomock.Any()).Return(0, nil)
	m.integrator.EXPECT().
		FetchFinancialReport(ctx, "chave", "abc123", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0, nil)
	m.integrator.EXPECT().FetchCampaigns(ctx, "chave", "abc123").Return(nil, nil)
	m.campaignRepo.EXPECT().SaveOrUpdateBatch(gomock.Any()).Return(0, nil)

	m.syncLogRepo.EXPECT().Append(gomock.Any()).Times(5).Return(nil)
	m.accountRepo.EXPECT().UpdateLastSync("abc123", gomock.Any()).Return(nil)

	service.syncAllAccounts(ctx)
}

func TestSyncAllAccounts_NoActiveAccounts(t *testing.T) {
	service, m := newSyncService(t)

	m.accountRepo.EXPECT().ListActive().Return(nil, nil)

	service.syncAllAccounts(context.Background())
}

func TestTriggerAccountSync_AccountNotFound(t *testing.T) {
	service, m := newSyncService(t)

	m.accountRepo.EXPECT().GetByID("zzz999").Return(nil, nil)

	err := service.TriggerAccountSync("zzz999")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "não encontrada")
}

func TestGetStatus(t *testing.T) {
	service, _ := newSyncService(t)

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 */6 * * *", status["sync_cron"])
	assert.Equal(t, 30, status["orders_lookback_days"])
	assert.Equal(t, 90, status["financials_lookback_days"])
}
