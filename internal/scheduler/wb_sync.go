package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-analytics-api/infrastructure/integrator/wildberries"
	"github.com/vfg2006/marketplace-analytics-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-analytics-api/internal/config"
	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
	"github.com/vfg2006/marketplace-analytics-api/pkg/utils"
)

// WBSyncConfig representa a configuração do agendador de sincronização
type WBSyncConfig struct {
	CronSchedule           string
	OrdersLookbackDays     int
	FinancialsLookbackDays int
	SyncEnabled            bool
}

// WBSyncService gerencia o agendamento e execução da sincronização das contas
// com o marketplace. Cada execução percorre as contas ativas em sequência e,
// para cada conta, roda as cinco fases na ordem fixa: pedidos, vendas,
// estoque, relatório financeiro e campanhas.
type WBSyncService struct {
	scheduler           *gocron.Scheduler
	config              WBSyncConfig
	appConfig           *config.Config
	accountRepo         repository.AccountRepository
	orderRepo           repository.OrderRepository
	saleRepo            repository.SaleRepository
	stockRepo           repository.StockRepository
	financialLineRepo   repository.FinancialLineRepository
	campaignRepo        repository.CampaignRepository
	syncLogRepo         repository.SyncLogRepository
	integrator          wildberries.Integrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewWBSyncService cria uma nova instância do serviço de sincronização
func NewWBSyncService(
	accountRepo repository.AccountRepository,
	orderRepo repository.OrderRepository,
	saleRepo repository.SaleRepository,
	stockRepo repository.StockRepository,
	financialLineRepo repository.FinancialLineRepository,
	campaignRepo repository.CampaignRepository,
	syncLogRepo repository.SyncLogRepository,
	integrator wildberries.Integrator,
	appConfig *config.Config,
) *WBSyncService {
	syncConfig := WBSyncConfig{
		CronSchedule:           appConfig.Sync.CronSchedule,
		OrdersLookbackDays:     appConfig.Sync.OrdersLookbackDays,
		FinancialsLookbackDays: appConfig.Sync.FinancialsLookbackDays,
		SyncEnabled:            appConfig.Sync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":            syncConfig.CronSchedule,
		"orders_lookback_days":     syncConfig.OrdersLookbackDays,
		"financials_lookback_days": syncConfig.FinancialsLookbackDays,
		"sync_enabled":             syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização carregada")

	return &WBSyncService{
		scheduler:         scheduler,
		config:            syncConfig,
		appConfig:         appConfig,
		accountRepo:       accountRepo,
		orderRepo:         orderRepo,
		saleRepo:          saleRepo,
		stockRepo:         stockRepo,
		financialLineRepo: financialLineRepo,
		campaignRepo:      campaignRepo,
		syncLogRepo:       syncLogRepo,
		integrator:        integrator,
		syncRunning:       false,
	}
}

// Start inicia o agendador
func (s *WBSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização com o marketplace desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização com o marketplace")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAccounts(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização com o marketplace: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização com o marketplace")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllAccounts sincroniza todas as contas ativas, uma por vez. O erro de
// uma conta não interrompe as demais.
func (s *WBSyncService) syncAllAccounts(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de todas as contas ativas")

	activeAccounts, err := s.accountRepo.ListActive()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para sincronização")
		return
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para sincronização")
		return
	}

	for _, acc := range activeAccounts {
		if acc.APIKey == "" {
			logrus.WithField("account_id", acc.ID).Warn("Conta sem chave de API. Pulando.")
			continue
		}

		s.SyncAccount(ctx, acc)
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(activeAccounts),
	}).Info("Sincronização de todas as contas concluída")

	s.lastSyncCompletedAt = time.Now()
}

// SyncAccount executa as cinco fases de sincronização de uma conta. Cada fase
// é isolada: a falha de uma gera uma entrada de erro no log e a execução segue
// para a próxima. Ao final, o horário da última sincronização é registrado
// mesmo que alguma fase tenha falhado.
func (s *WBSyncService) SyncAccount(ctx context.Context, acc *domain.Account) {
	logrus.WithFields(logrus.Fields{
		"account_id":   acc.ID,
		"account_name": acc.Name,
	}).Info("Iniciando sincronização da conta")

	phases := []struct {
		endpoint string
		run      func(ctx context.Context, acc *domain.Account) (int, error)
	}{
		{domain.SyncEndpointOrders, s.syncOrders},
		{domain.SyncEndpointSales, s.syncSales},
		{domain.SyncEndpointStocks, s.syncStocks},
		{domain.SyncEndpointFinancials, s.syncFinancials},
		{domain.SyncEndpointCampaigns, s.syncCampaigns},
	}

	for _, phase := range phases {
		count, err := phase.run(ctx, acc)

		entry := &domain.SyncLogEntry{
			AccountID: acc.ID,
			Endpoint:  phase.endpoint,
			Status:    domain.SyncStatusOK,
			Count:     count,
			SyncedAt:  time.Now(),
		}

		if err != nil {
			entry.Status = domain.SyncStatusError
			entry.Error = err.Error()

			logrus.WithFields(logrus.Fields{
				"account_id": acc.ID,
				"endpoint":   phase.endpoint,
				"error":      err.Error(),
			}).Error("Erro na fase de sincronização")
		} else {
			logrus.WithFields(logrus.Fields{
				"account_id": acc.ID,
				"endpoint":   phase.endpoint,
				"count":      count,
			}).Info("Fase de sincronização concluída")
		}

		if err := s.syncLogRepo.Append(entry); err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": acc.ID,
				"endpoint":   phase.endpoint,
				"error":      err.Error(),
			}).Error("Erro ao registrar log de sincronização")
		}
	}

	// O horário marca a tentativa de sincronização, não o sucesso
	if err := s.accountRepo.UpdateLastSync(acc.ID, time.Now()); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": acc.ID,
			"error":      err.Error(),
		}).Error("Erro ao registrar horário da última sincronização")
	}

	logrus.WithField("account_id", acc.ID).Info("Sincronização da conta concluída")
}

func (s *WBSyncService) syncOrders(ctx context.Context, acc *domain.Account) (int, error) {
	dateFrom := utils.DaysAgo(s.config.OrdersLookbackDays)

	orders, err := s.integrator.FetchOrders(ctx, acc.APIKey, acc.ID, dateFrom)
	if err != nil {
		return 0, fmt.Errorf("erro ao buscar pedidos: %w", err)
	}

	count, err := s.orderRepo.SaveOrUpdateBatch(orders)
	if err != nil {
		return count, fmt.Errorf("erro ao salvar pedidos: %w", err)
	}

	return count, nil
}

func (s *WBSyncService) syncSales(ctx context.Context, acc *domain.Account) (int, error) {
	dateFrom := utils.DaysAgo(s.config.OrdersLookbackDays)

	sales, err := s.integrator.FetchSales(ctx, acc.APIKey, acc.ID, dateFrom)
	if err != nil {
		return 0, fmt.Errorf("erro ao buscar vendas: %w", err)
	}

	count, err := s.saleRepo.SaveOrUpdateBatch(sales)
	if err != nil {
		return count, fmt.Errorf("erro ao salvar vendas: %w", err)
	}

	return count, nil
}

func (s *WBSyncService) syncStocks(ctx context.Context, acc *domain.Account) (int, error) {
	// O snapshot de estoque usa a mesma janela curta dos pedidos e vendas
	dateFrom := utils.DaysAgo(s.config.OrdersLookbackDays)

	stocks, err := s.integrator.FetchStocks(ctx, acc.APIKey, acc.ID, dateFrom)
	if err != nil {
		return 0, fmt.Errorf("erro ao buscar estoque: %w", err)
	}

	count, err := s.stockRepo.Replace(ctx, acc.ID, stocks)
	if err != nil {
		return count, fmt.Errorf("erro ao substituir estoque: %w", err)
	}

	return count, nil
}

func (s *WBSyncService) syncFinancials(ctx context.Context, acc *domain.Account) (int, error) {
	dateFrom := utils.DaysAgo(s.config.FinancialsLookbackDays)
	dateTo := utils.Today()

	count, err := s.integrator.FetchFinancialReport(ctx, acc.APIKey, acc.ID, dateFrom, dateTo,
		func(lines []*domain.FinancialLine) error {
			_, err := s.financialLineRepo.SaveOrUpdateBatch(lines)
			return err
		})
	if err != nil {
		return count, fmt.Errorf("erro ao sincronizar relatório financeiro: %w", err)
	}

	return count, nil
}

func (s *WBSyncService) syncCampaigns(ctx context.Context, acc *domain.Account) (int, error) {
	campaigns, err := s.integrator.FetchCampaigns(ctx, acc.APIKey, acc.ID)
	if err != nil {
		return 0, fmt.Errorf("erro ao buscar campanhas: %w", err)
	}

	count, err := s.campaignRepo.SaveOrUpdateBatch(campaigns)
	if err != nil {
		return count, fmt.Errorf("erro ao salvar campanhas: %w", err)
	}

	return count, nil
}

// TriggerManualSync inicia manualmente uma sincronização de todas as contas
func (s *WBSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de todas as contas")
	go s.syncAllAccounts(context.Background())
}

// TriggerAccountSync inicia manualmente a sincronização de uma única conta
func (s *WBSyncService) TriggerAccountSync(accountID string) error {
	acc, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		return fmt.Errorf("erro ao buscar a conta: %w", err)
	}

	if acc == nil {
		return fmt.Errorf("conta %s não encontrada", accountID)
	}

	logrus.WithField("account_id", accountID).Info("Iniciando sincronização manual da conta")
	go s.SyncAccount(context.Background(), acc)

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *WBSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":             s.config.SyncEnabled,
		"sync_cron":                s.config.CronSchedule,
		"orders_lookback_days":     s.config.OrdersLookbackDays,
		"financials_lookback_days": s.config.FinancialsLookbackDays,
		"last_sync_started_at":     s.lastSyncStartedAt,
		"last_sync_completed_at":   s.lastSyncCompletedAt,
	}
}
