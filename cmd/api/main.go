package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-analytics-api/infrastructure/integrator/wildberries"
	"github.com/vfg2006/marketplace-analytics-api/infrastructure/integrator/wildberries/wbclient"
	"github.com/vfg2006/marketplace-analytics-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-analytics-api/internal/api"
	"github.com/vfg2006/marketplace-analytics-api/internal/config"
	"github.com/vfg2006/marketplace-analytics-api/internal/scheduler"
	"github.com/vfg2006/marketplace-analytics-api/internal/usecases/account"
	"github.com/vfg2006/marketplace-analytics-api/internal/usecases/costing"
	"github.com/vfg2006/marketplace-analytics-api/internal/usecases/dashboarding"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	stockRepo := repository.NewStockRepository(pgConn)
	financialLineRepo := repository.NewFinancialLineRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	costRepo := repository.NewCostRepository(pgConn)
	syncLogRepo := repository.NewSyncLogRepository(pgConn)

	wbClient := wbclient.NewClient(cfg)
	wbIntegrator := wildberries.New(cfg, wbClient)

	accountService := account.NewService(accountRepo, syncLogRepo, cfg)
	costService := costing.NewService(accountRepo, costRepo)

	dashboardService := dashboarding.NewService(
		cfg,
		accountRepo,
		orderRepo,
		saleRepo,
		financialLineRepo,
		costRepo,
		campaignRepo,
		stockRepo,
	)

	// Inicializa o agendador de sincronização com o marketplace
	syncService := scheduler.NewWBSyncService(
		accountRepo,
		orderRepo,
		saleRepo,
		stockRepo,
		financialLineRepo,
		campaignRepo,
		syncLogRepo,
		wbIntegrator,
		cfg,
	)

	if err := syncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização com o marketplace")
	} else {
		logrus.Info("Agendador de sincronização com o marketplace iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		accountService,
		dashboardService,
		costService,
		syncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
