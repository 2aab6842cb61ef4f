package wildberries

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	wbdomain "github.com/vfg2006/marketplace-analytics-api/infrastructure/integrator/wildberries/domain"
	"github.com/vfg2006/marketplace-analytics-api/infrastructure/integrator/wildberries/wbclient"
	"github.com/vfg2006/marketplace-analytics-api/internal/config"
	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
	"github.com/vfg2006/marketplace-analytics-api/pkg/utils"
)

const (
	// reportPageLimit é o tamanho de página do relatório financeiro
	reportPageLimit = 1000

	// advertBatchSize é o limite de ids por chamada de fullstats, imposto pela API
	advertBatchSize = 100
)

// Integrator expõe as estratégias de busca por endpoint: janela única
// (pedidos, vendas, estoque), cursor (relatório financeiro) e
// listagem + lotes de estatísticas (campanhas). Os registros já saem
// normalizados para as entidades internas.
type Integrator interface {
	FetchOrders(ctx context.Context, apiKey, accountID, dateFrom string) ([]*domain.Order, error)
	FetchSales(ctx context.Context, apiKey, accountID, dateFrom string) ([]*domain.Sale, error)
	FetchStocks(ctx context.Context, apiKey, accountID, dateFrom string) ([]*domain.Stock, error)
	FetchFinancialReport(ctx context.Context, apiKey, accountID, dateFrom, dateTo string, handlePage func([]*domain.FinancialLine) error) (int, error)
	FetchCampaigns(ctx context.Context, apiKey, accountID string) ([]*domain.Campaign, error)
}

type WBService struct {
	cfg    *config.Config
	Client wbclient.Client
}

func New(cfg *config.Config, client wbclient.Client) Integrator {
	return &WBService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *WBService) FetchOrders(ctx context.Context, apiKey, accountID, dateFrom string) ([]*domain.Order, error) {
	raw, err := s.Client.GetSupplierOrders(ctx, apiKey, dateFrom)
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, 0, len(raw))
	for _, o := range raw {
		orders = append(orders, o.ToDomain(accountID))
	}

	return orders, nil
}

func (s *WBService) FetchSales(ctx context.Context, apiKey, accountID, dateFrom string) ([]*domain.Sale, error) {
	raw, err := s.Client.GetSupplierSales(ctx, apiKey, dateFrom)
	if err != nil {
		return nil, err
	}

	sales := make([]*domain.Sale, 0, len(raw))
	for _, sl := range raw {
		sales = append(sales, sl.ToDomain(accountID))
	}

	return sales, nil
}

func (s *WBService) FetchStocks(ctx context.Context, apiKey, accountID, dateFrom string) ([]*domain.Stock, error) {
	raw, err := s.Client.GetSupplierStocks(ctx, apiKey, dateFrom)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	stocks := make([]*domain.Stock, 0, len(raw))
	for _, st := range raw {
		stocks = append(stocks, st.ToDomain(accountID, now))
	}

	return stocks, nil
}

// FetchFinancialReport percorre o relatório financeiro com o cursor rrdid
// semeado em zero: o cursor da próxima página é o rrd_id do último registro,
// e a paginação termina em página vazia ou menor que o limite. Um cursor que
// não avança é falha definitiva, nunca um laço infinito. Cada página é
// entregue ao handlePage já normalizada; retorna o total de linhas lidas.
func (s *WBService) FetchFinancialReport(
	ctx context.Context,
	apiKey, accountID, dateFrom, dateTo string,
	handlePage func([]*domain.FinancialLine) error,
) (int, error) {
	var rrdID int64
	totalCount := 0

	for {
		page, err := s.Client.GetReportDetailByPeriod(ctx, apiKey, dateFrom, dateTo, rrdID, reportPageLimit)
		if err != nil {
			return totalCount, err
		}

		if len(page) == 0 {
			return totalCount, nil
		}

		lines := make([]*domain.FinancialLine, 0, len(page))
		for _, row := range page {
			lines = append(lines, row.ToDomain(accountID))
		}

		if err := handlePage(lines); err != nil {
			return totalCount, err
		}

		totalCount += len(page)

		next := page[len(page)-1].RrdID
		if next <= rrdID {
			return totalCount, fmt.Errorf("cursor do relatório não avançou (rrdid %d -> %d)", rrdID, next)
		}
		rrdID = next

		if len(page) < reportPageLimit {
			return totalCount, nil
		}
	}
}

// FetchCampaigns lista as campanhas e busca as estatísticas detalhadas em
// lotes de até 100 ids. Um lote que falha é registrado e pulado: resultado
// parcial, sem derrubar a fase inteira.
func (s *WBService) FetchCampaigns(ctx context.Context, apiKey, accountID string) ([]*domain.Campaign, error) {
	adverts, err := s.Client.GetPromotionAdverts(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	if len(adverts) == 0 {
		return nil, nil
	}

	advertsByID := make(map[int64]*wbdomain.Advert, len(adverts))
	campaignIDs := make([]int64, 0, len(adverts))
	for i := range adverts {
		advertsByID[adverts[i].AdvertID] = &adverts[i]
		campaignIDs = append(campaignIDs, adverts[i].AdvertID)
	}

	now := time.Now()
	campaigns := make([]*domain.Campaign, 0, len(adverts))

	for _, batch := range utils.Chunk(campaignIDs, advertBatchSize) {
		stats, err := s.Client.GetAdvertFullStats(ctx, apiKey, batch)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"batch_size": len(batch),
				"error":      err.Error(),
			}).Warn("Falha em um lote de estatísticas de campanhas, pulando")
			continue
		}

		for _, stat := range stats {
			campaigns = append(campaigns, stat.ToDomain(accountID, advertsByID[stat.AdvertID], now))
		}
	}

	return campaigns, nil
}
