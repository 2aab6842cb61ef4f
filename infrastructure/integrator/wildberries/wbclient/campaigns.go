package wbclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	wbdomain "github.com/vfg2006/marketplace-analytics-api/infrastructure/integrator/wildberries/domain"
)

// GetPromotionAdverts lista as campanhas publicitárias da conta nos status
// consultados (ativas, pausadas e finalizadas)
func (c *WBClient) GetPromotionAdverts(ctx context.Context, apiKey string) ([]wbdomain.Advert, error) {
	query := url.Values{}
	for _, status := range wbdomain.AdvertStatuses {
		query.Add("status", strconv.Itoa(status))
	}

	endpoint := fmt.Sprintf(
		"%s/adv/v1/promotion/adverts?%s",
		c.Cfg.Wildberries.AdvertURL,
		query.Encode(),
	)

	body, err := c.doRequest(ctx, http.MethodGet, endpoint, apiKey, nil)
	if err != nil {
		return nil, err
	}

	return decodeArray[wbdomain.Advert](body, false)
}

// GetAdvertFullStats busca as estatísticas detalhadas de um lote de campanhas.
// O limite de 100 ids por chamada é imposto pela API; o chamador é responsável
// por fatiar a lista.
func (c *WBClient) GetAdvertFullStats(ctx context.Context, apiKey string, campaignIDs []int64) ([]wbdomain.AdvertStats, error) {
	payload, err := json.Marshal(campaignIDs)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar os ids das campanhas: %w", err)
	}

	endpoint := fmt.Sprintf("%s/adv/v2/fullstats", c.Cfg.Wildberries.AdvertURL)

	body, err := c.doRequest(ctx, http.MethodPost, endpoint, apiKey, payload)
	if err != nil {
		return nil, err
	}

	return decodeArray[wbdomain.AdvertStats](body, false)
}
