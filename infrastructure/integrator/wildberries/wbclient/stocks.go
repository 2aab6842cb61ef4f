package wbclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	wbdomain "github.com/vfg2006/marketplace-analytics-api/infrastructure/integrator/wildberries/domain"
)

// GetSupplierStocks busca o snapshot de estoque a partir de dateFrom (janela única)
func (c *WBClient) GetSupplierStocks(ctx context.Context, apiKey, dateFrom string) ([]wbdomain.Stock, error) {
	endpoint := fmt.Sprintf(
		"%s/api/v1/supplier/stocks?dateFrom=%s",
		c.Cfg.Wildberries.StatisticsURL,
		url.QueryEscape(dateFrom+"T00:00:00"),
	)

	body, err := c.doRequest(ctx, http.MethodGet, endpoint, apiKey, nil)
	if err != nil {
		return nil, err
	}

	return decodeArray[wbdomain.Stock](body, false)
}
