package wbclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	wbdomain "github.com/vfg2006/marketplace-analytics-api/infrastructure/integrator/wildberries/domain"
)

// GetSupplierSales busca as vendas e devoluções a partir de dateFrom (janela única)
func (c *WBClient) GetSupplierSales(ctx context.Context, apiKey, dateFrom string) ([]wbdomain.Sale, error) {
	endpoint := fmt.Sprintf(
		"%s/api/v1/supplier/sales?dateFrom=%s",
		c.Cfg.Wildberries.StatisticsURL,
		url.QueryEscape(dateFrom+"T00:00:00"),
	)

	body, err := c.doRequest(ctx, http.MethodGet, endpoint, apiKey, nil)
	if err != nil {
		return nil, err
	}

	return decodeArray[wbdomain.Sale](body, false)
}
