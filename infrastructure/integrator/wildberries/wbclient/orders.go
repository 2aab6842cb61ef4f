package wbclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	wbdomain "github.com/vfg2006/marketplace-analytics-api/infrastructure/integrator/wildberries/domain"
)

// GetSupplierOrders busca os pedidos a partir de dateFrom (janela única)
func (c *WBClient) GetSupplierOrders(ctx context.Context, apiKey, dateFrom string) ([]wbdomain.Order, error) {
	endpoint := fmt.Sprintf(
		"%s/api/v1/supplier/orders?dateFrom=%s",
		c.Cfg.Wildberries.StatisticsURL,
		url.QueryEscape(dateFrom+"T00:00:00"),
	)

	body, err := c.doRequest(ctx, http.MethodGet, endpoint, apiKey, nil)
	if err != nil {
		return nil, err
	}

	return decodeArray[wbdomain.Order](body, false)
}
