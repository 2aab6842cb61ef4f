package wbclient

import (
	"context"
	"fmt"
	"net/http"

	wbdomain "github.com/vfg2006/marketplace-analytics-api/infrastructure/integrator/wildberries/domain"
)

// GetReportDetailByPeriod busca uma página do relatório financeiro a partir
// do cursor rrdID. Uma resposta que não é um array é falha definitiva aqui:
// o laço de paginação não tem como avançar o cursor sem registros.
func (c *WBClient) GetReportDetailByPeriod(
	ctx context.Context,
	apiKey, dateFrom, dateTo string,
	rrdID int64,
	limit int,
) ([]wbdomain.ReportDetailRow, error) {
	endpoint := fmt.Sprintf(
		"%s/api/v5/supplier/reportDetailByPeriod?dateFrom=%s&dateTo=%s&limit=%d&rrdid=%d",
		c.Cfg.Wildberries.StatisticsURL,
		dateFrom,
		dateTo,
		limit,
		rrdID,
	)

	body, err := c.doRequest(ctx, http.MethodGet, endpoint, apiKey, nil)
	if err != nil {
		return nil, err
	}

	return decodeArray[wbdomain.ReportDetailRow](body, true)
}
