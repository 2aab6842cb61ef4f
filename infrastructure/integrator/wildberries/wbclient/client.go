package wbclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	wbdomain "github.com/vfg2006/marketplace-analytics-api/infrastructure/integrator/wildberries/domain"
	"github.com/vfg2006/marketplace-analytics-api/internal/config"
)

// maxRetries é o orçamento de novas tentativas por chamada: no máximo uma
// repetição, após uma pausa fixa, sem jitter nem crescimento exponencial.
const maxRetries = 1

type Client interface {
	GetSupplierOrders(ctx context.Context, apiKey, dateFrom string) ([]wbdomain.Order, error)
	GetSupplierSales(ctx context.Context, apiKey, dateFrom string) ([]wbdomain.Sale, error)
	GetSupplierStocks(ctx context.Context, apiKey, dateFrom string) ([]wbdomain.Stock, error)
	GetReportDetailByPeriod(ctx context.Context, apiKey, dateFrom, dateTo string, rrdID int64, limit int) ([]wbdomain.ReportDetailRow, error)
	GetPromotionAdverts(ctx context.Context, apiKey string) ([]wbdomain.Advert, error)
	GetAdvertFullStats(ctx context.Context, apiKey string, campaignIDs []int64) ([]wbdomain.AdvertStats, error)
}

type WBClient struct {
	Cfg          *config.Config
	httpClient   *http.Client
	retryBackoff time.Duration
}

func NewClient(cfg *config.Config) Client {
	return &WBClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		retryBackoff: time.Second,
	}
}

// doRequest executa a chamada autenticada. A chave da conta é enviada
// literalmente no cabeçalho Authorization (sem prefixo). Respostas 429 e 5xx
// são repetidas uma vez após a pausa fixa; qualquer outro status de falha
// vira um APIError definitivo com o corpo truncado.
func (c *WBClient) doRequest(ctx context.Context, method, url, apiKey string, payload []byte) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		var reqBody io.Reader
		if payload != nil {
			reqBody = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
		if err != nil {
			return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
		}

		req.Header.Set("Authorization", apiKey)
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return body, nil
		}

		apiErr := wbdomain.NewAPIError(resp.StatusCode, body)

		if apiErr.IsRetryable() && attempt < maxRetries {
			logrus.WithFields(logrus.Fields{
				"url":     url,
				"status":  resp.StatusCode,
				"attempt": attempt + 1,
			}).Warn("Resposta transitória da API, aguardando para tentar novamente")

			select {
			case <-time.After(c.retryBackoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			continue
		}

		return nil, apiErr
	}
}

// decodeArray decodifica um payload que deveria ser um array JSON.
// Quando strict é falso (endpoints de janela única), um payload que não é
// array é tratado como zero registros; quando é verdadeiro (paginação por
// cursor), a resposta malformada interrompe a fase.
func decodeArray[T any](body []byte, strict bool) ([]T, error) {
	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		if strict {
			return nil, fmt.Errorf("resposta malformada (array esperado): %w", err)
		}

		logrus.WithField("body_prefix", snippet(body)).Debug("Resposta não é um array, tratando como vazia")
		return nil, nil
	}

	return items, nil
}

func snippet(body []byte) string {
	if len(body) > 80 {
		return string(body[:80])
	}
	return string(body)
}
