package wbclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	wbdomain "github.com/vfg2006/marketplace-analytics-api/infrastructure/integrator/wildberries/domain"
	"github.com/vfg2006/marketplace-analytics-api/internal/config"
)

func newTestClient(serverURL string) *WBClient {
	return &WBClient{
		Cfg: &config.Config{
			Wildberries: config.Wildberries{
				StatisticsURL: serverURL,
				AdvertURL:     serverURL,
			},
		},
		httpClient:   &http.Client{Timeout: 5 * time.Second},
		retryBackoff: time.Millisecond,
	}
}

func TestGetSupplierOrders_RetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "minha-chave", r.Header.Get("Authorization"))

		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[{"nmId": 7, "totalPrice": 150.5, "isCancel": false}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	orders, err := client.GetSupplierOrders(context.Background(), "minha-chave", "2025-01-01")

	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	require.Len(t, orders, 1)
	assert.Equal(t, int64(7), orders[0].NmID)
	assert.Equal(t, 150.5, orders[0].TotalPrice)
}

func TestGetSupplierOrders_RetriesOnRateLimit(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	orders, err := client.GetSupplierOrders(context.Background(), "minha-chave", "2025-01-01")

	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.Empty(t, orders)
}

func TestGetSupplierOrders_ExhaustedRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetSupplierOrders(context.Background(), "minha-chave", "2025-01-01")

	require.Error(t, err)
	// Tentativa original + uma repetição
	assert.Equal(t, int32(2), calls.Load())

	var apiErr *wbdomain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
}

func TestGetSupplierOrders_NoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetSupplierOrders(context.Background(), "chave-invalida", "2025-01-01")

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGetSupplierOrders_TolerantDecode(t *testing.T) {
	// Alguns endpoints devolvem um objeto de erro com status 200; a busca de
	// janela única trata como zero registros
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors": ["sem dados no período"]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	orders, err := client.GetSupplierOrders(context.Background(), "minha-chave", "2025-01-01")

	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestGetReportDetailByPeriod_StrictDecode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors": ["sem dados no período"]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetReportDetailByPeriod(context.Background(), "minha-chave", "2025-01-01", "2025-01-31", 0, 1000)

	// A paginação por cursor não tem como avançar sem registros
	require.Error(t, err)
	assert.Contains(t, err.Error(), "array esperado")
}

func TestGetReportDetailByPeriod_CursorInQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v5/supplier/reportDetailByPeriod", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("rrdid"))
		assert.Equal(t, "1000", r.URL.Query().Get("limit"))
		w.Write([]byte(`[{"rrd_id": 43, "realizationreport_id": 9, "doc_type_name": "Продажа"}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	rows, err := client.GetReportDetailByPeriod(context.Background(), "minha-chave", "2025-01-01", "2025-01-31", 42, 1000)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(43), rows[0].RrdID)
	assert.Equal(t, int64(9), rows[0].RealizationReportID)
}
