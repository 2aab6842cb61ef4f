package handler

import (
	"net/http"

	"github.com/vfg2006/marketplace-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/marketplace-analytics-api/internal/scheduler"
	"github.com/vfg2006/marketplace-analytics-api/internal/usecases/account"
	"github.com/vfg2006/marketplace-analytics-api/internal/usecases/costing"
	"github.com/vfg2006/marketplace-analytics-api/internal/usecases/dashboarding"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Accounts(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: ListAccounts(service),
		},
		{
			Path:    "/v1/accounts",
			Method:  http.MethodPost,
			Handler: CreateAccount(service),
		},
		{
			Path:    "/v1/accounts/:id",
			Method:  http.MethodGet,
			Handler: GetAccount(service),
		},
		{
			Path:    "/v1/accounts/:id",
			Method:  http.MethodPut,
			Handler: UpdateAccount(service),
		},
		{
			Path:    "/v1/accounts/:id",
			Method:  http.MethodDelete,
			Handler: DeleteAccount(service),
		},
		{
			Path:    "/v1/accounts/:id/sync-logs",
			Method:  http.MethodGet,
			Handler: ListSyncLogs(service),
		},
	}
}

func Dashboard(service dashboarding.Dasher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/accounts/:id/financials/reports",
			Method:  http.MethodGet,
			Handler: GetReportSummaries(service),
		},
		{
			Path:    "/v1/accounts/:id/financials/weekly",
			Method:  http.MethodGet,
			Handler: GetWeeklySummaries(service),
		},
		{
			Path:    "/v1/accounts/:id/stocks",
			Method:  http.MethodGet,
			Handler: ListStocks(service),
		},
	}
}

func Costs(service costing.Coster) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/costs",
			Method:  http.MethodGet,
			Handler: ListCosts(service),
		},
		{
			Path:    "/v1/accounts/:id/costs",
			Method:  http.MethodPut,
			Handler: UpsertCost(service),
		},
		{
			Path:    "/v1/accounts/:id/costs/bulk",
			Method:  http.MethodPost,
			Handler: BulkUpsertCosts(service),
		},
	}
}

func Sync(service *scheduler.WBSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync",
			Method:  http.MethodPost,
			Handler: TriggerSync(service),
		},
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: SyncStatus(service),
		},
		{
			Path:    "/v1/accounts/:id/sync",
			Method:  http.MethodPost,
			Handler: TriggerAccountSync(service),
		},
	}
}
