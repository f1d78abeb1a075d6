package handler

import (
	"net/http"

	"github.com/LiCHihTseng/acs-dashboard/internal/api/handler/router"
	"github.com/LiCHihTseng/acs-dashboard/internal/usecases/reporting"
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

// Dashboard retorna as rotas dos cartões e gráficos do dashboard
func Dashboard(service reporting.ReportingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/best-platform",
			Method:  http.MethodGet,
			Handler: GetBestPlatform(service),
		},
		{
			Path:    "/v1/dashboard/best-seller",
			Method:  http.MethodGet,
			Handler: GetBestSeller(service),
		},
		{
			Path:    "/v1/dashboard/order-growth",
			Method:  http.MethodGet,
			Handler: GetOrderGrowth(service),
		},
		{
			Path:    "/v1/dashboard/last-deal",
			Method:  http.MethodGet,
			Handler: GetLastDeal(service),
		},
		{
			Path:    "/v1/dashboard/monthly-sales",
			Method:  http.MethodGet,
			Handler: GetMonthlySales(service),
		},
		{
			Path:    "/v1/dashboard/platforms",
			Method:  http.MethodGet,
			Handler: GetPlatforms(service),
		},
		{
			Path:    "/v1/dashboard/daily-sales",
			Method:  http.MethodGet,
			Handler: GetDailySales(service),
		},
		{
			Path:    "/v1/dashboard/top-platforms",
			Method:  http.MethodGet,
			Handler: GetTopPlatforms(service),
		},
	}
}

// Transactions retorna as rotas da listagem paginada e do ranking por modelo
func Transactions(service reporting.ReportingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/transactions",
			Method:  http.MethodGet,
			Handler: ListTransactions(service),
		},
		{
			Path:    "/v1/transactions/top-models",
			Method:  http.MethodGet,
			Handler: GetTopShoeModels(service),
		},
	}
}
