package handler

import (
	"net/http"

	"github.com/vfg2006/product-insights-api/infrastructure/dataset"
	"github.com/vfg2006/product-insights-api/internal/api/handler/router"
	"github.com/vfg2006/product-insights-api/internal/scheduler"
	"github.com/vfg2006/product-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/product-insights-api/internal/usecases/product"
	"github.com/vfg2006/product-insights-api/pkg/middleware"
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

func Products(service product.ProductService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products/info",
			Method:  http.MethodGet,
			Handler: GetProductInfo(service),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

// Datasets retorna as rotas administrativas de datasets, restritas ao operador
func Datasets(
	refreshService *scheduler.DatasetRefreshService,
	provider *dataset.Provider,
	authService authenticating.Authenticator,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/datasets/refresh",
			Method:      http.MethodPost,
			Handler:     RunDatasetRefresh(refreshService),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireOperator(authService)},
		},
		{
			Path:        "/v1/datasets/status",
			Method:      http.MethodGet,
			Handler:     GetDatasetStatus(refreshService, provider),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireOperator(authService)},
		},
	}
}
