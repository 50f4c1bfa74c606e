package handler

import (
	"net/http"

	"github.com/vfg2006/dealer-insights-api/internal/api/handler/router"
	"github.com/vfg2006/dealer-insights-api/internal/config"
	"github.com/vfg2006/dealer-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/dealer-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/dealer-insights-api/pkg/middleware"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Dashboard retorna as rotas das facetas de analytics. O recorte de
// papéis segue o desenho das facetas: ranking e top são visões amplas,
// posição própria só faz sentido para regional e loja.
func Dashboard(service reporting.Reporter, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/overview",
			Method:      http.MethodGet,
			Handler:     Overview(service, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/stores/ranking",
			Method:      http.MethodGet,
			Handler:     StoreRanking(service, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/top",
			Method:      http.MethodGet,
			Handler:     TopList(service, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.HeadquartersOrBranch()},
		},
		{
			Path:        "/v1/dashboard/self-rank",
			Method:      http.MethodGet,
			Handler:     SelfRank(service, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.BranchOrStore()},
		},
		{
			Path:        "/v1/dashboard/sales/trend",
			Method:      http.MethodGet,
			Handler:     SalesTrend(service, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/kpi",
			Method:      http.MethodGet,
			Handler:     KPI(service, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
