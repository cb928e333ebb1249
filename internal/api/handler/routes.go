package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vfg2006/ads-ingestion-api/internal/api/handler/router"
	"github.com/vfg2006/ads-ingestion-api/internal/usecases/commenting"
	"github.com/vfg2006/ads-ingestion-api/internal/usecases/hierarchy"
	"github.com/vfg2006/ads-ingestion-api/internal/usecases/insighting"
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

func Metrics(gatherer prometheus.Gatherer) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/adAccount/:id/insights",
			Method:  http.MethodGet,
			Handler: GetAccountDashboard(service),
		},
		{
			Path:    "/v1/adAccount/:id/insights/geo",
			Method:  http.MethodGet,
			Handler: GetGeoReport(service),
		},
	}
}

func Hierarchy(service hierarchy.Orchestrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/adAccount/:id/hierarchy",
			Method:  http.MethodGet,
			Handler: GetHierarchy(service),
		},
	}
}

func Comments(service commenting.CommentManager, allowedOrigins []string) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/comments",
			Method:  http.MethodGet,
			Handler: ListComments(service),
		},
		{
			Path:    "/v1/comments/stream",
			Method:  http.MethodGet,
			Handler: StreamComments(service, allowedOrigins),
		},
		{
			Path:    "/v1/comments/:id/reply",
			Method:  http.MethodPost,
			Handler: ReplyComment(service),
		},
		{
			Path:    "/v1/comments/:id/hide",
			Method:  http.MethodPost,
			Handler: HideComment(service),
		},
		{
			Path:    "/v1/sync/comments",
			Method:  http.MethodPost,
			Handler: PollComments(service),
		},
	}
}
