package handler

import (
	"net/http"

	"github.com/vfg2006/meta-ads-exporter/internal/api/handler/router"
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

func Exports(service ExportService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/exports/run",
			Method:  http.MethodPost,
			Handler: RunExport(service),
		},
		{
			Path:    "/v1/exports/status",
			Method:  http.MethodGet,
			Handler: ExportStatus(service),
		},
	}
}
