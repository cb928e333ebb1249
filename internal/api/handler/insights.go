package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/ads-ingestion-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-ingestion-api/pkg/log"
)

func GetAccountDashboard(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		dateRange, err := parseDateRange(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Warn("insights: invalid date range")

			respondError(w, err)
			return
		}

		metricIDs := splitList(r.URL.Query().Get("metrics"))

		logger.WithFields(log.Fields{
			"account_id": id,
			"date_range": dateRange.String(),
			"metrics":    metricIDs,
		}).Info("insights: fetching account dashboard")

		dashboard, err := service.GetAccountDashboard(r.Context(), id, dateRange, metricIDs)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"date_range": dateRange.String(),
				"error":      err.Error(),
			}).Error("insights: failed to get account dashboard")

			respondError(w, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, dashboard)
	})
}

func GetGeoReport(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		dateRange, err := parseDateRange(r)
		if err != nil {
			respondError(w, err)
			return
		}

		report, err := service.GetGeoReport(r.Context(), id, dateRange)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"date_range": dateRange.String(),
				"error":      err.Error(),
			}).Error("insights: failed to get geo report")

			respondError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": id,
			"regions":    len(report.Regions),
		}).Info("insights: geo report retrieved")

		writeJSON(w, logger, http.StatusOK, report)
	})
}
