package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/ads-ingestion-api/internal/usecases/hierarchy"
	"github.com/vfg2006/ads-ingestion-api/pkg/log"
)

func GetHierarchy(service hierarchy.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		dateRange, err := parseDateRange(r)
		if err != nil {
			respondError(w, err)
			return
		}

		tree, err := service.GetHierarchy(r.Context(), id, dateRange)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"date_range": dateRange.String(),
				"error":      err.Error(),
			}).Error("hierarchy: failed to get campaign hierarchy")

			respondError(w, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, tree)
	})
}
