package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/ads-ingestion-api/pkg/log"
)

type healthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
	Uptime string    `json:"uptime"`
}

var startedAt = time.Now()

// HealthcheckHandler só atesta que o processo responde; não consulta a Graph API
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, healthResponse{
			Status: "ok",
			Time:   now.UTC(),
			Uptime: now.Sub(startedAt).Truncate(time.Second).String(),
		})
	})
}
