package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/escoladeautomacao/campaign-dashboard-api/internal/usecases/reporting"
	"github.com/escoladeautomacao/campaign-dashboard-api/pkg/log"
)

func GetCampaignMessaging(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		report, err := service.GetMessagingReport(id)
		if err != nil {
			writeReportError(w, logger, id, "messaging", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("messaging: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
