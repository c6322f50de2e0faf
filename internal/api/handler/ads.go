package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/escoladeautomacao/campaign-dashboard-api/internal/usecases/reporting"
	"github.com/escoladeautomacao/campaign-dashboard-api/pkg/log"
)

func GetCampaignAds(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, ok := parseReportFilters(w, r, id)
		if !ok {
			return
		}

		report, err := service.GetAdsReport(id, filters)
		if err != nil {
			writeReportError(w, logger, id, "ads", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("ads: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
