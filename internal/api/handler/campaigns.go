package handler

import (
	"net/http"

	"github.com/escoladeautomacao/campaign-dashboard-api/internal/usecases/reporting"
	"github.com/escoladeautomacao/campaign-dashboard-api/pkg/log"
)

func ListCampaigns(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaigns := service.ListCampaigns()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			logger.WithError(err).Error("campaigns: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
