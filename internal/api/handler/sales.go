package handler

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/escoladeautomacao/campaign-dashboard-api/internal/domain"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/usecases/reporting"
	"github.com/escoladeautomacao/campaign-dashboard-api/pkg/apiErrors"
	"github.com/escoladeautomacao/campaign-dashboard-api/pkg/log"
	"github.com/escoladeautomacao/campaign-dashboard-api/pkg/utils"
)

func GetCampaignSales(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, ok := parseReportFilters(w, r, id)
		if !ok {
			return
		}

		report, err := service.GetSalesReport(id, filters)
		if err != nil {
			writeReportError(w, logger, id, "sales", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("sales: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetCampaignRefunds(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, ok := parseReportFilters(w, r, id)
		if !ok {
			return
		}

		report, err := service.GetRefundsReport(id, filters)
		if err != nil {
			writeReportError(w, logger, id, "refunds", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("refunds: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ExportCampaignSales escreve as vendas do período como um arquivo CSV anexo
func ExportCampaignSales(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, ok := parseReportFilters(w, r, id)
		if !ok {
			return
		}

		suffix, err := utils.GenerateID()
		if err != nil {
			logger.WithError(err).Error("export: failed to generate file name")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar o arquivo de exportação", nil)
			return
		}

		filename := fmt.Sprintf("vendas_%s_%s.csv", id, suffix)

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		if err := service.ExportSalesCSV(w, id, filters); err != nil {
			// O cabeçalho já foi enviado; resta registrar a falha
			logger.WithError(err).WithField("campaign_id", id).Error("export: failed to write CSV")
		}
	})
}

// parseReportFilters lê e valida os parâmetros start e end da query.
// Escreve a resposta de erro e retorna false quando inválidos.
func parseReportFilters(w http.ResponseWriter, r *http.Request, campaignID string) (domain.ReportFilters, bool) {
	logger := log.ForContext(r.Context())

	startDate, err := utils.ParseDate(r.URL.Query().Get("start"))
	if err != nil {
		logger.WithFields(log.Fields{
			"campaign_id": campaignID,
			"start":       r.URL.Query().Get("start"),
		}).Warn("report: invalid start parameter")

		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Data inicial inválida, use o formato YYYY-MM-DD", nil)
		return domain.ReportFilters{}, false
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end"))
	if err != nil {
		logger.WithFields(log.Fields{
			"campaign_id": campaignID,
			"end":         r.URL.Query().Get("end"),
		}).Warn("report: invalid end parameter")

		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Data final inválida, use o formato YYYY-MM-DD", nil)
		return domain.ReportFilters{}, false
	}

	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Data inicial não pode ser posterior à final", nil)
		return domain.ReportFilters{}, false
	}

	return domain.ReportFilters{StartDate: startDate, EndDate: endDate}, true
}

// writeReportError converte os erros dos relatórios para a resposta da API
func writeReportError(w http.ResponseWriter, logger log.Logger, campaignID, report string, err error) {
	if errors.Is(err, reporting.ErrCampaignNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha não encontrada", nil)
		return
	}

	logger.WithError(err).WithField("campaign_id", campaignID).Errorf("%s: failed to build report", report)
	apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao montar o relatório", nil)
}
