package reporting

import (
	"io"

	"github.com/escoladeautomacao/campaign-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/reporter_mock.go -package=mocks

// Reporter expõe os relatórios de campanha consumidos pela API
type Reporter interface {
	ListCampaigns() []domain.Campaign
	GetSalesReport(campaignID string, filters domain.ReportFilters) (*domain.SalesReport, error)
	GetRefundsReport(campaignID string, filters domain.ReportFilters) (*domain.RefundsReport, error)
	ExportSalesCSV(w io.Writer, campaignID string, filters domain.ReportFilters) error
	GetLeadsReport(campaignID string) (*domain.LeadsReport, error)
	GetMessagingReport(campaignID string) (*domain.MessagingReport, error)
	GetAdsReport(campaignID string, filters domain.ReportFilters) (*domain.AdsReport, error)
}
