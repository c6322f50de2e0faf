package reporting

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	hotmartdomain "github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/hotmart/domain"
	hotmartmocks "github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/hotmart/mocks"
	manychatmocks "github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/manychat/mocks"
	metaadsdomain "github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/metaads/domain"
	metaadsmocks "github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/metaads/mocks"
	sheetsmocks "github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/sheets/mocks"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/config"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/domain"
	"github.com/escoladeautomacao/campaign-dashboard-api/pkg/utils"
)

type serviceMocks struct {
	hotmart  *hotmartmocks.MockIntegrator
	manychat *manychatmocks.MockIntegrator
	metaads  *metaadsmocks.MockIntegrator
	sheets   *sheetsmocks.MockIntegrator
}

func newTestService(t *testing.T) (Reporter, serviceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := serviceMocks{
		hotmart:  hotmartmocks.NewMockIntegrator(ctrl),
		manychat: manychatmocks.NewMockIntegrator(ctrl),
		metaads:  metaadsmocks.NewMockIntegrator(ctrl),
		sheets:   sheetsmocks.NewMockIntegrator(ctrl),
	}

	service := NewService(&config.Config{}, m.hotmart, m.manychat, m.metaads, m.sheets)
	return service, m
}

func periodFilters(start, end time.Time) domain.ReportFilters {
	return domain.ReportFilters{StartDate: &start, EndDate: &end}
}

func approvedSale(transaction string, orderDate time.Time, value float64) hotmartdomain.RawSale {
	return hotmartdomain.RawSale{
		Purchase: hotmartdomain.Purchase{
			Transaction: transaction,
			OrderDate:   orderDate.UnixMilli(),
			Status:      domain.StatusApproved,
			Fee:         hotmartdomain.Fee{Base: decimal.NewFromFloat(value)},
		},
	}
}

func TestGetSalesReportUnknownCampaign(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.GetSalesReport("inexistente", domain.ReportFilters{})
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestGetSalesReportAggregatesProducts(t *testing.T) {
	service, m := newTestService(t)

	start := time.Date(2026, 1, 7, 0, 0, 0, 0, utils.BRT)
	end := time.Date(2026, 1, 31, 23, 59, 0, 0, utils.BRT)

	day := time.Date(2026, 1, 10, 12, 0, 0, 0, utils.BRT)

	// imersao0126 tem dois produtos: ingresso e orderbump
	m.hotmart.EXPECT().
		GetApprovedSales("6926419", start, end).
		Return(&hotmartdomain.SalesHistoryResult{Sales: []hotmartdomain.RawSale{
			approvedSale("TX-ING-1", day, 100),
			approvedSale("TX-ING-2", day, 200),
		}}, nil)
	m.hotmart.EXPECT().
		GetApprovedSales("6926479", start, end).
		Return(&hotmartdomain.SalesHistoryResult{Sales: []hotmartdomain.RawSale{
			approvedSale("TX-OB-1", day, 300),
		}}, nil)

	report, err := service.GetSalesReport("imersao0126", periodFilters(start, end))
	require.NoError(t, err)

	assert.Equal(t, 3, report.Metrics.TotalSales)
	assert.True(t, report.Metrics.TotalRevenue.Equal(decimal.NewFromInt(600)))
	assert.True(t, report.Metrics.AverageTicket.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "R$ 600,00", report.TotalRevenueFormatted)
	assert.Equal(t, map[string]int{"ingresso": 2, "orderbump": 1}, report.SalesByProduct)
	require.Len(t, report.Daily, 1)
	assert.Equal(t, 3, report.Daily[0].SalesCount)
	assert.False(t, report.Truncated)
	assert.Equal(t, start, report.StartDate)
	assert.Equal(t, end, report.EndDate)
}

func TestGetSalesReportPropagatesTruncation(t *testing.T) {
	service, m := newTestService(t)

	start := time.Date(2025, 11, 6, 19, 0, 0, 0, utils.BRT)
	end := time.Date(2025, 11, 10, 0, 0, 0, 0, utils.BRT)

	m.hotmart.EXPECT().
		GetApprovedSales("6398418", start, end).
		Return(&hotmartdomain.SalesHistoryResult{Truncated: true}, nil)

	report, err := service.GetSalesReport("bf25", periodFilters(start, end))
	require.NoError(t, err)

	assert.True(t, report.Truncated)
	assert.Equal(t, 0, report.Metrics.TotalSales)
	assert.Equal(t, "R$ 0,00", report.TotalRevenueFormatted)
}

func TestGetRefundsReportRate(t *testing.T) {
	service, m := newTestService(t)

	start := time.Date(2025, 11, 6, 19, 0, 0, 0, utils.BRT)
	end := time.Date(2025, 11, 10, 0, 0, 0, 0, utils.BRT)
	day := time.Date(2025, 11, 8, 12, 0, 0, 0, utils.BRT)

	m.hotmart.EXPECT().
		GetRefundedSales("6398418", start, end).
		Return(&hotmartdomain.SalesHistoryResult{Sales: []hotmartdomain.RawSale{
			approvedSale("TX-R1", day, 297),
		}}, nil)
	m.hotmart.EXPECT().
		GetApprovedSales("6398418", start, end).
		Return(&hotmartdomain.SalesHistoryResult{Sales: []hotmartdomain.RawSale{
			approvedSale("TX-1", day, 297),
			approvedSale("TX-2", day, 297),
			approvedSale("TX-3", day, 297),
			approvedSale("TX-4", day, 297),
		}}, nil)

	report, err := service.GetRefundsReport("bf25", periodFilters(start, end))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Metrics.TotalSales)
	assert.Equal(t, "R$ 297,00", report.RefundedValueFormatted)
	assert.Equal(t, 25.0, report.RefundRate)
	assert.Equal(t, "25,00%", report.RefundRateFormatted)
}

func TestGetRefundsReportWithoutApprovedSales(t *testing.T) {
	service, m := newTestService(t)

	start := time.Date(2025, 11, 6, 19, 0, 0, 0, utils.BRT)
	end := time.Date(2025, 11, 10, 0, 0, 0, 0, utils.BRT)

	m.hotmart.EXPECT().
		GetRefundedSales("6398418", start, end).
		Return(&hotmartdomain.SalesHistoryResult{}, nil)
	m.hotmart.EXPECT().
		GetApprovedSales("6398418", start, end).
		Return(&hotmartdomain.SalesHistoryResult{}, nil)

	report, err := service.GetRefundsReport("bf25", periodFilters(start, end))
	require.NoError(t, err)

	assert.Equal(t, 0.0, report.RefundRate)
}

func TestExportSalesCSV(t *testing.T) {
	service, m := newTestService(t)

	start := time.Date(2025, 11, 6, 19, 0, 0, 0, utils.BRT)
	end := time.Date(2025, 11, 10, 0, 0, 0, 0, utils.BRT)
	day := time.Date(2025, 11, 8, 12, 0, 0, 0, utils.BRT)

	m.hotmart.EXPECT().
		GetApprovedSales("6398418", start, end).
		Return(&hotmartdomain.SalesHistoryResult{Sales: []hotmartdomain.RawSale{
			approvedSale("TX-1", day, 100),
		}}, nil)

	var buf bytes.Buffer
	require.NoError(t, service.ExportSalesCSV(&buf, "bf25", periodFilters(start, end)))

	assert.Contains(t, buf.String(), "transaction_id")
	assert.Contains(t, buf.String(), "TX-1")
}

func TestGetLeadsReport(t *testing.T) {
	service, m := newTestService(t)

	m.sheets.EXPECT().
		GetCampaignSheets(gomock.Any()).
		Return(map[string][][]string{
			"leads_alunos": {
				{"Nome", "Email"},
				{"Maria", "maria@example.com"},
				{"João", "joao@example.com"},
			},
			"leads_geral": nil,
		}, nil)

	report, err := service.GetLeadsReport("bf25")
	require.NoError(t, err)

	assert.Equal(t, 2, report.Counts["leads_alunos"])
	assert.Equal(t, 0, report.Counts["leads_geral"])
	assert.Equal(t, []string{"Nome", "Email"}, report.Tables["leads_alunos"].Columns)
	assert.True(t, report.Tables["leads_geral"].Empty())
}

func TestGetMessagingReport(t *testing.T) {
	service, m := newTestService(t)

	campaign := domain.GetCampaign("bf25")
	require.NotNil(t, campaign)

	m.manychat.EXPECT().
		GetFunnelMetrics(campaign.FunnelTags).
		Return(map[string]int{"geral_fluxo_instagram": 42}, nil)

	report, err := service.GetMessagingReport("bf25")
	require.NoError(t, err)

	assert.Equal(t, 42, report.Metrics["geral_fluxo_instagram"])
}

func TestGetMessagingReportIntegrationDisabled(t *testing.T) {
	service, _ := newTestService(t)

	// imersao0126 não tem ManyChat habilitado: nenhuma chamada esperada
	report, err := service.GetMessagingReport("imersao0126")
	require.NoError(t, err)

	assert.Empty(t, report.Metrics)
}

func TestGetAdsReportMapsInsight(t *testing.T) {
	service, m := newTestService(t)

	start := time.Date(2025, 11, 6, 19, 0, 0, 0, utils.BRT)
	end := time.Date(2025, 11, 10, 0, 0, 0, 0, utils.BRT)

	m.metaads.EXPECT().
		GetCampaignInsights(start, end, "BF25").
		Return(&metaadsdomain.AdInsight{
			Impressions:        "15000",
			Clicks:             "320",
			InlineLinkClicks:   "280",
			Spend:              "1250.75",
			InlineLinkClickCTR: "1.87",
			CPC:                "3.91",
			CPM:                "83.38",
		}, nil)

	report, err := service.GetAdsReport("bf25", periodFilters(start, end))
	require.NoError(t, err)

	assert.Equal(t, "15000", report.Impressions)
	assert.Equal(t, "320", report.Clicks)
	assert.Equal(t, "1.87", report.CTR)
	assert.Equal(t, "R$ 1.250,75", report.SpendFormatted)
}

func TestGetAdsReportIntegrationDisabled(t *testing.T) {
	service, _ := newTestService(t)

	start := time.Date(2026, 1, 7, 0, 0, 0, 0, utils.BRT)
	end := time.Date(2026, 1, 31, 23, 59, 0, 0, utils.BRT)

	report, err := service.GetAdsReport("imersao0126", periodFilters(start, end))
	require.NoError(t, err)

	assert.Equal(t, "0", report.Impressions)
	assert.Empty(t, report.SpendFormatted)
}
