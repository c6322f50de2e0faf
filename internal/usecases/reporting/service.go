package reporting

import (
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/hotmart"
	"github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/manychat"
	"github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/metaads"
	"github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/sheets"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/config"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/domain"
	"github.com/escoladeautomacao/campaign-dashboard-api/pkg/currency"
	"github.com/escoladeautomacao/campaign-dashboard-api/pkg/utils"
)

// ErrCampaignNotFound indica que o ID de campanha não existe no registro
var ErrCampaignNotFound = errors.New("campanha não encontrada")

// Service monta os relatórios de campanha combinando as integrações
type Service struct {
	cfg             *config.Config
	hotmartService  hotmart.Integrator
	manychatService manychat.Integrator
	metaAdsService  metaads.Integrator
	sheetsService   sheets.Integrator
}

func NewService(
	cfg *config.Config,
	hotmartService hotmart.Integrator,
	manychatService manychat.Integrator,
	metaAdsService metaads.Integrator,
	sheetsService sheets.Integrator,
) Reporter {
	return &Service{
		cfg:             cfg,
		hotmartService:  hotmartService,
		manychatService: manychatService,
		metaAdsService:  metaAdsService,
		sheetsService:   sheetsService,
	}
}

// ListCampaigns devolve o registro de campanhas na ordem de exibição
func (s *Service) ListCampaigns() []domain.Campaign {
	return domain.Campaigns()
}

// GetSalesReport monta a aba de vendas da campanha no período pedido.
// Datas ausentes caem no período da própria campanha, com o fim limitado
// ao horário atual.
func (s *Service) GetSalesReport(campaignID string, filters domain.ReportFilters) (*domain.SalesReport, error) {
	campaign := domain.GetCampaign(campaignID)
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	start, end := resolvePeriod(campaign, filters)

	var allSales []domain.NormalizedSale
	salesByProduct := make(map[string]int, len(campaign.Products))
	truncated := false

	for _, product := range campaign.Products {
		result, err := s.hotmartService.GetApprovedSales(product.ProductID, start, end)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar vendas aprovadas")
		}

		normalized := NormalizeSales(result.Sales)
		salesByProduct[product.Role] = len(normalized)
		allSales = append(allSales, normalized...)

		if result.Truncated {
			truncated = true
		}
	}

	metrics := CalculateSalesMetrics(allSales)

	if truncated {
		logrus.WithField("campaign_id", campaignID).Warn("Relatório de vendas possivelmente incompleto")
	}

	return &domain.SalesReport{
		CampaignID:             campaignID,
		Metrics:                metrics,
		TotalRevenueFormatted:  currency.FormatBRL(metrics.TotalRevenue),
		AverageTicketFormatted: currency.FormatBRL(metrics.AverageTicket),
		SalesByProduct:         salesByProduct,
		Daily:                  GroupSalesByDate(allSales),
		Rows:                   allSales,
		Truncated:              truncated,
		StartDate:              start,
		EndDate:                end,
	}, nil
}

// GetRefundsReport monta a aba de reembolsos da campanha. A taxa de reembolso
// é o percentual de devoluções sobre o total de vendas aprovadas no mesmo
// período; sem vendas aprovadas a taxa fica em zero.
func (s *Service) GetRefundsReport(campaignID string, filters domain.ReportFilters) (*domain.RefundsReport, error) {
	campaign := domain.GetCampaign(campaignID)
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	start, end := resolvePeriod(campaign, filters)

	var refunds []domain.NormalizedSale
	approvedCount := 0
	truncated := false

	for _, product := range campaign.Products {
		refunded, err := s.hotmartService.GetRefundedSales(product.ProductID, start, end)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar reembolsos")
		}

		refunds = append(refunds, NormalizeSales(refunded.Sales)...)
		if refunded.Truncated {
			truncated = true
		}

		approved, err := s.hotmartService.GetApprovedSales(product.ProductID, start, end)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar vendas aprovadas")
		}

		approvedCount += len(approved.Sales)
		if approved.Truncated {
			truncated = true
		}
	}

	metrics := CalculateSalesMetrics(refunds)

	rate := utils.Percent(float64(metrics.TotalSales), float64(approvedCount))

	return &domain.RefundsReport{
		CampaignID:             campaignID,
		Metrics:                metrics,
		RefundedValueFormatted: currency.FormatBRL(metrics.TotalRevenue),
		RefundRate:             rate,
		RefundRateFormatted:    currency.FormatPercentBR(rate),
		Rows:                   refunds,
		Truncated:              truncated,
		StartDate:              start,
		EndDate:                end,
	}, nil
}

// ExportSalesCSV escreve as vendas do período como CSV no writer
func (s *Service) ExportSalesCSV(w io.Writer, campaignID string, filters domain.ReportFilters) error {
	report, err := s.GetSalesReport(campaignID, filters)
	if err != nil {
		return err
	}

	return WriteSalesCSV(w, report.Rows)
}

// GetLeadsReport monta as tabelas de captação a partir da planilha da campanha
func (s *Service) GetLeadsReport(campaignID string) (*domain.LeadsReport, error) {
	campaign := domain.GetCampaign(campaignID)
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	values, err := s.sheetsService.GetCampaignSheets(campaign)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar as abas da planilha")
	}

	tables := make(map[string]domain.SheetTable, len(values))
	counts := make(map[string]int, len(values))

	for tabKey, rows := range values {
		table := ParseSheetTable(rows, true)
		tables[tabKey] = table
		counts[tabKey] = table.RowCount()
	}

	return &domain.LeadsReport{
		CampaignID: campaignID,
		Tables:     tables,
		Counts:     counts,
	}, nil
}

// GetMessagingReport monta as contagens do funil de mensagens da campanha.
// Campanha sem integração de chat habilitada volta com métricas vazias.
func (s *Service) GetMessagingReport(campaignID string) (*domain.MessagingReport, error) {
	campaign := domain.GetCampaign(campaignID)
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	report := &domain.MessagingReport{
		CampaignID: campaignID,
		Metrics:    map[string]int{},
	}

	if !campaign.Integrations.ManyChat || len(campaign.FunnelTags) == 0 {
		return report, nil
	}

	metrics, err := s.manychatService.GetFunnelMetrics(campaign.FunnelTags)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar métricas do funil")
	}

	report.Metrics = metrics
	return report, nil
}

// GetAdsReport monta as métricas de anúncios da campanha no período.
// Sem dados do provedor os campos numéricos voltam zerados.
func (s *Service) GetAdsReport(campaignID string, filters domain.ReportFilters) (*domain.AdsReport, error) {
	campaign := domain.GetCampaign(campaignID)
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	start, end := resolvePeriod(campaign, filters)

	report := &domain.AdsReport{
		CampaignID:  campaignID,
		Impressions: "0",
		Clicks:      "0",
		CTR:         "0",
		Spend:       "0",
		StartDate:   start,
		EndDate:     end,
	}

	if !campaign.Integrations.MetaAds {
		return report, nil
	}

	insight, err := s.metaAdsService.GetCampaignInsights(start, end, campaign.AdCampaignFilter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar métricas de anúncios")
	}

	if insight == nil {
		return report, nil
	}

	report.Impressions = insight.Impressions
	report.Clicks = insight.Clicks
	report.InlineLinkClicks = insight.InlineLinkClicks
	report.Spend = insight.Spend
	report.CTR = insight.InlineLinkClickCTR
	report.CPC = insight.CPC
	report.CPM = insight.CPM

	if spend, err := strconv.ParseFloat(insight.Spend, 64); err == nil {
		report.SpendFormatted = currency.FormatBRLFloat(spend)
	}

	return report, nil
}

// resolvePeriod resolve o período efetivo do relatório: filtros ausentes caem
// no período da campanha e o fim nunca passa do horário atual dentro dele.
func resolvePeriod(campaign *domain.Campaign, filters domain.ReportFilters) (time.Time, time.Time) {
	start := campaign.PeriodStart
	if filters.StartDate != nil {
		start = *filters.StartDate
	}

	end := campaign.PeriodEnd
	if now := utils.NowBRT(); now.Before(end) {
		end = now
	}
	if filters.EndDate != nil {
		end = *filters.EndDate
	}

	return start, end
}
