package domain

import "time"

// ReportFilters delimita o período de um relatório. Datas nulas são
// resolvidas para o período da campanha antes da consulta.
type ReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// SalesReport é a resposta da aba de vendas de uma campanha
type SalesReport struct {
	CampaignID string `json:"campaign_id"`

	Metrics SalesMetrics `json:"metrics"`

	// Valores já formatados para os cards do dashboard
	TotalRevenueFormatted  string `json:"total_revenue_formatted"`
	AverageTicketFormatted string `json:"average_ticket_formatted"`

	// SalesByProduct conta as vendas por papel do produto na campanha
	// (main, ingresso, orderbump)
	SalesByProduct map[string]int `json:"sales_by_product,omitempty"`

	Daily []DailyBucket    `json:"daily"`
	Rows  []NormalizedSale `json:"rows"`

	// Truncated indica que alguma busca remota foi interrompida e o
	// resultado pode estar incompleto
	Truncated bool `json:"truncated"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// RefundsReport é a resposta da aba de reembolsos de uma campanha
type RefundsReport struct {
	CampaignID string `json:"campaign_id"`

	Metrics                SalesMetrics `json:"metrics"`
	RefundedValueFormatted string       `json:"refunded_value_formatted"`

	// RefundRate é o percentual de reembolsos sobre as vendas aprovadas
	RefundRate          float64 `json:"refund_rate"`
	RefundRateFormatted string  `json:"refund_rate_formatted"`

	Rows      []NormalizedSale `json:"rows"`
	Truncated bool             `json:"truncated"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// LeadsReport reúne as abas de captação vindas da planilha da campanha
type LeadsReport struct {
	CampaignID string `json:"campaign_id"`

	// Tables indexa cada aba configurada pelo seu identificador
	Tables map[string]SheetTable `json:"tables"`

	// Counts traz a contagem de registros por aba, para os cards
	Counts map[string]int `json:"counts"`
}

// MessagingReport traz as contagens do funil de mensagens por tag
type MessagingReport struct {
	CampaignID string         `json:"campaign_id"`
	Metrics    map[string]int `json:"metrics"`
}

// AdsReport traz as métricas agregadas do provedor de anúncios
type AdsReport struct {
	CampaignID string `json:"campaign_id"`

	Impressions      string `json:"impressions"`
	Clicks           string `json:"clicks"`
	InlineLinkClicks string `json:"inline_link_clicks"`
	Spend            string `json:"spend"`
	CTR              string `json:"ctr"`
	CPC              string `json:"cpc"`
	CPM              string `json:"cpm"`

	SpendFormatted string `json:"spend_formatted,omitempty"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}
