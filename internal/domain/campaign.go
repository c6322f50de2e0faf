package domain

import (
	"time"

	"github.com/escoladeautomacao/campaign-dashboard-api/pkg/utils"
)

// CampaignTheme guarda as cores usadas pelo front-end de cada campanha
type CampaignTheme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Mode       string `json:"mode"`
}

// CampaignIntegrations indica quais integrações estão habilitadas para a campanha
type CampaignIntegrations struct {
	GoogleSheets bool `json:"google_sheets"`
	Hotmart      bool `json:"hotmart"`
	ManyChat     bool `json:"manychat"`
	MetaAds      bool `json:"meta_ads"`
}

// CampaignProduct vincula um produto da Hotmart à campanha
type CampaignProduct struct {
	Role      string `json:"role"` // main, ingresso, orderbump
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
}

// Campaign descreve uma campanha de marketing acompanhada pelo dashboard
type Campaign struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	PeriodStart  time.Time            `json:"period_start"`
	PeriodEnd    time.Time            `json:"period_end"`
	Products     []CampaignProduct    `json:"products"`
	Tabs         []string             `json:"tabs"`
	Theme        CampaignTheme        `json:"theme"`
	Integrations CampaignIntegrations `json:"integrations"`

	// FunnelTags mapeia métricas do funil de mensagens para os nomes
	// das tags configuradas no provedor de chat
	FunnelTags map[string]string `json:"-"`

	// SheetTabs mapeia chaves de relatório para as abas da planilha da campanha
	SheetTabs map[string]string `json:"-"`

	// SpreadsheetKey identifica qual planilha configurada a campanha usa
	SpreadsheetKey string `json:"-"`

	// AdCampaignFilter filtra as campanhas de anúncio pelo nome no provedor
	AdCampaignFilter string `json:"-"`
}

// ActiveAt indica se a campanha está dentro do período em um dado instante
func (c Campaign) ActiveAt(t time.Time) bool {
	return !t.Before(c.PeriodStart) && !t.After(c.PeriodEnd)
}

// Campaigns retorna o registro estático de campanhas acompanhadas.
// A ordem é a ordem de exibição no seletor do dashboard.
func Campaigns() []Campaign {
	return []Campaign{
		{
			ID:          "bf25",
			Name:        "BLACK FRIDAY 2025",
			PeriodStart: time.Date(2025, 11, 6, 19, 0, 0, 0, utils.BRT),
			PeriodEnd:   time.Date(2025, 12, 8, 23, 59, 0, 0, utils.BRT),
			Products: []CampaignProduct{
				{Role: "main", ProductID: "6398418", Name: "Escola de Automação - Acesso Vitalício"},
			},
			Tabs: []string{
				"VISÃO DA CAPTAÇÃO",
				"VENDAS",
				"COMPARAR",
				"ORIGEM DOS LEADS",
				"PESQUISA",
				"INVESTIMENTOS EXTRAS",
				"META ADS",
				"API OFICIAL DO ZAPZAP",
				"DADOS",
				"METAS",
				"PLANEJAMENTO 2025",
			},
			Theme: CampaignTheme{
				Primary:    "#4A90E2",
				Secondary:  "#FFD166",
				Background: "#FFFFFF",
				Text:       "#1A1A1A",
				Mode:       "light",
			},
			Integrations: CampaignIntegrations{
				GoogleSheets: true,
				Hotmart:      true,
				ManyChat:     true,
				MetaAds:      true,
			},
			FunnelTags: map[string]string{
				"alunos_boas_vindas_recebeu": "[BF25]-LEAD-ALUNO-BOASVINDAS-RECEBEU",
				"alunos_boas_vindas_clicou":  "[BF25]-LEAD-ALUNO-BOASVINDAS-CLICOU",
				"geral_boas_vindas_recebeu":  "[BF25]-LEAD-GERAL-BOASVINDAS-RECEBEU",
				"geral_boas_vindas_clicou":   "[BF25]-LEAD-GERAL-BOASVINDAS-CLICOU",
				"geral_fluxo_instagram":      "BF25-RECEBEU-FLUXO-GERAL",
				"geral_clicou_link_lp":       "BF25-CLICOU-LINK-LP-CADASTRO",
				"geral_deixou_telefone":      "BF25-DEIXOU-TELEFONE-CADASTRO",
				"alunos_recebeu_convite_api": "BF25-ALUNOS-RECEBEU-CONVITE-1-API",
				"alunos_interagiu_convite":   "BF25-INTERAGIU-DISPARO-API-CONVITE-ALUNOS",
				"geral_recebeu_convite_api":  "BF25-GERAL-RECEBEU-CONVITE-1-API",
				"geral_interagiu_convite":    "BF25-INTERAGIU-DISPARO-API-CONVITE-GERAL",
			},
			SheetTabs: map[string]string{
				"leads_alunos":    "Leads [EA Alunos]",
				"leads_geral":     "Leads [Geral]",
				"pesquisa_alunos": "Pesquisa [EA Alunos]",
				"pesquisa_geral":  "Pesquisa [Geral]",
				"grupo_alunos":    "Entrou no Grupo [EA Alunos]",
				"grupo_geral":     "Entrou no Grupo [Geral]",
			},
			SpreadsheetKey:   "default",
			AdCampaignFilter: "BF25",
		},
		{
			ID:          "imersao0126",
			Name:        "IMERSÃO 01/26",
			PeriodStart: time.Date(2026, 1, 7, 0, 0, 0, 0, utils.BRT),
			PeriodEnd:   time.Date(2026, 1, 31, 23, 59, 0, 0, utils.BRT),
			Products: []CampaignProduct{
				{Role: "ingresso", ProductID: "6926419", Name: "Ingresso Imersão"},
				{Role: "orderbump", ProductID: "6926479", Name: "Orderbump Gravação"},
			},
			Tabs: []string{
				"VENDAS",
				"REEMBOLSOS",
				"PESQUISA",
				"MONITORAMENTO GRUPOS",
			},
			Theme: CampaignTheme{
				Primary:    "#F94E03",
				Secondary:  "#FB7B3D",
				Background: "#0B1437",
				Text:       "#FFFFFF",
				Mode:       "dark",
			},
			Integrations: CampaignIntegrations{
				GoogleSheets: true,
				Hotmart:      true,
				ManyChat:     false,
				MetaAds:      false,
			},
			SheetTabs: map[string]string{
				"vendas":        "VENDAS",
				"reembolsos":    "REEMBOLSOS",
				"pesquisa":      "PESQUISA",
				"monitoramento": "MONITORAMENTO GRUPOS",
			},
			SpreadsheetKey:   "imersao0126",
			AdCampaignFilter: "WSIA_JAN26",
		},
	}
}

// GetCampaign busca uma campanha pelo ID. Retorna nil quando não existe.
func GetCampaign(id string) *Campaign {
	for _, c := range Campaigns() {
		if c.ID == id {
			return &c
		}
	}
	return nil
}
