package metaadsdomain

// AdInsight agrega as métricas de anúncios no período consultado.
// A Graph API devolve os valores numéricos como strings.
type AdInsight struct {
	Impressions        string   `json:"impressions"`
	Clicks             string   `json:"clicks"`
	InlineLinkClicks   string   `json:"inline_link_clicks"`
	Spend              string   `json:"spend"`
	InlineLinkClickCTR string   `json:"inline_link_click_ctr"`
	CPC                string   `json:"cpc"`
	CPM                string   `json:"cpm"`
	Actions            []Action `json:"actions"`
	DateStart          string   `json:"date_start"`
	DateStop           string   `json:"date_stop"`
}

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// AdAccount descreve a conta de anúncios configurada
type AdAccount struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// Campaign descreve uma campanha de anúncios da conta
type Campaign struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Objective string `json:"objective"`
}
