package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	metaadsdomain "github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/metaads/domain"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/config"
)

type Client interface {
	GetAccountInfo() (*metaadsdomain.AdAccount, error)
	GetInsights(start, end time.Time, campaignFilter string) (*metaadsdomain.AdInsight, error)
	GetCampaigns(nameFilter string) ([]metaadsdomain.Campaign, error)
}

type MetaClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg: cfg,
	}
}

type insightsResponse struct {
	Data []metaadsdomain.AdInsight `json:"data"`
}

type campaignsResponse struct {
	Data []metaadsdomain.Campaign `json:"data"`
}

// GetAccountInfo busca os dados da conta de anúncios configurada
func (c *MetaClient) GetAccountInfo() (*metaadsdomain.AdAccount, error) {
	if !c.configured() {
		return nil, nil
	}

	endpoint := fmt.Sprintf("%s/act_%s", c.cfg.MetaAds.BaseURL, c.cfg.MetaAds.AdAccountID)

	var account metaadsdomain.AdAccount
	if err := c.get(endpoint, url.Values{}, &account); err != nil {
		return nil, err
	}

	return &account, nil
}

// GetInsights busca as métricas agregadas da conta no período, opcionalmente
// restritas às campanhas cujo nome contém o filtro. Sem credencial configurada
// retorna nil sem erro, deixando o dashboard em modo degradado.
func (c *MetaClient) GetInsights(start, end time.Time, campaignFilter string) (*metaadsdomain.AdInsight, error) {
	if !c.configured() {
		logrus.Warn("Credenciais da Meta não configuradas, retornando métricas vazias")
		return nil, nil
	}

	endpoint := fmt.Sprintf("%s/act_%s/insights", c.cfg.MetaAds.BaseURL, c.cfg.MetaAds.AdAccountID)

	params := url.Values{}
	params.Set("fields", "impressions,clicks,inline_link_clicks,spend,actions,inline_link_click_ctr,cpc,cpm")
	params.Set("time_range", fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", start.Format(time.DateOnly), end.Format(time.DateOnly)))

	if campaignFilter != "" {
		params.Set("filtering", fmt.Sprintf("[{\"field\":\"campaign.name\",\"operator\":\"CONTAIN\",\"value\":%q}]", campaignFilter))
	}

	var response insightsResponse
	if err := c.get(endpoint, params, &response); err != nil {
		return nil, err
	}

	if len(response.Data) == 0 {
		return nil, nil
	}

	return &response.Data[0], nil
}

// GetCampaigns lista as campanhas da conta, opcionalmente filtradas pelo nome
func (c *MetaClient) GetCampaigns(nameFilter string) ([]metaadsdomain.Campaign, error) {
	if !c.configured() {
		return nil, nil
	}

	endpoint := fmt.Sprintf("%s/act_%s/campaigns", c.cfg.MetaAds.BaseURL, c.cfg.MetaAds.AdAccountID)

	params := url.Values{}
	params.Set("fields", "name,status,objective")

	if nameFilter != "" {
		params.Set("filtering", fmt.Sprintf("[{\"field\":\"name\",\"operator\":\"CONTAIN\",\"value\":%q}]", nameFilter))
	}

	var response campaignsResponse
	if err := c.get(endpoint, params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

func (c *MetaClient) configured() bool {
	return c.cfg.MetaAds.AccessToken != "" && c.cfg.MetaAds.AdAccountID != ""
}

func (c *MetaClient) get(endpoint string, params url.Values, out any) error {
	params.Set("access_token", c.cfg.MetaAds.AccessToken)

	req, err := http.NewRequest(http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
