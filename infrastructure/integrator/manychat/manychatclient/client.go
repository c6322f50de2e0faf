package manychatclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	manychatdomain "github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/manychat/domain"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/config"
)

type Client interface {
	GetPageStats() (*manychatdomain.PageStats, error)
	GetTags() ([]manychatdomain.Tag, error)
	FindSubscribersByTag(tagID int64) ([]manychatdomain.Subscriber, error)
}

type ManyChatClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &ManyChatClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg: cfg,
	}
}

type pageStatsResponse struct {
	Data manychatdomain.PageStats `json:"data"`
}

type tagsResponse struct {
	Data []manychatdomain.Tag `json:"data"`
}

type subscribersResponse struct {
	Data []manychatdomain.Subscriber `json:"data"`
}

func (c *ManyChatClient) GetPageStats() (*manychatdomain.PageStats, error) {
	var response pageStatsResponse
	if err := c.do(http.MethodGet, "/page/getStats", nil, &response); err != nil {
		return nil, err
	}
	return &response.Data, nil
}

func (c *ManyChatClient) GetTags() ([]manychatdomain.Tag, error) {
	var response tagsResponse
	if err := c.do(http.MethodGet, "/page/getTags", nil, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

func (c *ManyChatClient) FindSubscribersByTag(tagID int64) ([]manychatdomain.Subscriber, error) {
	payload := map[string]int64{"tag_id": tagID}

	var response subscribersResponse
	if err := c.do(http.MethodPost, "/subscribers/findByTag", payload, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// do executa uma chamada autenticada ao provedor de chat
func (c *ManyChatClient) do(method, endpoint string, payload any, out any) error {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("erro ao serializar o payload: %w", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.cfg.ManyChat.BaseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.ManyChat.APIToken)
	req.Header.Set("Content-Type", "application/json")

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
