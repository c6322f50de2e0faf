package sheetsclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/escoladeautomacao/campaign-dashboard-api/internal/config"
)

type Client interface {
	GetSheetValues(spreadsheetID, sheetName string) ([][]string, error)
}

type SheetsClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &SheetsClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg: cfg,
	}
}

type valuesResponse struct {
	Values [][]string `json:"values"`
}

// GetSheetValues busca as linhas de uma aba da planilha no intervalo A:Z.
// Sem planilha ou conector configurados retorna vazio sem erro, deixando a
// aba correspondente do dashboard em modo degradado.
func (c *SheetsClient) GetSheetValues(spreadsheetID, sheetName string) ([][]string, error) {
	if spreadsheetID == "" || c.cfg.Sheets.ConnectorHost == "" {
		logrus.WithField("sheet", sheetName).Warn("Planilha não configurada, retornando dados vazios")
		return nil, nil
	}

	endpoint := fmt.Sprintf(
		"https://%s/google-sheets/spreadsheets/%s/values/%s",
		c.cfg.Sheets.ConnectorHost,
		spreadsheetID,
		url.PathEscape(sheetName+"!A:Z"),
	)

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.Sheets.IdentityToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var data valuesResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return data.Values, nil
}
