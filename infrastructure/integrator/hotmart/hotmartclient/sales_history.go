package hotmartclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	hotmartdomain "github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/hotmart/domain"
)

// Limite de itens por página aceito pelo endpoint de histórico de vendas
const maxResultsPerPage = 500

type salesHistoryResponse struct {
	Items    []hotmartdomain.RawSale `json:"items"`
	PageInfo pageInfo                `json:"page_info"`
}

type pageInfo struct {
	NextPageToken string `json:"next_page_token"`
}

// FetchSalesHistory busca o histórico de vendas de um produto no período,
// paginando dia a dia. A paginação do provedor é pouco confiável em janelas
// longas, então o período é quebrado em janelas de 1 dia, cada uma paginada
// por token até esgotar.
//
// Transações repetidas entre janelas ou páginas são descartadas por um
// conjunto único de IDs, preservando a ordem do primeiro encontro. Falhas
// remotas interrompem a janela corrente e marcam o resultado como truncado,
// sem derrubar a busca inteira.
func (c *HotmartClient) FetchSalesHistory(productID string, start, end time.Time, status string) (*hotmartdomain.SalesHistoryResult, error) {
	result := &hotmartdomain.SalesHistoryResult{}

	if productID == "" {
		logrus.Warn("Busca de vendas ignorada: produto não informado")
		return result, nil
	}

	if start.After(end) {
		return result, nil
	}

	token, err := c.tokenManager.AccessToken()
	if err != nil {
		// Sem credencial válida o dashboard mostra "configure a integração";
		// não é um erro fatal
		logrus.WithError(err).Warn("Busca de vendas retornando vazio: sem token de acesso")
		return result, nil
	}

	seen := make(map[string]struct{})

	current := start
	for !current.After(end) {
		next := current.Add(24 * time.Hour)
		if next.After(end) {
			next = end
		}

		if truncated := c.fetchDayWindow(token, productID, status, current, next, seen, result); truncated {
			result.Truncated = true
		}

		current = next.Add(time.Second)
	}

	return result, nil
}

// fetchDayWindow percorre as páginas de uma janela de 1 dia acumulando as
// vendas ainda não vistas. Retorna true quando a janela foi interrompida
// por falha remota.
func (c *HotmartClient) fetchDayWindow(
	token string,
	productID string,
	status string,
	windowStart time.Time,
	windowEnd time.Time,
	seen map[string]struct{},
	result *hotmartdomain.SalesHistoryResult,
) bool {
	pageToken := ""
	pages := 0

	for {
		data, err := c.fetchPage(token, productID, status, windowStart, windowEnd, pageToken)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"product_id":   productID,
				"window_start": windowStart.Format(time.RFC3339),
				"window_end":   windowEnd.Format(time.RFC3339),
				"pages_read":   pages,
				"error":        err.Error(),
			}).Warn("Janela de vendas truncada por falha remota")
			return true
		}

		pages++

		for _, sale := range data.Items {
			tid := sale.TransactionID()
			if tid == "" {
				continue
			}
			if _, ok := seen[tid]; ok {
				continue
			}
			seen[tid] = struct{}{}
			result.Sales = append(result.Sales, sale)
		}

		pageToken = data.PageInfo.NextPageToken
		if pageToken == "" || len(data.Items) == 0 {
			return false
		}
	}
}

// fetchPage executa uma chamada ao endpoint de histórico de vendas
func (c *HotmartClient) fetchPage(
	token string,
	productID string,
	status string,
	windowStart time.Time,
	windowEnd time.Time,
	pageToken string,
) (*salesHistoryResponse, error) {
	endpoint, err := url.Parse(c.cfg.Hotmart.BaseURL + "/sales/history")
	if err != nil {
		return nil, fmt.Errorf("erro ao montar a URL de vendas: %w", err)
	}

	query := endpoint.Query()
	query.Set("product_id", productID)
	query.Set("start_date", strconv.FormatInt(windowStart.UnixMilli(), 10))
	query.Set("end_date", strconv.FormatInt(windowEnd.UnixMilli(), 10))
	query.Set("max_results", strconv.Itoa(maxResultsPerPage))

	if status != "" {
		query.Set("transaction_status", status)
	}

	if pageToken != "" {
		query.Set("page_token", pageToken)
	}

	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequest(http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var data salesHistoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &data, nil
}
