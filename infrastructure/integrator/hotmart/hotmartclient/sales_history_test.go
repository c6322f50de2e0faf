package hotmartclient

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escoladeautomacao/campaign-dashboard-api/internal/config"
)

func newTestConfig(serverURL string) *config.Config {
	return &config.Config{
		Hotmart: config.Hotmart{
			AuthURL:        serverURL + "/security/oauth/token",
			BaseURL:        serverURL,
			BasicToken:     "basic123",
			TimeoutSeconds: 5,
		},
	}
}

func writeTokenResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"access_token":"tok-abc","token_type":"bearer","expires_in":3600}`)
}

func saleJSON(transaction string, orderDateMs int64, value float64) string {
	return fmt.Sprintf(
		`{"purchase":{"transaction":%q,"order_date":%d,"status":"APPROVED","hotmart_fee":{"base":%v},"offer":{"code":"of1"}},"buyer":{"email":"a@b.com","name":"Comprador"}}`,
		transaction, orderDateMs, value,
	)
}

func TestFetchSalesHistoryStartAfterEnd(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	cfg := newTestConfig(server.URL)
	client := NewClient(cfg, NewTokenManager(cfg))

	start := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(-24 * time.Hour)

	result, err := client.FetchSalesHistory("6398418", start, end, "")
	require.NoError(t, err)
	assert.Empty(t, result.Sales)
	assert.False(t, result.Truncated)
	assert.Zero(t, calls, "nenhuma chamada remota deve acontecer com período invertido")
}

func TestFetchSalesHistoryWithoutCredential(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	cfg := newTestConfig(server.URL)
	cfg.Hotmart.BasicToken = ""
	client := NewClient(cfg, NewTokenManager(cfg))

	start := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(12 * time.Hour)

	result, err := client.FetchSalesHistory("6398418", start, end, "")
	require.NoError(t, err)
	assert.Empty(t, result.Sales)
	assert.Zero(t, calls)
}

func TestFetchSalesHistoryPaginationAndDedup(t *testing.T) {
	start := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(23 * time.Hour)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/security/oauth/token" {
			writeTokenResponse(w)
			return
		}

		require.Equal(t, "/sales/history", r.URL.Path)
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		assert.Equal(t, "500", r.URL.Query().Get("max_results"))
		assert.Equal(t, "APPROVED", r.URL.Query().Get("transaction_status"))

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page_token") == "" {
			// Primeira página: A e B, com próxima página
			fmt.Fprintf(w, `{"items":[%s,%s],"page_info":{"next_page_token":"p2"}}`,
				saleJSON("TX-A", start.UnixMilli(), 100),
				saleJSON("TX-B", start.UnixMilli(), 200))
			return
		}

		// Segunda página repete B (sobreposição de paginação) e traz C
		fmt.Fprintf(w, `{"items":[%s,%s],"page_info":{}}`,
			saleJSON("TX-B", start.UnixMilli(), 200),
			saleJSON("TX-C", start.UnixMilli(), 300))
	}))
	defer server.Close()

	cfg := newTestConfig(server.URL)
	client := NewClient(cfg, NewTokenManager(cfg))

	result, err := client.FetchSalesHistory("6398418", start, end, "APPROVED")
	require.NoError(t, err)
	require.Len(t, result.Sales, 3)
	assert.False(t, result.Truncated)

	// A ordem do primeiro encontro é preservada
	assert.Equal(t, "TX-A", result.Sales[0].TransactionID())
	assert.Equal(t, "TX-B", result.Sales[1].TransactionID())
	assert.Equal(t, "TX-C", result.Sales[2].TransactionID())
}

func TestFetchSalesHistoryDedupAcrossDayWindows(t *testing.T) {
	start := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(36 * time.Hour) // duas janelas de 1 dia

	windows := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/security/oauth/token" {
			writeTokenResponse(w)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		windowStart, _ := strconv.ParseInt(r.URL.Query().Get("start_date"), 10, 64)
		windows++

		if windowStart == start.UnixMilli() {
			// Janela do primeiro dia: A e B
			fmt.Fprintf(w, `{"items":[%s,%s],"page_info":{}}`,
				saleJSON("TX-A", start.UnixMilli(), 100),
				saleJSON("TX-B", start.UnixMilli(), 200))
			return
		}

		// Janela do segundo dia devolve B de novo (transação na fronteira) e D
		fmt.Fprintf(w, `{"items":[%s,%s],"page_info":{}}`,
			saleJSON("TX-B", start.UnixMilli(), 200),
			saleJSON("TX-D", end.UnixMilli(), 400))
	}))
	defer server.Close()

	cfg := newTestConfig(server.URL)
	client := NewClient(cfg, NewTokenManager(cfg))

	result, err := client.FetchSalesHistory("6398418", start, end, "")
	require.NoError(t, err)
	assert.Equal(t, 2, windows)
	require.Len(t, result.Sales, 3)
	assert.Equal(t, "TX-A", result.Sales[0].TransactionID())
	assert.Equal(t, "TX-B", result.Sales[1].TransactionID())
	assert.Equal(t, "TX-D", result.Sales[2].TransactionID())
}

func TestFetchSalesHistoryTruncatesOnRemoteFailure(t *testing.T) {
	start := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(36 * time.Hour)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/security/oauth/token" {
			writeTokenResponse(w)
			return
		}

		windowStart, _ := strconv.ParseInt(r.URL.Query().Get("start_date"), 10, 64)
		if windowStart == start.UnixMilli() {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"items":[%s],"page_info":{}}`, saleJSON("TX-A", start.UnixMilli(), 100))
			return
		}

		// Segunda janela falha: o resultado acumulado é mantido e marcado como truncado
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := newTestConfig(server.URL)
	client := NewClient(cfg, NewTokenManager(cfg))

	result, err := client.FetchSalesHistory("6398418", start, end, "")
	require.NoError(t, err)
	require.Len(t, result.Sales, 1)
	assert.Equal(t, "TX-A", result.Sales[0].TransactionID())
	assert.True(t, result.Truncated)
}

func TestTokenManagerReusesTokenUntilExpiry(t *testing.T) {
	exchanges := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/security/oauth/token", r.URL.Path)
		assert.Equal(t, "Basic basic123", r.Header.Get("Authorization"))
		exchanges++
		writeTokenResponse(w)
	}))
	defer server.Close()

	cfg := newTestConfig(server.URL)
	tm := NewTokenManager(cfg)

	tok1, err := tm.AccessToken()
	require.NoError(t, err)
	tok2, err := tm.AccessToken()
	require.NoError(t, err)

	assert.Equal(t, "tok-abc", tok1)
	assert.Equal(t, tok1, tok2)
	assert.Equal(t, 1, exchanges, "token válido deve ser reutilizado")

	tm.Invalidate()
	_, err = tm.AccessToken()
	require.NoError(t, err)
	assert.Equal(t, 2, exchanges)
}
