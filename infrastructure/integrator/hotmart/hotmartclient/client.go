package hotmartclient

import (
	"net/http"
	"time"

	hotmartdomain "github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/hotmart/domain"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/config"
)

type Client interface {
	FetchSalesHistory(productID string, start, end time.Time, status string) (*hotmartdomain.SalesHistoryResult, error)
}

type HotmartClient struct {
	httpClient   *http.Client
	cfg          *config.Config
	tokenManager *TokenManager
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	return &HotmartClient{
		httpClient: &http.Client{
			Timeout: cfg.Hotmart.Timeout(),
		},
		cfg:          cfg,
		tokenManager: tokenManager,
	}
}
