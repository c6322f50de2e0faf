package hotmartclient

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/escoladeautomacao/campaign-dashboard-api/internal/config"
)

// ErrNoCredential indica que nenhuma credencial do provedor de vendas foi
// configurada. É um modo degradado definido: as buscas retornam vazio.
var ErrNoCredential = errors.New("credencial do provedor de vendas não configurada")

// Margem de segurança para renovar o token antes da expiração real
const tokenExpiryMargin = 60 * time.Second

// TokenManager mantém o token de acesso do provedor de vendas em memória,
// renovando-o de forma tardia quando expira
type TokenManager struct {
	cfg        *config.Config
	httpClient *http.Client

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time

	now func() time.Time
}

// NewTokenManager cria um gerenciador de token para o provedor de vendas
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Hotmart.Timeout(),
		},
		now: time.Now,
	}
}

// AccessToken retorna um token válido, trocando a credencial Basic quando
// necessário. Sem credencial configurada retorna ErrNoCredential.
func (tm *TokenManager) AccessToken() (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.accessToken != "" && tm.now().Before(tm.expiresAt) {
		return tm.accessToken, nil
	}

	if tm.cfg.Hotmart.BasicToken == "" {
		return "", ErrNoCredential
	}

	tokenResp, err := ExchangeToken(tm.httpClient, tm.cfg.Hotmart.AuthURL, tm.cfg.Hotmart.BasicToken)
	if err != nil {
		return "", err
	}

	tm.accessToken = tokenResp.AccessToken
	tm.expiresAt = tm.now().Add(time.Duration(tokenResp.ExpiresIn)*time.Second - tokenExpiryMargin)

	logrus.WithField("expires_at", tm.expiresAt.Format(time.RFC3339)).
		Info("Token do provedor de vendas renovado com sucesso")

	return tm.accessToken, nil
}

// Invalidate descarta o token atual, forçando nova troca na próxima chamada
func (tm *TokenManager) Invalidate() {
	tm.mu.Lock()
	tm.accessToken = ""
	tm.expiresAt = time.Time{}
	tm.mu.Unlock()
}
