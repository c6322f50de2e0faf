package hotmart

//go:generate mockgen -source=service.go -destination=mocks/integrator_mock.go -package=mocks

import (
	"fmt"
	"time"

	hotmartdomain "github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/hotmart/domain"
	"github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/hotmart/hotmartclient"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/config"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/domain"
	"github.com/escoladeautomacao/campaign-dashboard-api/pkg/cache"
)

// Integrator expõe as consultas de vendas do provedor para as camadas de cima
type Integrator interface {
	// GetSalesHistory busca o histórico bruto de um produto no período,
	// opcionalmente filtrado por status de transação
	GetSalesHistory(productID string, start, end time.Time, status string) (*hotmartdomain.SalesHistoryResult, error)

	// GetApprovedSales reúne as vendas concretizadas (APPROVED ∪ COMPLETE)
	GetApprovedSales(productID string, start, end time.Time) (*hotmartdomain.SalesHistoryResult, error)

	// GetRefundedSales reúne as devoluções em todos os status de reembolso
	GetRefundedSales(productID string, start, end time.Time) (*hotmartdomain.SalesHistoryResult, error)
}

type Service struct {
	cfg    *config.Config
	client hotmartclient.Client
	cache  cache.Cache
}

func New(cfg *config.Config, client hotmartclient.Client, resultCache cache.Cache) Integrator {
	return &Service{
		cfg:    cfg,
		client: client,
		cache:  resultCache,
	}
}

// GetSalesHistory consulta o cliente com cache por tupla de argumentos.
// A chave precisa conter os quatro parâmetros: duas consultas iguais em tudo
// menos o status são resultados diferentes.
func (s *Service) GetSalesHistory(productID string, start, end time.Time, status string) (*hotmartdomain.SalesHistoryResult, error) {
	key := salesCacheKey(productID, start, end, status)

	value, err := s.cache.GetOrLoad(key, s.cfg.Cache.TTL(), func() (interface{}, error) {
		return s.client.FetchSalesHistory(productID, start, end, status)
	})
	if err != nil {
		return nil, err
	}

	result, ok := value.(*hotmartdomain.SalesHistoryResult)
	if !ok {
		return nil, fmt.Errorf("valor inesperado no cache para a chave %s", key)
	}

	return result, nil
}

// GetApprovedSales une as buscas pelos status de venda concretizada,
// deduplicando novamente entre as duas chamadas
func (s *Service) GetApprovedSales(productID string, start, end time.Time) (*hotmartdomain.SalesHistoryResult, error) {
	return s.mergeByStatuses(productID, start, end, domain.ApprovedStatuses)
}

// GetRefundedSales une as buscas pelos quatro status de devolução de dinheiro
func (s *Service) GetRefundedSales(productID string, start, end time.Time) (*hotmartdomain.SalesHistoryResult, error) {
	return s.mergeByStatuses(productID, start, end, domain.RefundStatuses)
}

func (s *Service) mergeByStatuses(productID string, start, end time.Time, statuses []string) (*hotmartdomain.SalesHistoryResult, error) {
	combined := &hotmartdomain.SalesHistoryResult{}
	seen := make(map[string]struct{})

	for _, status := range statuses {
		result, err := s.GetSalesHistory(productID, start, end, status)
		if err != nil {
			return nil, err
		}
		combined.Merge(result, seen)
	}

	return combined, nil
}

func salesCacheKey(productID string, start, end time.Time, status string) string {
	return fmt.Sprintf("hotmart:sales:%s:%d:%d:%s", productID, start.UnixMilli(), end.UnixMilli(), status)
}
