package metaads

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	metaadsdomain "github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/metaads/domain"
	"github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/metaads/metaclient"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/config"
	"github.com/escoladeautomacao/campaign-dashboard-api/pkg/cache"
)

//go:generate mockgen -source=service.go -destination=mocks/integrator_mock.go -package=mocks
type Integrator interface {
	GetCampaignInsights(start, end time.Time, campaignFilter string) (*metaadsdomain.AdInsight, error)
	GetCampaigns(nameFilter string) ([]metaadsdomain.Campaign, error)
}

type Service struct {
	cfg    *config.Config
	client metaclient.Client
	cache  cache.Cache
}

func New(cfg *config.Config, client metaclient.Client, c cache.Cache) Integrator {
	return &Service{
		cfg:    cfg,
		client: client,
		cache:  c,
	}
}

// GetCampaignInsights busca as métricas de anúncios do período restritas às
// campanhas cujo nome contém o filtro. Falhas remotas são registradas e o
// resultado volta vazio, mantendo o restante do relatório utilizável.
func (s *Service) GetCampaignInsights(start, end time.Time, campaignFilter string) (*metaadsdomain.AdInsight, error) {
	key := fmt.Sprintf("metaads:insights:%s:%s:%s", start.Format(time.DateOnly), end.Format(time.DateOnly), campaignFilter)

	value, err := s.cache.GetOrLoad(key, s.cfg.Cache.TTL(), func() (interface{}, error) {
		return s.client.GetInsights(start, end, campaignFilter)
	})
	if err != nil {
		logrus.WithError(err).WithField("campaign_filter", campaignFilter).Error("Erro ao buscar métricas de anúncios")
		return nil, nil
	}

	insight, _ := value.(*metaadsdomain.AdInsight)
	return insight, nil
}

func (s *Service) GetCampaigns(nameFilter string) ([]metaadsdomain.Campaign, error) {
	key := fmt.Sprintf("metaads:campaigns:%s", nameFilter)

	value, err := s.cache.GetOrLoad(key, s.cfg.Cache.TTL(), func() (interface{}, error) {
		return s.client.GetCampaigns(nameFilter)
	})
	if err != nil {
		logrus.WithError(err).WithField("name_filter", nameFilter).Error("Erro ao listar campanhas de anúncios")
		return nil, nil
	}

	campaigns, _ := value.([]metaadsdomain.Campaign)
	return campaigns, nil
}
