package manychat

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	manychatdomain "github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/manychat/domain"
	"github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/manychat/manychatclient"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/config"
	"github.com/escoladeautomacao/campaign-dashboard-api/pkg/cache"
)

//go:generate mockgen -source=service.go -destination=mocks/integrator_mock.go -package=mocks
type Integrator interface {
	GetFunnelMetrics(tags map[string]string) (map[string]int, error)
}

type Service struct {
	cfg    *config.Config
	client manychatclient.Client
	cache  cache.Cache
}

func New(cfg *config.Config, client manychatclient.Client, c cache.Cache) Integrator {
	return &Service{
		cfg:    cfg,
		client: client,
		cache:  c,
	}
}

// GetFunnelMetrics retorna a contagem de assinantes por etapa do funil.
// As etapas são rotuladas pelo nome amigável e preenchidas com zero quando
// a tag não existe mais na página ou o token não está configurado.
func (s *Service) GetFunnelMetrics(tags map[string]string) (map[string]int, error) {
	metrics := make(map[string]int, len(tags))
	for label := range tags {
		metrics[label] = 0
	}

	if strings.TrimSpace(s.cfg.ManyChat.APIToken) == "" {
		logrus.Warn("Token do ManyChat não configurado, retornando métricas vazias")
		return metrics, nil
	}

	pageTags, err := s.getTags()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar as tags da página")
		return metrics, nil
	}

	tagIDByName := make(map[string]int64, len(pageTags))
	for _, tag := range pageTags {
		tagIDByName[tag.Name] = tag.ID
	}

	for label, tagName := range tags {
		tagID, ok := tagIDByName[tagName]
		if !ok {
			logrus.WithField("tag", tagName).Warn("Tag não encontrada na página")
			continue
		}

		count, err := s.countSubscribers(tagID)
		if err != nil {
			logrus.WithError(err).WithField("tag", tagName).Error("Erro ao buscar os assinantes da tag")
			continue
		}

		metrics[label] = count
	}

	return metrics, nil
}

func (s *Service) getTags() ([]manychatdomain.Tag, error) {
	value, err := s.cache.GetOrLoad("manychat:tags", s.cfg.Cache.TTL(), func() (interface{}, error) {
		return s.client.GetTags()
	})
	if err != nil {
		return nil, err
	}

	tags, ok := value.([]manychatdomain.Tag)
	if !ok {
		return nil, fmt.Errorf("valor inesperado no cache de tags")
	}

	return tags, nil
}

func (s *Service) countSubscribers(tagID int64) (int, error) {
	key := fmt.Sprintf("manychat:subscribers:%d", tagID)
	value, err := s.cache.GetOrLoad(key, s.cfg.Cache.TTL(), func() (interface{}, error) {
		subscribers, err := s.client.FindSubscribersByTag(tagID)
		if err != nil {
			return nil, err
		}
		return len(subscribers), nil
	})
	if err != nil {
		return 0, err
	}

	count, ok := value.(int)
	if !ok {
		return 0, fmt.Errorf("valor inesperado no cache de assinantes")
	}

	return count, nil
}
