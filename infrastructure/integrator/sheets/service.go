package sheets

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/config"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/domain"
	"github.com/escoladeautomacao/campaign-dashboard-api/pkg/cache"
)

//go:generate mockgen -source=service.go -destination=mocks/integrator_mock.go -package=mocks
type Integrator interface {
	GetCampaignSheet(campaign *domain.Campaign, tabKey string) ([][]string, error)
	GetCampaignSheets(campaign *domain.Campaign) (map[string][][]string, error)
}

type Service struct {
	cfg    *config.Config
	client sheetsclient.Client
	cache  cache.Cache
}

func New(cfg *config.Config, client sheetsclient.Client, c cache.Cache) Integrator {
	return &Service{
		cfg:    cfg,
		client: client,
		cache:  c,
	}
}

// GetCampaignSheet busca as linhas da aba identificada pela chave de relatório
// da campanha. Chave desconhecida ou falha remota resultam em dados vazios.
func (s *Service) GetCampaignSheet(campaign *domain.Campaign, tabKey string) ([][]string, error) {
	sheetName, ok := campaign.SheetTabs[tabKey]
	if !ok {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"tab_key":     tabKey,
		}).Warn("Aba de planilha não configurada para a campanha")
		return nil, nil
	}

	spreadsheetID := s.cfg.Spreadsheets[campaign.SpreadsheetKey]

	key := fmt.Sprintf("sheets:%s:%s", campaign.ID, tabKey)
	value, err := s.cache.GetOrLoad(key, s.cfg.Cache.TTL(), func() (interface{}, error) {
		return s.client.GetSheetValues(spreadsheetID, sheetName)
	})
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"sheet":       sheetName,
		}).Error("Erro ao buscar dados da planilha")
		return nil, nil
	}

	values, _ := value.([][]string)
	return values, nil
}

// GetCampaignSheets busca todas as abas configuradas da campanha
func (s *Service) GetCampaignSheets(campaign *domain.Campaign) (map[string][][]string, error) {
	result := make(map[string][][]string, len(campaign.SheetTabs))

	for tabKey := range campaign.SheetTabs {
		values, err := s.GetCampaignSheet(campaign, tabKey)
		if err != nil {
			return nil, err
		}
		result[tabKey] = values
	}

	return result, nil
}
