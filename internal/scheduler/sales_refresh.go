package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/hotmart"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/config"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/domain"
	"github.com/escoladeautomacao/campaign-dashboard-api/pkg/utils"
)

// SalesRefreshService agenda o pré-aquecimento do cache de vendas das
// campanhas ativas, para que o primeiro acesso do dia ao dashboard não
// pague o custo das consultas remotas
type SalesRefreshService struct {
	scheduler      *gocron.Scheduler
	appConfig      *config.Config
	hotmartService hotmart.Integrator
	refreshRunning bool
	refreshMutex   sync.Mutex
}

// NewSalesRefreshService cria o serviço de pré-aquecimento de vendas
func NewSalesRefreshService(
	hotmartService hotmart.Integrator,
	appConfig *config.Config,
) *SalesRefreshService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   appConfig.SalesRefresh.CronSchedule,
		"refresh_enabled": appConfig.SalesRefresh.Enabled,
	}).Info("Configuração do agendador de pré-aquecimento de vendas carregada")

	return &SalesRefreshService{
		scheduler:      scheduler,
		appConfig:      appConfig,
		hotmartService: hotmartService,
		refreshRunning: false,
	}
}

// Start inicia o agendador
func (s *SalesRefreshService) Start(ctx context.Context) error {
	if !s.appConfig.SalesRefresh.Enabled {
		logrus.Info("Pré-aquecimento de vendas desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.appConfig.SalesRefresh.CronSchedule).Info("Iniciando agendador de pré-aquecimento de vendas")

	_, err := s.scheduler.Cron(s.appConfig.SalesRefresh.CronSchedule).Do(func() {
		s.refreshActiveCampaigns()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar pré-aquecimento de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de pré-aquecimento de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshActiveCampaigns aquece o cache de vendas aprovadas de cada produto
// das campanhas em período ativo
func (s *SalesRefreshService) refreshActiveCampaigns() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Pré-aquecimento de vendas já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.refreshMutex.Unlock()

	startTime := time.Now()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.refreshMutex.Unlock()
	}()

	active := s.activeCampaigns()
	if len(active) == 0 {
		logrus.Info("Nenhuma campanha ativa para pré-aquecimento de vendas")
		return
	}

	logrus.WithField("campaigns", len(active)).Info("Iniciando pré-aquecimento de vendas das campanhas ativas")

	products := 0
	for _, campaign := range active {
		products += s.refreshCampaign(campaign)
	}

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"campaigns": len(active),
		"products":  products,
	}).Info("Pré-aquecimento de vendas concluído")
}

// activeCampaigns filtra as campanhas cujo período inclui o instante atual
func (s *SalesRefreshService) activeCampaigns() []domain.Campaign {
	now := utils.NowBRT()

	var active []domain.Campaign
	for _, campaign := range domain.Campaigns() {
		if campaign.ActiveAt(now) {
			active = append(active, campaign)
		}
	}

	return active
}

// refreshCampaign consulta as vendas aprovadas de cada produto da campanha.
// O resultado em si é descartado: o efeito desejado é popular o cache do
// integrador. Retorna quantos produtos foram aquecidos com sucesso.
func (s *SalesRefreshService) refreshCampaign(campaign domain.Campaign) int {
	start := campaign.PeriodStart
	end := campaign.PeriodEnd
	if now := utils.NowBRT(); end.After(now) {
		end = now
	}

	warmed := 0
	for _, product := range campaign.Products {
		_, err := s.hotmartService.GetApprovedSales(product.ProductID, start, end)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"product_id":  product.ProductID,
			}).Error("Erro ao pré-aquecer vendas do produto")
			continue
		}
		warmed++
	}

	return warmed
}
