package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/hotmart"
	"github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/hotmart/hotmartclient"
	"github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/manychat"
	"github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/manychat/manychatclient"
	"github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/metaads"
	"github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/metaads/metaclient"
	"github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/sheets"
	"github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/api"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/config"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/scheduler"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/usecases/authenticating"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/usecases/reporting"
	"github.com/escoladeautomacao/campaign-dashboard-api/pkg/cache"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cache em memória compartilhado por todas as integrações
	resultCache := cache.NewMemory()

	authenticator := authenticating.NewService(cfg)

	tokenManager := hotmartclient.NewTokenManager(cfg)
	hotmartClient := hotmartclient.NewClient(cfg, tokenManager)
	hotmartIntegrator := hotmart.New(cfg, hotmartClient, resultCache)

	manychatClient := manychatclient.NewClient(cfg)
	manychatIntegrator := manychat.New(cfg, manychatClient, resultCache)

	metaClient := metaclient.NewClient(cfg)
	metaAdsIntegrator := metaads.New(cfg, metaClient, resultCache)

	sheetsClient := sheetsclient.NewClient(cfg)
	sheetsIntegrator := sheets.New(cfg, sheetsClient, resultCache)

	reportingService := reporting.NewService(
		cfg,
		hotmartIntegrator,
		manychatIntegrator,
		metaAdsIntegrator,
		sheetsIntegrator,
	)

	// Inicializa o agendador de pré-aquecimento de vendas
	salesRefreshService := scheduler.NewSalesRefreshService(hotmartIntegrator, cfg)

	if err := salesRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de pré-aquecimento de vendas")
	} else {
		logrus.Info("Agendador de pré-aquecimento de vendas iniciado com sucesso")
	}

	server, err := api.New(cfg, reportingService, authenticator)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
