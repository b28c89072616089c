package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-exporter/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-exporter/internal/api"
	"github.com/vfg2006/meta-ads-exporter/internal/config"
	"github.com/vfg2006/meta-ads-exporter/internal/fetcher"
	"github.com/vfg2006/meta-ads-exporter/internal/manager"
	"github.com/vfg2006/meta-ads-exporter/internal/scheduler"
)

func main() {
	serve := flag.Bool("serve", false, "mantém o processo ativo com agendador e API administrativa")
	flag.Parse()

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

	metaClient := metaclient.NewClient(cfg)

	if !metaClient.ValidateAccess() {
		logrus.Fatal("Acesso à conta de anúncios do Meta inválido, verifique token e conta")
	}

	dataManager := manager.NewDataManager(
		cfg,
		fetcher.NewCampaignFetcher(cfg, metaClient),
		fetcher.NewAdSetFetcher(cfg, metaClient),
		fetcher.NewAdFetcher(cfg, metaClient),
	)

	if !*serve {
		// Modo padrão: uma exportação completa e encerra
		if err := dataManager.Run(); err != nil {
			logrus.WithError(err).Error("Exportação finalizada com erro")
			os.Exit(1)
		}
		return
	}

	exportSyncService := scheduler.NewExportSyncService(cfg, dataManager)

	if err := exportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de exportações")
	} else {
		logrus.Info("Agendador de exportações iniciado com sucesso")
	}

	server, err := api.New(cfg, exportSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
