package manager

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-exporter/internal/config"
	"github.com/vfg2006/meta-ads-exporter/internal/exporter"
	"github.com/vfg2006/meta-ads-exporter/internal/fetcher"
)

// DataManager orquestra a exportação completa: campanhas, conjuntos e
// anúncios, nessa ordem, com pausa entre tipos para aliviar a API.
type DataManager struct {
	cfg      *config.Config
	fetchers []entityExport
	sleep    func(time.Duration)
	now      func() time.Time
}

type entityExport struct {
	fetcher   fetcher.Fetcher
	outputDir string
}

func NewDataManager(cfg *config.Config, campaigns, adsets, ads fetcher.Fetcher) *DataManager {
	return &DataManager{
		cfg: cfg,
		fetchers: []entityExport{
			{fetcher: campaigns, outputDir: cfg.Exports.CampaignDir()},
			{fetcher: adsets, outputDir: cfg.Exports.AdSetDir()},
			{fetcher: ads, outputDir: cfg.Exports.AdDir()},
		},
		sleep: time.Sleep,
		now:   time.Now,
	}
}

// Run executa a exportação de todos os tipos de entidade em sequência.
// Qualquer falha interrompe a execução; os arquivos já gravados permanecem.
func (m *DataManager) Run() error {
	if err := m.cfg.Exports.EnsureDirs(); err != nil {
		return errors.Wrap(err, "erro ao preparar diretórios de exportação")
	}

	started := m.now()
	allFiles := make([]string, 0)

	for i, export := range m.fetchers {
		entityType := export.fetcher.EntityType()

		logrus.WithField("entity_type", entityType).Info("manager: iniciando exportação")

		tables, err := export.fetcher.GetPerformance(m.cfg.Exports.DateRanges, m.cfg.Exports.AttributionWindows)
		if err != nil {
			logrus.WithError(err).WithField("entity_type", entityType).Error("manager: falha ao buscar desempenho")
			return err
		}

		files, err := export.fetcher.ExportData(tables, export.outputDir)
		if err != nil {
			logrus.WithError(err).WithField("entity_type", entityType).Error("manager: falha ao exportar arquivos")
			return err
		}

		allFiles = append(allFiles, files...)

		logrus.WithFields(logrus.Fields{
			"entity_type": entityType,
			"files":       len(files),
		}).Info("manager: exportação concluída")

		if i < len(m.fetchers)-1 && m.cfg.Exports.EntityPauseSeconds > 0 {
			m.sleep(time.Duration(m.cfg.Exports.EntityPauseSeconds) * time.Second)
		}
	}

	reportPath, err := exporter.WriteReport(m.cfg.Exports.Dir, allFiles, m.now())
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"report":   reportPath,
		"files":    len(allFiles),
		"duration": m.now().Sub(started).String(),
	}).Info("manager: execução finalizada")

	return nil
}
