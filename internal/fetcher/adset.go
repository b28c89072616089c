package fetcher

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-ads-exporter/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-exporter/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-exporter/internal/config"
	"github.com/vfg2006/meta-ads-exporter/internal/domain"
	"github.com/vfg2006/meta-ads-exporter/internal/exporter"
	"github.com/vfg2006/meta-ads-exporter/internal/metrics"
)

type AdSetFetcher struct {
	cfg        *config.Config
	client     metaclient.Client
	calculator metrics.Calculator
	now        func() time.Time
}

func NewAdSetFetcher(cfg *config.Config, client metaclient.Client) *AdSetFetcher {
	return &AdSetFetcher{
		cfg:        cfg,
		client:     client,
		calculator: metrics.NewCalculator(),
		now:        time.Now,
	}
}

func (f *AdSetFetcher) EntityType() string {
	return "adset"
}

// FetchEntities lista os conjuntos de anúncios da conta, incluindo a
// especificação de segmentação
func (f *AdSetFetcher) FetchEntities() ([]metadomain.Record, error) {
	endpoint := fmt.Sprintf("act_%s/adsets", f.cfg.Meta.AccountID)

	adsets, err := f.client.Request(endpoint, listParams(config.AdSetFields, f.cfg.Meta.PageSize), http.MethodGet)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar conjuntos de anúncios")
	}

	logrus.WithField("adsets", len(adsets)).Info("fetcher: conjuntos de anúncios encontrados")

	return adsets, nil
}

// FetchInsights busca os insights de um conjunto na janela de atribuição
func (f *AdSetFetcher) FetchInsights(adsetID string, attributionWindow string) ([]metadomain.Record, error) {
	fields := make([]string, 0, len(config.CommonMetrics)+len(config.ConversionMetrics)+4)
	fields = append(fields, config.CommonMetrics...)
	fields = append(fields, config.ConversionMetrics...)
	fields = append(fields, "adset_name", "campaign_id", "optimization_goal", "billing_event")

	return f.client.GetInsights(adsetID, fields, attributionWindow, "adset")
}

// ProcessData monta uma linha por (conjunto, dia): atributos + segmentação
// achatada + campos do insight + métricas derivadas
func (f *AdSetFetcher) ProcessData(adsets []metadomain.Record, attributionWindow string) (domain.Table, error) {
	table := make(domain.Table, 0, len(adsets))

	for _, adset := range adsets {
		adsetID := adset.Str("id")
		targeting := metadomain.FlattenTargeting(adset.Map("targeting"))

		insights, err := f.FetchInsights(adsetID, attributionWindow)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao buscar insights do conjunto %s", adsetID)
		}

		for _, insight := range insights {
			row := domain.Row{
				"adset_id":          adsetID,
				"adset_name":        adset.Str("name"),
				"campaign_id":       adset.Str("campaign_id"),
				"status":            adset.Str("status"),
				"optimization_goal": adset.Str("optimization_goal"),
				"billing_event":     adset.Str("billing_event"),
				"bid_amount":        adset.Str("bid_amount"),
				"date":              insight.Str("date_start"),
			}

			row.Merge(targeting)
			row.MergeMetrics(f.calculator.BasicMetrics(insight))
			row.MergeMetrics(f.calculator.ConversionMetrics(insight))

			table = append(table, row)
		}
	}

	return table, nil
}

// GetPerformance produz uma tabela por par (período × janela de atribuição)
func (f *AdSetFetcher) GetPerformance(dateRanges []string, attributionWindows []string) (map[string]domain.Table, error) {
	return performanceTables(f.FetchEntities, f.ProcessData, dateRanges, attributionWindows, f.now)
}

// ExportData grava um CSV por tabela, mais os consolidados semanais/mensais
func (f *AdSetFetcher) ExportData(tables map[string]domain.Table, outputDir string) ([]string, error) {
	return exporter.WriteEntityTables(outputDir, f.EntityType(), tables, []string{"adset_id", "adset_name"})
}
