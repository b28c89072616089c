package fetcher

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
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

type AdFetcher struct {
	cfg        *config.Config
	client     metaclient.Client
	calculator metrics.Calculator
	now        func() time.Time

	// Cache de criativos por execução: o mesmo anúncio é reprocessado uma
	// vez por par (período × janela) e o criativo não muda no meio da
	// execução
	creativeCache map[string]map[string]any
}

func NewAdFetcher(cfg *config.Config, client metaclient.Client) *AdFetcher {
	return &AdFetcher{
		cfg:           cfg,
		client:        client,
		calculator:    metrics.NewCalculator(),
		now:           time.Now,
		creativeCache: make(map[string]map[string]any),
	}
}

func (f *AdFetcher) EntityType() string {
	return "ad"
}

// FetchEntities lista os anúncios da conta, incluindo a referência de criativo
func (f *AdFetcher) FetchEntities() ([]metadomain.Record, error) {
	endpoint := fmt.Sprintf("act_%s/ads", f.cfg.Meta.AccountID)

	ads, err := f.client.Request(endpoint, listParams(config.AdFields, f.cfg.Meta.PageSize), http.MethodGet)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar anúncios")
	}

	logrus.WithField("ads", len(ads)).Info("fetcher: anúncios encontrados")

	return ads, nil
}

// FetchInsights busca os insights de um anúncio, incluindo métricas de vídeo
// e engajamento além das comuns e de conversão
func (f *AdFetcher) FetchInsights(adID string, attributionWindow string) ([]metadomain.Record, error) {
	fields := make([]string, 0, len(adInsightMetricFields())+3)
	fields = append(fields, adInsightMetricFields()...)
	fields = append(fields, "ad_name", "adset_id", "campaign_id")

	return f.client.GetInsights(adID, fields, attributionWindow, "ad")
}

// FetchCreativeDetails busca os detalhes do criativo de um anúncio, com cache
// por execução
func (f *AdFetcher) FetchCreativeDetails(creativeID string) (map[string]any, error) {
	if cached, ok := f.creativeCache[creativeID]; ok {
		return cached, nil
	}

	params := url.Values{}
	params.Set("fields", strings.Join(config.CreativeFields, ","))

	records, err := f.client.Request(creativeID, params, http.MethodGet)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar criativo %s", creativeID)
	}

	var flat map[string]any
	if len(records) > 0 {
		flat = metadomain.FlattenCreative(records[0])
	} else {
		logrus.WithField("creative_id", creativeID).Warn("fetcher: criativo sem dados")
		flat = metadomain.FlattenCreative(metadomain.Record{})
	}

	f.creativeCache[creativeID] = flat

	return flat, nil
}

// ProcessData monta uma linha por (anúncio, dia): atributos + criativo
// achatado + campos brutos do insight + métricas derivadas. As métricas
// derivadas entram por último e nunca são sobrescritas por dados remotos.
func (f *AdFetcher) ProcessData(ads []metadomain.Record, attributionWindow string) (domain.Table, error) {
	table := make(domain.Table, 0, len(ads))

	for _, ad := range ads {
		adID := ad.Str("id")

		creativeInfo := map[string]any{}
		if creativeID := ad.Map("creative").Str("id"); creativeID != "" {
			info, err := f.FetchCreativeDetails(creativeID)
			if err != nil {
				return nil, err
			}
			creativeInfo = info
		}

		insights, err := f.FetchInsights(adID, attributionWindow)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao buscar insights do anúncio %s", adID)
		}

		for _, insight := range insights {
			row := domain.Row{
				"ad_id":       adID,
				"ad_name":     ad.Str("name"),
				"adset_id":    ad.Str("adset_id"),
				"campaign_id": ad.Str("campaign_id"),
				"status":      ad.Str("status"),
				"date":        insight.Str("date_start"),
			}

			row.Merge(creativeInfo)

			// Repasse bruto das métricas solicitadas, para auditoria
			for _, field := range adInsightMetricFields() {
				if value, ok := insight[field]; ok {
					row[field] = value
				} else {
					row[field] = 0
				}
			}

			row.MergeMetrics(f.calculator.BasicMetrics(insight))
			row.MergeMetrics(f.calculator.ConversionMetrics(insight))
			row.MergeMetrics(f.calculator.VideoMetrics(insight))
			row.MergeMetrics(f.calculator.EngagementMetrics(insight))

			table = append(table, row)
		}
	}

	return table, nil
}

// GetPerformance produz uma tabela por par (período × janela de atribuição)
func (f *AdFetcher) GetPerformance(dateRanges []string, attributionWindows []string) (map[string]domain.Table, error) {
	return performanceTables(f.FetchEntities, f.ProcessData, dateRanges, attributionWindows, f.now)
}

// ExportData grava um CSV por tabela, mais os consolidados semanais/mensais
func (f *AdFetcher) ExportData(tables map[string]domain.Table, outputDir string) ([]string, error) {
	return exporter.WriteEntityTables(outputDir, f.EntityType(), tables, []string{"ad_id", "ad_name", "adset_id", "campaign_id"})
}

func adInsightMetricFields() []string {
	fields := make([]string, 0, len(config.CommonMetrics)+len(config.ConversionMetrics)+len(config.VideoMetrics)+len(config.EngagementMetrics))
	fields = append(fields, config.CommonMetrics...)
	fields = append(fields, config.ConversionMetrics...)
	fields = append(fields, config.VideoMetrics...)
	fields = append(fields, config.EngagementMetrics...)
	return fields
}
