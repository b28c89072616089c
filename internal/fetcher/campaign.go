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

type CampaignFetcher struct {
	cfg        *config.Config
	client     metaclient.Client
	calculator metrics.Calculator
	now        func() time.Time
}

func NewCampaignFetcher(cfg *config.Config, client metaclient.Client) *CampaignFetcher {
	return &CampaignFetcher{
		cfg:        cfg,
		client:     client,
		calculator: metrics.NewCalculator(),
		now:        time.Now,
	}
}

func (f *CampaignFetcher) EntityType() string {
	return "campaign"
}

// FetchEntities lista as campanhas da conta com o conjunto fixo de campos
func (f *CampaignFetcher) FetchEntities() ([]metadomain.Record, error) {
	endpoint := fmt.Sprintf("act_%s/campaigns", f.cfg.Meta.AccountID)

	campaigns, err := f.client.Request(endpoint, listParams(config.CampaignFields, f.cfg.Meta.PageSize), http.MethodGet)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar campanhas")
	}

	logrus.WithField("campaigns", len(campaigns)).Info("fetcher: campanhas encontradas")

	return campaigns, nil
}

// FetchInsights busca os insights de uma campanha na janela de atribuição
func (f *CampaignFetcher) FetchInsights(campaignID string, attributionWindow string) ([]metadomain.Record, error) {
	fields := make([]string, 0, len(config.CommonMetrics)+len(config.ConversionMetrics)+3)
	fields = append(fields, config.CommonMetrics...)
	fields = append(fields, config.ConversionMetrics...)
	fields = append(fields, "campaign_name", "objective", "buying_type")

	return f.client.GetInsights(campaignID, fields, attributionWindow, "campaign")
}

// ProcessData monta uma linha por (campanha, dia): atributos da campanha +
// campos do insight + métricas derivadas
func (f *CampaignFetcher) ProcessData(campaigns []metadomain.Record, attributionWindow string) (domain.Table, error) {
	table := make(domain.Table, 0, len(campaigns))

	for _, campaign := range campaigns {
		campaignID := campaign.Str("id")

		insights, err := f.FetchInsights(campaignID, attributionWindow)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao buscar insights da campanha %s", campaignID)
		}

		for _, insight := range insights {
			row := domain.Row{
				"campaign_id":   campaignID,
				"campaign_name": campaign.Str("name"),
				"objective":     campaign.Str("objective"),
				"buying_type":   campaign.Str("buying_type"),
				"status":        campaign.Str("status"),
				"date":          insight.Str("date_start"),
			}

			row.MergeMetrics(f.calculator.BasicMetrics(insight))
			row.MergeMetrics(f.calculator.ConversionMetrics(insight))

			table = append(table, row)
		}
	}

	return table, nil
}

// GetPerformance produz uma tabela por par (período × janela de atribuição)
func (f *CampaignFetcher) GetPerformance(dateRanges []string, attributionWindows []string) (map[string]domain.Table, error) {
	return performanceTables(f.FetchEntities, f.ProcessData, dateRanges, attributionWindows, f.now)
}

// ExportData grava um CSV por tabela, mais os consolidados semanais/mensais
func (f *CampaignFetcher) ExportData(tables map[string]domain.Table, outputDir string) ([]string, error) {
	return exporter.WriteEntityTables(outputDir, f.EntityType(), tables, []string{"campaign_id", "campaign_name"})
}
