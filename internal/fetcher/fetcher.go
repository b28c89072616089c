package fetcher

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	metadomain "github.com/vfg2006/meta-ads-exporter/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-exporter/internal/config"
	"github.com/vfg2006/meta-ads-exporter/internal/domain"
)

// Fetcher é o contrato comum dos buscadores de desempenho por tipo de
// entidade (campanha, conjunto de anúncios, anúncio). Cada implementação
// busca sua lista de entidades, enriquece com insights diários e métricas
// derivadas, e exporta as tabelas resultantes.
type Fetcher interface {
	EntityType() string
	FetchEntities() ([]metadomain.Record, error)
	ProcessData(entities []metadomain.Record, attributionWindow string) (domain.Table, error)
	GetPerformance(dateRanges []string, attributionWindows []string) (map[string]domain.Table, error)
	ExportData(tables map[string]domain.Table, outputDir string) ([]string, error)
}

// performanceTables monta uma tabela por par (período × janela de atribuição).
// A lista de entidades é buscada uma única vez; "lifetime" não aplica filtro
// de data, os demais períodos recortam os últimos N dias.
func performanceTables(
	fetchEntities func() ([]metadomain.Record, error),
	process func(entities []metadomain.Record, attributionWindow string) (domain.Table, error),
	dateRanges []string,
	attributionWindows []string,
	now func() time.Time,
) (map[string]domain.Table, error) {
	entities, err := fetchEntities()
	if err != nil {
		return nil, err
	}

	tables := make(map[string]domain.Table)

	for _, dateRange := range dateRanges {
		for _, window := range attributionWindows {
			table, err := process(entities, window)
			if err != nil {
				return nil, err
			}

			if days, ok := config.DateRanges[dateRange]; ok && days > 0 {
				table = filterTrailingDays(table, days, now())
			}

			tables[fmt.Sprintf("%s_%s", dateRange, window)] = table
		}
	}

	return tables, nil
}

// filterTrailingDays mantém apenas linhas com data dentro dos últimos N dias.
// Datas no formato YYYY-MM-DD comparam corretamente como strings.
func filterTrailingDays(table domain.Table, days int, now time.Time) domain.Table {
	cutoff := now.AddDate(0, 0, -days).Format(time.DateOnly)

	filtered := make(domain.Table, 0, len(table))
	for _, row := range table {
		date, _ := row["date"].(string)
		if date >= cutoff {
			filtered = append(filtered, row)
		}
	}

	return filtered
}

// listParams monta os parâmetros da listagem de entidades
func listParams(fields []string, pageSize int) url.Values {
	params := url.Values{}
	params.Set("fields", strings.Join(fields, ","))
	params.Set("limit", strconv.Itoa(pageSize))
	return params
}
