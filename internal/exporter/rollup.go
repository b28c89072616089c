package exporter

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-exporter/internal/domain"
	"github.com/vfg2006/meta-ads-exporter/pkg/utils"
)

const (
	periodWeekly  = "weekly"
	periodMonthly = "monthly"
)

// RollUp agrega uma tabela diária por período calendário (semana iniciada na
// segunda-feira ou mês) mais as colunas de agrupamento da entidade. Colunas
// numéricas são somadas e arredondadas em duas casas; linhas sem data válida
// são descartadas.
func RollUp(table domain.Table, groupColumns []string, period string) domain.Table {
	groups := make(map[string]domain.Row)
	order := make([]string, 0)

	for _, row := range table {
		dateStr, _ := row["date"].(string)

		date, err := utils.ParseDate(dateStr)
		if err != nil || dateStr == "" {
			logrus.WithField("date", dateStr).Warn("exporter: linha ignorada no consolidado por data inválida")
			continue
		}

		bucket := periodBucket(*date, period)

		key := bucket
		for _, column := range groupColumns {
			key += "|" + formatValue(row[column])
		}

		group, ok := groups[key]
		if !ok {
			group = domain.Row{"date": bucket}
			for _, column := range groupColumns {
				group[column] = row[column]
			}

			groups[key] = group
			order = append(order, key)
		}

		for column, value := range row {
			number, isNumber := value.(float64)
			if !isNumber {
				continue
			}

			current, _ := group[column].(float64)
			group[column] = current + number
		}
	}

	result := make(domain.Table, 0, len(order))
	for _, key := range order {
		group := groups[key]
		for column, value := range group {
			if number, isNumber := value.(float64); isNumber {
				group[column] = utils.RoundWithTwoDecimalPlace(number)
			}
		}

		result = append(result, group)
	}

	return result
}

func periodBucket(date time.Time, period string) string {
	if period == periodMonthly {
		return date.Format("2006-01")
	}

	// Segunda-feira da semana da data
	offset := (int(date.Weekday()) + 6) % 7

	return date.AddDate(0, 0, -offset).Format(time.DateOnly)
}
