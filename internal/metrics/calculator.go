package metrics

import (
	"fmt"

	metadomain "github.com/vfg2006/meta-ads-exporter/infrastructure/integrator/meta/domain"
)

// Calculator deriva métricas de desempenho a partir de um registro bruto de
// insight. Todas as funções são puras e sem estado; qualquer razão com
// denominador zero (ou ausente) resulta em 0, nunca em erro.
type Calculator struct{}

func NewCalculator() Calculator {
	return Calculator{}
}

// rateMetrics são as métricas de taxa que devem ser promediadas (e não
// somadas) ao agregar períodos
var rateMetrics = []string{
	"frequency",
	"ctr",
	"view_rate",
	"purchase_rate",
	"add_to_cart_rate",
	"checkout_rate",
}

// videoCompletionThresholds são os marcos de conclusão de vídeo reportados
var videoCompletionThresholds = []int{25, 50, 75, 95, 100}

// engagementTypes são os tipos de engajamento com taxa sobre impressões
var engagementTypes = []string{
	"post_engagement",
	"post_reactions",
	"post_comments",
	"post_shares",
	"page_engagement",
}

func safeDivide(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return numerator / denominator
}

// BasicMetrics calcula frequência, CTR, CPC e CPM
func (Calculator) BasicMetrics(data metadomain.Record) map[string]float64 {
	impressions := data.Float("impressions")
	reach := data.Float("reach")
	clicks := data.Float("clicks")
	spend := data.Float("spend")

	return map[string]float64{
		"frequency": safeDivide(impressions, reach),
		"ctr":       safeDivide(clicks, impressions) * 100,
		"cpc":       safeDivide(spend, clicks),
		"cpm":       safeDivide(spend, impressions) * 1000,
	}
}

// ConversionMetrics calcula taxas e custos das ações de conversão (compra,
// carrinho, checkout) e o ROAS
func (Calculator) ConversionMetrics(data metadomain.Record) map[string]float64 {
	impressions := data.Float("impressions")
	spend := data.Float("spend")

	actionValues := data.ActionValues("actions")
	purchases := actionValues["purchase"]
	addsToCart := actionValues["add_to_cart"]
	checkouts := actionValues["initiate_checkout"]

	// O valor monetário de compra vem da lista action_values, não de actions
	purchaseValue := data.ActionValues("action_values")["purchase"]

	return map[string]float64{
		"purchase_rate":        safeDivide(purchases, impressions) * 100,
		"add_to_cart_rate":     safeDivide(addsToCart, impressions) * 100,
		"checkout_rate":        safeDivide(checkouts, impressions) * 100,
		"cost_per_purchase":    safeDivide(spend, purchases),
		"cost_per_add_to_cart": safeDivide(spend, addsToCart),
		"cost_per_checkout":    safeDivide(spend, checkouts),
		"roas":                 safeDivide(purchaseValue, spend),
	}
}

// VideoMetrics calcula taxa de visualização, custo por visualização e taxas
// de conclusão por marco (25/50/75/95/100%)
func (Calculator) VideoMetrics(data metadomain.Record) map[string]float64 {
	videoPlays := data.Float("video_plays")
	impressions := data.Float("impressions")
	spend := data.Float("spend")

	result := map[string]float64{
		"view_rate":           safeDivide(videoPlays, impressions) * 100,
		"cost_per_video_view": safeDivide(spend, videoPlays),
	}

	for _, threshold := range videoCompletionThresholds {
		viewsAtThreshold := data.Float(fmt.Sprintf("video_plays_at_%d_percent", threshold))
		result[fmt.Sprintf("video_completion_rate_%d", threshold)] = safeDivide(viewsAtThreshold, videoPlays) * 100
	}

	return result
}

// EngagementMetrics calcula a taxa de cada tipo de engajamento sobre
// impressões
func (Calculator) EngagementMetrics(data metadomain.Record) map[string]float64 {
	impressions := data.Float("impressions")

	result := make(map[string]float64, len(engagementTypes))
	for _, engagementType := range engagementTypes {
		result[engagementType+"_rate"] = safeDivide(data.Float(engagementType), impressions) * 100
	}

	return result
}

// AggregateMetrics soma métricas aditivas através da lista; métricas de taxa
// são promediadas (soma dividida pela quantidade de elementos)
func (Calculator) AggregateMetrics(metricsList []map[string]float64) map[string]float64 {
	count := len(metricsList)
	if count == 0 {
		return map[string]float64{}
	}

	aggregated := make(map[string]float64)
	for _, metricsMap := range metricsList {
		for key, value := range metricsMap {
			aggregated[key] += value
		}
	}

	for _, metric := range rateMetrics {
		if value, ok := aggregated[metric]; ok {
			aggregated[metric] = value / float64(count)
		}
	}

	return aggregated
}

// PeriodOverPeriodChanges calcula a variação percentual de cada métrica do
// período atual em relação ao anterior. Quando o período anterior é zero, a
// variação reportada é 0 se o atual também for zero, senão 100 — um teto
// fixo, não um percentual real.
func (Calculator) PeriodOverPeriodChanges(current, previous map[string]float64) map[string]float64 {
	changes := make(map[string]float64, len(current))

	for metric, currentValue := range current {
		previousValue := previous[metric]
		if previousValue != 0 {
			changes[metric+"_change"] = (currentValue - previousValue) / previousValue * 100
			continue
		}

		if currentValue == 0 {
			changes[metric+"_change"] = 0
		} else {
			changes[metric+"_change"] = 100
		}
	}

	return changes
}
