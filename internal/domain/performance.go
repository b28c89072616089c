package domain

import (
	"sort"
)

// Row é uma linha achatada de desempenho: atributos da entidade + campos do
// insight diário + métricas derivadas. Valores numéricos derivados são sempre
// float64; atributos são strings ou listas de strings.
type Row map[string]any

// Table é o conjunto de linhas de um par (período, janela de atribuição).
// Invariante: cada (id de entidade, data) aparece no máximo uma vez.
type Table []Row

// Merge copia os pares de origem para a linha (sobrescrevendo colisões)
func (r Row) Merge(source map[string]any) {
	for key, value := range source {
		r[key] = value
	}
}

// MergeMetrics sobrepõe métricas derivadas à linha. Chamado por último na
// montagem: métricas calculadas localmente nunca são sobrescritas por dados
// brutos da API.
func (r Row) MergeMetrics(metrics map[string]float64) {
	for key, value := range metrics {
		r[key] = value
	}
}

// Columns retorna a união ordenada das colunas de todas as linhas
func (t Table) Columns() []string {
	seen := make(map[string]struct{})
	for _, row := range t {
		for key := range row {
			seen[key] = struct{}{}
		}
	}

	columns := make([]string, 0, len(seen))
	for key := range seen {
		columns = append(columns, key)
	}
	sort.Strings(columns)

	return columns
}
