package metadomain

import (
	"strconv"
)

// Record é um registro bruto retornado pela Graph API. A API devolve números
// como strings ("spend":"25.30"), então os acessores convertem de forma
// tolerante: campo ausente ou inválido vira zero.
type Record map[string]any

// Action representa uma ação (conversão) dentro de um insight
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// Str retorna o valor do campo como string
func (r Record) Str(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// Float retorna o valor do campo como float64, tolerando strings numéricas
func (r Record) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Map retorna um objeto aninhado como Record
func (r Record) Map(key string) Record {
	if m, ok := r[key].(map[string]any); ok {
		return Record(m)
	}
	return Record{}
}

// List retorna o valor do campo como lista genérica
func (r Record) List(key string) []any {
	if l, ok := r[key].([]any); ok {
		return l
	}
	return nil
}

// Records retorna uma lista de objetos aninhados
func (r Record) Records(key string) []Record {
	list := r.List(key)
	records := make([]Record, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			records = append(records, Record(m))
		}
	}
	return records
}

// StringList retorna o valor do campo como lista de strings
func (r Record) StringList(key string) []string {
	list := r.List(key)
	out := make([]string, 0, len(list))
	for _, item := range list {
		switch v := item.(type) {
		case string:
			out = append(out, v)
		case float64:
			out = append(out, strconv.FormatFloat(v, 'f', -1, 64))
		}
	}
	return out
}

// ActionValues indexa a lista de ações de um insight por action_type.
// Quando a API devolve mais de uma entrada por tipo, a primeira vence.
func (r Record) ActionValues(key string) map[string]float64 {
	values := make(map[string]float64)
	for _, action := range r.Records(key) {
		actionType := action.Str("action_type")
		if actionType == "" {
			continue
		}
		if _, ok := values[actionType]; !ok {
			values[actionType] = action.Float("value")
		}
	}
	return values
}
