package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-exporter/internal/domain"
)

// WriteEntityTables grava um CSV por chave "{período}_{janela}" e, quando a
// tabela lifetime_default existir, também os consolidados semanal e mensal.
// Retorna os caminhos gravados, na ordem de gravação.
func WriteEntityTables(outputDir string, entityType string, tables map[string]domain.Table, groupColumns []string) ([]string, error) {
	written := make([]string, 0, len(tables)+2)

	keys := lo.Keys(tables)
	sort.Strings(keys)

	for _, key := range keys {
		path := filepath.Join(outputDir, fmt.Sprintf("%s_performance_%s.csv", entityType, key))

		if err := WriteTable(path, tables[key]); err != nil {
			return written, err
		}

		logrus.WithFields(logrus.Fields{
			"entity_type": entityType,
			"file":        path,
			"rows":        len(tables[key]),
		}).Info("exporter: arquivo exportado")

		written = append(written, path)
	}

	lifetime, ok := tables["lifetime_default"]
	if !ok {
		return written, nil
	}

	// Consolidados derivados da tabela diária completa
	rollups := []struct {
		period string
		suffix string
	}{
		{periodWeekly, "weekly"},
		{periodMonthly, "monthly"},
	}

	for _, rollup := range rollups {
		path := filepath.Join(outputDir, fmt.Sprintf("%s_performance_%s.csv", entityType, rollup.suffix))

		if err := WriteTable(path, RollUp(lifetime, groupColumns, rollup.period)); err != nil {
			return written, err
		}

		logrus.WithFields(logrus.Fields{
			"entity_type": entityType,
			"file":        path,
			"period":      rollup.suffix,
		}).Info("exporter: consolidado exportado")

		written = append(written, path)
	}

	return written, nil
}

// WriteTable grava uma tabela como CSV com colunas em ordem determinística
func WriteTable(path string, table domain.Table) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao criar arquivo %s", path)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	columns := table.Columns()

	if err := writer.Write(columns); err != nil {
		return errors.Wrapf(err, "erro ao escrever cabeçalho em %s", path)
	}

	record := make([]string, len(columns))
	for _, row := range table {
		for i, column := range columns {
			record[i] = formatValue(row[column])
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrapf(err, "erro ao escrever linha em %s", path)
		}
	}

	writer.Flush()

	return errors.Wrapf(writer.Error(), "erro ao finalizar %s", path)
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case []string:
		return strings.Join(v, "|")
	default:
		return fmt.Sprintf("%v", v)
	}
}
