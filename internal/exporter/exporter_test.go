package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-ads-exporter/internal/domain"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	return records
}

func TestWriteTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "saida.csv")

	table := domain.Table{
		{"campaign_id": "c1", "spend": 10.5, "countries": []string{"BR", "PT"}},
		{"campaign_id": "c2", "clicks": 3.0},
	}

	err := WriteTable(path, table)
	require.NoError(t, err)

	records := readCSV(t, path)
	require.Len(t, records, 3)

	// Colunas em ordem alfabética, união das chaves de todas as linhas
	assert.Equal(t, []string{"campaign_id", "clicks", "countries", "spend"}, records[0])
	assert.Equal(t, []string{"c1", "", "BR|PT", "10.5"}, records[1])
	assert.Equal(t, []string{"c2", "3", "", ""}, records[2])
}

func TestWriteEntityTables(t *testing.T) {
	dir := t.TempDir()

	tables := map[string]domain.Table{
		"7_days_default": {
			{"campaign_id": "c1", "campaign_name": "Campanha A", "date": "2024-03-05", "spend": 10.0},
		},
		"lifetime_default": {
			{"campaign_id": "c1", "campaign_name": "Campanha A", "date": "2024-03-04", "spend": 10.0},
			{"campaign_id": "c1", "campaign_name": "Campanha A", "date": "2024-03-05", "spend": 5.0},
			{"campaign_id": "c1", "campaign_name": "Campanha A", "date": "2024-03-11", "spend": 2.0},
		},
	}

	files, err := WriteEntityTables(dir, "campaign", tables, []string{"campaign_id", "campaign_name"})
	require.NoError(t, err)

	expected := []string{
		filepath.Join(dir, "campaign_performance_7_days_default.csv"),
		filepath.Join(dir, "campaign_performance_lifetime_default.csv"),
		filepath.Join(dir, "campaign_performance_weekly.csv"),
		filepath.Join(dir, "campaign_performance_monthly.csv"),
	}
	assert.Equal(t, expected, files)

	weekly := readCSV(t, filepath.Join(dir, "campaign_performance_weekly.csv"))
	require.Len(t, weekly, 3)
	assert.Equal(t, []string{"campaign_id", "campaign_name", "date", "spend"}, weekly[0])
	assert.Equal(t, []string{"c1", "Campanha A", "2024-03-04", "15"}, weekly[1])
	assert.Equal(t, []string{"c1", "Campanha A", "2024-03-11", "2"}, weekly[2])

	monthly := readCSV(t, filepath.Join(dir, "campaign_performance_monthly.csv"))
	require.Len(t, monthly, 2)
	assert.Equal(t, []string{"c1", "Campanha A", "2024-03", "17"}, monthly[1])
}

func TestWriteEntityTablesSemLifetime(t *testing.T) {
	dir := t.TempDir()

	tables := map[string]domain.Table{
		"7_days_default": {
			{"ad_id": "a1", "date": "2024-03-05", "spend": 1.0},
		},
	}

	files, err := WriteEntityTables(dir, "ad", tables, []string{"ad_id"})
	require.NoError(t, err)
	require.Len(t, files, 1)

	_, err = os.Stat(filepath.Join(dir, "ad_performance_weekly.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestRollUp(t *testing.T) {
	table := domain.Table{
		{"adset_id": "s1", "adset_name": "Conjunto", "date": "2024-02-28", "spend": 1.111, "clicks": 2.0},
		{"adset_id": "s1", "adset_name": "Conjunto", "date": "2024-03-01", "spend": 2.222, "clicks": 3.0},
		{"adset_id": "s2", "adset_name": "Outro", "date": "2024-03-01", "spend": 5.0},
		{"adset_id": "s1", "adset_name": "Conjunto", "date": "data-ruim", "spend": 99.0},
	}

	t.Run("semanal agrupa pela segunda-feira e soma métricas", func(t *testing.T) {
		result := RollUp(table, []string{"adset_id", "adset_name"}, "weekly")
		require.Len(t, result, 2)

		// 2024-02-28 e 2024-03-01 caem na semana iniciada em 2024-02-26
		assert.Equal(t, "2024-02-26", result[0]["date"])
		assert.Equal(t, "s1", result[0]["adset_id"])
		assert.Equal(t, 3.33, result[0]["spend"])
		assert.Equal(t, 5.0, result[0]["clicks"])

		assert.Equal(t, "s2", result[1]["adset_id"])
		assert.Equal(t, 5.0, result[1]["spend"])
	})

	t.Run("mensal separa fevereiro e março", func(t *testing.T) {
		result := RollUp(table, []string{"adset_id", "adset_name"}, "monthly")
		require.Len(t, result, 3)

		assert.Equal(t, "2024-02", result[0]["date"])
		assert.Equal(t, 1.11, result[0]["spend"])
		assert.Equal(t, "2024-03", result[1]["date"])
		assert.Equal(t, 2.22, result[1]["spend"])
	})
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	generatedAt := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)

	path, err := WriteReport(dir, []string{"/tmp/a.csv", "/tmp/b.csv"}, generatedAt)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "fetch_report.txt"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(content), "Arquivos gerados (2):")
	assert.Contains(t, string(content), "- /tmp/a.csv")
	assert.Contains(t, string(content), "2024-03-05T12:00:00Z")
}
