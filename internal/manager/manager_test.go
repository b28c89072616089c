package manager

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/meta-ads-exporter/internal/config"
	"github.com/vfg2006/meta-ads-exporter/internal/domain"
	"github.com/vfg2006/meta-ads-exporter/internal/fetcher/mocks"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Exports: config.Exports{
			Dir:                t.TempDir(),
			DateRanges:         []string{"7_days"},
			AttributionWindows: []string{"default"},
			EntityPauseSeconds: 5,
		},
	}
}

func TestRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testConfig(t)

	tables := map[string]domain.Table{"7_days_default": {}}

	newFetcher := func(entityType, outputDir string) *mocks.MockFetcher {
		f := mocks.NewMockFetcher(ctrl)
		f.EXPECT().EntityType().Return(entityType).AnyTimes()
		f.EXPECT().GetPerformance([]string{"7_days"}, []string{"default"}).Return(tables, nil)
		f.EXPECT().ExportData(tables, outputDir).Return([]string{filepath.Join(outputDir, entityType+".csv")}, nil)
		return f
	}

	campaigns := newFetcher("campaign", cfg.Exports.CampaignDir())
	adsets := newFetcher("adset", cfg.Exports.AdSetDir())
	ads := newFetcher("ad", cfg.Exports.AdDir())

	manager := NewDataManager(cfg, campaigns, adsets, ads)

	var pauses []time.Duration
	manager.sleep = func(d time.Duration) { pauses = append(pauses, d) }

	err := manager.Run()
	require.NoError(t, err)

	// Pausa entre tipos, mas não depois do último
	assert.Equal(t, []time.Duration{5 * time.Second, 5 * time.Second}, pauses)

	// Diretórios criados e relatório gravado
	for _, dir := range []string{cfg.Exports.CampaignDir(), cfg.Exports.AdSetDir(), cfg.Exports.AdDir()} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	content, err := os.ReadFile(filepath.Join(cfg.Exports.Dir, "fetch_report.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Arquivos gerados (3):")
	assert.Contains(t, string(content), "campaign.csv")
}

func TestRunParaNaPrimeiraFalha(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testConfig(t)

	campaigns := mocks.NewMockFetcher(ctrl)
	campaigns.EXPECT().EntityType().Return("campaign").AnyTimes()
	campaigns.EXPECT().GetPerformance(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	// Os tipos seguintes nunca são consultados
	adsets := mocks.NewMockFetcher(ctrl)
	ads := mocks.NewMockFetcher(ctrl)

	manager := NewDataManager(cfg, campaigns, adsets, ads)
	manager.sleep = func(time.Duration) {}

	err := manager.Run()
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(cfg.Exports.Dir, "fetch_report.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunExportaMesmoComFalhaPosterior(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testConfig(t)

	tables := map[string]domain.Table{"7_days_default": {}}

	campaigns := mocks.NewMockFetcher(ctrl)
	campaigns.EXPECT().EntityType().Return("campaign").AnyTimes()
	campaigns.EXPECT().GetPerformance(gomock.Any(), gomock.Any()).Return(tables, nil)
	campaigns.EXPECT().ExportData(tables, cfg.Exports.CampaignDir()).Return([]string{"campaign.csv"}, nil)

	adsets := mocks.NewMockFetcher(ctrl)
	adsets.EXPECT().EntityType().Return("adset").AnyTimes()
	adsets.EXPECT().GetPerformance(gomock.Any(), gomock.Any()).Return(tables, nil)
	adsets.EXPECT().ExportData(tables, cfg.Exports.AdSetDir()).Return(nil, assert.AnError)

	ads := mocks.NewMockFetcher(ctrl)

	manager := NewDataManager(cfg, campaigns, adsets, ads)
	manager.sleep = func(time.Duration) {}

	err := manager.Run()
	require.Error(t, err)
}
