package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/meta-ads-exporter/internal/config"
)

type fakeRunner struct {
	mu      sync.Mutex
	calls   int
	block   chan struct{}
	doneErr error
}

func (r *fakeRunner) Run() error {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()

	if r.block != nil {
		<-r.block
	}

	return r.doneErr
}

func (r *fakeRunner) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func testConfig() *config.Config {
	return &config.Config{
		ExportSync: config.ExportSync{
			CronSchedule: "0 3 * * *",
			Enabled:      true,
		},
	}
}

func waitFor(t *testing.T, condition func() bool) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatal("condição não satisfeita dentro do prazo")
}

func TestTriggerManualSync(t *testing.T) {
	runner := &fakeRunner{}
	service := NewExportSyncService(testConfig(), runner)

	require.True(t, service.TriggerManualSync())

	waitFor(t, func() bool { return runner.callCount() == 1 })
	waitFor(t, func() bool { return !service.GetStatus().Running })

	status := service.GetStatus()
	require.NotNil(t, status.LastStartedAt)
	require.NotNil(t, status.LastCompletedAt)
	assert.Empty(t, status.LastError)
}

func TestTriggerManualSyncIgnoraConcorrente(t *testing.T) {
	runner := &fakeRunner{block: make(chan struct{})}
	service := NewExportSyncService(testConfig(), runner)

	require.True(t, service.TriggerManualSync())
	waitFor(t, func() bool { return service.GetStatus().Running })

	// Segundo disparo com exportação em andamento é recusado
	assert.False(t, service.TriggerManualSync())

	close(runner.block)
	waitFor(t, func() bool { return !service.GetStatus().Running })

	assert.Equal(t, 1, runner.callCount())
}

func TestGetStatusExpoeFalha(t *testing.T) {
	runner := &fakeRunner{doneErr: assert.AnError}
	service := NewExportSyncService(testConfig(), runner)

	require.True(t, service.TriggerManualSync())
	waitFor(t, func() bool { return service.GetStatus().LastError != "" })

	status := service.GetStatus()
	assert.False(t, status.Running)
	assert.Contains(t, status.LastError, assert.AnError.Error())
}
