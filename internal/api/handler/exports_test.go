package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/meta-ads-exporter/internal/scheduler"
)

type fakeExportService struct {
	triggered bool
	accepted  bool
	status    scheduler.SyncStatus
}

func (f *fakeExportService) TriggerManualSync() bool {
	f.triggered = true
	return f.accepted
}

func (f *fakeExportService) GetStatus() scheduler.SyncStatus {
	return f.status
}

func TestRunExport(t *testing.T) {
	t.Run("aceita o disparo quando não há exportação em andamento", func(t *testing.T) {
		service := &fakeExportService{accepted: true}

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/v1/exports/run", nil)

		RunExport(service).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusAccepted, recorder.Code)
		assert.True(t, service.triggered)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "Exportação iniciada com sucesso", body["message"])
	})

	t.Run("responde conflito quando já existe exportação em andamento", func(t *testing.T) {
		service := &fakeExportService{accepted: false}

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/v1/exports/run", nil)

		RunExport(service).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusConflict, recorder.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "VAL_004", body["code"])
	})

	t.Run("responde erro interno sem serviço configurado", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/v1/exports/run", nil)

		RunExport(nil).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestExportStatus(t *testing.T) {
	startedAt := time.Date(2024, 3, 5, 3, 0, 0, 0, time.UTC)

	service := &fakeExportService{
		status: scheduler.SyncStatus{
			Running:       true,
			LastStartedAt: &startedAt,
		},
	}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/exports/status", nil)

	ExportStatus(service).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var status scheduler.SyncStatus
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &status))
	assert.True(t, status.Running)
	require.NotNil(t, status.LastStartedAt)
	assert.True(t, startedAt.Equal(*status.LastStartedAt))
}
