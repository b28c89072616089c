package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-exporter/internal/scheduler"
	"github.com/vfg2006/meta-ads-exporter/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ExportService é a superfície do agendador consumida pelos handlers
type ExportService interface {
	TriggerManualSync() bool
	GetStatus() scheduler.SyncStatus
}

// RunExport dispara manualmente uma exportação completa
func RunExport(service ExportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunExport")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de exportação não disponível", nil)
			return
		}

		if !service.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrOperationInProgress, "Exportação já em andamento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)

		response := map[string]any{
			"message": "Exportação iniciada com sucesso",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Warn("erro ao responder disparo de exportação")
		}
	})
}

// ExportStatus retorna o estado corrente do agendador de exportações
func ExportStatus(service ExportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ExportStatus")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de exportação não disponível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(service.GetStatus()); err != nil {
			logrus.WithError(err).Warn("erro ao responder status de exportação")
		}
	})
}
