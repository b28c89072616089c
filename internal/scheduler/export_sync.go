package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-exporter/internal/config"
)

// ExportRunner é o contrato da rotina de exportação completa
type ExportRunner interface {
	Run() error
}

// SyncStatus representa o estado corrente do agendador de exportações
type SyncStatus struct {
	Running         bool       `json:"running"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
	LastError       string     `json:"last_error,omitempty"`
}

// ExportSyncService gerencia o agendamento e a execução da exportação de
// dados do Meta. Execuções nunca se sobrepõem: um disparo com exportação em
// andamento é ignorado.
type ExportSyncService struct {
	scheduler *gocron.Scheduler
	cfg       *config.Config
	runner    ExportRunner

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       error
}

func NewExportSyncService(cfg *config.Config, runner ExportRunner) *ExportSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.ExportSync.CronSchedule,
		"sync_enabled":  cfg.ExportSync.Enabled,
	}).Info("Configuração do agendador de exportações carregada")

	return &ExportSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		cfg:       cfg,
		runner:    runner,
	}
}

// Start inicia o agendador. O contexto cancelado encerra o agendador.
func (s *ExportSyncService) Start(ctx context.Context) error {
	if !s.cfg.ExportSync.Enabled {
		logrus.Info("Exportação agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cfg.ExportSync.CronSchedule).Info("Iniciando agendador de exportações")

	_, err := s.scheduler.Cron(s.cfg.ExportSync.CronSchedule).Do(func() {
		s.runExport()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar exportação: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de exportações")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma exportação fora do agendamento. Retorna
// false quando já existe uma exportação em andamento.
func (s *ExportSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return false
	}
	s.syncMutex.Unlock()

	go s.runExport()

	return true
}

// GetStatus retorna o estado corrente do agendador
func (s *ExportSyncService) GetStatus() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := SyncStatus{Running: s.syncRunning}

	if !s.lastSyncStartedAt.IsZero() {
		startedAt := s.lastSyncStartedAt
		status.LastStartedAt = &startedAt
	}

	if !s.lastSyncCompletedAt.IsZero() {
		completedAt := s.lastSyncCompletedAt
		status.LastCompletedAt = &completedAt
	}

	if s.lastSyncError != nil {
		status.LastError = s.lastSyncError.Error()
	}

	return status
}

func (s *ExportSyncService) runExport() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Exportação já em andamento, ignorando disparo")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()

	logrus.Info("Iniciando exportação de dados do Meta")

	err := s.runner.Run()

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = err
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Exportação de dados do Meta falhou")
		return
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Exportação de dados do Meta concluída")
}
