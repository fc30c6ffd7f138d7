package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/product-insights-api/infrastructure/dataset"
	"github.com/vfg2006/product-insights-api/internal/config"
	"github.com/vfg2006/product-insights-api/pkg/utils"
)

// DatasetRefreshConfig representa a configuração do agendador de recarga dos datasets
type DatasetRefreshConfig struct {
	CronSchedule   string
	RefreshEnabled bool
}

// DatasetRefreshStatus representa o estado corrente do agendador
type DatasetRefreshStatus struct {
	Enabled                bool       `json:"enabled"`
	CronSchedule           string     `json:"cron_schedule"`
	Running                bool       `json:"running"`
	LastRefreshStartedAt   *time.Time `json:"last_refresh_started_at,omitempty"`
	LastRefreshCompletedAt *time.Time `json:"last_refresh_completed_at,omitempty"`
}

// DatasetRefreshService recarrega os dois datasets das origens e troca o
// snapshot corrente de forma atômica. Desabilitado por padrão: o modelo
// normal de operação é carga única na inicialização.
type DatasetRefreshService struct {
	scheduler              *gocron.Scheduler
	config                 DatasetRefreshConfig
	provider               *dataset.Provider
	catalogSource          dataset.CatalogSource
	forecastSource         dataset.ForecastSource
	refreshRunning         bool
	refreshMutex           sync.Mutex
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
}

// NewDatasetRefreshService cria uma nova instância do serviço de recarga de datasets
func NewDatasetRefreshService(
	provider *dataset.Provider,
	catalogSource dataset.CatalogSource,
	forecastSource dataset.ForecastSource,
	appConfig *config.Config,
) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule:   appConfig.DatasetRefresh.CronSchedule,
		RefreshEnabled: appConfig.DatasetRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   refreshConfig.CronSchedule,
		"refresh_enabled": refreshConfig.RefreshEnabled,
	}).Info("Configuração do agendador de recarga de datasets carregada")

	return &DatasetRefreshService{
		scheduler:      gocron.NewScheduler(time.Local),
		config:         refreshConfig,
		provider:       provider,
		catalogSource:  catalogSource,
		forecastSource: forecastSource,
	}
}

// Start inicia o agendador
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.RefreshEnabled {
		logrus.Info("Recarga agendada de datasets desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga de datasets")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshDatasets(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a recarga de datasets: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga de datasets")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow dispara uma recarga manual, usada pelo endpoint administrativo
func (s *DatasetRefreshService) RunNow(ctx context.Context) error {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		return fmt.Errorf("recarga de datasets já em andamento")
	}
	s.refreshMutex.Unlock()

	s.refreshDatasets(ctx)
	return nil
}

// Status devolve o estado corrente do agendador
func (s *DatasetRefreshService) Status() DatasetRefreshStatus {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	status := DatasetRefreshStatus{
		Enabled:      s.config.RefreshEnabled,
		CronSchedule: s.config.CronSchedule,
		Running:      s.refreshRunning,
	}

	if !s.lastRefreshStartedAt.IsZero() {
		startedAt := s.lastRefreshStartedAt
		status.LastRefreshStartedAt = &startedAt
	}

	if !s.lastRefreshCompletedAt.IsZero() {
		completedAt := s.lastRefreshCompletedAt
		status.LastRefreshCompletedAt = &completedAt
	}

	return status
}

// refreshDatasets recarrega os dois stores e troca o snapshot corrente
func (s *DatasetRefreshService) refreshDatasets(ctx context.Context) {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Recarga de datasets já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	s.refreshMutex.Unlock()

	refreshID, err := utils.GenerateRunID()
	if err != nil {
		refreshID = "unknown"
	}

	logger := logrus.WithField("refresh_id", refreshID)
	logger.Info("Iniciando recarga dos datasets")

	snapshot := dataset.Load(ctx, s.catalogSource, s.forecastSource)
	s.provider.Swap(snapshot)

	s.refreshMutex.Lock()
	s.refreshRunning = false
	s.lastRefreshCompletedAt = time.Now()
	s.refreshMutex.Unlock()

	logger.WithFields(logrus.Fields{
		"catalog_items": snapshot.Catalog.Len(),
		"forecast_runs": snapshot.Forecasts.Len(),
		"duration_ms":   time.Since(s.lastRefreshStartedAt).Milliseconds(),
	}).Info("Recarga dos datasets concluída")
}
