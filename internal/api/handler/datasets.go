package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/product-insights-api/infrastructure/dataset"
	"github.com/vfg2006/product-insights-api/internal/scheduler"
	"github.com/vfg2006/product-insights-api/pkg/apiErrors"
	"github.com/vfg2006/product-insights-api/pkg/log"
)

// DatasetStatusResponse descreve o snapshot corrente e o estado da recarga
type DatasetStatusResponse struct {
	CatalogItems int                            `json:"catalog_items"`
	ForecastRuns int                            `json:"forecast_runs"`
	LoadedAt     time.Time                      `json:"loaded_at"`
	LoadWarnings []string                       `json:"load_warnings,omitempty"`
	Refresh      scheduler.DatasetRefreshStatus `json:"refresh"`
}

// RunDatasetRefresh dispara uma recarga manual dos datasets
func RunDatasetRefresh(service *scheduler.DatasetRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("datasets: recarga manual solicitada")

		if err := service.RunNow(r.Context()); err != nil {
			logger.WithError(err).Warn("datasets: recarga manual recusada")
			apiErrors.WriteError(w, apiErrors.ErrDatasetOperation, err.Error(), nil)
			return
		}

		logger.Info("datasets: recarga manual concluída")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.Status()); err != nil {
			logger.WithError(err).Error("datasets: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetDatasetStatus retorna o estado do snapshot corrente e da recarga agendada
func GetDatasetStatus(service *scheduler.DatasetRefreshService, provider *dataset.Provider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := DatasetStatusResponse{
			Refresh: service.Status(),
		}

		if snapshot := provider.Current(); snapshot != nil {
			status.CatalogItems = snapshot.Catalog.Len()
			status.ForecastRuns = snapshot.Forecasts.Len()
			status.LoadedAt = snapshot.LoadedAt
			status.LoadWarnings = snapshot.Warnings
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("datasets: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
