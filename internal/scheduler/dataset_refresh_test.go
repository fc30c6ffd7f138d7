package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/product-insights-api/infrastructure/dataset"
	"github.com/vfg2006/product-insights-api/infrastructure/dataset/mocks"
	"github.com/vfg2006/product-insights-api/internal/config"
	"github.com/vfg2006/product-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestDatasetRefreshService_RunNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalogSource := mocks.NewMockCatalogSource(ctrl)
	mockForecastSource := mocks.NewMockForecastSource(ctrl)

	// Snapshot inicial vazio
	provider := dataset.NewProvider(&dataset.Snapshot{
		Catalog:   domain.NewCatalogStore(),
		Forecasts: domain.NewForecastCollection(),
	})

	refreshedCatalog := domain.NewCatalogStore()
	refreshedCatalog.Put("1001", &domain.ItemRecord{ItemName: "Widget A"})

	refreshedForecasts := domain.NewForecastCollection()
	refreshedForecasts.Put("run-01", &domain.ForecastTable{RunID: "run-01"})

	mockCatalogSource.EXPECT().
		LoadCatalog(gomock.Any()).
		Return(&dataset.CatalogLoadResult{Catalog: refreshedCatalog}, nil)

	mockForecastSource.EXPECT().
		LoadForecasts(gomock.Any()).
		Return(&dataset.ForecastLoadResult{Forecasts: refreshedForecasts}, nil)

	appConfig := &config.Config{
		DatasetRefresh: config.DatasetRefresh{CronSchedule: "0 5 * * *", Enabled: false},
	}

	service := NewDatasetRefreshService(provider, mockCatalogSource, mockForecastSource, appConfig)

	err := service.RunNow(context.Background())
	assert.NoError(t, err)

	// O snapshot corrente foi trocado pelo recarregado
	snapshot := provider.Current()
	assert.Equal(t, 1, snapshot.Catalog.Len())
	assert.Equal(t, 1, snapshot.Forecasts.Len())

	status := service.Status()
	assert.False(t, status.Running)
	assert.NotNil(t, status.LastRefreshStartedAt)
	assert.NotNil(t, status.LastRefreshCompletedAt)
}

func TestDatasetRefreshService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Desabilitado por configuração: Start não agenda nada e não toca as origens
	mockCatalogSource := mocks.NewMockCatalogSource(ctrl)
	mockForecastSource := mocks.NewMockForecastSource(ctrl)

	provider := dataset.NewProvider(&dataset.Snapshot{
		Catalog:   domain.NewCatalogStore(),
		Forecasts: domain.NewForecastCollection(),
	})

	appConfig := &config.Config{
		DatasetRefresh: config.DatasetRefresh{CronSchedule: "0 5 * * *", Enabled: false},
	}

	service := NewDatasetRefreshService(provider, mockCatalogSource, mockForecastSource, appConfig)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.NoError(t, service.Start(ctx))

	status := service.Status()
	assert.False(t, status.Enabled)
	assert.Nil(t, status.LastRefreshStartedAt)
}
