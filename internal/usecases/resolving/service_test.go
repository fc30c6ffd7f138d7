package resolving

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/product-insights-api/infrastructure/dataset"
	"github.com/vfg2006/product-insights-api/internal/domain"
	"github.com/vfg2006/product-insights-api/internal/usecases/resolving/mocks"
	"go.uber.org/mock/gomock"
)

func newTestSnapshot() *dataset.Snapshot {
	catalog := domain.NewCatalogStore()
	catalog.Put("1001", &domain.ItemRecord{
		ItemName: "Widget A",
		Discounts: map[string]domain.MonthlySummary{
			"2024-03": {MaxDiscount: 20, MaxDiscountDate: "2024-03-10", MinDiscount: 5, MinDiscountDate: "2024-03-02"},
		},
	})
	catalog.Put("1002", &domain.ItemRecord{ItemName: "  widget a  "})
	catalog.Put("1003", &domain.ItemRecord{ItemName: "Gadget B"})
	catalog.Put("1004", &domain.ItemRecord{ItemName: "Doohickey C"})

	forecasts := domain.NewForecastCollection()
	forecasts.Put("run-01", &domain.ForecastTable{
		RunID: "run-01",
		Rows: []domain.ForecastRow{
			{ItemName: "Gadget B", Date: "Mon, 04 Mar 2024 00:00:00 GMT"},
		},
	})
	forecasts.Put("run-02", &domain.ForecastTable{
		RunID: "run-02",
		Rows: []domain.ForecastRow{
			{ItemName: "widget a ", Date: "Tue, 05 Mar 2024 00:00:00 GMT", ForecastedDiscountPercentage: 12.5, ForecastedSalesPrice: 99.99},
			{ItemName: "widget a ", Date: "Wed, 06 Mar 2024 00:00:00 GMT", ForecastedDiscountPercentage: 10, ForecastedSalesPrice: 95.5},
		},
	})
	forecasts.Put("run-03", &domain.ForecastTable{
		RunID: "run-03",
		Rows: []domain.ForecastRow{
			{ItemName: "Widget A", Date: "Thu, 07 Mar 2024 00:00:00 GMT"},
		},
	})

	return &dataset.Snapshot{Catalog: catalog, Forecasts: forecasts}
}

func TestService_Resolve(t *testing.T) {
	snapshot := newTestSnapshot()
	service := NewService(dataset.NewProvider(snapshot))

	tests := []struct {
		name          string
		queryName     string
		wantItemName  string
		wantRunID     string
		wantHistorico bool
		wantForecast  bool
	}{
		{
			name:          "Nome exato encontra registro e tabela",
			queryName:     "Widget A",
			wantItemName:  "Widget A",
			wantRunID:     "run-02",
			wantHistorico: true,
			wantForecast:  true,
		},
		{
			name:          "Resolução ignora espaços nas pontas e caixa",
			queryName:     "  wIdGeT a  ",
			wantItemName:  "Widget A",
			wantRunID:     "run-02",
			wantHistorico: true,
			wantForecast:  true,
		},
		{
			name:          "Nomes duplicados devolvem o primeiro na ordem do store",
			queryName:     "widget a",
			wantItemName:  "Widget A",
			wantRunID:     "run-02",
			wantHistorico: true,
			wantForecast:  true,
		},
		{
			name:          "Produto presente nos dois stores em tabelas distintas",
			queryName:     "Gadget B",
			wantItemName:  "Gadget B",
			wantRunID:     "run-01",
			wantHistorico: true,
			wantForecast:  true,
		},
		{
			name:          "Produto só no catálogo é resultado parcial válido",
			queryName:     "Doohickey C",
			wantItemName:  "Doohickey C",
			wantHistorico: true,
		},
		{
			name:      "Produto ausente dos dois stores devolve (nil, nil) sem erro",
			queryName: "Inexistente",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, table, err := service.Resolve(tt.queryName)
			assert.NoError(t, err)

			if tt.wantHistorico {
				assert.NotNil(t, record)
				assert.Equal(t, tt.wantItemName, record.ItemName)
			} else {
				assert.Nil(t, record)
			}

			if tt.wantForecast {
				assert.NotNil(t, table)
				assert.Equal(t, tt.wantRunID, table.RunID)
			} else {
				assert.Nil(t, table)
			}
		})
	}
}

func TestService_Resolve_FirstTableWins(t *testing.T) {
	snapshot := newTestSnapshot()
	service := NewService(dataset.NewProvider(snapshot))

	// run-02 e run-03 contêm o produto; a varredura para na primeira tabela
	// e devolve a tabela inteira, não apenas a linha que bateu
	_, table, err := service.Resolve("Widget A")
	assert.NoError(t, err)
	assert.NotNil(t, table)
	assert.Equal(t, "run-02", table.RunID)
	assert.Len(t, table.Rows, 2)
}

func TestService_Resolve_EmptyQueryDoesNotScanStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// A consulta vazia é rejeitada antes de qualquer acesso ao snapshot
	mockProvider := mocks.NewMockSnapshotProvider(ctrl)
	mockProvider.EXPECT().Current().Times(0)

	service := NewService(mockProvider)

	tests := []string{"", "   ", "\t\n"}
	for _, queryName := range tests {
		record, table, err := service.Resolve(queryName)
		assert.ErrorIs(t, err, ErrEmptyQuery)
		assert.Nil(t, record)
		assert.Nil(t, table)
	}
}

func TestService_Resolve_EmptySnapshot(t *testing.T) {
	snapshot := &dataset.Snapshot{
		Catalog:   domain.NewCatalogStore(),
		Forecasts: domain.NewForecastCollection(),
	}
	service := NewService(dataset.NewProvider(snapshot))

	record, table, err := service.Resolve("Widget A")
	assert.NoError(t, err)
	assert.Nil(t, record)
	assert.Nil(t, table)
}
