package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/product-insights-api/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestFileCatalogSource_LoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "historical_data.json")

	writeFile(t, path, `{
		"1002": {"item_name": "Gadget B", "discounts": {"2024-01": {"max_discount": 15, "max_discount_date": "2024-01-03"}}},
		"1001": {"item_name": "Widget A", "discounts": {"2024-03": {"max_discount": 20, "max_discount_date": "2024-03-10"}}},
		"1003": {"item_name": "   ", "discounts": {}}
	}`)

	source := NewFileCatalogSource(path)
	result, err := source.LoadCatalog(context.Background())
	assert.NoError(t, err)

	// O item sem nome é quarentenado com aviso
	assert.Equal(t, 2, result.Catalog.Len())
	assert.Len(t, result.Warnings, 1)

	// Inserção em ordem de número de item: 1001 antes de 1002
	var order []string
	result.Catalog.Each(func(itemNumber string, _ *domain.ItemRecord) bool {
		order = append(order, itemNumber)
		return true
	})
	assert.Equal(t, []string{"1001", "1002"}, order)

	record := result.Catalog.Get("1001")
	assert.Equal(t, "Widget A", record.ItemName)
	assert.Equal(t, 20.0, record.Discounts["2024-03"].MaxDiscount)
}

func TestFileCatalogSource_LoadCatalog_MissingFile(t *testing.T) {
	source := NewFileCatalogSource(filepath.Join(t.TempDir(), "nao_existe.json"))

	result, err := source.LoadCatalog(context.Background())
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestFileForecastSource_LoadForecasts(t *testing.T) {
	dir := t.TempDir()

	// run_id explícito no arquivo
	writeFile(t, filepath.Join(dir, "a_run.json"), `{
		"run_id": "run-01",
		"rows": [
			{"item_name": "Widget A", "date": "Mon, 04 Mar 2024 00:00:00 GMT", "forecasted_discount_percentage": 10, "forecasted_sales_price": 95.5}
		]
	}`)

	// sem run_id: o identificador vem do nome do arquivo
	writeFile(t, filepath.Join(dir, "b_run.json"), `{
		"rows": [
			{"item_name": "Gadget B", "date": "Tue, 05 Mar 2024 00:00:00 GMT", "forecasted_discount_percentage": 5, "forecasted_sales_price": 50}
		]
	}`)

	// tabela com dois itens distintos viola o invariante e é quarentenada
	writeFile(t, filepath.Join(dir, "c_run.json"), `{
		"run_id": "run-03",
		"rows": [
			{"item_name": "Widget A", "date": "Wed, 06 Mar 2024 00:00:00 GMT"},
			{"item_name": "Gadget B", "date": "Wed, 06 Mar 2024 00:00:00 GMT"}
		]
	}`)

	// arquivo que não é JSON é quarentenado
	writeFile(t, filepath.Join(dir, "d_run.json"), `not json`)

	source := NewFileForecastSource(dir)
	result, err := source.LoadForecasts(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, 2, result.Forecasts.Len())
	assert.Len(t, result.Warnings, 2)

	assert.NotNil(t, result.Forecasts.Get("run-01"))
	assert.NotNil(t, result.Forecasts.Get("b_run"))
	assert.Nil(t, result.Forecasts.Get("run-03"))
}

func TestLoad_AbsorbsSourceFailures(t *testing.T) {
	missingDir := filepath.Join(t.TempDir(), "nao_existe")

	snapshot := Load(
		context.Background(),
		NewFileCatalogSource(filepath.Join(missingDir, "historical_data.json")),
		NewFileForecastSource(missingDir),
	)

	// Falha de carga vira store vazio com aviso, nunca erro
	assert.NotNil(t, snapshot.Catalog)
	assert.NotNil(t, snapshot.Forecasts)
	assert.Equal(t, 0, snapshot.Catalog.Len())
	assert.Equal(t, 0, snapshot.Forecasts.Len())
	assert.Len(t, snapshot.Warnings, 2)
	assert.False(t, snapshot.LoadedAt.IsZero())
}

func TestFilterMixedTables(t *testing.T) {
	collection := domain.NewForecastCollection()
	collection.Put("run-01", &domain.ForecastTable{
		RunID: "run-01",
		Rows: []domain.ForecastRow{
			{ItemName: "Widget A"},
			{ItemName: " WIDGET A "}, // mesmo item depois de normalizar
		},
	})
	collection.Put("run-02", &domain.ForecastTable{
		RunID: "run-02",
		Rows: []domain.ForecastRow{
			{ItemName: "Widget A"},
			{ItemName: "Gadget B"},
		},
	})

	filtered, warnings := FilterMixedTables(collection)
	assert.Equal(t, 1, filtered.Len())
	assert.NotNil(t, filtered.Get("run-01"))
	assert.Len(t, warnings, 1)
}
