package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/product-insights-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileCatalogSource carrega o catálogo histórico de um único arquivo JSON
// no formato {"<item_number>": {"item_name": ..., "discounts": {...}}}.
type FileCatalogSource struct {
	path string
}

func NewFileCatalogSource(path string) *FileCatalogSource {
	return &FileCatalogSource{path: path}
}

func (s *FileCatalogSource) LoadCatalog(_ context.Context) (*CatalogLoadResult, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler o arquivo de catálogo %q", s.path)
	}

	entries := make(map[string]*domain.ItemRecord)
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar o arquivo de catálogo %q", s.path)
	}

	// Inserção em ordem de número de item para que a iteração do store,
	// e com ela a política de primeiro match, seja determinística.
	itemNumbers := make([]string, 0, len(entries))
	for itemNumber := range entries {
		itemNumbers = append(itemNumbers, itemNumber)
	}
	sort.Strings(itemNumbers)

	result := &CatalogLoadResult{Catalog: domain.NewCatalogStore()}
	for _, itemNumber := range itemNumbers {
		record := entries[itemNumber]
		if record == nil || strings.TrimSpace(record.ItemName) == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("item %q descartado: registro sem item_name", itemNumber))
			continue
		}

		result.Catalog.Put(itemNumber, record)
	}

	return result, nil
}

// FileForecastSource carrega a coleção de previsões de um diretório com um
// arquivo JSON por execução. O identificador da execução vem do campo run_id
// do arquivo ou, na ausência dele, do próprio nome do arquivo.
type FileForecastSource struct {
	dir string
}

func NewFileForecastSource(dir string) *FileForecastSource {
	return &FileForecastSource{dir: dir}
}

func (s *FileForecastSource) LoadForecasts(_ context.Context) (*ForecastLoadResult, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao listar o diretório de previsões %q", s.dir)
	}

	collection := domain.NewForecastCollection()
	var warnings []string

	// os.ReadDir devolve as entradas ordenadas por nome, o que define a
	// ordem de inserção da coleção.
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("arquivo de previsão %q descartado: %v", entry.Name(), err))
			continue
		}

		table := &domain.ForecastTable{}
		if err := json.Unmarshal(data, table); err != nil {
			warnings = append(warnings, fmt.Sprintf("arquivo de previsão %q descartado: %v", entry.Name(), err))
			continue
		}

		if table.RunID == "" {
			table.RunID = strings.TrimSuffix(entry.Name(), ".json")
		}

		collection.Put(table.RunID, table)
	}

	filtered, mixedWarnings := FilterMixedTables(collection)

	return &ForecastLoadResult{
		Forecasts: filtered,
		Warnings:  append(warnings, mixedWarnings...),
	}, nil
}
