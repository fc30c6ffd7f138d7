// Package resolving localiza, a partir de um nome de produto, o registro
// histórico e a tabela de previsão correspondentes nos dois stores.
package resolving

import (
	"errors"
	"strings"

	"github.com/vfg2006/product-insights-api/infrastructure/dataset"
	"github.com/vfg2006/product-insights-api/internal/domain"
)

// ErrEmptyQuery indica que o nome do produto veio ausente ou vazio.
// A resolução nunca roda contra um nome vazio.
var ErrEmptyQuery = errors.New("nome do produto ausente ou vazio")

type Resolver interface {
	// Resolve devolve o registro histórico e a tabela de previsão do produto.
	// Os dois resultados são independentes: qualquer um pode vir nulo sem que
	// isso seja um erro.
	Resolve(queryName string) (*domain.ItemRecord, *domain.ForecastTable, error)
}

// SnapshotProvider entrega o snapshot corrente dos dois stores
type SnapshotProvider interface {
	Current() *dataset.Snapshot
}

type Service struct {
	provider SnapshotProvider
}

func NewService(provider SnapshotProvider) Resolver {
	return &Service{
		provider: provider,
	}
}

func (s *Service) Resolve(queryName string) (*domain.ItemRecord, *domain.ForecastTable, error) {
	if strings.TrimSpace(queryName) == "" {
		return nil, nil, ErrEmptyQuery
	}

	snapshot := s.provider.Current()
	if snapshot == nil {
		return nil, nil, nil
	}

	normalized := domain.NormalizeName(queryName)

	return resolveRecord(snapshot.Catalog, normalized), resolveTable(snapshot.Forecasts, normalized), nil
}

// resolveRecord percorre o catálogo na ordem de inserção e devolve o primeiro
// registro cujo nome normalizado bate com a consulta. Nomes duplicados não são
// erro: vale o primeiro na ordem do store.
func resolveRecord(catalog *domain.CatalogStore, normalized string) *domain.ItemRecord {
	var found *domain.ItemRecord

	catalog.Each(func(_ string, record *domain.ItemRecord) bool {
		if domain.NormalizeName(record.ItemName) == normalized {
			found = record
			return false
		}
		return true
	})

	return found
}

// resolveTable devolve a primeira tabela que contenha ao menos uma linha do
// produto. A tabela inteira é o resultado, não a linha: cada tabela
// corresponde a um único item, garantido no contorno de carga. A varredura
// para na primeira linha que bate e tabelas seguintes não são consultadas.
func resolveTable(forecasts *domain.ForecastCollection, normalized string) *domain.ForecastTable {
	var found *domain.ForecastTable

	forecasts.Each(func(_ string, table *domain.ForecastTable) bool {
		for _, row := range table.Rows {
			if domain.NormalizeName(row.ItemName) == normalized {
				found = table
				return false
			}
		}
		return true
	})

	return found
}
