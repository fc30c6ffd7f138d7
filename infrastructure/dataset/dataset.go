// Package dataset define o contorno de carga dos dois datasets da aplicação:
// o catálogo histórico e a coleção de previsões. Os dois são carregados uma
// única vez na inicialização e expostos como um snapshot imutável; falhas de
// carga viram stores vazios, nunca erros por consulta.
package dataset

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/product-insights-api/internal/domain"
)

// CatalogLoadResult é o resultado da carga do catálogo histórico
type CatalogLoadResult struct {
	Catalog  *domain.CatalogStore
	Warnings []string
}

// ForecastLoadResult é o resultado da carga da coleção de previsões
type ForecastLoadResult struct {
	Forecasts *domain.ForecastCollection
	Warnings  []string
}

// CatalogSource entrega o catálogo histórico completo na inicialização
type CatalogSource interface {
	LoadCatalog(ctx context.Context) (*CatalogLoadResult, error)
}

// ForecastSource entrega a coleção de previsões completa na inicialização
type ForecastSource interface {
	LoadForecasts(ctx context.Context) (*ForecastLoadResult, error)
}

// Snapshot agrupa os dois stores carregados em um mesmo instante.
// Depois de construído, um snapshot nunca é alterado.
type Snapshot struct {
	Catalog   *domain.CatalogStore
	Forecasts *domain.ForecastCollection
	Warnings  []string
	LoadedAt  time.Time
}

// Load constrói um snapshot a partir das duas origens. Falha em qualquer uma
// delas é registrada uma única vez e substituída por um store vazio, para que
// as consultas sigam respondendo "sem dados" em vez de propagar o erro.
func Load(ctx context.Context, catalogSource CatalogSource, forecastSource ForecastSource) *Snapshot {
	snapshot := &Snapshot{
		Catalog:   domain.NewCatalogStore(),
		Forecasts: domain.NewForecastCollection(),
		LoadedAt:  time.Now(),
	}

	catalogResult, err := catalogSource.LoadCatalog(ctx)
	if err != nil {
		logrus.WithError(err).Error("dataset: erro ao carregar o catálogo histórico, usando store vazio")
		snapshot.Warnings = append(snapshot.Warnings, fmt.Sprintf("catálogo indisponível: %v", err))
	} else {
		snapshot.Catalog = catalogResult.Catalog
		snapshot.Warnings = append(snapshot.Warnings, catalogResult.Warnings...)
	}

	forecastResult, err := forecastSource.LoadForecasts(ctx)
	if err != nil {
		logrus.WithError(err).Error("dataset: erro ao carregar as previsões, usando coleção vazia")
		snapshot.Warnings = append(snapshot.Warnings, fmt.Sprintf("previsões indisponíveis: %v", err))
	} else {
		snapshot.Forecasts = forecastResult.Forecasts
		snapshot.Warnings = append(snapshot.Warnings, forecastResult.Warnings...)
	}

	logrus.WithFields(logrus.Fields{
		"catalog_items": snapshot.Catalog.Len(),
		"forecast_runs": snapshot.Forecasts.Len(),
		"load_warnings": len(snapshot.Warnings),
	}).Info("dataset: snapshot carregado")

	return snapshot
}

// Provider guarda o snapshot corrente. As consultas leem o ponteiro atômico e
// enxergam sempre um snapshot completo; o refresh troca o snapshot inteiro.
type Provider struct {
	current atomic.Pointer[Snapshot]
}

func NewProvider(snapshot *Snapshot) *Provider {
	provider := &Provider{}
	provider.current.Store(snapshot)
	return provider
}

func (p *Provider) Current() *Snapshot {
	return p.current.Load()
}

func (p *Provider) Swap(snapshot *Snapshot) {
	p.current.Store(snapshot)
}

// FilterMixedTables aplica no contorno de carga o invariante de que cada
// tabela de previsão corresponde a exatamente um item: tabelas com mais de um
// nome normalizado distinto são colocadas em quarentena com um aviso.
func FilterMixedTables(collection *domain.ForecastCollection) (*domain.ForecastCollection, []string) {
	filtered := domain.NewForecastCollection()
	var warnings []string

	collection.Each(func(runID string, table *domain.ForecastTable) bool {
		names := make(map[string]struct{})
		for _, row := range table.Rows {
			names[domain.NormalizeName(row.ItemName)] = struct{}{}
		}

		if len(names) > 1 {
			warnings = append(warnings, fmt.Sprintf("tabela de previsão %q descartada: %d itens distintos em uma única tabela", runID, len(names)))
			return true
		}

		filtered.Put(runID, table)
		return true
	})

	return filtered, warnings
}
