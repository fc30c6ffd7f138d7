package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/product-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/product-insights-api/infrastructure/dataset"
	"github.com/vfg2006/product-insights-api/internal/domain"
)

const (
	catalogItemsTable = "catalog_items ci"
)

// CatalogRepository carrega o catálogo histórico do Postgres na inicialização.
// Cada linha carrega os resumos mensais do item em uma coluna JSONB.
type CatalogRepository struct {
	conn *postgres.Connection
}

func NewCatalogRepository(conn *postgres.Connection) *CatalogRepository {
	return &CatalogRepository{
		conn: conn,
	}
}

func (r *CatalogRepository) LoadCatalog(ctx context.Context) (*dataset.CatalogLoadResult, error) {
	query, args, err := squirrel.
		Select("ci.item_number, ci.item_name, ci.monthly_summaries").
		From(catalogItemsTable).
		OrderBy("ci.item_number").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query do catálogo")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar o catálogo")
	}
	defer rows.Close()

	result := &dataset.CatalogLoadResult{Catalog: domain.NewCatalogStore()}

	for rows.Next() {
		var itemNumber, itemName string
		var summariesJSON []byte

		if err := rows.Scan(&itemNumber, &itemName, &summariesJSON); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear item do catálogo")
		}

		discounts := make(map[string]domain.MonthlySummary)
		if len(summariesJSON) > 0 {
			if err := json.Unmarshal(summariesJSON, &discounts); err != nil {
				result.Warnings = append(result.Warnings, fmt.Sprintf("item %q descartado: resumos mensais inválidos: %v", itemNumber, err))
				continue
			}
		}

		result.Catalog.Put(itemNumber, &domain.ItemRecord{
			ItemName:  itemName,
			Discounts: discounts,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao iterar itens do catálogo")
	}

	return result, nil
}
