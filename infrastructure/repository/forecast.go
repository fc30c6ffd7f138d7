package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/product-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/product-insights-api/infrastructure/dataset"
	"github.com/vfg2006/product-insights-api/internal/domain"
)

const (
	forecastRowsTable = "forecast_rows fr"
)

// ForecastRepository carrega a coleção de previsões do Postgres na
// inicialização. As linhas vêm ordenadas por execução e por sequência de
// geração, que é a ordem preservada nas tabelas em memória.
type ForecastRepository struct {
	conn *postgres.Connection
}

func NewForecastRepository(conn *postgres.Connection) *ForecastRepository {
	return &ForecastRepository{
		conn: conn,
	}
}

func (r *ForecastRepository) LoadForecasts(ctx context.Context) (*dataset.ForecastLoadResult, error) {
	query, args, err := squirrel.
		Select("fr.run_id, fr.item_name, fr.forecast_date, fr.discount_percentage, fr.sales_price").
		From(forecastRowsTable).
		OrderBy("fr.run_id", "fr.seq").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de previsões")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar as previsões")
	}
	defer rows.Close()

	collection := domain.NewForecastCollection()

	for rows.Next() {
		var runID string
		var row domain.ForecastRow

		if err := rows.Scan(&runID, &row.ItemName, &row.Date, &row.ForecastedDiscountPercentage, &row.ForecastedSalesPrice); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear linha de previsão")
		}

		table := collection.Get(runID)
		if table == nil {
			table = &domain.ForecastTable{RunID: runID}
			collection.Put(runID, table)
		}
		table.Rows = append(table.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao iterar linhas de previsão")
	}

	filtered, warnings := dataset.FilterMixedTables(collection)

	return &dataset.ForecastLoadResult{
		Forecasts: filtered,
		Warnings:  warnings,
	}, nil
}
