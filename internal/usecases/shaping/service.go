// Package shaping converte o resultado da resolução nas duas séries prontas
// para o gráfico: pontos mensais do histórico e pontos diários da previsão.
// As funções são puras; entrada ausente vira sequência vazia, nunca erro.
package shaping

import (
	"net/http"
	"time"

	"github.com/vfg2006/product-insights-api/internal/domain"
)

// As datas das previsões chegam no formato RFC 1123 com zona GMT fixa,
// exatamente o http.TimeFormat da biblioteca padrão.
const forecastDateLayout = http.TimeFormat

// ShapeHistorical produz um ponto por mês do registro, em ordem cronológica.
// Os campos são copiados sem nenhum cálculo.
func ShapeHistorical(record *domain.ItemRecord) []domain.HistoricalPoint {
	if record == nil {
		return []domain.HistoricalPoint{}
	}

	points := make([]domain.HistoricalPoint, 0, len(record.Discounts))
	for _, yearMonth := range record.MonthKeys() {
		summary := record.Discounts[yearMonth]
		points = append(points, domain.HistoricalPoint{
			YearMonth:         yearMonth,
			MaxDiscount:       summary.MaxDiscount,
			MaxDiscountDate:   summary.MaxDiscountDate,
			MinDiscount:       summary.MinDiscount,
			MinDiscountDate:   summary.MinDiscountDate,
			MaxSalesPrice:     summary.MaxSalesPrice,
			MinSalesPrice:     summary.MinSalesPrice,
			MaxSalesPriceDate: summary.MaxSalesPriceDate,
			MinSalesPriceDate: summary.MinSalesPriceDate,
		})
	}

	return points
}

// ShapeForecast produz um ponto por linha da tabela, preservando a ordem de
// geração. Nenhuma reordenação acontece aqui.
func ShapeForecast(table *domain.ForecastTable) []domain.ForecastPoint {
	if table == nil {
		return []domain.ForecastPoint{}
	}

	points := make([]domain.ForecastPoint, 0, len(table.Rows))
	for _, row := range table.Rows {
		date, _ := NormalizeDate(row.Date)
		points = append(points, domain.ForecastPoint{
			Date:                         date,
			ForecastedDiscountPercentage: row.ForecastedDiscountPercentage,
			ForecastedSalesPrice:         row.ForecastedSalesPrice,
		})
	}

	return points
}

// NormalizeDate converte uma data do formato de transporte para "YYYY-MM-DD".
// Quando a data não casa com o formato esperado, devolve a string original e
// ok=false: uma data malformada nunca aborta o restante da série.
func NormalizeDate(raw string) (string, bool) {
	parsed, err := time.Parse(forecastDateLayout, raw)
	if err != nil {
		return raw, false
	}

	return parsed.Format(time.DateOnly), true
}
