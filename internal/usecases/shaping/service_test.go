package shaping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/product-insights-api/internal/domain"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{
			name:   "Data no formato de transporte é normalizada",
			raw:    "Mon, 04 Mar 2024 00:00:00 GMT",
			want:   "2024-03-04",
			wantOK: true,
		},
		{
			name:   "Data com hora não zerada também normaliza",
			raw:    "Tue, 05 Mar 2024 13:45:10 GMT",
			want:   "2024-03-05",
			wantOK: true,
		},
		{
			name: "String fora do formato volta inalterada",
			raw:  "not-a-date",
			want: "not-a-date",
		},
		{
			name: "Formato parecido mas sem GMT volta inalterado",
			raw:  "Mon, 04 Mar 2024 00:00:00 UTC",
			want: "Mon, 04 Mar 2024 00:00:00 UTC",
		},
		{
			name: "String vazia volta inalterada",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeDate(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestShapeHistorical(t *testing.T) {
	t.Run("Registro ausente vira sequência vazia", func(t *testing.T) {
		points := ShapeHistorical(nil)
		assert.NotNil(t, points)
		assert.Empty(t, points)
	})

	t.Run("Campos são copiados sem cálculo, um ponto por mês", func(t *testing.T) {
		record := &domain.ItemRecord{
			ItemName: "Widget A",
			Discounts: map[string]domain.MonthlySummary{
				"2024-03": {
					MaxDiscount:       20,
					MaxDiscountDate:   "2024-03-10",
					MinDiscount:       5,
					MinDiscountDate:   "2024-03-02",
					MaxSalesPrice:     120.5,
					MaxSalesPriceDate: "2024-03-02",
					MinSalesPrice:     99.9,
					MinSalesPriceDate: "2024-03-10",
				},
				"2023-12": {MaxDiscount: 35, MaxDiscountDate: "2023-12-25"},
				"2024-01": {MaxDiscount: 10, MaxDiscountDate: "2024-01-05"},
			},
		}

		points := ShapeHistorical(record)
		assert.Len(t, points, 3)

		// Chaves "YYYY-MM" saem em ordem cronológica
		assert.Equal(t, "2023-12", points[0].YearMonth)
		assert.Equal(t, "2024-01", points[1].YearMonth)
		assert.Equal(t, "2024-03", points[2].YearMonth)

		last := points[2]
		assert.Equal(t, 20.0, last.MaxDiscount)
		assert.Equal(t, "2024-03-10", last.MaxDiscountDate)
		assert.Equal(t, 5.0, last.MinDiscount)
		assert.Equal(t, "2024-03-02", last.MinDiscountDate)
		assert.Equal(t, 120.5, last.MaxSalesPrice)
		assert.Equal(t, "2024-03-02", last.MaxSalesPriceDate)
		assert.Equal(t, 99.9, last.MinSalesPrice)
		assert.Equal(t, "2024-03-10", last.MinSalesPriceDate)
	})
}

func TestShapeForecast(t *testing.T) {
	t.Run("Tabela ausente vira sequência vazia", func(t *testing.T) {
		points := ShapeForecast(nil)
		assert.NotNil(t, points)
		assert.Empty(t, points)
	})

	t.Run("Ordem das linhas é preservada e datas são normalizadas", func(t *testing.T) {
		table := &domain.ForecastTable{
			RunID: "run-02",
			Rows: []domain.ForecastRow{
				{ItemName: "Widget A", Date: "Tue, 05 Mar 2024 00:00:00 GMT", ForecastedDiscountPercentage: 12.5, ForecastedSalesPrice: 99.99},
				{ItemName: "Widget A", Date: "Mon, 04 Mar 2024 00:00:00 GMT", ForecastedDiscountPercentage: 10, ForecastedSalesPrice: 95.5},
			},
		}

		points := ShapeForecast(table)
		assert.Len(t, points, 2)

		// Nenhuma reordenação: 05 antes de 04, como veio da origem
		assert.Equal(t, "2024-03-05", points[0].Date)
		assert.Equal(t, 12.5, points[0].ForecastedDiscountPercentage)
		assert.Equal(t, 99.99, points[0].ForecastedSalesPrice)
		assert.Equal(t, "2024-03-04", points[1].Date)
	})

	t.Run("Linha com data malformada mantém a string original e não aborta o lote", func(t *testing.T) {
		table := &domain.ForecastTable{
			RunID: "run-04",
			Rows: []domain.ForecastRow{
				{ItemName: "Widget A", Date: "Mon, 04 Mar 2024 00:00:00 GMT"},
				{ItemName: "Widget A", Date: "03/05/2024"},
				{ItemName: "Widget A", Date: "Wed, 06 Mar 2024 00:00:00 GMT"},
			},
		}

		points := ShapeForecast(table)
		assert.Len(t, points, 3)
		assert.Equal(t, "2024-03-04", points[0].Date)
		assert.Equal(t, "03/05/2024", points[1].Date)
		assert.Equal(t, "2024-03-06", points[2].Date)
	})
}
