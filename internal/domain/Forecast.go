package domain

// ForecastRow representa uma linha diária de uma execução de previsão
type ForecastRow struct {
	ItemName string `json:"item_name"`
	// Date chega no formato de transporte "Mon, 02 Jan 2006 15:04:05 GMT" e
	// só é normalizada na etapa de shaping.
	Date                         string  `json:"date"`
	ForecastedDiscountPercentage float64 `json:"forecasted_discount_percentage"`
	ForecastedSalesPrice         float64 `json:"forecasted_sales_price"`
}

// ForecastTable representa a saída de uma execução de previsão, na ordem em que foi gerada
type ForecastTable struct {
	RunID string        `json:"run_id"`
	Rows  []ForecastRow `json:"rows"`
}
