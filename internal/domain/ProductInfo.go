package domain

// HistoricalPoint representa um mês do histórico de um produto, pronto para o gráfico
type HistoricalPoint struct {
	YearMonth         string  `json:"year_month"`
	MaxDiscount       float64 `json:"max_discount"`
	MaxDiscountDate   string  `json:"max_discount_date"`
	MinDiscount       float64 `json:"min_discount"`
	MinDiscountDate   string  `json:"min_discount_date"`
	MaxSalesPrice     float64 `json:"max_sales_price"`
	MinSalesPrice     float64 `json:"min_sales_price"`
	MaxSalesPriceDate string  `json:"max_sales_price_date"`
	MinSalesPriceDate string  `json:"min_sales_price_date"`
}

// ForecastPoint representa um dia previsto para um produto.
// Date fica em "YYYY-MM-DD" quando a data de origem pôde ser normalizada;
// caso contrário carrega a string original sem alteração.
type ForecastPoint struct {
	Date                         string  `json:"date"`
	ForecastedDiscountPercentage float64 `json:"forecasted_discount_percentage"`
	ForecastedSalesPrice         float64 `json:"forecasted_sales_price"`
}

// ProductInfoResponse é o payload devolvido pela consulta de produto
type ProductInfoResponse struct {
	ProductName  string            `json:"product_name"`
	FoundRecord  bool              `json:"found_record"`
	Historical   []HistoricalPoint `json:"historical"`
	Forecast     []ForecastPoint   `json:"forecast"`
	ErrorMessage string            `json:"error_message,omitempty"`
}
