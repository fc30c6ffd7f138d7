// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "sort"

// ItemRecord representa o histórico consolidado de descontos e preços de um item do catálogo
type ItemRecord struct {
	ItemName string `json:"item_name"`
	// Discounts mapeia o período "YYYY-MM" para o resumo mensal do item.
	// As chaves ordenadas lexicograficamente já ficam em ordem cronológica.
	Discounts map[string]MonthlySummary `json:"discounts"`
}

// MonthlySummary representa os extremos de desconto e preço de um item em um mês
type MonthlySummary struct {
	MaxDiscount       float64 `json:"max_discount"`
	MaxDiscountDate   string  `json:"max_discount_date"`
	MinDiscount       float64 `json:"min_discount"`
	MinDiscountDate   string  `json:"min_discount_date"`
	MaxSalesPrice     float64 `json:"max_sales_price"`
	MaxSalesPriceDate string  `json:"max_sales_price_date"`
	MinSalesPrice     float64 `json:"min_sales_price"`
	MinSalesPriceDate string  `json:"min_sales_price_date"`
}

// MonthKeys retorna os períodos do registro em ordem cronológica
func (r *ItemRecord) MonthKeys() []string {
	keys := make([]string, 0, len(r.Discounts))
	for yearMonth := range r.Discounts {
		keys = append(keys, yearMonth)
	}
	sort.Strings(keys)
	return keys
}
