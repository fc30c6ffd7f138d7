// Package product monta a resposta completa da consulta de produto,
// combinando resolução e shaping.
package product

import (
	"github.com/vfg2006/product-insights-api/internal/domain"
	"github.com/vfg2006/product-insights-api/internal/usecases/resolving"
	"github.com/vfg2006/product-insights-api/internal/usecases/shaping"
	"github.com/vfg2006/product-insights-api/pkg/log"
)

type ProductService interface {
	GetProductInfo(productName string) (*domain.ProductInfoResponse, error)
}

type Service struct {
	resolver resolving.Resolver
}

func NewService(resolver resolving.Resolver) ProductService {
	return &Service{
		resolver: resolver,
	}
}

// GetProductInfo resolve o nome nos dois stores e devolve as duas séries.
// Produto ausente dos dois stores é resposta válida com sequências vazias.
// Uma falha inesperada durante o shaping vira error_message na resposta em
// vez de derrubar a requisição.
func (s *Service) GetProductInfo(productName string) (response *domain.ProductInfoResponse, err error) {
	response = &domain.ProductInfoResponse{
		ProductName: productName,
		Historical:  []domain.HistoricalPoint{},
		Forecast:    []domain.ForecastPoint{},
	}

	defer func() {
		if r := recover(); r != nil {
			log.L.WithFields(log.Fields{
				"product_name": productName,
				"panic_error":  r,
			}).Error("product: falha inesperada ao montar os dados do produto")

			response.ErrorMessage = "erro inesperado ao montar os dados do produto"
			err = nil
		}
	}()

	record, table, err := s.resolver.Resolve(productName)
	if err != nil {
		return nil, err
	}

	response.FoundRecord = record != nil
	response.Historical = shaping.ShapeHistorical(record)
	response.Forecast = shaping.ShapeForecast(table)

	return response, nil
}
