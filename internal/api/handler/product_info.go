package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/product-insights-api/internal/usecases/product"
	"github.com/vfg2006/product-insights-api/internal/usecases/resolving"
	"github.com/vfg2006/product-insights-api/pkg/apiErrors"
	"github.com/vfg2006/product-insights-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetProductInfo retorna o histórico e a previsão de um produto pelo nome
func GetProductInfo(service product.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		productName := r.URL.Query().Get("product_name")
		logger.WithField("product_name", productName).Info("product-info: buscando dados do produto")

		info, err := service.GetProductInfo(productName)
		if err != nil {
			if errors.Is(err, resolving.ErrEmptyQuery) {
				logger.Warn("product-info: requisição sem product_name")
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar o nome do produto no parâmetro product_name", nil)
				return
			}

			logger.WithError(err).Error("product-info: erro ao buscar dados do produto")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"product_name":      productName,
			"found_record":      info.FoundRecord,
			"historical_points": len(info.Historical),
			"forecast_points":   len(info.Forecast),
		}).Info("product-info: resposta montada com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(info); err != nil {
			logger.WithError(err).Error("product-info: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
