package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/product-insights-api/internal/domain"
	"github.com/vfg2006/product-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/product-insights-api/pkg/apiErrors"
	"github.com/vfg2006/product-insights-api/pkg/log"
)

// Login autentica o operador e emite o token de acesso às rotas de datasets
func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request domain.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("login: corpo de requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if request.Email == "" || request.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios", nil)
			return
		}

		token, err := service.LoginOperator(request.Email, request.Password)
		if err != nil {
			if errors.Is(err, authenticating.ErrInvalidCredentials) || errors.Is(err, authenticating.ErrNotProvisioned) {
				logger.Warn("login: credenciais inválidas")
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
				return
			}

			logger.WithError(err).Error("login: erro ao autenticar operador")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.Info("login: operador autenticado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(domain.LoginResponse{Token: token}); err != nil {
			logger.WithError(err).Error("login: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
