package domain

import "github.com/golang-jwt/jwt/v5"

// Claims representa as claims do token JWT do operador autenticado
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// LoginRequest representa o corpo da requisição de login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse representa a resposta de um login bem sucedido
type LoginResponse struct {
	Token string `json:"token"`
}
