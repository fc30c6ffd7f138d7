package authenticating

import "errors"

// Erros de autenticação do operador
var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrInvalidToken       = errors.New("token inválido")
	ErrExpiredToken       = errors.New("token expirado")
	ErrNotProvisioned     = errors.New("nenhum operador provisionado na configuração")
)
