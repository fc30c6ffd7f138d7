package domain

import "strings"

// NormalizeName prepara um nome de produto para comparação de igualdade:
// remove espaços nas pontas e aplica caixa baixa. Os nomes armazenados nunca
// são alterados, a normalização acontece apenas no momento da comparação.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
