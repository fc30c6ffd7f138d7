package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRunID gera um identificador curto para execuções de previsão
// cujo arquivo de origem não carrega um identificador próprio.
func GenerateRunID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
