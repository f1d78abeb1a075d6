package utils

import "strconv"

// ParseQueryInt converte um parâmetro de query string em inteiro.
// Valores ausentes ou não numéricos retornam nil, nunca zero.
func ParseQueryInt(raw string) *int {
	if raw == "" {
		return nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}

	return &value
}
