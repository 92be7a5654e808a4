package utils

import (
	"fmt"
	"time"
)

// DateLayout é o formato de data trocado com o front e usado nas chaves de cache
const DateLayout = time.DateOnly

// ParseDateOr interpreta uma data YYYY-MM-DD em UTC; string vazia devolve o fallback sem alteração
func ParseDateOr(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}

	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("utils: invalid date %q: %w", value, err)
	}

	return date, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
