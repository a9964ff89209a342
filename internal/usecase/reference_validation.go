package usecase

import (
	"fmt"
	"math"
	"strings"
)

const maxNameLength = 128

func requireText(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%s is required", field)
	}
	if len(value) > maxNameLength {
		return "", fmt.Errorf("%s must be at most %d characters", field, maxNameLength)
	}
	return value, nil
}

func validateRate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return fmt.Errorf("baseRate must be a finite number")
	}
	if rate < 0 {
		return fmt.Errorf("baseRate must not be negative")
	}
	return nil
}
