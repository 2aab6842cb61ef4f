package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		expected float64
	}{
		{"crescimento", 150, 100, 50},
		{"queda", 50, 100, -50},
		{"sem variação", 100, 100, 0},
		{"base zero com valor atual", 42, 0, 100},
		{"base zero e atual zero", 0, 0, 0},
		{"base negativa melhorando", 50, -100, 150},
		{"base negativa piorando", -200, -100, -100},
		{"arredondamento em duas casas", 4, 3, 33.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PercentChange(tt.current, tt.previous))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 33.33, RoundWithTwoDecimalPlace(33.3333))
	assert.Equal(t, 66.67, RoundWithTwoDecimalPlace(66.6666))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}
