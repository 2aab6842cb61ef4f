package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name     string
		items    []int
		size     int
		expected [][]int
	}{
		{
			name:     "último lote menor",
			items:    []int{1, 2, 3, 4, 5},
			size:     2,
			expected: [][]int{{1, 2}, {3, 4}, {5}},
		},
		{
			name:     "lote único",
			items:    []int{1, 2, 3},
			size:     10,
			expected: [][]int{{1, 2, 3}},
		},
		{
			name:     "lotes exatos",
			items:    []int{1, 2, 3, 4},
			size:     2,
			expected: [][]int{{1, 2}, {3, 4}},
		},
		{
			name:     "slice vazio",
			items:    []int{},
			size:     3,
			expected: [][]int{},
		},
		{
			name:     "tamanho inválido",
			items:    []int{1, 2, 3},
			size:     0,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Chunk(tt.items, tt.size))
		})
	}
}
