package ai

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{name: "identical", a: []float32{1, 2, 3}, b: []float32{1, 2, 3}, want: 0},
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, want: 1},
		{name: "opposite", a: []float32{1, 0}, b: []float32{-1, 0}, want: 2},
		{name: "scaled", a: []float32{1, 1}, b: []float32{3, 3}, want: 0},
		{name: "length mismatch", a: []float32{1}, b: []float32{1, 0}, want: MaxDistance},
		{name: "empty", a: nil, b: nil, want: MaxDistance},
		{name: "zero vector", a: []float32{0, 0}, b: []float32{1, 0}, want: MaxDistance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CosineDistance(tt.a, tt.b), 1e-6)
		})
	}
}

func TestNormalizeVector(t *testing.T) {
	t.Run("unit length", func(t *testing.T) {
		v := NormalizeVector([]float32{3, 4})

		assert.InDelta(t, 0.6, v[0], 1e-6)
		assert.InDelta(t, 0.8, v[1], 1e-6)
	})

	t.Run("zero vector stays zero", func(t *testing.T) {
		assert.Equal(t, []float32{0, 0}, NormalizeVector([]float32{0, 0}))
	})

	t.Run("does not modify input", func(t *testing.T) {
		in := []float32{2, 0}
		NormalizeVector(in)
		assert.Equal(t, []float32{2, 0}, in)
	})

	t.Run("magnitude is one", func(t *testing.T) {
		v := NormalizeVector([]float32{1, 2, 3, 4})
		var sum float64
		for _, x := range v {
			sum += float64(x) * float64(x)
		}
		assert.InDelta(t, 1.0, math.Sqrt(sum), 1e-6)
	})
}
