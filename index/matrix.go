package index

import "math"

// Matrix holds one embedding vector per row.
type Matrix [][]float32

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]float32(nil), row...)
	}
	return out
}

// Similarity compares two documents as bags of term vectors.
//
// With the term vectors of a and b as columns of A and B, it returns
//
//	‖max(0, AᵀB)‖F / sqrt(‖max(0, AᵀA)‖F · ‖max(0, BᵀB)‖F)
//
// Empty matrices, mismatched dimensions and a zero denominator yield 0.
// The clamp breaks the Cauchy-Schwarz bound, so the result is capped at 1;
// a document is never less similar to itself than to another.
func Similarity(a, b Matrix) float64 {
	if len(a) == 0 || len(b) == 0 || len(a[0]) != len(b[0]) {
		return 0
	}

	cross := clampedGramNorm(a, b)
	den := math.Sqrt(clampedGramNorm(a, a) * clampedGramNorm(b, b))
	if den == 0 || math.IsNaN(den) {
		return 0
	}
	return math.Min(1, cross/den)
}

// clampedGramNorm returns the Frobenius norm of the matrix of pairwise dot
// products between rows of a and rows of b, negative entries zeroed.
func clampedGramNorm(a, b Matrix) float64 {
	var sum float64
	for _, x := range a {
		for _, y := range b {
			d := dot(x, y)
			if d > 0 {
				sum += d * d
			}
		}
	}
	return math.Sqrt(sum)
}

func dot(x, y []float32) float64 {
	n := min(len(x), len(y))
	var s float64
	for i := 0; i < n; i++ {
		s += float64(x[i]) * float64(y[i])
	}
	return s
}
