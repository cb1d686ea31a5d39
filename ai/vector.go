package ai

import "math"

// MaxDistance is the cosine distance reported for terms that cannot be compared.
const MaxDistance = 2.0

// CosineDistance returns 1 - cos(a, b), in [0,2].
// Vectors of different length or with zero magnitude yield MaxDistance.
func CosineDistance(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return MaxDistance
	}

	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return MaxDistance
	}

	d := 1 - dot/(math.Sqrt(na)*math.Sqrt(nb))
	// rounding can push identical vectors slightly outside the range
	return math.Min(MaxDistance, math.Max(0, d))
}

// NormalizeVector normalizes a vector to unit length.
// Returns a new vector. If the input is a zero vector, returns a zero vector.
func NormalizeVector(v []float32) []float32 {
	result := make([]float32, len(v))

	var magnitude float64
	for _, val := range v {
		magnitude += float64(val) * float64(val)
	}
	if magnitude == 0 {
		return result
	}

	magnitude = math.Sqrt(magnitude)
	for i, val := range v {
		result[i] = float32(float64(val) / magnitude)
	}
	return result
}
