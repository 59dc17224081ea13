package common

import "math"

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// SineInOut eases t in [0,1] with a half cosine.
func SineInOut(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
