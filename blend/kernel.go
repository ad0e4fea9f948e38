package blend

// Screen returns the screen blend of two samples:
//
//	255 - ((255 - a) * (255 - b) / 255)
//
// The arithmetic is plain IEEE float64 with no clamping or rounding, so
// inputs outside [0, 255] propagate through the formula unchanged.
func Screen(a, b float64) float64 {
	return 255 - ((255 - a) * (255 - b) / 255)
}

// ScreenBlock writes Screen(a[i], b[i]) into dst[i] in ascending order.
// a and b must be at least as long as dst.
func ScreenBlock(dst, a, b []float64) {
	if len(dst) == 0 {
		return
	}
	_ = a[len(dst)-1] // bounds check hint
	_ = b[len(dst)-1]
	for i := range dst {
		dst[i] = 255 - ((255 - a[i]) * (255 - b[i]) / 255)
	}
}
