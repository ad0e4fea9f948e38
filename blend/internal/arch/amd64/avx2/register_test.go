//go:build amd64 && !purego

package avx2

import "testing"

func TestScreenPacketsMatchesFormula(t *testing.T) {
	for _, width := range []int{4, 8, 6} {
		n := width * 3
		a := make([]float64, n)
		b := make([]float64, n)
		for i := range a {
			a[i] = float64(i * 11 % 256)
			b[i] = float64(255 - i*7%256)
		}
		dst := make([]float64, n)
		screenPackets(dst, a, b, width)
		for i := range dst {
			want := 255 - ((255 - a[i]) * (255 - b[i]) / 255)
			if dst[i] != want {
				t.Fatalf("width %d index %d: got %v, want %v", width, i, dst[i], want)
			}
		}
	}
}
