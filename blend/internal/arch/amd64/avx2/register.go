//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-blend/blend/internal/arch/generic"
	"github.com/cwbudde/algo-blend/blend/internal/arch/registry"
	"github.com/cwbudde/algo-blend/internal/lanes"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// LaneWidth is the number of float64 lanes in one 256-bit AVX2 register.
const LaneWidth = 4

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:          "avx2",
		SIMDLevel:     cpu.SIMDAVX2,
		Priority:      20,
		LaneWidth:     LaneWidth,
		ScreenPackets: screenPackets,
	})
}

// screenPackets runs 4-lane packets; widths that are not a multiple of the
// register width go through the portable backend.
// TODO: replace with explicit AVX2 asm kernel.
func screenPackets(dst, a, b []float64, width int) {
	if width%LaneWidth != 0 {
		generic.ScreenPackets(dst, a, b, width)
		return
	}

	c255 := lanes.SplatF64x4(255)
	for off := 0; off+LaneWidth <= len(dst); off += LaneWidth {
		va := lanes.LoadF64x4(a[off:])
		vb := lanes.LoadF64x4(b[off:])
		prod := c255.Sub(va).Mul(c255.Sub(vb))
		c255.Sub(prod.Div(c255)).Store(dst[off:])
	}
}
