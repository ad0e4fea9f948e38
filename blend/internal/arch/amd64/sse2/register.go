//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-blend/blend/internal/arch/generic"
	"github.com/cwbudde/algo-blend/blend/internal/arch/registry"
	"github.com/cwbudde/algo-blend/internal/lanes"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// LaneWidth is the number of float64 lanes in one 128-bit SSE2 register.
const LaneWidth = 2

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:          "sse2",
		SIMDLevel:     cpu.SIMDSSE2,
		Priority:      10,
		LaneWidth:     LaneWidth,
		ScreenPackets: screenPackets,
	})
}

// screenPackets runs 2-lane packets; widths that are not a multiple of the
// register width go through the portable backend.
func screenPackets(dst, a, b []float64, width int) {
	if width%LaneWidth != 0 {
		generic.ScreenPackets(dst, a, b, width)
		return
	}

	c255 := lanes.SplatF64x2(255)
	for off := 0; off+LaneWidth <= len(dst); off += LaneWidth {
		va := lanes.LoadF64x2(a[off:])
		vb := lanes.LoadF64x2(b[off:])
		prod := c255.Sub(va).Mul(c255.Sub(vb))
		c255.Sub(prod.Div(c255)).Store(dst[off:])
	}
}
