// Package generic provides the portable lane backend. It is always
// registered and serves any packet width.
package generic

import (
	"github.com/cwbudde/algo-blend/blend/internal/arch/registry"
	"github.com/cwbudde/algo-blend/internal/lanes"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// LaneWidth is the packet width used when no width is requested.
const LaneWidth = 8

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:          "generic",
		SIMDLevel:     cpu.SIMDNone,
		Priority:      0,
		LaneWidth:     LaneWidth,
		ScreenPackets: ScreenPackets,
	})
}

// ScreenPackets processes dst one packet of width lanes at a time: every
// lane of a packet is complemented, multiplied, divided and complemented
// before the next packet is touched.
func ScreenPackets(dst, a, b []float64, width int) {
	if width == LaneWidth {
		screenPackets8(dst, a, b)
		return
	}

	var t1, t2 [LaneWidth]float64
	for off := 0; off+width <= len(dst); off += width {
		pa := a[off : off+width]
		pb := b[off : off+width]
		pd := dst[off : off+width]
		for base := 0; base < width; base += LaneWidth {
			m := min(LaneWidth, width-base)
			for i := 0; i < m; i++ {
				t1[i] = 255 - pa[base+i]
				t2[i] = 255 - pb[base+i]
			}
			for i := 0; i < m; i++ {
				pd[base+i] = 255 - t1[i]*t2[i]/255
			}
		}
	}
}

func screenPackets8(dst, a, b []float64) {
	c255 := lanes.SplatF64x8(255)
	for off := 0; off+8 <= len(dst); off += 8 {
		va := lanes.LoadF64x8(a[off:])
		vb := lanes.LoadF64x8(b[off:])
		prod := c255.Sub(va).Mul(c255.Sub(vb))
		c255.Sub(prod.Div(c255)).Store(dst[off:])
	}
}
