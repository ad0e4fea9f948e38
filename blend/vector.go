package blend

import (
	"fmt"

	"github.com/cwbudde/algo-blend/blend/internal/arch/registry"
	"github.com/cwbudde/algo-blend/buffer"
	"github.com/cwbudde/algo-vecmath"
)

// Alignment selects how the vector executor treats buffer alignment.
type Alignment int

const (
	// AlignAny uses unaligned packet loads and stores on any buffer.
	AlignAny Alignment = iota
	// AlignRequire rejects buffers not aligned to the packet size.
	AlignRequire
	// AlignCopy runs on aligned scratch copies when a buffer is misaligned.
	AlignCopy
)

// String returns the flag spelling of the policy.
func (a Alignment) String() string {
	switch a {
	case AlignAny:
		return "any"
	case AlignRequire:
		return "require"
	case AlignCopy:
		return "copy"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// ParseAlignment parses the String form of an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	for _, a := range []Alignment{AlignAny, AlignRequire, AlignCopy} {
		if a.String() == s {
			return a, nil
		}
	}
	return AlignAny, fmt.Errorf("%w: %q", ErrUnknownAlignment, s)
}

// maxAlign caps the alignment demanded for wide packets at one cache line.
const maxAlign = 64

// PacketAlignment returns the byte alignment required for packets of width
// lanes: the packet size rounded up to a power of two, at most 64.
func PacketAlignment(width int) int {
	size := width * 8
	align := 8
	for align < size && align < maxAlign {
		align <<= 1
	}
	return align
}

// scratchPool backs block-mode temporaries and aligned copies.
var scratchPool = buffer.NewPool()

// Vector is the packed executor. Full packets of LaneWidth samples go
// through the selected lane backend; the n%LaneWidth tail goes through
// ScreenBlock. Each lane evaluates the same subtract, multiply, divide,
// subtract sequence as Screen, so results match Scalar at every index.
type Vector struct {
	// LaneWidth is the packet width in samples. 0 selects the native width
	// of the backend.
	LaneWidth int

	// Alignment is the policy for buffers not aligned to the packet size.
	Alignment Alignment

	// Block evaluates the packet body with whole-block primitives instead of
	// per-packet lane ops; the multiply step uses algo-vecmath's SIMD kernels.
	Block bool

	// Backend names a registered lane backend; "" selects the best one for
	// the running CPU.
	Backend string
}

// Name implements Executor.
func (Vector) Name() string { return StrategyVectorized.String() }

// Run writes the screen blend of src1 and src2 into dst.
func (e Vector) Run(dst, src1, src2 []float64) error {
	if err := validate(dst, src1, src2); err != nil {
		return err
	}
	if e.LaneWidth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLaneWidth, e.LaneWidth)
	}

	entry, err := lookupBackend(e.Backend)
	if err != nil {
		return err
	}

	width := e.LaneWidth
	if width == 0 {
		width = entry.LaneWidth
	}
	layout, err := PacketPlan(len(dst), width)
	if err != nil {
		return err
	}

	align := PacketAlignment(width)
	aligned := buffer.IsAligned(dst, align) && buffer.IsAligned(src1, align) && buffer.IsAligned(src2, align)

	switch e.Alignment {
	case AlignAny:
	case AlignRequire:
		if !aligned {
			return fmt.Errorf("%w: %d-byte alignment required for %d-lane packets",
				ErrAlignment, align, width)
		}
	case AlignCopy:
		if !aligned {
			return e.runScratch(entry, layout, align, dst, src1, src2)
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnknownAlignment, e.Alignment)
	}

	e.screen(entry, layout, dst, src1, src2)
	return nil
}

// runScratch copies the sources into aligned scratch, blends there and
// copies the result back. Scratch is obtained before dst is touched.
func (e Vector) runScratch(entry *registry.OpEntry, layout PacketLayout, align int, dst, src1, src2 []float64) error {
	n := len(dst)
	Logger().Debug("blend: aligned scratch copy",
		"samples", n,
		"align", align)

	var scratch [3]*buffer.Buffer
	defer func() {
		for _, b := range scratch {
			scratchPool.Put(b)
		}
	}()
	for i := range scratch {
		b, err := scratchPool.GetAligned(n, align)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrAllocationFailure, err)
		}
		scratch[i] = b
	}
	a, b, d := scratch[0].Samples(), scratch[1].Samples(), scratch[2].Samples()
	copy(a, src1)
	copy(b, src2)

	e.screen(entry, layout, d, a, b)
	copy(dst, d)
	return nil
}

func (e Vector) screen(entry *registry.OpEntry, layout PacketLayout, dst, src1, src2 []float64) {
	body, tail := layout.Body, layout.Tail

	if body.Len() > 0 {
		if e.Block {
			screenBlockOps(dst[:body.End], src1[:body.End], src2[:body.End])
		} else {
			entry.ScreenPackets(dst[:body.End], src1[:body.End], src2[:body.End], layout.Width)
		}
	}

	ScreenBlock(dst[tail.Start:tail.End], src1[tail.Start:tail.End], src2[tail.Start:tail.End])
}

// screenBlockOps evaluates the blend as four block passes: complement both
// sources, multiply them with vecmath, then divide and complement.
func screenBlockOps(dst, a, b []float64) {
	n := len(dst)
	t1 := scratchPool.Get(n)
	t2 := scratchPool.Get(n)
	defer scratchPool.Put(t1)
	defer scratchPool.Put(t2)

	s1, s2 := t1.Samples(), t2.Samples()
	for i := range s1 {
		s1[i] = 255 - a[i]
		s2[i] = 255 - b[i]
	}

	vecmath.MulBlockInPlace(s1, s2)

	for i := range dst {
		dst[i] = 255 - s1[i]/255
	}
}
