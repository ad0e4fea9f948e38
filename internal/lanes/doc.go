// Package lanes provides fixed-width float64 packet types for the vectorized
// blend backends.
//
// Each type is a plain array so the compiler can keep a packet in registers
// and lower the element loops to packed instructions where the target
// supports it. Load and Store copy exactly one packet; callers slice the
// input so that a full packet is always available.
//
//	F64x2: one 128-bit register (SSE2, NEON)
//	F64x4: one 256-bit register (AVX2)
//	F64x8: two AVX2 registers / one AVX-512 register
package lanes
