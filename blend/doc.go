// Package blend computes the screen-blend composite of two equal-sized
// sample buffers:
//
//	dst[i] = 255 - ((255 - src1[i]) * (255 - src2[i]) / 255)
//
// The same kernel ([Screen]) is evaluated by three interchangeable
// executors that produce identical results:
//
//   - [Scalar] walks the buffers sequentially and is the reference.
//   - [Threaded] splits [0, n) with [Plan] into one disjoint partition per
//     worker goroutine and joins them all before returning.
//   - [Vector] runs full packets through a lane backend selected for the
//     running CPU, then finishes the tail with [Screen].
//
// Buffers are plain []float64 slices owned by the caller; [buffer.Buffer]
// adds image layout metadata at the boundary (see [Composite]). All inputs
// are validated once, before any sample is written.
package blend
