// Package buffer provides the sample buffer type shared by the blend
// executors: a contiguous float64 slice carrying its own image layout
// (width, height, channel count), a sync.Pool-backed scratch pool, and
// aligned allocation for packed loads and stores.
//
// Executors accept raw []float64 slices; Buffer is the typed wrapper used at
// the image boundary (decoders, encoders, [Composite]-style helpers) so that
// sample counts are always derived from a validated layout.
package buffer
