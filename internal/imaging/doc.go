// Package imaging implements the watermarking pipeline for the wallpapers
// backend: decoding fetched bytes into pixel buffers, compositing the text
// label, and serializing the result to JPEG.
//
// The pipeline is strictly sequential (Decode -> Watermark -> EncodeJPEG) and
// every stage is pure CPU-bound work. No stage holds per-request state, so
// concurrent requests may run the pipeline independently without locking.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward.
//
// # Buffers
//
// Decode returns a freshly allocated NRGBA buffer owned by the caller.
// Watermark never mutates its input; it returns a new composited buffer.
package imaging
