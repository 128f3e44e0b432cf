// Package pixel implements fixed-channel pixel values over a generic channel
// type, zero-copy reinterpretation of pixel buffers as flat channel slices or
// raw bytes, and per-channel arithmetic.
//
// A pixel variant is a struct whose fields are its channels, declared in
// memory order: [RGB], [BGR], [GRB], [RGBA], [BGRA], [ARGB], [ABGR], [Gray]
// and [GrayAlpha]. A contiguous slice of one variant is a flat, uniformly
// strided channel array, and [Components] and [Bytes] exploit that to expose
// the same memory as a channel slice or a raw byte buffer without copying.
//
// # The unsafe contract
//
// The views are built on unsafe.Slice and are sound only because [Channel]
// admits fixed-width numeric types exclusively: no padding, no pointers, and
// every bit pattern is valid ("plain old data"). This is the package's single
// trust boundary. Two obligations remain with the caller:
//
//   - a view borrows the buffer it was taken from and must not outlive it;
//   - the package does no locking; sharing a buffer across goroutines while
//     holding a view is the caller's synchronization problem.
//
// Byte views are in the host's native byte order; no endian normalization is
// performed.
package pixel
