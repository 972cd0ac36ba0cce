package gputex

import "github.com/basisgo/gputex/internal/idct"

// IDCT1D computes the size-n orthonormal inverse DCT (DCT-III) of src
// into dst. n must be in [2, 12].
func IDCT1D(n int, src []float32, srcStride int, dst []float32, dstStride int) {
	idct.Transform(n, src, srcStride, dst, dstStride)
}
