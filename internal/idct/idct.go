// Package idct implements the orthonormal 1D inverse DCT (DCT-III)
// kernel family used by HDR block transcoding, for sizes 2 through 12.
//
// Each kernel computes
//
//	dst[x*dstStride] = sum_k C[k][x] * src[k*srcStride]
//	C[k][x] = alpha(k) * cos(pi*(2x+1)*k / (2N))
//	alpha(0) = sqrt(1/N), alpha(k>0) = sqrt(2/N)
//
// Coefficients are regenerated from the closed-form formula rather
// than transcribed as literals; the published reference values are
// themselves just float32 roundings of this same formula, so the
// difference is last-ulp only (see the package's design notes).
package idct

import "math"

const minSize = 2
const maxSize = 12

// coeffs[n][k][x] is C[k][x] for size n (n in [2, 12]).
var coeffs [maxSize + 1][][]float32

func init() {
	for n := minSize; n <= maxSize; n++ {
		table := make([][]float32, n)
		for k := 0; k < n; k++ {
			row := make([]float32, n)
			alpha := math.Sqrt(2.0 / float64(n))
			if k == 0 {
				alpha = math.Sqrt(1.0 / float64(n))
			}
			for x := 0; x < n; x++ {
				row[x] = float32(alpha * math.Cos(math.Pi*float64(2*x+1)*float64(k)/float64(2*n)))
			}
			table[k] = row
		}
		coeffs[n] = table
	}
}

// Transform computes the size-n orthonormal IDCT-III of src into dst.
// n must be in [2, 12]; src and dst must each hold n elements spaced
// srcStride/dstStride apart. Skipping zero-valued input terms is a
// pure optimization and does not change the result.
func Transform(n int, src []float32, srcStride int, dst []float32, dstStride int) {
	table := coeffs[n]
	var sums [maxSize]float32
	for k := 0; k < n; k++ {
		v := src[k*srcStride]
		if v == 0 {
			continue
		}
		row := table[k]
		for x := 0; x < n; x++ {
			sums[x] += row[x] * v
		}
	}
	for x := 0; x < n; x++ {
		dst[x*dstStride] = sums[x]
	}
}

// Transform2 through Transform12 are fixed-size entry points mirroring
// the reference idct_1d_N naming, for callers that dispatch on a
// compile-time-known size.
func Transform2(src []float32, srcStride int, dst []float32, dstStride int) {
	Transform(2, src, srcStride, dst, dstStride)
}
func Transform3(src []float32, srcStride int, dst []float32, dstStride int) {
	Transform(3, src, srcStride, dst, dstStride)
}
func Transform4(src []float32, srcStride int, dst []float32, dstStride int) {
	Transform(4, src, srcStride, dst, dstStride)
}
func Transform5(src []float32, srcStride int, dst []float32, dstStride int) {
	Transform(5, src, srcStride, dst, dstStride)
}
func Transform6(src []float32, srcStride int, dst []float32, dstStride int) {
	Transform(6, src, srcStride, dst, dstStride)
}
func Transform7(src []float32, srcStride int, dst []float32, dstStride int) {
	Transform(7, src, srcStride, dst, dstStride)
}
func Transform8(src []float32, srcStride int, dst []float32, dstStride int) {
	Transform(8, src, srcStride, dst, dstStride)
}
func Transform9(src []float32, srcStride int, dst []float32, dstStride int) {
	Transform(9, src, srcStride, dst, dstStride)
}
func Transform10(src []float32, srcStride int, dst []float32, dstStride int) {
	Transform(10, src, srcStride, dst, dstStride)
}
func Transform11(src []float32, srcStride int, dst []float32, dstStride int) {
	Transform(11, src, srcStride, dst, dstStride)
}
func Transform12(src []float32, srcStride int, dst []float32, dstStride int) {
	Transform(12, src, srcStride, dst, dstStride)
}
