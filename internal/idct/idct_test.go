package idct

import (
	"math"
	"testing"
)

func TestTransform4DC(t *testing.T) {
	src := []float32{1, 0, 0, 0}
	dst := make([]float32, 4)
	Transform(4, src, 1, dst, 1)

	want := float32(0.5)
	for i, v := range dst {
		if diff := v - want; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("dst[%d] = %v, want %v", i, v, want)
		}
	}
}

// forwardDCTII is the orthonormal DCT-II used only by this test to
// verify idct_1d_N round-trips its own forward transform.
func forwardDCTII(n int, src []float32) []float32 {
	out := make([]float32, n)
	for k := 0; k < n; k++ {
		alpha := math.Sqrt(2.0 / float64(n))
		if k == 0 {
			alpha = math.Sqrt(1.0 / float64(n))
		}
		var sum float64
		for x := 0; x < n; x++ {
			sum += float64(src[x]) * math.Cos(math.Pi*float64(2*x+1)*float64(k)/float64(2*n))
		}
		out[k] = float32(alpha * sum)
	}
	return out
}

func TestOrthonormalRoundTrip(t *testing.T) {
	for n := minSize; n <= maxSize; n++ {
		src := make([]float32, n)
		for i := range src {
			src[i] = float32(i+1) * 0.37
		}

		freq := forwardDCTII(n, src)
		got := make([]float32, n)
		Transform(n, freq, 1, got, 1)

		for i := range src {
			want := float64(src[i])
			diff := math.Abs(float64(got[i]) - want)
			rel := diff / (math.Abs(want) + 1e-9)
			if rel > 1e-4 && diff > 1e-4 {
				t.Errorf("n=%d: got[%d] = %v, want %v (rel err %v)", n, i, got[i], want, rel)
			}
		}
	}
}

// TestTransformStrided interleaves two independent size-2 transforms
// in one buffer (even lane, odd lane) and checks that each lane's
// output only depends on its own stride-2 inputs.
func TestTransformStrided(t *testing.T) {
	src := []float32{1, 7, 0, 0} // even lane = [1, 0], odd lane = [7, 0]
	dst := make([]float32, 4)
	Transform(2, src, 2, dst, 2)
	Transform(2, src[1:], 2, dst[1:], 2)

	c := float32(1.0 / math.Sqrt2)
	if diff := dst[0] - c; diff > 1e-5 || diff < -1e-5 {
		t.Errorf("dst[0] (even lane DC) = %v, want %v", dst[0], c)
	}
	if diff := dst[2] - c; diff > 1e-5 || diff < -1e-5 {
		t.Errorf("dst[2] (even lane DC) = %v, want %v", dst[2], c)
	}
	want1 := 7 * c
	if diff := dst[1] - want1; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("dst[1] (odd lane) = %v, want %v", dst[1], want1)
	}
	if diff := dst[3] - want1; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("dst[3] (odd lane) = %v, want %v", dst[3], want1)
	}
}

func TestZeroSkipMatchesDenseMultiply(t *testing.T) {
	for n := minSize; n <= maxSize; n++ {
		sparse := make([]float32, n)
		sparse[n/2] = 3.5
		got := make([]float32, n)
		Transform(n, sparse, 1, got, 1)

		table := coeffs[n]
		for x := 0; x < n; x++ {
			want := table[n/2][x] * 3.5
			if got[x] != want {
				t.Errorf("n=%d x=%d: got %v want %v", n, x, got[x], want)
			}
		}
	}
}

func TestFixedSizeEntryPoints(t *testing.T) {
	fns := []func([]float32, int, []float32, int){
		Transform2, Transform3, Transform4, Transform5, Transform6,
		Transform7, Transform8, Transform9, Transform10, Transform11, Transform12,
	}
	for i, fn := range fns {
		n := i + 2
		src := make([]float32, n)
		src[0] = 1
		want := make([]float32, n)
		Transform(n, src, 1, want, 1)

		got := make([]float32, n)
		fn(src, 1, got, 1)
		for x := 0; x < n; x++ {
			if got[x] != want[x] {
				t.Errorf("Transform%d differs from Transform(%d, ...) at %d: %v vs %v", n, n, x, got[x], want[x])
			}
		}
	}
}
