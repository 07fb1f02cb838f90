package synth

import "math"

// padTo right-pads buf with silence to n samples
func padTo(buf []float64, n int) []float64 {
	if len(buf) >= n {
		return buf
	}
	out := make([]float64, n)
	copy(out, buf)
	return out
}

// average sums equal-length buffers per sample and divides by their
// count, keeping amplitude bounded before normalization
func average(bufs [][]float64, n int) []float64 {
	mix := make([]float64, n)
	for _, buf := range bufs {
		for i, v := range buf {
			mix[i] += v
		}
	}
	scale := 1.0 / float64(len(bufs))
	for i := range mix {
		mix[i] *= scale
	}
	return mix
}

// normalize scales buf in place so its peak reaches exactly ±1.0.
// An all-zero buffer is left untouched: silence stays silence.
func normalize(buf []float64) []float64 {
	peak := 0.0
	for _, v := range buf {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return buf
	}
	for i := range buf {
		buf[i] /= peak
	}
	return buf
}
