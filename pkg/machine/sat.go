package machine

import "math"

// Checked 32-bit arithmetic. Each helper reports whether the exact result
// fits in int32; the caller picks the clamp direction on failure.

func addChecked(a, b int32) (int32, bool) { return fits(int64(a) + int64(b)) }
func subChecked(a, b int32) (int32, bool) { return fits(int64(a) - int64(b)) }
func mulChecked(a, b int32) (int32, bool) { return fits(int64(a) * int64(b)) }
func divChecked(a, b int32) (int32, bool) { return fits(int64(a) / int64(b)) }

// powChecked computes a**b for b >= 0. Bases of magnitude <= 1 are resolved
// directly; for any other base the accumulator is widened to int64 and the
// loop stops the moment it leaves the int32 range, which bounds it to at most
// 31 iterations.
func powChecked(a, b int32) (int32, bool) {
	switch a {
	case 0:
		if b == 0 {
			return 1, true
		}
		return 0, true
	case 1:
		return 1, true
	case -1:
		if b%2 == 0 {
			return 1, true
		}
		return -1, true
	}
	r := int64(1)
	for i := int32(0); i < b; i++ {
		r *= int64(a)
		if r < math.MinInt32 || r > math.MaxInt32 {
			return 0, false
		}
	}
	return int32(r), true
}

func fits(v int64) (int32, bool) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}

func sign(v int32) int32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
