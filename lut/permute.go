package lut

import "fmt"

// forEachPermutation calls f with every permutation of 0..n-1. The slice
// passed to f is reused between calls.
func forEachPermutation(n int, f func([]int)) {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	var rec func(k int)
	rec = func(k int) {
		if k == n {
			f(p)
			return
		}

		for i := k; i < n; i++ {
			p[k], p[i] = p[i], p[k]
			rec(k + 1)
			p[k], p[i] = p[i], p[k]
		}
	}
	rec(0)
}

// Arrangements returns every ordered assignment of k logical inputs to the
// physical input pins. The first arrangement is always 0..k-1, so an
// identity mapping is tried first during matching.
func Arrangements(k int) [][]int {
	if k < 0 || k > NumInputs {
		panic(fmt.Sprintf("cannot arrange %d inputs on %d pins", k, NumInputs))
	}

	var result [][]int
	var used [NumInputs]bool
	current := make([]int, 0, k)

	var rec func()
	rec = func() {
		if len(current) == k {
			result = append(result, append([]int(nil), current...))
			return
		}

		for pin := 0; pin < NumInputs; pin++ {
			if used[pin] {
				continue
			}

			used[pin] = true
			current = append(current, pin)
			rec()
			current = current[:len(current)-1]
			used[pin] = false
		}
	}
	rec()

	return result
}
