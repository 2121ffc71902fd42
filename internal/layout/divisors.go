package layout

// Divisors returns every positive divisor of n exactly once, largest first.
// It returns nil for n < 1.
func Divisors(n int) []int {
	if n < 1 {
		return nil
	}
	var small, large []int
	for i := 1; i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		small = append(small, i)
		if j := n / i; j != i {
			large = append(large, j)
		}
	}
	// large is descending and every entry exceeds sqrt(n); small is ascending.
	out := make([]int, 0, len(small)+len(large))
	out = append(out, large...)
	for i := len(small) - 1; i >= 0; i-- {
		out = append(out, small[i])
	}
	return out
}
