package batch

// Conditions lists the simple initial conditions over k states up to maxLen
// cells. Each round keeps every shorter condition and adds, for each of them
// and each nonzero leading digit, that digit followed by the condition
// left-padded with zeros to the previous round's length.
//
// The result holds every sequence of length 1..maxLen whose first and last
// symbols are nonzero, each exactly once, shortest first.
func Conditions(k, maxLen int) [][]uint8 {
	if k < 2 || maxLen < 1 {
		return nil
	}
	out := make([][]uint8, 0, k-1)
	for d := 1; d < k; d++ {
		out = append(out, []uint8{uint8(d)})
	}
	for n := 2; n <= maxLen; n++ {
		shorter := len(out)
		for _, ic := range out[:shorter] {
			for d := 1; d < k; d++ {
				next := make([]uint8, n)
				next[0] = uint8(d)
				copy(next[n-len(ic):], ic)
				out = append(out, next)
			}
		}
	}
	return out
}
