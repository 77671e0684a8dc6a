package sim

// sweep partitions s into the elements remove selects and the rest, keeping
// the relative order of both. The kept slice reuses s's backing array; the
// vacated tail is zeroed so removed pointers can be collected.
func sweep[T any](s []T, remove func(T) bool) (removed, kept []T) {
	n := 0
	for _, v := range s {
		if remove(v) {
			removed = append(removed, v)
			continue
		}
		s[n] = v
		n++
	}
	var zero T
	for i := n; i < len(s); i++ {
		s[i] = zero
	}
	return removed, s[:n]
}
