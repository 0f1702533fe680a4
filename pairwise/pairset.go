package pairwise

// pairSet is a set of unordered index pairs {i, j}, i != j, stored as a bitset over
// the strict lower triangle of an n×n matrix.
type pairSet struct {
	bits []uint64
}

func newPairSet(n int) *pairSet {
	size := n * (n - 1) / 2
	return &pairSet{bits: make([]uint64, (size+63)/64)}
}

func pairIndex(i, j int) int {
	if i > j {
		i, j = j, i
	}
	return j*(j-1)/2 + i
}

func (s *pairSet) add(i, j int) {
	k := pairIndex(i, j)
	s.bits[k/64] |= 1 << (k % 64)
}

func (s *pairSet) has(i, j int) bool {
	k := pairIndex(i, j)
	return s.bits[k/64]&(1<<(k%64)) != 0
}
