package game2048

// MoveAndMergeEqual slides the values of line toward its front and merges
// each pair of equal neighbours once, left to right. A merged value is not
// merged again in the same pass, so [2 2 2 _] becomes [4 2 _ _]. The result
// has the same length as line; nil marks an empty slot.
func MoveAndMergeEqual[T comparable](line []*T, merge func(T) T) []*T {
	present := make([]T, 0, len(line))
	for _, v := range line {
		if v != nil {
			present = append(present, *v)
		}
	}

	out := make([]*T, 0, len(line))
	for i := 0; i < len(present); i++ {
		v := present[i]
		if i+1 < len(present) && present[i+1] == v {
			v = merge(v)
			i++
		}
		out = append(out, &v)
	}

	for len(out) < len(line) {
		out = append(out, nil)
	}
	return out
}
