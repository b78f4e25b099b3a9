package crossval

// IndexRange is a contiguous half-open range of integer positions
// [Start, End) into a dataset.
type IndexRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of positions covered by the range.
func (r IndexRange) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Empty reports whether the range covers no positions.
func (r IndexRange) Empty() bool {
	return r.End <= r.Start
}

// Indices materializes the range as an ascending slice of positions.
func (r IndexRange) Indices() []int {
	if r.Empty() {
		return nil
	}
	idx := make([]int, 0, r.Len())
	for i := r.Start; i < r.End; i++ {
		idx = append(idx, i)
	}
	return idx
}
