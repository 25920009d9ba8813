package lines

import "sort"

// Index holds the start offset of every line beginning in [0, limit].
type Index struct {
	data   []byte
	starts []int
}

// BuildIndex scans data once and records where each line begins, up to and
// including limit. A start at len(data), after a final '\n', is not a line.
func BuildIndex(data []byte, limit int) *Index {
	if limit >= len(data) {
		limit = len(data) - 1
	}
	idx := &Index{data: data}
	if limit < 0 {
		return idx
	}

	idx.starts = append(idx.starts, 0)
	for from := 0; ; {
		p := nextNewline(data, from)
		if p < 0 || p+1 > limit {
			break
		}
		idx.starts = append(idx.starts, p+1)
		from = p + 1
	}
	return idx
}

// Len returns the number of indexed line starts.
func (idx *Index) Len() int {
	return len(idx.starts)
}

// Start returns the offset where line i begins.
func (idx *Index) Start(i int) int {
	return idx.starts[i]
}

// Span resolves line i to its full extent. ok is false when line i has no
// terminator.
func (idx *Index) Span(i int) (Span, bool) {
	return Locate(idx.data, idx.starts[i])
}

// LineOf returns the 0-based number of the line containing offset.
func (idx *Index) LineOf(offset int) int {
	i := sort.Search(len(idx.starts), func(i int) bool {
		return idx.starts[i] > offset
	})
	if i == 0 {
		return 0
	}
	return i - 1
}
