package pattern

// hashTable is the content-addressed dictionary the generator uses to
// hash-cons Patterns during a build: any two candidate bin tuples that
// compare Equal end up sharing one *Pattern instance.
//
// The bucket array is sized lazily, on first insertion, to 2^(levels-1):
// the same sizing PatternGenerator.AddHash uses, chosen so that the
// worst-case pattern count (roughly 2^(levels-1) * 2^(planes-2)) yields a
// small, bounded number of collisions per bucket rather than one huge
// bucket or a wastefully oversized table.
type hashTable struct {
	buckets  [][]*Pattern
	levels   int
	maxDepth int // deepest bucket chain observed, for Statistics.MaxHashDepth
}

func newHashTable(levels int) *hashTable {
	return &hashTable{levels: levels}
}

func (h *hashTable) ensureSized() {
	if h.buckets != nil {
		return
	}
	h.buckets = make([][]*Pattern, 1<<uint(h.levels-1))
}

// find returns the canonical Pattern equal to bins, or nil if absent.
func (h *hashTable) find(bins []int32) *Pattern {
	if h.buckets == nil {
		return nil
	}
	cand := &Pattern{bins: bins}
	bucket := h.buckets[cand.Hash()%uint64(len(h.buckets))]
	for _, p := range bucket {
		if p.Equal(cand) {
			return p
		}
	}
	return nil
}

// add unconditionally inserts p into its bucket. Callers must have
// already confirmed find(p.bins) returned nil.
func (h *hashTable) add(p *Pattern) {
	debugAssert(p != nil, ErrNilPattern)
	h.ensureSized()
	idx := p.Hash() % uint64(len(h.buckets))
	h.buckets[idx] = append(h.buckets[idx], p)
	if n := len(h.buckets[idx]); n > h.maxDepth {
		h.maxDepth = n
	}
	debugAssert(h.find(p.bins) == p, ErrPatternNotFound)
}
