package pattern

// ChildIter lazily enumerates the canonical children of a parent Pattern
// at doubled bin resolution. There are 2^N raw candidates, one per
// selector s in {0,1}^N via c[i] = 2*parent[i] + s[i]; the iterator walks
// the selector from 2^N-1 down to 0.
//
// ChildIter does not deduplicate: distinct selectors may canonicalize to
// the same child bins, or to the parent's own bins (a self-reference).
// Generator folds both cases when attaching Links (Pattern.addChild), so
// ChildIter itself stays a pure, side-effect-free enumeration.
//
// Canonicalization order is shift-then-mirror: an origin shift (subtracting
// one from every bin when the raw candidate's minimum bin is nonzero) is
// applied first, then a mirror (reflecting about the raw, pre-shift
// width) if that raw width was negative. Mirrored children only ever
// arise from the all-zero root, and a candidate is never both shifted
// and mirrored by the same selector.
type ChildIter struct {
	parent   *Pattern
	selector int
	done     bool
}

// NewChildIter returns a ChildIter over the children of parent.
func NewChildIter(parent *Pattern) *ChildIter {
	n := parent.N()
	return &ChildIter{parent: parent, selector: (1 << uint(n)) - 1}
}

// Next advances the iterator and returns the next candidate child bins
// and its transformation tag. ok is false once the selector space is
// exhausted; child and typ are meaningless in that case.
func (it *ChildIter) Next() (child []int32, typ LinkType, ok bool) {
	if it.done || it.selector < 0 {
		it.done = true
		return nil, 0, false
	}

	n := it.parent.N()
	c := make([]int32, n)
	for i := 0; i < n; i++ {
		bit := int32(0)
		if it.selector&(1<<uint(i)) != 0 {
			bit = 1
		}
		c[i] = 2*it.parent.Bin(i) + bit
	}
	it.selector--

	// rawWidth is signed and taken on the un-shifted, un-mirrored candidate;
	// its sign tells whether this candidate needs mirroring to canonicalize.
	rawWidth := c[n-1] - c[0]
	minbit, maxbit := c[0], c[0]
	for _, b := range c {
		if b < minbit {
			minbit = b
		}
		if b > maxbit {
			maxbit = b
		}
	}
	if maxbit-minbit > absInt32(rawWidth) {
		// Inadmissible spread for this bin resolution; try the next selector.
		return it.Next()
	}

	var typTag LinkType
	if minbit != 0 {
		for i := range c {
			c[i]--
		}
		typTag |= LinkShifted
	}
	if rawWidth < 0 {
		w := -rawWidth
		for i := range c {
			c[i] = w - c[i]
		}
		typTag |= LinkMirrored
	}

	return c, typTag, true
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
