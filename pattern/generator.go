package pattern

import (
	"time"

	"github.com/bandtrace/bandtrace/walk"
)

// Option configures a TreeParam before a build. Options are applied
// left-to-right by NewTreeParam; Generate re-validates the resulting
// TreeParam regardless of how the caller assembled it.
type Option func(*TreeParam)

// TreeParam holds the parameters of a single pattern-tree build: the
// depth of the tree, the ordered z-positions of the detector planes
// (normalized to [0,1]), and the maximum admissible track slope.
type TreeParam struct {
	MaxDepth int
	Width    float64
	ZPos     []float64
	MaxSlope float64
}

// WithMaxDepth sets the highest level index; the tree has MaxDepth+1
// levels (0..MaxDepth inclusive).
func WithMaxDepth(d int) Option {
	return func(p *TreeParam) { p.MaxDepth = d }
}

// WithWidth sets the physical detector width in user units. It has no
// effect on tree construction beyond being carried through to Tree for
// downstream callers converting bin indices back to physical positions.
func WithWidth(w float64) Option {
	return func(p *TreeParam) { p.Width = w }
}

// WithZPositions sets the plane z-positions. They need not already be
// normalized to [0,1]; Generate normalizes them so that the first
// position is 0 and the last is 1.
func WithZPositions(z []float64) Option {
	return func(p *TreeParam) {
		p.ZPos = append([]float64(nil), z...)
	}
}

// WithMaxSlope sets the maximum admissible track slope in normalized
// coordinates.
func WithMaxSlope(s float64) Option {
	return func(p *TreeParam) { p.MaxSlope = s }
}

// NewTreeParam builds a TreeParam from options, applied left-to-right.
// It does not validate; call Generate to validate and build, or
// validate directly with (*TreeParam).normalize.
func NewTreeParam(opts ...Option) TreeParam {
	var p TreeParam
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// normalize validates p and rewrites ZPos in place to satisfy
// ZPos[0] == 0, ZPos[N-1] == 1. It returns the plane count N and the
// tree's level count (MaxDepth+1), or an error if p is invalid.
func (p *TreeParam) normalize() (planes, levels int, err error) {
	n := len(p.ZPos)
	if n < 2 {
		return 0, 0, ErrTooFewPlanes
	}
	for i := 1; i < n; i++ {
		if p.ZPos[i] <= p.ZPos[i-1] {
			return 0, 0, ErrNonIncreasingZ
		}
	}
	if p.MaxSlope < 0 {
		return 0, 0, ErrNegativeSlope
	}
	if p.MaxDepth < 1 {
		return 0, 0, ErrInvalidDepth
	}

	span := p.ZPos[n-1] - p.ZPos[0]
	z0 := p.ZPos[0]
	norm := make([]float64, n)
	for i, z := range p.ZPos {
		norm[i] = (z - z0) / span
	}
	norm[0] = 0
	norm[n-1] = 1
	p.ZPos = norm

	return n, p.MaxDepth + 1, nil
}

// Statistics summarizes a completed build: pattern and link counts, two
// peak-usage figures useful for capacity planning of a re-run, an
// estimated byte footprint, and the wall-clock build time.
type Statistics struct {
	Patterns            int
	Links               int
	MaxChildListLength  int
	MaxHashDepth        int
	Bytes               int
	BuildTime           time.Duration
}

// Tree is the frozen, read-only artifact produced by Generate: a
// pattern DAG rooted at the all-zero pattern, plus the parameters and
// statistics of the build that produced it.
type Tree struct {
	root   *Pattern
	param  TreeParam
	planes int
	levels int
	stats  Statistics
}

// Root returns the all-zero root Pattern of the tree.
func (t *Tree) Root() *Pattern { return t.root }

// Planes returns the number of detector planes the tree was built for.
func (t *Tree) Planes() int { return t.planes }

// Levels returns the number of bin-resolution levels (MaxDepth+1).
func (t *Tree) Levels() int { return t.levels }

// Param returns the (normalized) parameters the tree was built with.
func (t *Tree) Param() TreeParam { return t.param }

// Statistics returns the counters recorded during Generate.
func (t *Tree) Statistics() Statistics { return t.stats }

// generator owns the hash table and the pattern DAG for the duration of
// a single Generate call. It is not exported: callers only ever see the
// frozen Tree that Generate returns.
type generator struct {
	z        []float64
	maxSlope float64
	levels   int
	hash     *hashTable
	links    int
}

// Generate builds a pattern-template tree from param. It normalizes
// param (see TreeParam.normalize), allocates the all-zero root pattern,
// and recursively expands the DAG via MakeChildNodes.
func Generate(param TreeParam) (*Tree, error) {
	start := time.Now()

	planes, levels, err := param.normalize()
	if err != nil {
		return nil, err
	}

	g := &generator{
		z:        param.ZPos,
		maxSlope: param.MaxSlope,
		levels:   levels,
		hash:     newHashTable(levels),
	}

	root := newZeroPattern(planes)
	g.hash.add(root)

	g.makeChildNodes(root, 1)

	tree := &Tree{
		root:   root,
		param:  param,
		planes: planes,
		levels: levels,
	}
	tree.stats = g.calcStatistics(root)
	tree.stats.BuildTime = time.Since(start)

	return tree, nil
}

// makeChildNodes is the recursive DAG-build step. It first records that
// parent is used at depth-1 (which, for the very first call on the
// root, sets root's MinDepth to 0), enumerates parent's children via
// ChildIter the first time parent is visited, and finally recurses into
// any child whose subtree still needs extending at this depth.
func (g *generator) makeChildNodes(parent *Pattern, depth int) {
	if depth > 0 {
		parent.UsedAtDepth(depth - 1)
	}
	if depth >= g.levels {
		return
	}

	if len(parent.children) == 0 {
		it := NewChildIter(parent)
		for {
			bins, typ, ok := it.Next()
			if !ok {
				break
			}

			if existing := g.hash.find(bins); existing != nil {
				if depth >= existing.MinDepth() || TestSlope(existing, depth, g.maxSlope) {
					if parent.addChild(existing, typ) {
						g.links++
					}
				}
				continue
			}

			candidate := &Pattern{bins: bins, minDepth: noMinDepth, refIndex: -1}
			if TestSlope(candidate, depth, g.maxSlope) && LineCheck(candidate, g.z) {
				node := newPattern(bins)
				g.hash.add(node)
				if parent.addChild(node, typ) {
					g.links++
				}
			}
		}
	}

	for _, ln := range parent.children {
		child := ln.Child
		if len(child.children) == 0 || child.MinDepth() > depth {
			g.makeChildNodes(child, depth+1)
		}
	}
}

// calcStatistics walks the DAG once, depth-first from root via walk.DFS,
// to count distinct patterns and their peak child-list length; link
// count and hash-bucket depth are already tracked incrementally during
// the build. Sharing walk.DFS here means the debug dumper, the encoder,
// and the statistics pass all agree on one canonical DAG traversal.
func (g *generator) calcStatistics(root *Pattern) Statistics {
	var patterns, maxChildren, byteTotal int
	_ = walk.DFS(walkNode{root}, walk.WithOnVisit(func(n walk.Node, depth int) error {
		p := n.(walkNode).p
		patterns++
		if c := len(p.children); c > maxChildren {
			maxChildren = c
		}
		byteTotal += patternByteSize(p)
		return nil
	}))

	return Statistics{
		Patterns:           patterns,
		Links:              g.links,
		MaxChildListLength: maxChildren,
		MaxHashDepth:       g.hash.maxDepth,
		Bytes:              byteTotal,
	}
}

// patternByteSize estimates a Pattern's in-memory footprint: the bin
// tuple plus one Link per child, each Link being a pointer and a type
// byte.
func patternByteSize(p *Pattern) int {
	const wordSize = 8
	return len(p.bins)*4 + wordSize*2 + len(p.children)*(wordSize+1)
}
