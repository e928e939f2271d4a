package pattern

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/xlab/treeprint"

	"github.com/bandtrace/bandtrace/walk"
)

// linearize walks the DAG depth-first from root, assigning each distinct
// Pattern a dense RefIndex on first visit (the "depth-first order, dense
// ref_index on first emission" scheme both Dump and Encode rely on), and
// returns the patterns in assignment order. It resets refIndex on every
// call so repeated dumps/encodes of the same Tree do not see stale
// indices from a previous pass. The traversal itself is walk.DFS, so
// Dump and Encode share the same DAG-linearization routine the debug
// dumper and the encoder both need.
func linearize(root *Pattern) []*Pattern {
	var order []*Pattern
	_ = walk.DFS(walkNode{root}, walk.WithOnVisit(func(n walk.Node, depth int) error {
		p := n.(walkNode).p
		p.refIndex = int32(len(order))
		order = append(order, p)
		return nil
	}))
	return order
}

// Dump renders the tree as a human-readable, depth-first tree diagram. A
// pattern reachable through more than one parent is expanded in full at
// its first occurrence and rendered as a back-reference leaf on every
// subsequent occurrence, since the underlying structure is a DAG rather
// than a strict tree.
func (t *Tree) Dump() string {
	order := linearize(t.root)
	defer func() {
		for _, p := range order {
			p.refIndex = -1
		}
	}()

	rendered := make(map[*Pattern]bool, len(order))
	root := treeprint.New()
	var build func(p *Pattern, into treeprint.Tree)
	build = func(p *Pattern, into treeprint.Tree) {
		into.SetValue(fmt.Sprintf("#%d %v (min_depth=%d)", p.refIndex, p.Bins(), p.MinDepth()))
		if rendered[p] {
			return
		}
		rendered[p] = true
		for _, ln := range p.children {
			branch := into.AddBranch(fmt.Sprintf("type=%d", ln.Type))
			build(ln.Child, branch)
		}
	}
	build(t.root, root)

	return root.String()
}

// gobRecord is the on-wire representation of one Pattern: its bin tuple
// plus its outgoing links, expressed as RefIndex/LinkType pairs rather
// than pointers.
type gobRecord struct {
	Bins     []int32
	Children []gobLink
}

// gobLink is one outgoing edge in the wire format.
type gobLink struct {
	RefIndex int32
	Type     LinkType
}

// gobTree is the top-level wire envelope.
type gobTree struct {
	Param    TreeParam
	Planes   int
	Levels   int
	Stats    Statistics
	Records  []gobRecord
}

// Encode writes t to w in a depth-first, ref_index-tagged binary format.
// The tree round-trips through DecodeTree: bin tuples, link types, DAG
// sharing (a pattern reached through multiple parents is written once and
// referenced by index elsewhere), parameters and statistics are all
// preserved. Per-pattern min-depth is not written; decoded patterns
// report MinDepth -1.
func (t *Tree) Encode(w io.Writer) error {
	order := linearize(t.root)
	defer func() {
		for _, p := range order {
			p.refIndex = -1
		}
	}()

	records := make([]gobRecord, len(order))
	for i, p := range order {
		links := make([]gobLink, len(p.children))
		for j, ln := range p.children {
			links[j] = gobLink{RefIndex: ln.Child.refIndex, Type: ln.Type}
		}
		records[i] = gobRecord{Bins: p.Bins(), Children: links}
	}

	env := gobTree{
		Param:   t.param,
		Planes:  t.planes,
		Levels:  t.levels,
		Stats:   t.stats,
		Records: records,
	}
	return gob.NewEncoder(w).Encode(&env)
}

// DecodeTree reads a Tree previously written by (*Tree).Encode.
func DecodeTree(r io.Reader) (*Tree, error) {
	var env gobTree
	if err := gob.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("pattern: decode tree: %w", err)
	}
	if len(env.Records) == 0 {
		return nil, ErrCorruptTree
	}

	patterns := make([]*Pattern, len(env.Records))
	for i, rec := range env.Records {
		patterns[i] = newPattern(rec.Bins)
	}
	for i, rec := range env.Records {
		for _, link := range rec.Children {
			if link.RefIndex < 0 || int(link.RefIndex) >= len(patterns) {
				return nil, ErrCorruptTree
			}
			patterns[i].children = append(patterns[i].children, Link{
				Child: patterns[link.RefIndex],
				Type:  link.Type,
			})
		}
	}

	return &Tree{
		root:   patterns[0],
		param:  env.Param,
		planes: env.Planes,
		levels: env.Levels,
		stats:  env.Stats,
	}, nil
}
