package pattern

import "github.com/bandtrace/bandtrace/walk"

// walkNode adapts a *Pattern to walk.Node without exposing pattern's
// internal Link representation outside the package.
type walkNode struct{ p *Pattern }

func (w walkNode) Children() []walk.Edge {
	links := w.p.children
	edges := make([]walk.Edge, len(links))
	for i, ln := range links {
		edges[i] = walk.Edge{Child: walkNode{ln.Child}, Type: uint8(ln.Type)}
	}
	return edges
}

// Walk traverses the tree depth-first from its root using the walk
// package, invoking onVisit for every distinct Pattern reached.
func (t *Tree) Walk(onVisit func(p *Pattern, depth int) error, opts ...walk.Option) error {
	wrapped := append([]walk.Option{walk.WithOnVisit(func(n walk.Node, depth int) error {
		return onVisit(n.(walkNode).p, depth)
	})}, opts...)
	return walk.DFS(walkNode{t.root}, wrapped...)
}

// WalkBFS traverses the tree breadth-first from its root using the walk
// package.
func (t *Tree) WalkBFS(onVisit func(p *Pattern, depth int) error, opts ...walk.Option) error {
	wrapped := append([]walk.Option{walk.WithOnVisit(func(n walk.Node, depth int) error {
		return onVisit(n.(walkNode).p, depth)
	})}, opts...)
	return walk.BFS(walkNode{t.root}, wrapped...)
}
