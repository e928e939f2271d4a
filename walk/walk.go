// Package walk implements depth-first and breadth-first traversal over
// a bandtrace pattern DAG, applying a hook-driven, context-aware
// traversal style to pattern.Pattern's Link-based adjacency instead of an
// explicit adjacency list.
//
// Both DFS and BFS visit each distinct Pattern exactly once even though
// the same Pattern may be reachable through more than one parent Link,
// since the structure being walked is a DAG, not a tree.
//
// Errors:
//
//	ErrNilRoot - a nil root Pattern was passed to DFS or BFS.
package walk

import (
	"context"
	"errors"
	"fmt"
)

// ErrNilRoot indicates a nil root was passed to DFS or BFS.
var ErrNilRoot = errors.New("walk: root is nil")

// Node is the minimal shape a pattern DAG node must expose to be
// walked: an identity distinct across nodes and its outgoing edges.
// Package pattern satisfies this interface with an unexported wrapper
// around *pattern.Pattern.
type Node interface {
	Children() []Edge
}

// Edge is a single outgoing edge to a child Node, tagged with a
// transformation type. Callers of walk only ever see the child Node,
// not the concrete link representation the DAG owner uses internally.
type Edge struct {
	Child Node
	Type  uint8
}

// Options configures a DFS or BFS traversal.
type Options struct {
	Ctx      context.Context
	OnVisit  func(n Node, depth int) error
	OnExit   func(n Node, depth int) error
	MaxDepth int
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with a background context, no hooks,
// and no depth limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MaxDepth: -1}
}

// WithContext installs ctx for cancellation. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook, called when a node is first
// discovered. Returning an error aborts the traversal.
func WithOnVisit(fn func(n Node, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook, called after a node's
// descendants have all been visited. Returning an error aborts the
// traversal.
func WithOnExit(fn func(n Node, depth int) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits traversal to the given depth; a limit of 0 visits
// only the root.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// DFS walks root depth-first, visiting each distinct Node once.
func DFS(root Node, opts ...Option) error {
	if root == nil {
		return ErrNilRoot
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	visited := map[Node]bool{}
	var visit func(n Node, depth int) error
	visit = func(n Node, depth int) error {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}
		if visited[n] {
			return nil
		}
		visited[n] = true

		if o.OnVisit != nil {
			if err := o.OnVisit(n, depth); err != nil {
				return fmt.Errorf("walk: OnVisit: %w", err)
			}
		}
		if o.MaxDepth < 0 || depth < o.MaxDepth {
			for _, e := range n.Children() {
				if err := visit(e.Child, depth+1); err != nil {
					return err
				}
			}
		}
		if o.OnExit != nil {
			if err := o.OnExit(n, depth); err != nil {
				return fmt.Errorf("walk: OnExit: %w", err)
			}
		}
		return nil
	}

	return visit(root, 0)
}

// BFS walks root breadth-first, visiting each distinct Node once. OnExit
// is not meaningful in breadth-first order and is never called.
func BFS(root Node, opts ...Option) error {
	if root == nil {
		return ErrNilRoot
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	type item struct {
		n     Node
		depth int
	}
	visited := map[Node]bool{root: true}
	queue := []item{{root, 0}}

	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}

		cur := queue[0]
		queue = queue[1:]

		if o.OnVisit != nil {
			if err := o.OnVisit(cur.n, cur.depth); err != nil {
				return fmt.Errorf("walk: OnVisit: %w", err)
			}
		}

		if o.MaxDepth >= 0 && cur.depth >= o.MaxDepth {
			continue
		}
		for _, e := range cur.n.Children() {
			if !visited[e.Child] {
				visited[e.Child] = true
				queue = append(queue, item{e.Child, cur.depth + 1})
			}
		}
	}

	return nil
}
