package suffixtree

import "fmt"

// WalkOptions holds the hooks and limits of a Walk.
type WalkOptions struct {
	// OnVisit, if non-nil, is called when a node is first reached (pre-order).
	// Returning an error aborts the walk.
	OnVisit func(v Visit) error

	// OnExit, if non-nil, is called once all children of a node are done
	// (post-order). Returning an error aborts the walk.
	OnExit func(v Visit) error

	// MaxDepth, if non-negative, stops the walk below the given depth in
	// edges. 0 visits only the root. Default is -1 (no limit).
	MaxDepth int
}

// WalkOption configures a Walk.
type WalkOption func(*WalkOptions)

// DefaultWalkOptions returns WalkOptions with no hooks and no depth limit.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		OnVisit:  nil,
		OnExit:   nil,
		MaxDepth: -1,
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(v Visit) error) WalkOption {
	return func(o *WalkOptions) { o.OnVisit = fn }
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit(fn func(v Visit) error) WalkOption {
	return func(o *WalkOptions) { o.OnExit = fn }
}

// WithMaxDepth limits the walk to nodes at most limit edges below the root.
func WithMaxDepth(limit int) WalkOption {
	return func(o *WalkOptions) { o.MaxDepth = limit }
}

// frame is one entry of the explicit walk stack.
type frame struct {
	visit Visit
	next  int // index of the next child edge to descend into
}

// Walk performs a depth-first traversal from the root, children in
// ascending symbol order, i.e. the tree's paths in lexicographic order.
//
// Implementation:
//   - Stage 1: push the root frame and fire OnVisit.
//   - Stage 2: for the top frame, descend into its next child (OnVisit) or,
//     once all children are done or MaxDepth is reached, pop it (OnExit).
//
// An explicit stack keeps deep trees (e.g. "aaaa…") off the goroutine stack.
//
// Complexity: O(V) time, O(height) memory.
func (t *Tree) Walk(opts ...WalkOption) error {
	o := DefaultWalkOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := len(t.text)

	// Stage 1: root frame
	root := Visit{Node: Root, Parent: Root, Leaf: t.arena.isLeaf(Root)}
	if err := o.visit(root); err != nil {
		return err
	}
	stack := []frame{{visit: root}}

	// Stage 2: iterate until every frame has been exited
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		children := t.arena.edges(top.visit.Node)

		if top.next < len(children) && (o.MaxDepth < 0 || top.visit.Depth < o.MaxDepth) {
			l := children[top.next]
			top.next++
			child := Visit{
				Node:        l.edge.Target,
				Parent:      top.visit.Node,
				Edge:        l.edge,
				First:       l.first,
				Depth:       top.visit.Depth + 1,
				StringDepth: top.visit.StringDepth + l.edge.Span.Resolve(l.edge.Start, n),
				Leaf:        t.arena.isLeaf(l.edge.Target),
			}
			if err := o.visit(child); err != nil {
				return err
			}
			stack = append(stack, frame{visit: child})

			continue
		}

		stack = stack[:len(stack)-1]
		if err := o.exit(top.visit); err != nil {
			return err
		}
	}

	return nil
}

// visit runs OnVisit, wrapping its error with the node id.
func (o *WalkOptions) visit(v Visit) error {
	if o.OnVisit == nil {
		return nil
	}
	if err := o.OnVisit(v); err != nil {
		return fmt.Errorf("suffixtree: OnVisit hook for node %d: %w", v.Node, err)
	}

	return nil
}

// exit runs OnExit, wrapping its error with the node id.
func (o *WalkOptions) exit(v Visit) error {
	if o.OnExit == nil {
		return nil
	}
	if err := o.OnExit(v); err != nil {
		return fmt.Errorf("suffixtree: OnExit hook for node %d: %w", v.Node, err)
	}

	return nil
}
