package walker

import (
	"errors"
	"fmt"

	"github.com/joshuapare/domkit/dom"
)

// initialStackCapacity is the pre-allocated capacity for the traversal
// stack. Markup trees are rarely deeper than a few dozen levels, so 64
// avoids most reallocations.
const initialStackCapacity = 64

// SkipChildren can be returned from a VisitFunc to continue the walk
// without descending into the current node's children.
var SkipChildren = errors.New("walker: skip children")

// errFound stops a walk early once a lookup has its answer.
var errFound = errors.New("walker: found")

// VisitFunc is called once per visited node, in pre-order. depth is 0
// for the walk's root. Returning SkipChildren prunes the subtree; any
// other non-nil error aborts the walk and is returned from Walk.
type VisitFunc func(h dom.Handle, data dom.NodeData, depth int) error

// stackEntry is one pending position in the iterative traversal.
type stackEntry struct {
	h     dom.Handle
	depth int
}

// Walk visits root and every node below it in pre-order.
func Walk(t *dom.Tree, root dom.Handle, fn VisitFunc) error {
	stack := make([]stackEntry, 0, initialStackCapacity)
	stack = append(stack, stackEntry{h: root})

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		data, err := t.Node(top.h)
		if err != nil {
			return fmt.Errorf("walk: %w", err)
		}

		skip := false
		if err := fn(top.h, data, top.depth); err != nil {
			if !errors.Is(err, SkipChildren) {
				return err
			}
			skip = true
		}

		// Sibling first so the first child ends up on top of the stack.
		// The walk root's own siblings are outside the walk.
		if top.depth > 0 {
			next, err := t.NextSibling(top.h)
			if err != nil {
				return fmt.Errorf("walk: %w", err)
			}
			if !next.IsNil() {
				stack = append(stack, stackEntry{h: next, depth: top.depth})
			}
		}
		if !skip {
			first, err := t.FirstChild(top.h)
			if err != nil {
				return fmt.Errorf("walk: %w", err)
			}
			if !first.IsNil() {
				stack = append(stack, stackEntry{h: first, depth: top.depth + 1})
			}
		}
	}
	return nil
}

// Contains reports whether target is root or a structural descendant
// of root. Template contents do not count as descendants.
func Contains(t *dom.Tree, root, target dom.Handle) (bool, error) {
	found := false
	err := Walk(t, root, func(h dom.Handle, _ dom.NodeData, _ int) error {
		if h == target {
			found = true
			return errFound
		}
		return nil
	})
	if err != nil && !errors.Is(err, errFound) {
		return false, err
	}
	return found, nil
}

// Count returns the number of nodes in the subtree rooted at root,
// including root itself.
func Count(t *dom.Tree, root dom.Handle) (int, error) {
	n := 0
	err := Walk(t, root, func(dom.Handle, dom.NodeData, int) error {
		n++
		return nil
	})
	return n, err
}
