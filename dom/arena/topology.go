package arena

import "fmt"

// AppendChild detaches child from its current position, if any, and
// links it as the new last child of parent. Siblings not involved keep
// their order. Fails with ErrLinkCycle if child is parent itself or an
// ancestor of parent.
func (a *Arena[T]) AppendChild(parent, child Handle) error {
	ps, err := a.slotFor(parent)
	if err != nil {
		return fmt.Errorf("append child: %w", err)
	}
	if _, err := a.slotFor(child); err != nil {
		return fmt.Errorf("append child: %w", err)
	}
	if err := a.checkNotAncestor(child, parent); err != nil {
		return fmt.Errorf("append child: %w", err)
	}

	a.detach(child)

	cs := &a.slots[child.index]
	cs.links.parent = parent
	if ps.links.lastChild.IsNil() {
		ps.links.firstChild = child
		ps.links.lastChild = child
		return nil
	}
	last := ps.links.lastChild
	a.slots[last.index].links.nextSibling = child
	cs.links.prevSibling = last
	ps.links.lastChild = child
	return nil
}

// InsertBefore detaches node from its current position, if any, and
// splices it immediately before sibling in sibling's parent's child
// list. Fails with ErrNoParent if sibling is detached, and with
// ErrLinkCycle if node is sibling's ancestor (or sibling itself).
func (a *Arena[T]) InsertBefore(sibling, node Handle) error {
	ss, err := a.slotFor(sibling)
	if err != nil {
		return fmt.Errorf("insert before: %w", err)
	}
	if _, err := a.slotFor(node); err != nil {
		return fmt.Errorf("insert before: %w", err)
	}
	parent := ss.links.parent
	if parent.IsNil() {
		return fmt.Errorf("insert before %s: %w", sibling, ErrNoParent)
	}
	if err := a.checkNotAncestor(node, sibling); err != nil {
		return fmt.Errorf("insert before: %w", err)
	}

	a.detach(node)

	ns := &a.slots[node.index]
	prev := ss.links.prevSibling
	ns.links.parent = parent
	ns.links.nextSibling = sibling
	ns.links.prevSibling = prev
	ss.links.prevSibling = node
	if prev.IsNil() {
		a.slots[parent.index].links.firstChild = node
	} else {
		a.slots[prev.index].links.nextSibling = node
	}
	return nil
}

// Detach removes node from its parent's child list and clears its
// parent and sibling links. The node and its whole subtree remain
// allocated and traversable from node itself. Detaching an already
// detached node is a no-op.
func (a *Arena[T]) Detach(node Handle) error {
	if _, err := a.slotFor(node); err != nil {
		return fmt.Errorf("detach: %w", err)
	}
	a.detach(node)
	return nil
}

// TransferChildren moves the complete, ordered child list of from onto
// to, appended after to's existing children. from ends up childless.
func (a *Arena[T]) TransferChildren(from, to Handle) error {
	if _, err := a.slotFor(from); err != nil {
		return fmt.Errorf("transfer children: %w", err)
	}
	if _, err := a.slotFor(to); err != nil {
		return fmt.Errorf("transfer children: %w", err)
	}
	if from == to {
		return nil
	}
	for {
		child := a.slots[from.index].links.firstChild
		if child.IsNil() {
			return nil
		}
		if err := a.AppendChild(to, child); err != nil {
			return fmt.Errorf("transfer children: %w", err)
		}
	}
}

// detach unlinks a validated node from its parent and siblings.
func (a *Arena[T]) detach(node Handle) {
	s := &a.slots[node.index]
	l := s.links
	if !l.prevSibling.IsNil() {
		a.slots[l.prevSibling.index].links.nextSibling = l.nextSibling
	} else if !l.parent.IsNil() {
		a.slots[l.parent.index].links.firstChild = l.nextSibling
	}
	if !l.nextSibling.IsNil() {
		a.slots[l.nextSibling.index].links.prevSibling = l.prevSibling
	} else if !l.parent.IsNil() {
		a.slots[l.parent.index].links.lastChild = l.prevSibling
	}
	s.links.parent = Handle{}
	s.links.prevSibling = Handle{}
	s.links.nextSibling = Handle{}
}

// checkNotAncestor fails with ErrLinkCycle if node is under, or equal
// to, the chain of parents starting at target.
func (a *Arena[T]) checkNotAncestor(node, target Handle) error {
	for h := target; !h.IsNil(); h = a.slots[h.index].links.parent {
		if h == node {
			return fmt.Errorf("%w: %s", ErrLinkCycle, node)
		}
	}
	return nil
}
