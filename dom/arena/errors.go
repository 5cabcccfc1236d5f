package arena

import "errors"

var (
	// ErrInvalidHandle indicates a handle whose slot is empty or whose
	// generation does not match the slot's current generation.
	ErrInvalidHandle = errors.New("arena: invalid handle")

	// ErrNoParent indicates a sibling-relative operation on a node that
	// has no parent.
	ErrNoParent = errors.New("arena: node has no parent")

	// ErrStillLinked indicates an attempt to free a node that is still
	// attached to a parent or still has children.
	ErrStillLinked = errors.New("arena: node still linked")

	// ErrLinkCycle indicates an attach that would make a node its own
	// ancestor.
	ErrLinkCycle = errors.New("arena: attach would create a cycle")
)
