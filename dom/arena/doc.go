// Package arena implements a generational slot arena for tree nodes.
//
// The arena is the sole owner of node memory. Nodes are addressed by
// Handle values - compact (index, generation) pairs that stay valid
// across arbitrary structural mutation and are only invalidated when
// their slot is explicitly freed and reused. Looking up a stale handle
// fails with ErrInvalidHandle instead of silently aliasing the slot's
// new occupant.
//
// Structural links (parent, first/last child, prev/next sibling) are
// stored alongside each payload and mutated exclusively through the
// topology operations (AppendChild, InsertBefore, Detach,
// TransferChildren), which keep parent and sibling links mutually
// consistent at all times.
package arena
