package arena

import "fmt"

// initialSlotCapacity is the pre-allocated slot count for a fresh arena.
// Small documents stay within one allocation; large ones grow normally.
const initialSlotCapacity = 64

// Handle identifies a node in an Arena.
//
// A Handle is a value type: copy it freely, compare it with ==. The zero
// Handle is the null handle and never refers to a node (generations start
// at 1). A Handle stays valid across any structural mutation and is only
// invalidated when its slot is freed and reused.
type Handle struct {
	index uint32
	gen   uint32
}

// IsNil reports whether h is the null handle.
func (h Handle) IsNil() bool { return h.gen == 0 }

// String returns a compact debug representation, e.g. "#3@1".
func (h Handle) String() string {
	if h.IsNil() {
		return "#nil"
	}
	return fmt.Sprintf("#%d@%d", h.index, h.gen)
}

// links holds the structural pointers of one node. A zero Handle in any
// field means "none".
type links struct {
	parent      Handle
	firstChild  Handle
	lastChild   Handle
	prevSibling Handle
	nextSibling Handle
}

type slot[T any] struct {
	gen      uint32
	occupied bool
	payload  T
	links    links
}

// Arena is a generational slot arena. The zero value is not usable; use
// New. An Arena is not safe for concurrent use.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32 // indices of vacant slots, reused LIFO
	live  int
}

// New creates an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{
		slots: make([]slot[T], 0, initialSlotCapacity),
	}
}

// NewNode allocates a node holding payload and returns its handle. The
// node starts fully detached: no parent, no siblings, no children.
func (a *Arena[T]) NewNode(payload T) Handle {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.occupied = true
		s.payload = payload
		s.links = links{}
		a.live++
		return Handle{index: idx, gen: s.gen}
	}
	a.slots = append(a.slots, slot[T]{gen: 1, occupied: true, payload: payload})
	a.live++
	return Handle{index: uint32(len(a.slots) - 1), gen: 1}
}

// slotFor validates h and returns its slot.
func (a *Arena[T]) slotFor(h Handle) (*slot[T], error) {
	if h.IsNil() || int(h.index) >= len(a.slots) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHandle, h)
	}
	s := &a.slots[h.index]
	if !s.occupied || s.gen != h.gen {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHandle, h)
	}
	return s, nil
}

// Get returns the payload of h.
func (a *Arena[T]) Get(h Handle) (T, error) {
	s, err := a.slotFor(h)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.payload, nil
}

// Set replaces the payload of h.
func (a *Arena[T]) Set(h Handle, payload T) error {
	s, err := a.slotFor(h)
	if err != nil {
		return err
	}
	s.payload = payload
	return nil
}

// Valid reports whether h currently refers to a live node.
func (a *Arena[T]) Valid(h Handle) bool {
	_, err := a.slotFor(h)
	return err == nil
}

// Len returns the number of live nodes, attached or not.
func (a *Arena[T]) Len() int { return a.live }

// Parent returns the parent of h, or the null handle if h is detached.
func (a *Arena[T]) Parent(h Handle) (Handle, error) {
	s, err := a.slotFor(h)
	if err != nil {
		return Handle{}, err
	}
	return s.links.parent, nil
}

// FirstChild returns the first child of h, or the null handle.
func (a *Arena[T]) FirstChild(h Handle) (Handle, error) {
	s, err := a.slotFor(h)
	if err != nil {
		return Handle{}, err
	}
	return s.links.firstChild, nil
}

// LastChild returns the last child of h, or the null handle.
func (a *Arena[T]) LastChild(h Handle) (Handle, error) {
	s, err := a.slotFor(h)
	if err != nil {
		return Handle{}, err
	}
	return s.links.lastChild, nil
}

// PrevSibling returns the sibling immediately before h, or the null handle.
func (a *Arena[T]) PrevSibling(h Handle) (Handle, error) {
	s, err := a.slotFor(h)
	if err != nil {
		return Handle{}, err
	}
	return s.links.prevSibling, nil
}

// NextSibling returns the sibling immediately after h, or the null handle.
func (a *Arena[T]) NextSibling(h Handle) (Handle, error) {
	s, err := a.slotFor(h)
	if err != nil {
		return Handle{}, err
	}
	return s.links.nextSibling, nil
}

// Free releases the slot of h and bumps its generation, invalidating h
// and every copy of it. The node must be fully detached and childless;
// otherwise Free fails with ErrStillLinked. Tree building never frees
// mid-session - detached subtrees stay allocated until the whole arena
// is discarded - but long-lived callers may reclaim nodes they know are
// unreachable.
func (a *Arena[T]) Free(h Handle) error {
	s, err := a.slotFor(h)
	if err != nil {
		return err
	}
	l := s.links
	if !l.parent.IsNil() || !l.prevSibling.IsNil() || !l.nextSibling.IsNil() || !l.firstChild.IsNil() {
		return fmt.Errorf("%w: %s", ErrStillLinked, h)
	}
	var zero T
	s.payload = zero
	s.occupied = false
	s.gen++
	a.free = append(a.free, h.index)
	a.live--
	return nil
}
