package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// children collects the ordered child payloads of parent.
func children(t *testing.T, a *Arena[string], parent Handle) []string {
	t.Helper()

	var out []string
	h, err := a.FirstChild(parent)
	require.NoError(t, err)
	for !h.IsNil() {
		v, err := a.Get(h)
		require.NoError(t, err)
		out = append(out, v)

		h, err = a.NextSibling(h)
		require.NoError(t, err)
	}
	return out
}

// checkLinks verifies that parent and sibling links under parent are
// mutually consistent.
func checkLinks(t *testing.T, a *Arena[string], parent Handle) {
	t.Helper()

	var prev Handle
	h, err := a.FirstChild(parent)
	require.NoError(t, err)
	for !h.IsNil() {
		p, err := a.Parent(h)
		require.NoError(t, err)
		assert.Equal(t, parent, p, "child %s must point back at its parent", h)

		ps, err := a.PrevSibling(h)
		require.NoError(t, err)
		assert.Equal(t, prev, ps, "prev link of %s", h)

		prev = h
		h, err = a.NextSibling(h)
		require.NoError(t, err)
	}

	last, err := a.LastChild(parent)
	require.NoError(t, err)
	assert.Equal(t, prev, last, "lastChild must match the end of the chain")
}

// TestAppendChild_Order tests that appended children keep insertion
// order.
func TestAppendChild_Order(t *testing.T) {
	a := New[string]()
	p := a.NewNode("p")

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, a.AppendChild(p, a.NewNode(name)))
	}

	assert.Equal(t, []string{"a", "b", "c"}, children(t, a, p))
	checkLinks(t, a, p)
}

// TestAppendChild_MovesBetweenParents tests the detach-first rule.
func TestAppendChild_MovesBetweenParents(t *testing.T) {
	a := New[string]()
	p1 := a.NewNode("p1")
	p2 := a.NewNode("p2")
	x := a.NewNode("x")
	y := a.NewNode("y")

	require.NoError(t, a.AppendChild(p1, x))
	require.NoError(t, a.AppendChild(p1, y))
	require.NoError(t, a.AppendChild(p2, x))

	assert.Equal(t, []string{"y"}, children(t, a, p1), "x must leave p1")
	assert.Equal(t, []string{"x"}, children(t, a, p2))
	checkLinks(t, a, p1)
	checkLinks(t, a, p2)
}

// TestAppendChild_ReappendToSameParentMovesLast tests in-parent moves.
func TestAppendChild_ReappendToSameParentMovesLast(t *testing.T) {
	a := New[string]()
	p := a.NewNode("p")
	x := a.NewNode("x")
	y := a.NewNode("y")
	z := a.NewNode("z")
	for _, h := range []Handle{x, y, z} {
		require.NoError(t, a.AppendChild(p, h))
	}

	require.NoError(t, a.AppendChild(p, x))

	assert.Equal(t, []string{"y", "z", "x"}, children(t, a, p))
	checkLinks(t, a, p)
}

// TestAppendChild_RejectsCycle tests the ancestor guard.
func TestAppendChild_RejectsCycle(t *testing.T) {
	a := New[string]()
	p := a.NewNode("p")
	c := a.NewNode("c")
	require.NoError(t, a.AppendChild(p, c))

	assert.ErrorIs(t, a.AppendChild(p, p), ErrLinkCycle, "self-append")
	assert.ErrorIs(t, a.AppendChild(c, p), ErrLinkCycle, "ancestor under descendant")
}

// TestInsertBefore_SplicesAtEveryPosition tests insertion before the
// first, a middle, and the last child.
func TestInsertBefore_SplicesAtEveryPosition(t *testing.T) {
	tests := []struct {
		name   string
		before int // index of the reference child among a,b,c
		want   []string
	}{
		{name: "before first", before: 0, want: []string{"new", "a", "b", "c"}},
		{name: "before middle", before: 1, want: []string{"a", "new", "b", "c"}},
		{name: "before last", before: 2, want: []string{"a", "b", "new", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New[string]()
			p := a.NewNode("p")
			var hs []Handle
			for _, name := range []string{"a", "b", "c"} {
				h := a.NewNode(name)
				require.NoError(t, a.AppendChild(p, h))
				hs = append(hs, h)
			}

			require.NoError(t, a.InsertBefore(hs[tt.before], a.NewNode("new")))

			assert.Equal(t, tt.want, children(t, a, p))
			checkLinks(t, a, p)
		})
	}
}

// TestInsertBefore_DetachedSiblingFails tests the NoParent contract.
func TestInsertBefore_DetachedSiblingFails(t *testing.T) {
	a := New[string]()
	orphan := a.NewNode("orphan")
	n := a.NewNode("n")

	assert.ErrorIs(t, a.InsertBefore(orphan, n), ErrNoParent)
}

// TestDetach_KeepsSubtreeIntact tests that a detached node still owns
// its children.
func TestDetach_KeepsSubtreeIntact(t *testing.T) {
	a := New[string]()
	p := a.NewNode("p")
	n := a.NewNode("n")
	c1 := a.NewNode("c1")
	c2 := a.NewNode("c2")
	require.NoError(t, a.AppendChild(p, n))
	require.NoError(t, a.AppendChild(n, c1))
	require.NoError(t, a.AppendChild(n, c2))

	require.NoError(t, a.Detach(n))

	parent, err := a.Parent(n)
	require.NoError(t, err)
	assert.True(t, parent.IsNil(), "detached node has no parent")
	assert.Empty(t, children(t, a, p))
	assert.Equal(t, []string{"c1", "c2"}, children(t, a, n), "subtree survives detach")
	checkLinks(t, a, n)
}

// TestDetach_MiddleChildRelinksSiblings tests sibling repair.
func TestDetach_MiddleChildRelinksSiblings(t *testing.T) {
	a := New[string]()
	p := a.NewNode("p")
	x := a.NewNode("x")
	y := a.NewNode("y")
	z := a.NewNode("z")
	for _, h := range []Handle{x, y, z} {
		require.NoError(t, a.AppendChild(p, h))
	}

	require.NoError(t, a.Detach(y))

	assert.Equal(t, []string{"x", "z"}, children(t, a, p))
	checkLinks(t, a, p)
}

// TestDetach_AlreadyDetachedIsNoop tests double detach.
func TestDetach_AlreadyDetachedIsNoop(t *testing.T) {
	a := New[string]()
	n := a.NewNode("n")

	require.NoError(t, a.Detach(n))
	require.NoError(t, a.Detach(n))
}

// TestTransferChildren_AppendsInOrder tests the ordered bulk move.
func TestTransferChildren_AppendsInOrder(t *testing.T) {
	a := New[string]()
	from := a.NewNode("from")
	to := a.NewNode("to")
	require.NoError(t, a.AppendChild(to, a.NewNode("old")))
	for _, name := range []string{"c1", "c2", "c3"} {
		require.NoError(t, a.AppendChild(from, a.NewNode(name)))
	}

	require.NoError(t, a.TransferChildren(from, to))

	assert.Equal(t, []string{"old", "c1", "c2", "c3"}, children(t, a, to))
	assert.Empty(t, children(t, a, from), "source ends childless")
	checkLinks(t, a, to)
}

// TestTransferChildren_EmptySource tests the trivial case.
func TestTransferChildren_EmptySource(t *testing.T) {
	a := New[string]()
	from := a.NewNode("from")
	to := a.NewNode("to")

	require.NoError(t, a.TransferChildren(from, to))
	assert.Empty(t, children(t, a, to))
}

// TestTopology_InvalidHandlesFail tests that every topology operation
// rejects stale handles.
func TestTopology_InvalidHandlesFail(t *testing.T) {
	a := New[string]()
	live := a.NewNode("live")
	stale := a.NewNode("gone")
	require.NoError(t, a.Free(stale))

	assert.ErrorIs(t, a.AppendChild(stale, live), ErrInvalidHandle)
	assert.ErrorIs(t, a.AppendChild(live, stale), ErrInvalidHandle)
	assert.ErrorIs(t, a.InsertBefore(stale, live), ErrInvalidHandle)
	assert.ErrorIs(t, a.Detach(stale), ErrInvalidHandle)
	assert.ErrorIs(t, a.TransferChildren(stale, live), ErrInvalidHandle)
	assert.ErrorIs(t, a.TransferChildren(live, stale), ErrInvalidHandle)
}
