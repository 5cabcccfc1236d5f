// Package dom is the mutable tree-storage backend behind a markup
// tree-construction algorithm.
//
// The package stores a document tree in a generational arena
// (dom/arena) and exposes the Sink mutation contract that an external
// tree builder drives: node creation, reparenting, sibling insertion,
// detachment, attribute merging, and text coalescing. The tree builder
// itself - tokenizing, insertion modes, error recovery - lives outside
// this package; dom only guarantees that whatever mutation sequence it
// is handed leaves the tree structurally consistent and every issued
// handle valid.
//
// A parse session looks like:
//
//	t := dom.New()
//	body := t.CreateElement(dom.QualName{Local: "body"}, nil, dom.ElementFlags{})
//	_ = t.Append(t.Document(), dom.AppendNode(body))
//	_ = t.Append(body, dom.AppendText("hello"))
//	result := t.Finish()
//
// After Finish the tree is input data for traversal (dom/walker) or
// inspection (dom/printer); by convention it is no longer mutated.
package dom
