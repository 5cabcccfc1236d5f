package dom

import "errors"

var (
	// ErrNotAnElement indicates an element-only operation on a handle
	// whose node is not an Element.
	ErrNotAnElement = errors.New("dom: not an element")

	// ErrNotATemplate indicates a template-contents lookup on a node
	// that is not a template element.
	ErrNotATemplate = errors.New("dom: not a template element")
)
