// Package walker provides traversal over a finished dom.Tree.
//
// Traversal is iterative (explicit stack, no recursion) and follows
// only the structural first-child/next-sibling links. An element's
// template contents are deliberately never entered: template subtrees
// are isolated from the main tree and are walked by rooting a walk at
// the contents handle returned by dom.Tree.TemplateContents.
package walker
