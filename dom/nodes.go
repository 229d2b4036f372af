package dom

import "golang.org/x/net/html"

// RuleNode creates a fresh detached text node carrying rule text.
func RuleNode(rule string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: rule}
}

// Fragment returns a detached grouping node. Batch operations build their
// nodes below a fragment first and attach the whole group with Splice.
func Fragment() *html.Node {
	return &html.Node{Type: html.DocumentNode}
}

// TextOf returns the textual content of a node. A nil node reads as the
// empty string.
func TextOf(n *html.Node) string {
	if n == nil {
		return ""
	}
	return n.Data
}

// ChildAt returns the child of parent at position index, or nil if parent
// has fewer children. A negative index returns nil.
func ChildAt(parent *html.Node, index int) *html.Node {
	if index < 0 {
		return nil
	}
	ch := parent.FirstChild
	for i := 0; ch != nil && i < index; i++ {
		ch = ch.NextSibling
	}
	return ch
}

// Splice moves all children of fragment into parent, immediately before
// ref. A nil ref appends the group at the end. The parent's child chain is
// rewired once for the whole group, however many nodes the fragment holds;
// fragment is empty afterwards.
//
// ref must be a child of parent (or nil).
func Splice(parent, fragment, ref *html.Node) {
	first, last := fragment.FirstChild, fragment.LastChild
	if first == nil {
		return
	}
	for ch := first; ch != nil; ch = ch.NextSibling {
		ch.Parent = parent
	}
	fragment.FirstChild, fragment.LastChild = nil, nil
	if ref == nil {
		if parent.LastChild != nil {
			parent.LastChild.NextSibling = first
			first.PrevSibling = parent.LastChild
		} else {
			parent.FirstChild = first
		}
		parent.LastChild = last
		return
	}
	first.PrevSibling = ref.PrevSibling
	if ref.PrevSibling != nil {
		ref.PrevSibling.NextSibling = first
	} else {
		parent.FirstChild = first
	}
	ref.PrevSibling = last
	last.NextSibling = ref
}
