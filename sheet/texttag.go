package sheet

import (
	"github.com/npillmayer/styledsheet/dom"
	"golang.org/x/net/html"
)

// TextTag stores one text node per rule below a style container element,
// in rule order. Nothing at this layer validates rule text: whatever the
// pipeline hands in becomes a node.
type TextTag struct {
	container *html.Node
	length    int
}

// NewTextTag creates a rule buffer below container. The container is
// provisioned by the caller (usually through dom.StyleContainer) and must
// not hold children the Tag does not know about.
func NewTextTag(container *html.Node) *TextTag {
	return &TextTag{container: container}
}

// InsertRule places a new text node immediately before the node currently
// occupying index, or appends for index == Length().
func (tt *TextTag) InsertRule(index int, rule string) bool {
	if index < 0 || index > tt.length {
		return false
	}
	tt.container.InsertBefore(dom.RuleNode(rule), dom.ChildAt(tt.container, index))
	tt.length++
	return true
}

// InsertRules builds every node of the batch below a detached fragment
// first and splices the whole group in at startIndex. The live container
// is mutated exactly once per batch, however large the batch is, and every
// rule of the batch is accepted.
func (tt *TextTag) InsertRules(startIndex int, rules []string) int {
	if startIndex < 0 || startIndex > tt.length {
		return 0
	}
	fragment := dom.Fragment()
	for _, rule := range rules {
		fragment.AppendChild(dom.RuleNode(rule))
	}
	dom.Splice(tt.container, fragment, dom.ChildAt(tt.container, startIndex))
	tt.length += len(rules)
	return len(rules)
}

// DeleteRule removes the node at index.
func (tt *TextTag) DeleteRule(index int) {
	tt.container.RemoveChild(dom.ChildAt(tt.container, index))
	tt.length--
}

// GetRule returns the textual content of the node at index, or "" for an
// unpopulated index.
func (tt *TextTag) GetRule(index int) string {
	if index < 0 || index >= tt.length {
		return ""
	}
	return dom.TextOf(dom.ChildAt(tt.container, index))
}

// Length returns the number of stored rules.
func (tt *TextTag) Length() int {
	return tt.length
}

var _ Tag = &TextTag{}
