package sheet

import (
	"github.com/npillmayer/styledsheet/dom"
	"golang.org/x/net/html"
)

// Tag is the contract every rule-buffer backend implements. Rule text is
// opaque to a Tag; it is never inspected beyond handing it to the backend's
// insertion primitive.
//
// The length invariant: Length() always equals the number of rules
// retrievable through GetRule, and rule order in the physical store always
// equals logical index order. Valid read/delete indexes are [0, Length()),
// valid insert indexes are [0, Length()], with Length() appending.
type Tag interface {
	// InsertRule inserts rule at index, shifting trailing rules up by one.
	// It reports whether the rule was accepted. An out-of-range index, or
	// rejection by the backend's physical store, leaves the Tag unchanged
	// and returns false; InsertRule never panics on bad input.
	InsertRule(index int, rule string) bool

	// InsertRules inserts a batch at startIndex, preserving the relative
	// order of rules, and returns the number of rules readable afterwards.
	//
	// The backends deliberately disagree here: CSSOMTag validates rule by
	// rule and may report a count below len(rules), while TextTag and
	// VirtualTag accept every rule of a batch unconditionally.
	InsertRules(startIndex int, rules []string) int

	// DeleteRule removes the rule at index, shifting trailing rules down
	// by one. The index must address an existing rule; callers are
	// expected to track Length(), and a stale index is a caller bug.
	DeleteRule(index int)

	// GetRule returns the rule at index, or "" if index is not currently
	// populated. Speculative reads past the end are an expected pattern
	// during reconciliation and never fail.
	GetRule(index int) string

	// Length returns the number of rules currently stored.
	Length() int
}

// SheetOptions select the backend for one styling target.
type SheetOptions struct {
	Headless    bool       // no live rendering surface exists
	PreferCSSOM bool       // inject through the native rule engine
	Target      *html.Node // optional parent for the style container
}

// MakeTag constructs the Tag for one styling target. The decision is made
// once, in fixed priority order, and holds for the Tag's lifetime:
//
//  1. Headless      → VirtualTag, no live surface assumed
//  2. PreferCSSOM   → CSSOMTag below a style container
//  3. otherwise     → TextTag below a style container
//
// The style container is provisioned from opts.Target (see
// dom.StyleContainer); tearing it down later is the caller's business.
func MakeTag(opts SheetOptions) Tag {
	if opts.Headless {
		tracer().Debugf("tag backend: in-memory list")
		return NewVirtualTag()
	}
	container := dom.StyleContainer(opts.Target)
	if opts.PreferCSSOM {
		tracer().Debugf("tag backend: native rule engine")
		return NewCSSOMTag(container)
	}
	tracer().Debugf("tag backend: text nodes")
	return NewTextTag(container)
}
