package sheet

import (
	"github.com/npillmayer/styledsheet/cssom"
	"github.com/npillmayer/styledsheet/dom"
	"golang.org/x/net/html"
)

// CSSOMTag delegates rule storage and parsing to a native rule engine
// attached to a style container element. The engine parses every inserted
// rule and may reject it; rejection is converted to the boolean contract
// of interface Tag at this boundary and never propagates further.
type CSSOMTag struct {
	container *html.Node
	sheet     *cssom.RuleList
	length    int
}

// NewCSSOMTag acquires the rule engine of container. An empty container
// first gets an invisible placeholder content node attached, before the
// engine handle is acquired: engines do not materialize a usable handle
// for an empty style element, so the ordering matters.
func NewCSSOMTag(container *html.Node) *CSSOMTag {
	if container.FirstChild == nil {
		container.AppendChild(dom.RuleNode(""))
	}
	engine, err := cssom.Acquire(container)
	if err != nil {
		// unreachable after the placeholder attach above
		panic(err)
	}
	return &CSSOMTag{container: container, sheet: engine}
}

// InsertRule hands rule to the engine's index-based insert primitive.
// Engine rejection (malformed or unsupported rule text) reads as false;
// the engine is trusted to reject atomically, so no partial state leaks.
func (ct *CSSOMTag) InsertRule(index int, rule string) bool {
	if err := ct.sheet.InsertRule(index, rule); err != nil {
		tracer().Debugf("engine refused rule at %d: %v", index, err)
		return false
	}
	ct.length++
	return true
}

// InsertRules inserts the batch rule by rule, advancing the target index
// only on acceptance, and returns the number of accepted rules. The engine
// has no batch primitive; this is deliberately the slow path that
// tolerates partial failure against a strict parser. Accepted rules end up
// adjacent and in order from startIndex.
func (ct *CSSOMTag) InsertRules(startIndex int, rules []string) int {
	inserted := 0
	for _, rule := range rules {
		if ct.InsertRule(startIndex+inserted, rule) {
			inserted++
		}
	}
	return inserted
}

// DeleteRule removes the engine rule at index.
func (ct *CSSOMTag) DeleteRule(index int) {
	ct.sheet.DeleteRule(index)
	ct.length--
}

// GetRule returns the serialized textual form of the engine's structured
// rule at index. Unpopulated indexes, and rule objects whose text is not
// accessible, read as "".
func (ct *CSSOMTag) GetRule(index int) string {
	if index < 0 || index >= ct.length {
		return ""
	}
	return ct.sheet.Rule(index)
}

// Length returns the number of rules held by the engine.
func (ct *CSSOMTag) Length() int {
	return ct.length
}

var _ Tag = &CSSOMTag{}
