package cssom

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

// RuleList is a live rule engine attached to a style element. It stores
// structured rules in index order; indexes of the engine's primitives are
// the logical rule positions, counted from 0.
//
// A RuleList is not safe for concurrent use. It belongs to whichever
// single owner acquired it.
type RuleList struct {
	owner *html.Node
	rules []*css.Rule
}

// ErrNoContent is returned by Acquire for a style element without any
// content node.
var ErrNoContent = errors.New("cssom: style element has no content node")

var registry = struct {
	sync.Mutex
	handles map[*html.Node]*RuleList
}{handles: make(map[*html.Node]*RuleList)}

// Acquire returns the rule engine attached to a style element,
// materializing one on first call. Subsequent calls for the same element
// return the same handle.
//
// Acquire fails with ErrNoContent if styleElem has no child node: engines
// do not come alive for empty containers, so callers have to attach a
// content node (an empty text node suffices) before acquiring.
func Acquire(styleElem *html.Node) (*RuleList, error) {
	if styleElem == nil {
		return nil, errors.New("cssom: cannot acquire engine without a style element")
	}
	if styleElem.FirstChild == nil {
		return nil, ErrNoContent
	}
	registry.Lock()
	defer registry.Unlock()
	if rl, ok := registry.handles[styleElem]; ok {
		return rl, nil
	}
	rl := &RuleList{owner: styleElem}
	registry.handles[styleElem] = rl
	tracer().Debugf("materialized rule engine for style element")
	return rl, nil
}

// Release forgets the engine attached to styleElem. Teardown of the
// element itself is its owner's business; Release only drops the
// association so the element may be collected.
func Release(styleElem *html.Node) {
	registry.Lock()
	defer registry.Unlock()
	delete(registry.handles, styleElem)
}

// Owner returns the style element this engine is attached to.
func (rl *RuleList) Owner() *html.Node {
	return rl.owner
}

// Len returns the number of rules currently held by the engine.
func (rl *RuleList) Len() int {
	return len(rl.rules)
}

// InsertRule parses rule text and inserts the resulting structured rule at
// index, shifting trailing rules up by one. Valid indexes are 0 … Len(),
// with Len() appending.
//
// Insertion is atomic: if the index is out of range, if the text does not
// parse, or if it parses to anything but exactly one top-level rule, an
// error is returned and the engine state is unchanged.
func (rl *RuleList) InsertRule(index int, rule string) error {
	if index < 0 || index > len(rl.rules) {
		return fmt.Errorf("cssom: rule index %d outside of [0…%d]", index, len(rl.rules))
	}
	sheet, err := parser.Parse(rule)
	if err != nil {
		tracer().Debugf("engine rejected rule text: %v", err)
		return err
	}
	if len(sheet.Rules) != 1 {
		return fmt.Errorf("cssom: expected rule text to hold exactly 1 rule, holds %d", len(sheet.Rules))
	}
	rl.rules = append(rl.rules, nil)
	copy(rl.rules[index+1:], rl.rules[index:])
	rl.rules[index] = sheet.Rules[0]
	return nil
}

// DeleteRule removes the rule at index, shifting trailing rules down by
// one. The index must address an existing rule; a stale index is a caller
// bug and will panic.
func (rl *RuleList) DeleteRule(index int) {
	rl.rules = append(rl.rules[:index], rl.rules[index+1:]...)
}

// Rule returns the serialized textual form of the rule at index. An
// unpopulated index reads as the empty string, as does a rule object
// which cannot be serialized.
func (rl *RuleList) Rule(index int) string {
	if index < 0 || index >= len(rl.rules) {
		return ""
	}
	return serialize(rl.rules[index])
}

// String serializes the complete engine state, one rule per line.
func (rl *RuleList) String() string {
	lines := make([]string, 0, len(rl.rules))
	for _, r := range rl.rules {
		lines = append(lines, serialize(r))
	}
	return strings.Join(lines, "\n")
}

// serialize writes a structured rule back out as rule text. Serialization
// normalizes whitespace; it does not try to reproduce the input byte for
// byte.
func serialize(r *css.Rule) string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	if r.Kind == css.AtRule {
		b.WriteString(r.Name)
		if prelude := strings.TrimSpace(r.Prelude); prelude != "" {
			b.WriteString(" ")
			b.WriteString(prelude)
		}
		if len(r.Declarations) == 0 && len(r.Rules) == 0 {
			b.WriteString(";")
			return b.String()
		}
	} else if len(r.Selectors) > 0 {
		b.WriteString(strings.Join(r.Selectors, ", "))
	} else {
		b.WriteString(strings.TrimSpace(r.Prelude))
	}
	b.WriteString(" {")
	for _, d := range r.Declarations {
		b.WriteString(" ")
		b.WriteString(d.String())
	}
	for _, sub := range r.Rules {
		b.WriteString(" ")
		b.WriteString(serialize(sub))
	}
	b.WriteString(" }")
	return b.String()
}
