package sheet

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/styledsheet/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestMakeTagPriority(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledsheet.sheet")
	defer teardown()
	//
	if _, ok := MakeTag(SheetOptions{Headless: true}).(*VirtualTag); !ok {
		t.Error("expected headless option to select the in-memory backend, didn't")
	}
	// headless wins over the engine preference
	if _, ok := MakeTag(SheetOptions{Headless: true, PreferCSSOM: true}).(*VirtualTag); !ok {
		t.Error("expected headless option to take priority over the engine preference, didn't")
	}
	if _, ok := MakeTag(SheetOptions{PreferCSSOM: true}).(*CSSOMTag); !ok {
		t.Error("expected engine preference to select the engine backend, didn't")
	}
	if _, ok := MakeTag(SheetOptions{}).(*TextTag); !ok {
		t.Error("expected the default to be the text node backend, isn't")
	}
}

func TestMakeTagReusesContainer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledsheet.sheet")
	defer teardown()
	//
	parent := &html.Node{Type: html.ElementNode, DataAtom: atom.Head, Data: "head"}
	first := MakeTag(SheetOptions{Target: parent}).(*TextTag)
	second := MakeTag(SheetOptions{Target: parent}).(*TextTag)
	if first.container != second.container {
		t.Error("expected tags for one target to share the style container, don't")
	}
}

// Rules in the normalized form the engine serializes to, so that reads
// compare equal across all three backends.
var conformanceRules = []string{
	"p { color: red; }",
	"em { font-style: italic; }",
	"h1, h2 { margin: 0; }",
}

func TestTagConformance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledsheet.sheet")
	defer teardown()
	//
	backends := []struct {
		name string
		make func() Tag
	}{
		{"virtual", func() Tag { return NewVirtualTag() }},
		{"text", func() Tag { return NewTextTag(dom.StyleContainer(nil)) }},
		{"cssom", func() Tag { return NewCSSOMTag(dom.StyleContainer(nil)) }},
	}
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			tag := backend.make()
			inserts, deletes := 0, 0
			for i, rule := range conformanceRules {
				if !tag.InsertRule(i, rule) {
					t.Fatalf("expected insert %d to succeed, didn't", i)
				}
				inserts++
			}
			if tag.InsertRule(tag.Length()+1, "p { color: red; }") {
				t.Error("expected insert past length to be refused, wasn't")
			}
			for i, want := range conformanceRules {
				if got := tag.GetRule(i); got != want {
					t.Errorf("expected rule %d to be %q, is %q", i, want, got)
				}
			}
			tag.DeleteRule(1)
			deletes++
			if got, want := tag.GetRule(1), conformanceRules[2]; got != want {
				t.Errorf("expected rule 2 to shift down to index 1, index 1 is %q", got)
			}
			if got, want := tag.Length(), inserts-deletes; got != want {
				t.Errorf("expected length to be inserts-deletes = %d, is %d", want, got)
			}
			if got := tag.GetRule(tag.Length()); got != "" {
				t.Errorf("expected speculative read at length to be empty, is %q", got)
			}
		})
	}
}
