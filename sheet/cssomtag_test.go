package sheet

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/styledsheet/dom"
)

func TestCSSOMTagPlaceholder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledsheet.sheet")
	defer teardown()
	//
	container := dom.StyleContainer(nil)
	NewCSSOMTag(container)
	if container.FirstChild == nil {
		t.Error("expected construction to attach a placeholder content node, didn't")
	}
}

func TestCSSOMTagRejectsInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledsheet.sheet")
	defer teardown()
	//
	tag := NewCSSOMTag(dom.StyleContainer(nil))
	if ok := tag.InsertRule(0, "not valid css"); ok {
		t.Error("expected the engine to reject malformed rule text, didn't")
	}
	if got, want := tag.Length(), 0; got != want {
		t.Errorf("expected rejected insert to leave length at %d, is %d", want, got)
	}
}

func TestCSSOMTagRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledsheet.sheet")
	defer teardown()
	//
	tag := NewCSSOMTag(dom.StyleContainer(nil))
	if ok := tag.InsertRule(0, "p { color: red; }"); !ok {
		t.Fatal("expected the engine to accept a well-formed rule, didn't")
	}
	if got, want := tag.GetRule(0), "p { color: red; }"; got != want {
		t.Errorf("expected rule 0 to read back as %q, is %q", want, got)
	}
	if got := tag.GetRule(1); got != "" {
		t.Errorf("expected read past the end to be empty, is %q", got)
	}
}

func TestCSSOMTagPartialBatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledsheet.sheet")
	defer teardown()
	//
	tag := NewCSSOMTag(dom.StyleContainer(nil))
	rules := []string{
		"p { color: red; }",
		"not a rule",
		"em { font-style: italic; }",
	}
	if got, want := tag.InsertRules(0, rules), 2; got != want {
		t.Errorf("expected batch to report %d accepted rules, reports %d", want, got)
	}
	if got, want := tag.Length(), 2; got != want {
		t.Errorf("expected length to be %d, is %d", want, got)
	}
	// accepted rules keep their relative order and end up adjacent
	if got, want := tag.GetRule(0), "p { color: red; }"; got != want {
		t.Errorf("expected rule 0 to be %q, is %q", want, got)
	}
	if got, want := tag.GetRule(1), "em { font-style: italic; }"; got != want {
		t.Errorf("expected rule 1 to be %q, is %q", want, got)
	}
}

func TestCSSOMTagDelete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledsheet.sheet")
	defer teardown()
	//
	tag := NewCSSOMTag(dom.StyleContainer(nil))
	tag.InsertRules(0, []string{
		"p { color: red; }",
		"em { font-style: italic; }",
	})
	tag.DeleteRule(0)
	if got, want := tag.Length(), 1; got != want {
		t.Errorf("expected length after delete to be %d, is %d", want, got)
	}
	if got, want := tag.GetRule(0), "em { font-style: italic; }"; got != want {
		t.Errorf("expected rule 0 after delete to be %q, is %q", want, got)
	}
}
