/*
Package dom provides the hosting surface for rule injection: provisioning
of style container elements and low-level helpers on their child chains.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package dom

import (
	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'styledsheet.dom'.
func tracer() tracing.Trace {
	return tracing.Select("styledsheet.dom")
}

// ContainerAttr marks style elements managed by this module. Container
// lookup only ever considers elements carrying this attribute, so foreign
// style elements under the same parent are left alone.
const ContainerAttr = "data-styledsheet"

var containerSelector = cascadia.MustCompile("style[" + ContainerAttr + "]")

// StyleContainer returns the style element used for rule injection below
// parent. If parent already holds a managed container, that one is reused;
// otherwise a fresh style element is created and appended to parent.
// A nil parent yields a detached container, which is sufficient for
// pipelines that flush rule text themselves.
//
// Ownership of the returned element stays with the caller's document; this
// package never removes containers it created.
func StyleContainer(parent *html.Node) *html.Node {
	if parent != nil {
		if found := containerSelector.MatchFirst(parent); found != nil {
			return found
		}
	}
	container := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Style,
		Data:     "style",
		Attr: []html.Attribute{
			{Key: ContainerAttr, Val: "active"},
			{Key: "type", Val: "text/css"},
		},
	}
	if parent != nil {
		parent.AppendChild(container)
		tracer().Debugf("created style container below %q", parent.Data)
	}
	return container
}
