/*
Package cssom implements a native rule engine: an index-addressed list of
parsed CSS rules attached to a style container element.

Status

This is a working draft. The API may still change without notice. Please be
patient.

Overview

Browsers expose parsed stylesheets through the CSS Object Model, where a
style element owns a sheet of structured rule objects with index-based
insertion and deletion. This package is our rendering of that surface:
a RuleList is the live handle of a style element, acquired with Acquire,
and it parses every inserted rule with the douceur parser
(https://github.com/aymerick/douceur), the same parser our styling
packages have always relied on.

Parsing is what distinguishes the engine from plainly collecting text: an
insertion may fail. Rule text the parser rejects is refused atomically,
with no partial state left behind. Clients that cannot tolerate rejection
should store raw text beside the container instead (see package sheet for
backends doing exactly that).

A peculiarity carried over from live engines: Acquire refuses a style
element without any content node, because several engines do not
materialize a usable sheet object for an empty element. Attach content
first, then acquire.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'styledsheet.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("styledsheet.cssom")
}
