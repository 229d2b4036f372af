/*
Package sheet provides an ordered, index-addressable buffer of raw CSS rule
text, used by styling pipelines to inject and remove individual rules at
precise positions.

Status

This is a working draft. The API may still change without notice. Please be
patient.

Overview

Styling pipelines which reconcile generated rule sets need one thing from
their output target: insert this rule at position i, delete the rule at
position j, tell me what currently sits at position k. Depending on the
environment, that target is backed by very different physical stores:

  ▪ a native rule engine which parses rules on insertion (CSSOMTag),
  ▪ sibling text nodes below a style container element (TextTag),
  ▪ a plain in-memory list when no live surface exists at all (VirtualTag).

The three backends form a closed set behind one contract, interface Tag,
and behave identically up to the failure modes of their stores. Having this
interface imposes a (small) performance hit; as elsewhere in our packages
we will not trade modularity and clarity for performance.

A Tag is chosen exactly once per styling target, with MakeTag, and never
re-classed afterwards. All calls for one Tag must come from a single
logical owner; no internal locking is provided.

Failure philosophy: rejected mutations surface as a boolean (or a partial
count for batches), never as an error value and never as a panic; reads
past the end are benign and yield "". Deleting at a stale index is a
caller bug and not recoverable.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package sheet

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'styledsheet.sheet'.
func tracer() tracing.Trace {
	return tracing.Select("styledsheet.sheet")
}
