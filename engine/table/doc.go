/*
Package table assembles and serializes font bitmap tables.

A table holds one font block per requested (font, size) pair, each block
holding one glyph entry per character of a shared range. Clients of the
emitted table locate a glyph purely by position (code − range-start); the
range bounds are part of the block header.

Assembly and formatting are decoupled: a Builder accumulates the table as a
tree in memory, the finished Table then serializes itself in a single pass
as a nested C array-initializer.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package table

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'fontrender.table'.
func tracer() tracing.Trace {
	return tracing.Select("fontrender.table")
}
