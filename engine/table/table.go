package table

import (
	"github.com/irajkovic/font-renderer/core"
	"github.com/irajkovic/font-renderer/engine/sampler"
)

// CharRange is a closed interval of 8-bit character codes. Immutable once
// created through NewCharRange.
type CharRange struct {
	From uint8
	To   uint8
}

// NewCharRange validates a closed interval of character codes.
// from and to must lie in 0…255 with from ≤ to.
func NewCharRange(from, to int) (CharRange, error) {
	if from < 0 || from > 255 || to < 0 || to > 255 {
		return CharRange{}, core.Error(core.EINVALID,
			"character codes must lie in 0…255, have %d…%d", from, to)
	}
	if from > to {
		return CharRange{}, core.Error(core.EINVALID,
			"character range is inverted: %d > %d", from, to)
	}
	return CharRange{From: uint8(from), To: uint8(to)}, nil
}

// Len returns the number of character codes in the range.
func (r CharRange) Len() int {
	return int(r.To) - int(r.From) + 1
}

// Request names one font at one point size. Requests are processed in the
// order given on the command line, and blocks are emitted in that order.
type Request struct {
	Name string
	Size int
}

// GlyphEntry is the per-character payload of a font block: the glyph's
// advance width plus its intensity grid of advance-width × line-height
// pixels. Each entry owns its grid exclusively.
type GlyphEntry struct {
	Code    uint8
	Advance int
	Grid    sampler.Grid
}

// FontBlock aggregates the glyph entries of one (font, size) pair.
// Entries are ordered by ascending character code without gaps, so the
// entry for code c sits at index c − Range.From.
type FontBlock struct {
	FontName   string
	Size       int
	LineHeight int
	Range      CharRange
	Glyphs     []GlyphEntry
}

// Table is the complete artifact: a header plus one block per request.
// All blocks share the same character range.
type Table struct {
	ElementType string
	Name        string
	Blocks      []*FontBlock
}
