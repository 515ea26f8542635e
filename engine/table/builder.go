package table

import (
	"github.com/irajkovic/font-renderer/core"
	"github.com/irajkovic/font-renderer/engine/raster"
	"github.com/irajkovic/font-renderer/engine/sampler"
	"golang.org/x/text/encoding/charmap"
)

// Builder assembles a Table incrementally: open the table, then per font
// request open a block, add the glyphs of the range in ascending order and
// close the block again. Once a block is closed it is never touched again.
type Builder struct {
	src     raster.Source
	table   *Table
	current *FontBlock
	metrics raster.Metrics
}

// NewBuilder creates a Builder drawing glyphs from the given source.
func NewBuilder(src raster.Source) *Builder {
	return &Builder{src: src}
}

// OpenTable starts a new table. Element type and table name end up verbatim
// in the emitted header, so both must be non-empty.
func (b *Builder) OpenTable(elementType, name string) error {
	if elementType == "" || name == "" {
		return core.Error(core.EINVALID, "table needs an element type and a name")
	}
	if b.table != nil {
		return core.Error(core.EINTERNAL, "table %s is still open", b.table.Name)
	}
	b.table = &Table{ElementType: elementType, Name: name}
	return nil
}

// OpenFontBlock starts the block for one font request and fixes the
// character range the block will cover. It queries the glyph source for the
// font's vertical metrics and returns the line height, which is the pixel
// row count of every glyph in the block.
//
// Every block of a table must be opened with the same range.
func (b *Builder) OpenFontBlock(req Request, rng CharRange) (int, error) {
	if b.table == nil {
		return 0, core.Error(core.EINTERNAL, "no open table to add a font block to")
	}
	if b.current != nil {
		return 0, core.Error(core.EINTERNAL, "font block %s is still open", b.current.FontName)
	}
	if len(b.table.Blocks) > 0 && b.table.Blocks[0].Range != rng {
		return 0, core.Error(core.EINVALID, "all font blocks of a table must share one character range")
	}
	m, err := b.src.Metrics(req.Name, req.Size)
	if err != nil {
		return 0, err
	}
	tracer().Debugf("font %s at %dpt: line height %d, overline %d",
		req.Name, req.Size, m.LineHeight, m.Overline)
	b.metrics = m
	b.current = &FontBlock{
		FontName:   req.Name,
		Size:       req.Size,
		LineHeight: m.LineHeight,
		Range:      rng,
		Glyphs:     make([]GlyphEntry, 0, rng.Len()),
	}
	return m.LineHeight, nil
}

// AddGlyph renders, measures and samples the glyph for one character code
// and appends it to the open block. Codes must arrive in ascending order
// without gaps, starting at the block's range start; consumers of the table
// index glyphs by position, so any hole would shift every following glyph.
//
// Glyphs are rendered with the pen one pixel below the overline, which keeps
// ascenders unclipped and puts all glyphs of a font on a common baseline.
func (b *Builder) AddGlyph(code uint8) error {
	if b.current == nil {
		return core.Error(core.EINTERNAL, "no open font block to add a glyph to")
	}
	next := int(b.current.Range.From) + len(b.current.Glyphs)
	if int(code) != next {
		return core.Error(core.EINVALID,
			"glyphs must be added in ascending order: expected code %d, have %d", next, code)
	}
	c := charToRune(code)
	advance, err := b.src.AdvanceWidth(b.current.FontName, b.current.Size, c)
	if err != nil {
		return err
	}
	img, err := b.src.Render(b.current.FontName, b.current.Size, c, b.metrics.Overline-1)
	if err != nil {
		return err
	}
	grid := sampler.Sample(img, advance, b.current.LineHeight)
	b.current.Glyphs = append(b.current.Glyphs, GlyphEntry{
		Code:    code,
		Advance: advance,
		Grid:    grid,
	})
	return nil
}

// CloseFontBlock finishes the open block and appends it to the table.
// Purely structural; the block data is not transformed.
func (b *Builder) CloseFontBlock() error {
	if b.current == nil {
		return core.Error(core.EINTERNAL, "no open font block to close")
	}
	if len(b.current.Glyphs) != b.current.Range.Len() {
		return core.Error(core.EINTERNAL, "font block %s holds %d glyphs, range needs %d",
			b.current.FontName, len(b.current.Glyphs), b.current.Range.Len())
	}
	b.table.Blocks = append(b.table.Blocks, b.current)
	b.current = nil
	return nil
}

// CloseTable finishes the table and hands it over for emission.
func (b *Builder) CloseTable() (*Table, error) {
	if b.table == nil {
		return nil, core.Error(core.EINTERNAL, "no open table to close")
	}
	if b.current != nil {
		return nil, core.Error(core.EINTERNAL, "font block %s is still open", b.current.FontName)
	}
	t := b.table
	b.table = nil
	return t, nil
}

// Build drives the whole pipeline: one table, one block per request, one
// glyph per character of the range. The table is fully assembled in memory;
// nothing is written before every glyph has been sampled, so a failure
// mid-run leaves no partial output behind.
func Build(src raster.Source, elementType, name string, rng CharRange,
	requests []Request) (*Table, error) {
	//
	b := NewBuilder(src)
	if err := b.OpenTable(elementType, name); err != nil {
		return nil, err
	}
	for _, req := range requests {
		if _, err := b.OpenFontBlock(req, rng); err != nil {
			return nil, err
		}
		for code := int(rng.From); code <= int(rng.To); code++ {
			if err := b.AddGlyph(uint8(code)); err != nil {
				return nil, err
			}
		}
		if err := b.CloseFontBlock(); err != nil {
			return nil, err
		}
		tracer().Infof("sampled %d glyphs of %s at %dpt", rng.Len(), req.Name, req.Size)
	}
	return b.CloseTable()
}

// charToRune maps an 8-bit character code onto the rune to render.
// Codes beyond ASCII are interpreted as Latin-1.
func charToRune(code uint8) rune {
	return charmap.ISO8859_1.DecodeByte(code)
}
