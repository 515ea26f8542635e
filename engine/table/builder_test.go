package table

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/irajkovic/font-renderer/engine/raster"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Stub glyph source -----------------------------------------------------

// stubSource is a deterministic raster.Source: fixed metrics, per-rune
// advance widths, and a uniform pixel value. Buffers are handed out with
// extra padding to make sure the sampler trims to advance × line height.
type stubSource struct {
	lineHeight int
	overline   int
	widths     map[rune]int
	pixel      color.Color
	padding    int
}

func (s *stubSource) Metrics(fontName string, size int) (raster.Metrics, error) {
	return raster.Metrics{LineHeight: s.lineHeight, Overline: s.overline}, nil
}

func (s *stubSource) AdvanceWidth(fontName string, size int, c rune) (int, error) {
	if w, ok := s.widths[c]; ok {
		return w, nil
	}
	return 4, nil
}

func (s *stubSource) Render(fontName string, size int, c rune, baseline int) (image.Image, error) {
	w, _ := s.AdvanceWidth(fontName, size, c)
	img := image.NewRGBA(image.Rect(0, 0, w+s.padding, s.lineHeight+s.padding))
	draw.Draw(img, img.Bounds(), &image.Uniform{s.pixel}, image.Point{}, draw.Src)
	return img, nil
}

func newStubSource() *stubSource {
	return &stubSource{
		lineHeight: 7,
		overline:   6,
		widths:     map[rune]int{'A': 5, 'B': 6},
		pixel:      color.White,
		padding:    3,
	}
}

// --- Test Suite Preparation ------------------------------------------------

type BuildEnviron struct {
	suite.Suite
	src *stubSource
}

// listen for 'go test' command --> run test methods
func TestBuildFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrender.table")
	defer teardown()
	suite.Run(t, new(BuildEnviron))
}

func (env *BuildEnviron) SetupTest() {
	env.src = newStubSource()
}

// --- Tests -----------------------------------------------------------------

func (env *BuildEnviron) TestBuildSingleBlock() {
	rng, _ := NewCharRange(65, 66)
	tbl, err := Build(env.src, "uint8_t", "Arial12", rng, []Request{{Name: "Arial", Size: 12}})
	env.Require().NoError(err)
	env.Require().Len(tbl.Blocks, 1, "expected exactly one font block")
	//
	blk := tbl.Blocks[0]
	env.Equal("Arial", blk.FontName)
	env.Equal(12, blk.Size)
	env.Equal(7, blk.LineHeight)
	env.Require().Len(blk.Glyphs, 2, "expected one glyph entry per code in range")
	//
	a, b := blk.Glyphs[0], blk.Glyphs[1]
	env.Equal(uint8(65), a.Code)
	env.Equal(uint8(66), b.Code)
	env.Equal(5, a.Advance, "advance of 'A' comes from the source's measurement")
	env.Equal(6, b.Advance, "advance of 'B' comes from the source's measurement")
	env.Equal(5*7, len(a.Grid.Values), "grid is advance × line height, not the padded buffer")
	env.Equal(6*7, len(b.Grid.Values))
	for _, v := range append(a.Grid.Values, b.Grid.Values...) {
		env.Equal(uint8(255), v, "white stub pixels sample to full intensity")
	}
}

func (env *BuildEnviron) TestBuildSingleCharacter() {
	rng, _ := NewCharRange(65, 65)
	tbl, err := Build(env.src, "uint8_t", "one", rng, []Request{{Name: "Arial", Size: 12}})
	env.Require().NoError(err)
	env.Require().Len(tbl.Blocks, 1)
	env.Len(tbl.Blocks[0].Glyphs, 1, "single-code range yields a single glyph entry")
}

func (env *BuildEnviron) TestBuildPreservesRequestOrder() {
	rng, _ := NewCharRange(48, 57)
	tbl, err := Build(env.src, "uint8_t", "digits", rng, []Request{
		{Name: "Arial", Size: 12},
		{Name: "Arial", Size: 18},
		{Name: "Consolas", Size: 32},
	})
	env.Require().NoError(err)
	env.Require().Len(tbl.Blocks, 3, "expected one block per request")
	env.Equal(12, tbl.Blocks[0].Size)
	env.Equal(18, tbl.Blocks[1].Size)
	env.Equal("Consolas", tbl.Blocks[2].FontName)
	for _, blk := range tbl.Blocks {
		env.Len(blk.Glyphs, rng.Len())
		for i, g := range blk.Glyphs {
			env.Equal(int(rng.From)+i, int(g.Code), "glyphs are ascending and gapless")
		}
	}
}

func (env *BuildEnviron) TestBlocksAreIndependentlyScoped() {
	// the source changes its metrics between blocks
	rng, _ := NewCharRange(65, 65)
	b := NewBuilder(env.src)
	env.Require().NoError(b.OpenTable("uint8_t", "mixed"))
	//
	lh, err := b.OpenFontBlock(Request{Name: "first", Size: 12}, rng)
	env.Require().NoError(err)
	env.Equal(7, lh)
	env.Require().NoError(b.AddGlyph(65))
	env.Require().NoError(b.CloseFontBlock())
	//
	env.src.lineHeight = 11 // second font measures differently
	env.src.overline = 9
	lh, err = b.OpenFontBlock(Request{Name: "second", Size: 12}, rng)
	env.Require().NoError(err)
	env.Equal(11, lh)
	env.Require().NoError(b.AddGlyph(65))
	env.Require().NoError(b.CloseFontBlock())
	//
	tbl, err := b.CloseTable()
	env.Require().NoError(err)
	env.Equal(7, tbl.Blocks[0].LineHeight, "first block keeps its own line height")
	env.Equal(11, tbl.Blocks[1].LineHeight, "second block keeps its own line height")
	env.Equal(7, tbl.Blocks[0].Glyphs[0].Grid.Height)
	env.Equal(11, tbl.Blocks[1].Glyphs[0].Grid.Height)
}

func (env *BuildEnviron) TestBuilderRejectsOutOfOrderGlyphs() {
	rng, _ := NewCharRange(65, 70)
	b := NewBuilder(env.src)
	env.Require().NoError(b.OpenTable("uint8_t", "t"))
	_, err := b.OpenFontBlock(Request{Name: "Arial", Size: 12}, rng)
	env.Require().NoError(err)
	env.Require().NoError(b.AddGlyph(65))
	env.Error(b.AddGlyph(67), "expected gap in codes to be rejected")
	env.Error(b.AddGlyph(65), "expected repeated code to be rejected")
}

func (env *BuildEnviron) TestBuilderRejectsMixedRanges() {
	rng1, _ := NewCharRange(65, 66)
	rng2, _ := NewCharRange(65, 70)
	b := NewBuilder(env.src)
	env.Require().NoError(b.OpenTable("uint8_t", "t"))
	_, err := b.OpenFontBlock(Request{Name: "Arial", Size: 12}, rng1)
	env.Require().NoError(err)
	env.Require().NoError(b.AddGlyph(65))
	env.Require().NoError(b.AddGlyph(66))
	env.Require().NoError(b.CloseFontBlock())
	_, err = b.OpenFontBlock(Request{Name: "Arial", Size: 18}, rng2)
	env.Error(err, "expected deviating range to be rejected")
}

func (env *BuildEnviron) TestBuilderRejectsEmptyNames() {
	b := NewBuilder(env.src)
	env.Error(b.OpenTable("", "name"))
	env.Error(b.OpenTable("uint8_t", ""))
}
