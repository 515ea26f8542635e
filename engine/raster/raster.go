/*
Package raster renders single glyphs of sized fonts into pixel buffers.

It is the collaborator the table builder depends on: a Source hands out font
metrics, per-glyph advance widths and rendered glyph images. The Engine
implementation in this package rasterizes through golang.org/x/image font
faces, resolved by name via the resources package.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package raster

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/irajkovic/font-renderer/core"
	"github.com/irajkovic/font-renderer/core/font"
	"github.com/irajkovic/font-renderer/core/locate/resources"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// tracer traces to tracing key 'fontrender.raster'.
func tracer() tracing.Trace {
	return tracing.Select("fontrender.raster")
}

// Metrics are the vertical metrics of a sized font, in pixels.
type Metrics struct {
	LineHeight int // vertical extent allocated for any glyph of the font
	Overline   int // distance from the top of a line down to the baseline
}

// Source produces glyph images and metrics for (font, size) pairs.
// Implementations resolve the font name in whatever way suits them; a name
// that resolves to no font must be substituted, not failed.
type Source interface {
	// Metrics reports the font's vertical metrics.
	Metrics(fontName string, size int) (Metrics, error)
	// AdvanceWidth measures the horizontal space a glyph occupies when
	// laid out, in pixels.
	AdvanceWidth(fontName string, size int, c rune) (int, error)
	// Render draws a glyph white-on-black with the pen starting at
	// (0, baseline). The image is exactly advance-width × line-height.
	Render(fontName string, size int, c rune, baseline int) (image.Image, error)
}

// Engine is a Source rasterizing through x/image font faces.
//
// Engine is not safe for concurrent use; the table pipeline is strictly
// sequential, as glyph order has to match output order.
type Engine struct {
	typecases map[string]*font.TypeCase
}

var _ Source = &Engine{}

// NewEngine creates a rasterizing engine without any fonts loaded yet.
// Fonts are resolved and cached on first use of a (name, size) pair.
func NewEngine() *Engine {
	return &Engine{
		typecases: make(map[string]*font.TypeCase),
	}
}

// typecase resolves and caches a font at a given size. An unresolvable name
// yields the fallback font; the substitution is traced as a warning once.
func (e *Engine) typecase(fontName string, size int) (*font.TypeCase, error) {
	key := fmt.Sprintf("%s-%d", font.NormalizeFontname(fontName), size)
	if tc, ok := e.typecases[key]; ok {
		return tc, nil
	}
	tc, err := resources.ResolveTypeCase(fontName, xfont.StyleNormal, xfont.WeightNormal,
		float64(size)).TypeCase()
	if tc == nil {
		return nil, core.WrapError(err, core.EINTERNAL, "no typecase for font %s", fontName)
	}
	if err != nil {
		tracer().Infof(core.UserMessage(err))
	}
	e.typecases[key] = tc
	return tc, nil
}

// Metrics reports line height and overline offset of a font, in pixels.
//
// The line height is the tight ascent+descent extent, mirroring what
// framebuffer clients allocate per text row, not the font's recommended
// line spacing.
func (e *Engine) Metrics(fontName string, size int) (Metrics, error) {
	tc, err := e.typecase(fontName, size)
	if err != nil {
		return Metrics{}, err
	}
	m := tc.Face().Metrics()
	return Metrics{
		LineHeight: (m.Ascent + m.Descent).Ceil(),
		Overline:   m.Ascent.Ceil(),
	}, nil
}

// AdvanceWidth measures the advance of a single glyph, in pixels, rounded up
// so that hinted ink stays inside the advance. Characters without a glyph in
// the font report a width of 0.
func (e *Engine) AdvanceWidth(fontName string, size int, c rune) (int, error) {
	tc, err := e.typecase(fontName, size)
	if err != nil {
		return 0, err
	}
	adv, ok := tc.Face().GlyphAdvance(c)
	if !ok {
		tracer().Debugf("font %s has no glyph for %#U", fontName, c)
		return 0, nil
	}
	return adv.Ceil(), nil
}

// Render rasterizes a glyph into a fresh advance-width × line-height buffer,
// white ink on black ground, the pen sitting on the given baseline.
//
// Ink extending beyond the advance width (e.g. italic overhang) is clipped;
// the advance is taken from the font's metrics, not from the rendered
// bounding box.
func (e *Engine) Render(fontName string, size int, c rune, baseline int) (image.Image, error) {
	tc, err := e.typecase(fontName, size)
	if err != nil {
		return nil, err
	}
	m, err := e.Metrics(fontName, size)
	if err != nil {
		return nil, err
	}
	width, err := e.AdvanceWidth(fontName, size, c)
	if err != nil {
		return nil, err
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, m.LineHeight))
	if width == 0 {
		return dst, nil
	}
	draw.Draw(dst, dst.Bounds(), image.Black, image.Point{}, draw.Src)
	d := xfont.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: tc.Face(),
		Dot:  fixed.P(0, baseline),
	}
	d.DrawString(string(c))
	return dst, nil
}
