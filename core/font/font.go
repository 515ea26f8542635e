/*
Package font loads and manages scalable fonts and sized typecases.

We will stick to the following definitions:

* A "scalable font" is a font, i.e. a variant of a typeface with a certain
weight, slant, etc. An example is "Helvetica regular".

* A "typecase" is a scaled font, i.e. a font prepared for rendering at a
certain size. The name is reminiscent of the wooden boxes of typesetters in
the era of metal type. An example is "Helvetica regular 12pt".

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package font

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/irajkovic/font-renderer/core"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'fontrender.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("fontrender.fonts")
}

// ScalableFont is an unscaled font, i.e. the parsed content of an OpenType
// or TrueType font file.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path, or "internal" for embedded fonts
	Binary   []byte     // raw font data
	SFNT     *sfnt.Font // the font's container
}

// TypeCase is a font fixed at a certain size, ready for measuring and
// rendering glyphs.
type TypeCase struct {
	scalableFontParent *ScalableFont
	face               xfont.Face // Go uses 'face' and 'font' in an inverse manner
	size               float64
}

// LoadOpenTypeFont reads a font from a font file (.ttf or .otf).
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "font file not readable: %s", fontfile)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err == nil {
		f.Filepath = fontfile
	}
	return f, err
}

// ParseOpenTypeFont interprets binary font data as an OpenType/TrueType font.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "broken font: not in OpenType format")
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return f, nil
}

// PrepareCase scales a font to a given size (in points).
//
// The face is created at 72 dpi, i.e. one point maps onto one pixel, which is
// the unit bitmap-table clients count in. Hinting is set to full, as glyphs
// are destined for low-resolution framebuffers.
func (sf *ScalableFont) PrepareCase(fontsize float64) (*TypeCase, error) {
	typecase := &TypeCase{}
	typecase.scalableFontParent = sf
	if fontsize < 4.0 || fontsize > 500.0 {
		tracer().Infof("font size must be 4pt ≤ size ≤ 500pt, is %g (set to 10pt)", fontsize)
		fontsize = 10.0
	}
	options := &opentype.FaceOptions{
		Size:    fontsize,
		DPI:     72,
		Hinting: xfont.HintingFull,
	}
	f, err := opentype.NewFace(sf.SFNT, options)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot scale font %s to %.1fpt",
			sf.Fontname, fontsize)
	}
	typecase.face = f
	typecase.size = fontsize
	return typecase, nil
}

// ScalableFontParent returns the unscaled font a typecase has been derived from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// Face returns the sized font face, for measuring and rendering.
func (tc *TypeCase) Face() xfont.Face {
	return tc.face
}

// PtSize returns the point size of a typecase.
func (tc *TypeCase) PtSize() float64 {
	return tc.size
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else fails. It is
// always present. Currently we use Go Regular.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Regular",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load embedded fallback font") // this cannot happen
	}
	return gofont
}

// --- Font names ------------------------------------------------------------

// NormalizeFontname produces a canonical registry key from a font name:
// lower-case, spaces replaced, a possible file extension stripped.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	return strings.ToLower(fname)
}

func appendSize(fname string, size float64) string {
	return fmt.Sprintf("%s-%.2f", fname, size)
}
