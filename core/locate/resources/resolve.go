package resources

import (
	"context"

	"github.com/flopp/go-findfont"
	"github.com/irajkovic/font-renderer/core/font"
	xfont "golang.org/x/image/font"
)

type fontPlusErr struct {
	font *font.TypeCase
	err  error
}

// TypeCasePromise is the await-side of ResolveTypeCase.
type TypeCasePromise interface {
	TypeCase() (*font.TypeCase, error)
}

type fontLoader struct {
	await func(ctx context.Context) (*font.TypeCase, error)
}

func (loader fontLoader) TypeCase() (*font.TypeCase, error) {
	return loader.await(context.Background())
}

// ResolveTypeCase resolves a font, prepared at a given size.
//
// Fonts are searched in this order:
//
//  1. the global font registry (fonts already loaded),
//  2. locally installed fonts listed by fontconfig, if configured,
//  3. a scan of the platform's font directories,
//  4. the Google webfont service, with downloads cached in the user's
//     cache directory.
//
// If all of these fail, the returned typecase is derived from the embedded
// fallback font and the error carries code EMISSING. The typecase is usable
// either way; the caller decides whether to warn about the substitution.
func ResolveTypeCase(name string, style xfont.Style, weight xfont.Weight,
	size float64) TypeCasePromise {
	//
	ch := make(chan fontPlusErr)
	go func(ch chan<- fontPlusErr) {
		result := fontPlusErr{}
		norm := font.NormalizeFontname(name)
		if t, err := font.GlobalRegistry().TypeCase(norm, size); err == nil {
			result.font = t
			ch <- result
			close(ch)
			return
		}
		var f *font.ScalableFont
		var err error
		if desc, variant := findFontConfigFont(name, style, weight); desc.Path != "" {
			tracer().Debugf("fontconfig lists %s (%s)", desc.Family, variant)
			f, err = font.LoadOpenTypeFont(desc.Path)
		}
		if f == nil {
			if fpath, ferr := findfont.Find(name); ferr == nil && fpath != "" {
				tracer().Debugf("%s is a system font", name)
				f, err = font.LoadOpenTypeFont(fpath)
			}
		}
		if f == nil {
			var fiList []GoogleFontInfo
			if fiList, err = FindGoogleFont(name, style, weight); err == nil {
				fi := fiList[0]
				var fpath string
				if fpath, err = CacheGoogleFont(fi, fi.Variants[0]); err == nil {
					f, err = font.LoadOpenTypeFont(fpath)
				}
			}
		}
		if err != nil {
			tracer().Infof("font lookup for %s: %v", name, err)
		}
		if f != nil {
			f.Fontname = name
			font.GlobalRegistry().StoreFont(norm, f)
		}
		// with f stored this yields the freshly loaded font; otherwise the
		// fallback typecase plus a substitution error
		result.font, result.err = font.GlobalRegistry().TypeCase(norm, size)
		ch <- result
		close(ch)
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (*font.TypeCase, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.font, r.err
			}
		},
	}
}
