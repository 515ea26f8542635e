package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	xfont "golang.org/x/image/font"
)

func TestNormalizeFontname(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrender.fonts")
	defer teardown()
	//
	for input, want := range map[string]string{
		"Arial":             "arial",
		"  Gill Sans MT ":   "gill_sans_mt",
		"GentiumPlus-R.ttf": "gentiumplus-r",
		"Consolas":          "consolas",
	} {
		if got := NormalizeFontname(input); got != want {
			t.Errorf("normalized %q to %q, want %q", input, got, want)
		}
	}
}

type sw struct {
	s xfont.Style
	w xfont.Weight
}

func TestGuessStyleAndWeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrender.fonts")
	defer teardown()
	//
	for k, v := range map[string]sw{
		"fonts/Clarendon-bold.ttf":               {xfont.StyleNormal, xfont.WeightBold},
		"Microsoft/Gill Sans MT Bold Italic.ttf": {xfont.StyleItalic, xfont.WeightBold},
		"Cambria Math.ttf":                       {xfont.StyleNormal, xfont.WeightNormal},
	} {
		style, weight := GuessStyleAndWeight(k)
		t.Logf("style = %d, weight = %d", style, weight)
		if style != v.s || weight != v.w {
			t.Errorf("expected different style or weight for %s", k)
		}
	}
}

func TestFallbackFontLoads(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrender.fonts")
	defer teardown()
	//
	f := FallbackFont()
	if f == nil || f.SFNT == nil {
		t.Fatal("expected embedded fallback font to be present")
	}
	tc, err := f.PrepareCase(12.0)
	if err != nil {
		t.Fatal(err)
	}
	if tc.Face() == nil {
		t.Error("expected fallback typecase to carry a face")
	}
	if tc.PtSize() != 12.0 {
		t.Errorf("expected typecase at 12pt, got %.2f", tc.PtSize())
	}
}

func TestRegistrySubstitutesFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrender.fonts")
	defer teardown()
	//
	reg := NewRegistry()
	tc, err := reg.TypeCase("no-such-font", 10.0)
	if err == nil {
		t.Error("expected substitution to be reported via error value")
	}
	if tc == nil || tc.Face() == nil {
		t.Fatal("expected a usable fallback typecase despite unresolved name")
	}
	if tc.ScalableFontParent() != FallbackFont() {
		t.Error("expected typecase to be derived from the fallback font")
	}
	// second lookup is served from the cache, still flagged as substituted
	tc2, err2 := reg.TypeCase("no-such-font", 10.0)
	if err2 == nil {
		t.Error("expected cached substitution to be reported as well")
	}
	if tc2 != tc {
		t.Error("expected cached fallback typecase to be reused")
	}
}

func TestRegistryStoresAndScales(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrender.fonts")
	defer teardown()
	//
	reg := NewRegistry()
	reg.StoreFont("gofont", FallbackFont())
	tc, err := reg.TypeCase("gofont", 18.0)
	if err != nil {
		t.Fatal(err)
	}
	if tc.PtSize() != 18.0 {
		t.Errorf("expected typecase at 18pt, got %.2f", tc.PtSize())
	}
}
