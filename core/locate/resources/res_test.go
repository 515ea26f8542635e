package resources

import (
	"testing"

	"github.com/irajkovic/font-renderer/core"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	xfont "golang.org/x/image/font"
)

func TestResolveUnknownFontSubstitutes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrender.resources")
	defer teardown()
	gconf.Initialize(testconfig.Conf{"app-key": "fontrender-test"})
	//
	loader := ResolveTypeCase("no such font anywhere", xfont.StyleNormal, xfont.WeightNormal, 11.0)
	typecase, err := loader.TypeCase()
	if err == nil {
		t.Error("expected substitution of unknown font to be reported via error")
	}
	if core.Code(err) != core.EMISSING {
		t.Errorf("expected error code EMISSING, got %d", core.Code(err))
	}
	if typecase == nil {
		t.Fatal("typecase is nil, should be derived from fallback font")
	}
	t.Logf("name of typecase = %s", typecase.ScalableFontParent().Fontname)
	if typecase.PtSize() != 11.0 {
		t.Errorf("expected fallback typecase at 11pt, got %.2f", typecase.PtSize())
	}
}

func TestResolveIsCached(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrender.resources")
	defer teardown()
	gconf.Initialize(testconfig.Conf{"app-key": "fontrender-test"})
	//
	first, _ := ResolveTypeCase("no such font anywhere", xfont.StyleNormal,
		xfont.WeightNormal, 11.0).TypeCase()
	second, _ := ResolveTypeCase("no such font anywhere", xfont.StyleNormal,
		xfont.WeightNormal, 11.0).TypeCase()
	if first != second {
		t.Error("expected repeated resolution to be served from the registry cache")
	}
}
