package resources

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"regexp"
	"strings"
	"sync"

	"github.com/irajkovic/font-renderer/core"
	"github.com/irajkovic/font-renderer/core/font"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
)

// GoogleFontInfo describes a font entry of the Google webfont service.
type GoogleFontInfo struct {
	Family   string            `json:"family"`
	Version  string            `json:"version"`
	Variants []string          `json:"variants"`
	Subsets  []string          `json:"subsets"`
	Files    map[string]string `json:"files"`
}

type googleFontsList struct {
	Items []GoogleFontInfo `json:"items"`
}

var loadGoogleFontsDir sync.Once
var googleFontsDirectory googleFontsList
var googleFontsLoadError error
var googleFontsAPI string = `https://www.googleapis.com/webfonts/v1/webfonts?`

// SetupGoogleFontsDirectory fetches the font directory of the Google webfont
// service. It requires an API key, taken as `google-api-key` from the global
// configuration or from the environment as GOOGLE_API_KEY.
func SetupGoogleFontsDirectory() error {
	loadGoogleFontsDir.Do(func() {
		apikey := gconf.GetString("google-api-key")
		if apikey == "" {
			apikey = os.Getenv("GOOGLE_API_KEY")
		}
		if apikey == "" {
			err := errors.New("Google API key not set")
			tracer().Infof(err.Error())
			googleFontsLoadError = core.WrapError(err, core.EMISSING,
				`Google Fonts API-key must be set in global configuration or as GOOGLE_API_KEY in environment;
      please refer to https://developers.google.com/fonts/docs/developer_api`)
			return
		}
		values := url.Values{
			"sort": []string{"alpha"},
			"key":  []string{apikey},
		}
		resp, err := http.Get(googleFontsAPI + values.Encode())
		if err != nil {
			tracer().Errorf("Google Fonts API request not OK: %s", err.Error())
			googleFontsLoadError = core.WrapError(err, core.ECONNECTION,
				"could not get fonts-directory from Google font service")
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			tracer().Errorf("Google Fonts API request not OK: %v", resp.Status)
			err := core.Error(resp.StatusCode, "response: %v", resp.Status)
			googleFontsLoadError = core.WrapError(err, core.ECONNECTION,
				"could not get fonts-directory from Google font service")
			return
		}
		dec := json.NewDecoder(resp.Body)
		err = dec.Decode(&googleFontsDirectory)
		if err != nil {
			googleFontsLoadError = core.WrapError(err, core.EINVALID,
				"could not decode fonts-list from Google font service")
		}
	})
	return googleFontsLoadError
}

// FindGoogleFont searches the Google webfont directory for font families
// matching a given pattern, filtered by variants suiting style and weight.
//
// If not already done, the list of fonts will be downloaded from Google.
func FindGoogleFont(pattern string, style xfont.Style, weight xfont.Weight) (
	[]GoogleFontInfo, error) {
	//
	if err := SetupGoogleFontsDirectory(); err != nil {
		return nil, err
	}
	r, err := regexp.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid font name pattern: %s", pattern)
	}
	var found []GoogleFontInfo
	for _, fi := range googleFontsDirectory.Items {
		if !r.MatchString(strings.ToLower(fi.Family)) {
			continue
		}
		for _, v := range fi.Variants {
			if font.MatchStyle(v, style) > font.LowConfidence &&
				font.MatchWeight(v, weight) > font.LowConfidence {
				found = append(found, fi)
				break
			}
		}
	}
	if len(found) == 0 {
		return nil, core.Error(core.EMISSING, "no Google font matches %s", pattern)
	}
	tracer().Debugf("found %d Google font(s) for %s", len(found), pattern)
	return found, nil
}

// CacheGoogleFont downloads a variant of a Google font and stores it in the
// user's cache directory. If the font file is already cached, the download is
// skipped. Returns the path of the local font file.
func CacheGoogleFont(fi GoogleFontInfo, variant string) (string, error) {
	fileurl, ok := fi.Files[variant]
	if !ok {
		return "", core.Error(core.EMISSING, "font %s has no variant %s", fi.Family, variant)
	}
	dir, err := CacheDirPath("fonts")
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%s-%s-%s%s", fi.Family, fi.Version, variant, path.Ext(fileurl))
	filename = strings.ReplaceAll(filename, " ", "_")
	fpath := path.Join(dir, filename)
	if _, err := os.Stat(fpath); err == nil {
		tracer().Debugf("font %s already cached", filename)
		return fpath, nil
	}
	if err := DownloadCachedFile(fpath, fileurl); err != nil {
		return "", core.WrapError(err, core.ECONNECTION,
			"could not download font %s from Google font service", fi.Family)
	}
	return fpath, nil
}

// ---------------------------------------------------------------------------

// ListGoogleFonts produces a listing of available fonts from the Google
// webfont service, with font-family names matching a given pattern.
//
// If not already done, the list of fonts will be downloaded from Google.
func ListGoogleFonts(pattern string) {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	if err := SetupGoogleFontsDirectory(); err != nil {
		tracer().Errorf(core.UserMessage(err))
	} else {
		listGoogleFonts(googleFontsDirectory, pattern)
	}
	tracer().SetTraceLevel(level)
}

func listGoogleFonts(list googleFontsList, pattern string) {
	r, err := regexp.Compile(pattern)
	if err != nil {
		tracer().Errorf("cannot list Google fonts: invalid pattern: %v", err)
		return
	}
	tracer().Infof("%d fonts in list", len(list.Items))
	tracer().Infof("======================================")
	for i, finfo := range list.Items {
		if r.MatchString(finfo.Family) {
			tracer().Infof("[%4d] %-20s: %s", i, finfo.Family, finfo.Version)
			tracer().Infof("       subsets: %v", finfo.Subsets)
			for k, v := range finfo.Files {
				tracer().Infof("       - %-18s: %s", k, v[len(v)-4:])
			}
		}
	}
}
