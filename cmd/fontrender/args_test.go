package main

import (
	"testing"

	"github.com/irajkovic/font-renderer/core"
	"github.com/irajkovic/font-renderer/engine/table"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseJob(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrender.cli")
	defer teardown()
	//
	job, err := parseJob([]string{"33", "127", "uint8_t", "font_bitmaps",
		"Arial", "12", "18", "Consolas", "32"})
	if err != nil {
		t.Fatal(err)
	}
	if job.Range.From != 33 || job.Range.To != 127 {
		t.Errorf("expected range 33…127, got %d…%d", job.Range.From, job.Range.To)
	}
	if job.ElementType != "uint8_t" || job.TableName != "font_bitmaps" {
		t.Errorf("unexpected table header: %s %s", job.ElementType, job.TableName)
	}
	want := []table.Request{
		{Name: "Arial", Size: 12},
		{Name: "Arial", Size: 18},
		{Name: "Consolas", Size: 32},
	}
	if len(job.Requests) != len(want) {
		t.Fatalf("expected %d font requests, got %d", len(want), len(job.Requests))
	}
	for i, req := range want {
		if job.Requests[i] != req {
			t.Errorf("request %d: expected %v, got %v", i, req, job.Requests[i])
		}
	}
}

func TestParseJobTooFewArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrender.cli")
	defer teardown()
	//
	_, err := parseJob([]string{"33", "127", "uint8_t"})
	if err == nil {
		t.Fatal("expected missing table name to be rejected")
	}
	if core.Code(err) != core.EINVALID {
		t.Errorf("expected error code EINVALID, got %d", core.Code(err))
	}
}

func TestParseJobInvertedRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrender.cli")
	defer teardown()
	//
	_, err := parseJob([]string{"127", "33", "uint8_t", "t", "Arial", "12"})
	if err == nil {
		t.Fatal("expected inverted range to be rejected before any output")
	}
}

func TestScanMalformedSizeStartsNewFontName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrender.cli")
	defer teardown()
	//
	// "12x" is not numeric, so it is re-classified as a font name
	requests := scanFontRequests([]string{"Arial", "12x", "14"})
	if len(requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(requests))
	}
	if requests[0] != (table.Request{Name: "12x", Size: 14}) {
		t.Errorf("expected malformed size to become the font name, got %v", requests[0])
	}
}

func TestScanSizeBeforeFontNameIsSkipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrender.cli")
	defer teardown()
	//
	requests := scanFontRequests([]string{"12", "Arial", "14"})
	if len(requests) != 1 || requests[0] != (table.Request{Name: "Arial", Size: 14}) {
		t.Errorf("expected leading size to be skipped, got %v", requests)
	}
}

func TestScanFontWithoutSizeYieldsNoRequest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrender.cli")
	defer teardown()
	//
	if requests := scanFontRequests([]string{"Arial"}); len(requests) != 0 {
		t.Errorf("expected no requests without a size, got %v", requests)
	}
	if requests := scanFontRequests(nil); len(requests) != 0 {
		t.Errorf("expected no requests for empty input, got %v", requests)
	}
}

func TestScanRejectsNonPositiveSizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrender.cli")
	defer teardown()
	//
	// "0" and "-5" are not valid sizes, so they open new font names
	requests := scanFontRequests([]string{"Arial", "0", "-5", "16"})
	if len(requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(requests))
	}
	if requests[0].Size != 16 {
		t.Errorf("expected size 16, got %d", requests[0].Size)
	}
	if requests[0].Name != "-5" {
		t.Errorf("expected last non-numeric token to be the font name, got %s", requests[0].Name)
	}
}
