// fontrender generates font bitmap tables that can be used to render text by
// copying the needed character bitmaps, e.g. into a framebuffer.
//
// Usage:
//
//	$ fontrender [ascii-from] [ascii-to] [c-type] [array-name] [[font-name] [font-size ..] ..]
//
// Example:
//
//	$ fontrender 33 127 uint8_t font_bitmaps Arial 12 18 Consolas 32
//
// generates Arial bitmaps in sizes 12 and 18 and Consolas bitmaps in size 32
// for ascii characters 33 to 127 (decimal). The table is written to stdout
// as a nested C array-initializer; diagnostics go to stderr.
//
// Font names are looked up among the installed system fonts (optionally via
// fontconfig, see the -fontconfig flag) and on the Google webfont service.
// Names that cannot be resolved are substituted with an embedded fallback
// font, with a warning.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/irajkovic/font-renderer/core"
	"github.com/irajkovic/font-renderer/engine/raster"
	"github.com/irajkovic/font-renderer/engine/table"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'fontrender.cli'.
func tracer() tracing.Trace {
	return tracing.Select("fontrender.cli")
}

// all trace keys of this application
var traceKeys = []string{
	"fontrender.cli",
	"fontrender.fonts",
	"fontrender.resources",
	"fontrender.raster",
	"fontrender.table",
}

func main() {
	os.Exit(run())
}

func run() int {
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	fclist := flag.String("fontconfig", "", "Path of the 'fc-list' binary, for font lookup via fontconfig")
	flag.Parse()

	// set up logging and configuration
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"app-key":         "fontrender",
		"fontconfig":      *fclist,
	}
	for _, key := range traceKeys {
		conf["trace."+key] = *tlevel
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintln(os.Stderr, "error configuring tracing")
		return core.EINTERNAL
	}
	tracing.SetTraceSelector(trace2go.Selector())
	gconf.Initialize(conf)

	job, err := parseJob(flag.Args())
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		usage()
		return exitCode(err)
	}
	if len(job.Requests) == 0 {
		tracer().Infof("no font requests given, table will be empty")
	}

	tbl, err := table.Build(raster.NewEngine(), job.ElementType, job.TableName,
		job.Range, job.Requests)
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		return exitCode(err)
	}
	if _, err := tbl.WriteTo(os.Stdout); err != nil {
		tracer().Errorf("cannot write table: %v", err)
		return core.EINTERNAL
	}
	return 0
}

func usage() {
	fmt.Fprintln(os.Stderr,
		"Usage: fontrender [ascii-from] [ascii-to] [c-type] [array-name] [[font-name] [font-size ..] ..]")
}

func exitCode(err error) int {
	if c := core.Code(err); c != core.NOERROR {
		return c
	}
	return 1
}
