package main

import (
	"strconv"

	"github.com/irajkovic/font-renderer/core"
	"github.com/irajkovic/font-renderer/engine/table"
)

// Job is a fully parsed command line: the character range, the emitted
// array's element type and name, and the font requests in input order.
type Job struct {
	Range       table.CharRange
	ElementType string
	TableName   string
	Requests    []table.Request
}

// parseJob interprets the positional arguments:
//
//	<from> <to> <element-type> <table-name> [<font-name> <size>...]...
func parseJob(args []string) (Job, error) {
	job := Job{}
	if len(args) < 4 {
		return job, core.Error(core.EINVALID, "too few arguments")
	}
	from, err := strconv.Atoi(args[0])
	if err != nil {
		return job, core.Error(core.EINVALID, "character code not numeric: %s", args[0])
	}
	to, err := strconv.Atoi(args[1])
	if err != nil {
		return job, core.Error(core.EINVALID, "character code not numeric: %s", args[1])
	}
	if job.Range, err = table.NewCharRange(from, to); err != nil {
		return job, err
	}
	job.ElementType = args[2]
	job.TableName = args[3]
	job.Requests = scanFontRequests(args[4:])
	return job, nil
}

// Scanner states. Tokens after the table name form runs of a font name
// followed by one or more sizes; a name carries over until the next name.
type scanState int

const (
	expectFontName   scanState = iota // no font name seen yet
	expectSizeOrName                  // sizes apply to the current font name
)

// scanFontRequests turns the trailing tokens into font requests. Each token
// is classified up-front: numeric (and positive) means a size for the
// current font, anything else starts a new font name. A size arriving before
// any font name has nothing to apply to and is skipped.
func scanFontRequests(tokens []string) []table.Request {
	var requests []table.Request
	state := expectFontName
	current := ""
	for _, tok := range tokens {
		size, numeric := classifyToken(tok)
		switch state {
		case expectFontName:
			if numeric {
				tracer().Infof("ignoring size %d: no font name given yet", size)
				continue
			}
			current = tok
			state = expectSizeOrName
		case expectSizeOrName:
			if numeric {
				requests = append(requests, table.Request{Name: current, Size: size})
			} else {
				current = tok
			}
		}
	}
	return requests
}

// classifyToken decides whether a token is a point size. Sizes are positive
// integers; everything else, including "0" and negative numbers, is treated
// as (the start of) a font name.
func classifyToken(tok string) (int, bool) {
	n, err := strconv.Atoi(tok)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
