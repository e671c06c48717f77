package argspec

import (
	"github.com/chriso345/argspec/core"
	"github.com/chriso345/argspec/display"
)

// Option declares one recognized option.
//
// Usage:
//
//	opts := []argspec.Option{
//	    {Name: "count", Markers: []string{"-c", "--count"}, InputCount: 1},
//	    {Name: "verbose", Markers: []string{"-v"}},
//	    {Name: "out", Markers: []string{"-o"}, InputCount: 1, Required: true, Defaults: []string{"a.out"}},
//	}
type Option = core.Option

// Result is the read-only outcome of a successful parse.
type Result = core.Result

// Parser carries the per-call settings: whether unmatched tokens are collected
// as positional arguments, whether markers compare case-insensitively, and an
// optional Logger for tracing.
type Parser = core.Parser

// Logger receives parse tracing when set on a Parser.
type Logger = core.Logger

// Parse matches tokens against opts, allowing positional arguments and
// ignoring case. Use NewParser to change either setting.
//
// Failures are returned as *errors.UnexpectedArgumentError,
// *errors.InsufficientInputsError or *errors.MissingOptionsError from the
// errors subpackage; the Result is nil in that case.
//
// Usage:
//
//	res, err := argspec.Parse(opts, os.Args[1:])
//	if err != nil {
//	    argspec.Report(os.Stderr, err)
//	    os.Exit(2)
//	}
//	n, err := res.Int("count")
var Parse = core.Parse

// NewParser returns a Parser with positional arguments allowed and case ignored.
var NewParser = core.NewParser

// BuildHelp renders a listing of options: name, markers, defaults and description.
var BuildHelp = display.BuildHelp

// PrintHelp writes BuildHelp to a writer.
var PrintHelp = display.PrintHelp

// Report writes a human-readable description of any parse error to a writer.
// Missing required options are listed one per line with their markers.
var Report = display.Report
