// Command argspec parses a token list against option declarations read from
// a YAML or TOML file and prints the structured result.
//
//	argspec -s options.yaml -- -c 5 input.txt
//
// Its own options are declared and parsed with the same library.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chriso345/argspec/core"
	"github.com/chriso345/argspec/display"
	"github.com/chriso345/argspec/internal/common"
	"github.com/chriso345/argspec/internal/log"
	"github.com/chriso345/argspec/specfile"
)

const (
	name    = "argspec"
	version = ""

	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var cliOptions = []core.Option{
	{Name: "spec", Description: "Option declaration file (.yaml, .yml or .toml)", Markers: []string{"-s", "--spec"}, InputCount: 1, Required: true},
	{Name: "strict", Description: "Reject tokens that match no option", Markers: []string{"--strict"}},
	{Name: "case-sensitive", Description: "Compare markers exactly", Markers: []string{"--case-sensitive"}},
	{Name: "json", Description: "Print the result as JSON instead of YAML", Markers: []string{"--json"}},
	{Name: "log-level", Description: "Log level: debug, info, warn or error", Markers: []string{"--log-level"}, InputCount: 1, Required: true, Defaults: []string{"warn"}},
	{Name: "log-file", Description: "Also write logs to this rotating file", Markers: []string{"--log-file"}, InputCount: 1},
	{Name: "log-json", Description: "Write logs as JSON lines", Markers: []string{"--log-json"}},
	{Name: "help", Description: "Show this help message", Markers: []string{"-h", "--help"}},
	{Name: "version", Description: "Show version information", Markers: []string{"--version"}},
}

type output struct {
	Flags      []string            `json:"flags" yaml:"flags"`
	Positional []string            `json:"positional" yaml:"positional"`
	Values     map[string][]string `json:"values" yaml:"values"`
}

var osExit = os.Exit // Mockable for testing

func main() {
	osExit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns its exit code.
func run(args []string, stdout, stderr io.Writer) int {
	own, tokens := args, []string(nil)
	if i := common.ArgsIndexOf(args, "--"); i >= 0 {
		own, tokens = args[:i], args[i+1:]
	}

	self := &core.Parser{IgnoreCase: true}
	cli, err := self.Parse(cliOptions, own)
	if err != nil {
		if requested(own, "help") {
			_ = display.PrintHelp(stdout, cliOptions)
			return exitOK
		}
		if requested(own, "version") {
			fmt.Fprintln(stdout, display.BuildVersion(name, version))
			return exitOK
		}
		_ = display.Report(stderr, err)
		return exitUsage
	}
	if cli.HasFlag("help") {
		_ = display.PrintHelp(stdout, cliOptions)
		return exitOK
	}
	if cli.HasFlag("version") {
		fmt.Fprintln(stdout, display.BuildVersion(name, version))
		return exitOK
	}

	logger, err := newLogger(cli, stderr)
	if err != nil {
		_ = display.Report(stderr, err)
		return exitUsage
	}
	defer logger.Close()

	path, _ := cli.String("spec")
	opts, err := specfile.Load(path)
	if err != nil {
		logger.Error("%v", err)
		return exitFailure
	}
	logger.Info("loaded %d option(s) from %s", len(opts), path)

	parser := core.NewParser()
	parser.AllowPositional = !cli.HasFlag("strict")
	parser.IgnoreCase = !cli.HasFlag("case-sensitive")
	parser.Logger = logger.Named("parse")

	res, err := parser.Parse(opts, tokens)
	if err != nil {
		_ = display.Report(stderr, err)
		return exitFailure
	}

	if err := write(stdout, res, cli.HasFlag("json")); err != nil {
		logger.Error("write result: %v", err)
		return exitFailure
	}
	return exitOK
}

func newLogger(cli *core.Result, stderr io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(cli.StringOr("log-level", "warn"))
	if err != nil {
		return nil, err
	}
	logger := log.NewLogger(name, level, stderr, cli.StringOr("log-file", ""), log.DefaultRotation)
	logger.JSON = cli.HasFlag("log-json")
	return logger, nil
}

// requested reports whether any token is a marker of the named option, so
// help and version still work when the rest of the command line is invalid.
func requested(tokens []string, optName string) bool {
	for _, o := range cliOptions {
		if o.Name != optName {
			continue
		}
		for _, tok := range tokens {
			if o.Matches(tok, true) {
				return true
			}
		}
	}
	return false
}

func write(w io.Writer, res *core.Result, asJSON bool) error {
	out := output{
		Flags:      res.Flags(),
		Positional: res.Positional(),
		Values:     res.Values(),
	}
	if out.Flags == nil {
		out.Flags = []string{}
	}
	if out.Positional == nil {
		out.Positional = []string{}
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}
