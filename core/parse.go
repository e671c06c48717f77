package core

import (
	"github.com/chriso345/argspec/errors"
)

// Logger receives parse tracing. *log.Logger from internal/log satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
}

// Parser matches option markers against a flat token list.
//
// The zero value disallows positional arguments and compares markers exactly;
// use NewParser for the usual defaults.
type Parser struct {
	// AllowPositional collects unmatched tokens instead of failing on them.
	AllowPositional bool
	// IgnoreCase lowercases both marker and token before comparing.
	IgnoreCase bool
	// Logger, if set, traces every scan decision.
	Logger Logger
}

// NewParser returns a Parser that allows positional arguments and ignores case.
func NewParser() *Parser {
	return &Parser{AllowPositional: true, IgnoreCase: true}
}

// Parse scans tokens with the default Parser.
func Parse(opts []Option, tokens []string) (*Result, error) {
	return NewParser().Parse(opts, tokens)
}

// Parse scans tokens left to right against opts and returns the structured
// result.
//
// The returned error is *errors.UnexpectedArgumentError or
// *errors.InsufficientInputsError when the scan aborts, and
// *errors.MissingOptionsError when required options are still absent after
// defaults are applied. The Result is nil whenever the error is not.
func (p *Parser) Parse(opts []Option, tokens []string) (*Result, error) {
	recorded := map[string][]string{}
	var positional []string

	for pos := 0; pos < len(tokens); pos++ {
		token := tokens[pos]
		opt, ok := p.match(opts, token)
		if !ok {
			if !p.AllowPositional {
				return nil, errors.NewUnexpectedArgument(token, pos, suggestMarker(token, opts))
			}
			p.debug("positional %q at %d", token, pos)
			positional = append(positional, token)
			continue
		}

		k := opt.arity()
		// Values occupy pos+1 .. pos+k, so the last one must still be in range.
		if pos+k >= len(tokens) {
			return nil, errors.NewInsufficientInputs(opt.Name, token, k, len(tokens)-pos-1)
		}

		values := make([]string, k)
		copy(values, tokens[pos+1:pos+1+k])
		if _, seen := recorded[opt.Name]; seen {
			p.debug("option %s repeated at %d, replacing earlier values", opt.Name, pos)
		}
		recorded[opt.Name] = values
		p.debug("matched %s via %q with %d value(s)", opt.Name, token, k)

		pos += k
	}

	for _, o := range opts {
		if _, ok := recorded[o.Name]; ok {
			continue
		}
		if o.Required && o.HasUsableDefault() {
			recorded[o.Name] = append([]string{}, o.Defaults...)
			p.debug("filled %s from defaults", o.Name)
		}
	}

	var missing []errors.MissingOption
	for _, o := range opts {
		if !o.Required {
			continue
		}
		if _, ok := recorded[o.Name]; ok {
			continue
		}
		missing = append(missing, errors.MissingOption{
			Name:    o.Name,
			Markers: append([]string{}, o.Markers...),
		})
	}
	if len(missing) > 0 {
		return nil, errors.NewMissingOptions(missing)
	}

	return newResult(recorded, positional), nil
}

// match returns the first option in declaration order with a marker equal to token.
func (p *Parser) match(opts []Option, token string) (Option, bool) {
	for _, o := range opts {
		if o.Matches(token, p.IgnoreCase) {
			return o, true
		}
	}
	return Option{}, false
}

func (p *Parser) debug(msg string, args ...any) {
	if p.Logger != nil {
		p.Logger.Debug(msg, args...)
	}
}
