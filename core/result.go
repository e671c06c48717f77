package core

import (
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/chriso345/argspec/errors"
)

// Result is the outcome of a successful parse. It is read-only; every
// accessor returns copies.
type Result struct {
	flags      map[string]struct{}
	positional []string
	values     map[string][]string
}

// newResult partitions recorded matches into flags (no values) and values.
func newResult(recorded map[string][]string, positional []string) *Result {
	r := &Result{
		flags:      map[string]struct{}{},
		positional: positional,
		values:     map[string][]string{},
	}
	for name, vals := range recorded {
		if len(vals) == 0 {
			r.flags[name] = struct{}{}
			continue
		}
		r.values[name] = vals
	}
	return r
}

// HasFlag reports whether name matched as a zero-input option.
func (r *Result) HasFlag(name string) bool {
	_, ok := r.flags[name]
	return ok
}

// Has reports whether name was recorded at all, as a flag or with values.
func (r *Result) Has(name string) bool {
	_, ok := r.values[name]
	return ok || r.HasFlag(name)
}

// Flags returns the names of all matched flags, sorted.
func (r *Result) Flags() []string {
	return slices.Sorted(maps.Keys(r.flags))
}

// Positional returns the unmatched tokens in their original order.
func (r *Result) Positional() []string {
	return slices.Clone(r.positional)
}

// Values returns a copy of the name to values mapping.
func (r *Result) Values() map[string][]string {
	out := make(map[string][]string, len(r.values))
	for k, v := range r.values {
		out[k] = slices.Clone(v)
	}
	return out
}

// String returns the first value recorded for name.
func (r *Result) String(name string) (string, bool) {
	vals, ok := r.values[name]
	if !ok {
		return "", false
	}
	return vals[0], true
}

// StringOr returns the first value recorded for name, or fallback.
func (r *Result) StringOr(name, fallback string) string {
	if v, ok := r.String(name); ok {
		return v
	}
	return fallback
}

// Strings returns every value recorded for name.
func (r *Result) Strings(name string) ([]string, bool) {
	vals, ok := r.values[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(vals), true
}

// Bool parses the first value for name with strconv.ParseBool.
func (r *Result) Bool(name string) (bool, error) {
	return convert(r, name, "bool", strconv.ParseBool)
}

// Int parses the first value for name as a base-10 int.
func (r *Result) Int(name string) (int, error) {
	return convert(r, name, "int", strconv.Atoi)
}

// Float parses the first value for name as a float64.
func (r *Result) Float(name string) (float64, error) {
	return convert(r, name, "float64", func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// Duration parses the first value for name with time.ParseDuration.
func (r *Result) Duration(name string) (time.Duration, error) {
	return convert(r, name, "duration", time.ParseDuration)
}

func convert[T any](r *Result, name, typ string, parse func(string) (T, error)) (T, error) {
	var zero T
	raw, ok := r.String(name)
	if !ok {
		return zero, errors.NewMissingValue(name)
	}
	v, err := parse(raw)
	if err != nil {
		return zero, errors.NewConversion(name, raw, typ, err)
	}
	return v, nil
}
