// Package specfile loads option declarations from YAML or TOML documents.
//
// A document holds a single "options" list; its order is the matching
// precedence used by core.Parse.
//
//	options:
//	  - name: count
//	    description: How many
//	    markers: ["-c", "--count"]
//	    inputs: 1
//	    required: true
//	    defaults: ["1"]
package specfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/chriso345/argspec/core"
	"github.com/chriso345/argspec/errors"
)

// Format identifies a spec document encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

type document struct {
	Options []entry `yaml:"options" toml:"options"`
}

type entry struct {
	Name        string   `yaml:"name" toml:"name"`
	Description string   `yaml:"description" toml:"description"`
	Markers     []string `yaml:"markers" toml:"markers"`
	Inputs      int      `yaml:"inputs" toml:"inputs"`
	Required    bool     `yaml:"required" toml:"required"`
	Defaults    []string `yaml:"defaults" toml:"defaults"`
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("unsupported spec format %q", filepath.Ext(path))
	}
}

// Load reads the options declared in the file at path.
func Load(path string) ([]core.Option, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, errors.NewSpecFile(path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewSpecFile(path, err)
	}
	opts, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, errors.NewSpecFile(path, err)
	}
	return opts, nil
}

// Decode reads options from r in the given format.
func Decode(r io.Reader, format Format) ([]core.Option, error) {
	var doc document
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown key %s", undecoded[0])
		}
	default:
		return nil, fmt.Errorf("unsupported spec format %q", format)
	}

	opts := make([]core.Option, 0, len(doc.Options))
	for i, e := range doc.Options {
		if e.Name == "" {
			return nil, fmt.Errorf("option %d: name is required", i)
		}
		opts = append(opts, core.Option{
			Name:        e.Name,
			Description: e.Description,
			Markers:     e.Markers,
			InputCount:  e.Inputs,
			Required:    e.Required,
			Defaults:    e.Defaults,
		})
	}
	return opts, nil
}
