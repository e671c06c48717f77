package specfile

import (
	stderrs "errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/chriso345/argspec/core"
	clierr "github.com/chriso345/argspec/errors"
	"github.com/chriso345/gore/assert"
	"github.com/chriso345/gore/vital"
	"github.com/google/go-cmp/cmp"
)

var renderOpts = []core.Option{
	{Name: "output", Description: "Where to write the rendered file", Markers: []string{"-o", "--output"}, InputCount: 1, Required: true},
	{Name: "size", Description: "Frame width and height", Markers: []string{"--size"}, InputCount: 2, Required: true, Defaults: []string{"640", "480"}},
	{Name: "verbose", Description: "Enable verbose output", Markers: []string{"-v", "--verbose"}},
}

func TestLoad_YAML(t *testing.T) {
	opts, err := Load("testdata/render.yaml")
	vital.Nil(t, err)
	if diff := cmp.Diff(renderOpts, opts); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_TOML(t *testing.T) {
	opts, err := Load("testdata/render.toml")
	vital.Nil(t, err)
	if diff := cmp.Diff(renderOpts, opts); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_ParsesWithLoadedOptions(t *testing.T) {
	opts, err := Load("testdata/render.yaml")
	vital.Nil(t, err)

	res, err := core.Parse(opts, []string{"--OUTPUT", "frame.png", "-v"})
	vital.Nil(t, err)
	assert.Equal(t, res.StringOr("output", ""), "frame.png")
	assert.True(t, res.HasFlag("verbose"))
	w, err := res.Int("size")
	assert.Nil(t, err)
	assert.Equal(t, w, 640)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/absent.yaml")

	var specErr *clierr.SpecFileError
	if !stderrs.As(err, &specErr) {
		t.Fatalf("expected SpecFileError, got %T: %v", err, err)
	}
	assert.Equal(t, specErr.Path, "testdata/absent.yaml")
	assert.True(t, stderrs.Is(err, fs.ErrNotExist))
}

func TestLoad_UnknownExtension(t *testing.T) {
	_, err := Load("testdata/render.json")
	assert.NotNil(t, err)
	assert.StringContains(t, err.Error(), `unsupported spec format ".json"`)
}

func TestDecode_RejectsUnknownYAMLKey(t *testing.T) {
	_, err := Decode(strings.NewReader("options:\n  - name: a\n    arity: 2\n"), YAML)
	assert.NotNil(t, err)
	assert.StringContains(t, err.Error(), "decode yaml")
}

func TestDecode_RejectsUnknownTOMLKey(t *testing.T) {
	_, err := Decode(strings.NewReader("[[options]]\nname = \"a\"\narity = 2\n"), TOML)
	assert.NotNil(t, err)
	assert.StringContains(t, err.Error(), "unknown key")
}

func TestDecode_RequiresName(t *testing.T) {
	_, err := Decode(strings.NewReader("options:\n  - markers: [\"-x\"]\n"), YAML)
	assert.NotNil(t, err)
	assert.StringContains(t, err.Error(), "option 0: name is required")
}

func TestDecode_EmptyDocument(t *testing.T) {
	opts, err := Decode(strings.NewReader(""), YAML)
	vital.Nil(t, err)
	assert.Equal(t, len(opts), 0)
}

func TestFormatOf(t *testing.T) {
	f, err := FormatOf("a/b/spec.YML")
	assert.Nil(t, err)
	assert.Equal(t, f, YAML)

	f, err = FormatOf("spec.toml")
	assert.Nil(t, err)
	assert.Equal(t, f, TOML)
}
