package display_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chriso345/argspec/core"
	"github.com/chriso345/argspec/display"
	clierr "github.com/chriso345/argspec/errors"
	"github.com/chriso345/gore/assert"
)

func init() {
	display.SetColor(false)
}

var helpOpts = []core.Option{
	{Name: "count", Description: "How many items", Markers: []string{"-c", "--count"}, InputCount: 1},
	{Name: "verbose", Description: "Enable verbose output", Markers: []string{"-v"}},
	{Name: "size", Description: "Frame size", Markers: []string{"--size"}, InputCount: 2, Required: true, Defaults: []string{"640", "480"}},
}

func TestBuildHelp_ShowsEveryField(t *testing.T) {
	help := display.BuildHelp(helpOpts)

	assert.StringContains(t, help, "Options:")
	assert.StringContains(t, help, "count (-c, --count) <1>")
	assert.StringContains(t, help, "How many items")
	assert.StringContains(t, help, "verbose (-v)")
	assert.StringContains(t, help, "size (--size) <2>")
	assert.StringContains(t, help, "(required)")
	assert.StringContains(t, help, "[default: 640, 480]")
}

func TestBuildHelp_Empty(t *testing.T) {
	assert.Equal(t, display.BuildHelp(nil), "")
}

func TestBuildHelp_Alignment(t *testing.T) {
	help := display.BuildHelp(helpOpts)

	lines := strings.Split(help, "\n")
	hIndex := strings.Index(lines[1], "How")
	eIndex := strings.Index(lines[2], "Enable")
	assert.True(t, hIndex > 0)
	assert.Equal(t, hIndex, eIndex)
}

func TestPrintHelp(t *testing.T) {
	var buf bytes.Buffer
	assert.Nil(t, display.PrintHelp(&buf, helpOpts))
	assert.Equal(t, buf.String(), display.BuildHelp(helpOpts))
}

func TestBuildMissing(t *testing.T) {
	err := &clierr.MissingOptionsError{Missing: []clierr.MissingOption{
		{Name: "out", Markers: []string{"-o", "--out"}},
		{Name: "in", Markers: []string{"-i"}},
	}}

	out := display.BuildMissing(err)
	assert.StringContains(t, out, "The following options were expected:")
	assert.StringContains(t, out, "    out (-o, --out)\n")
	assert.StringContains(t, out, "    in (-i)\n")
	assert.Equal(t, display.BuildMissing(nil), "")
}

func TestReport_Missing(t *testing.T) {
	_, err := core.Parse([]core.Option{{Name: "out", Markers: []string{"-o"}, InputCount: 1, Required: true}}, nil)

	var buf bytes.Buffer
	assert.Nil(t, display.Report(&buf, err))
	assert.StringContains(t, buf.String(), "out (-o)")
}

func TestReport_ScanError(t *testing.T) {
	_, err := core.Parse([]core.Option{{Name: "count", Markers: []string{"-c"}, InputCount: 1}}, []string{"-c"})

	var buf bytes.Buffer
	assert.Nil(t, display.Report(&buf, err))
	assert.StringContains(t, buf.String(), "error: -c expecting 1 input(s), got 0")
}

func TestReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	assert.Nil(t, display.Report(&buf, nil))
	assert.Equal(t, buf.Len(), 0)
}

func TestBuildVersion(t *testing.T) {
	assert.Equal(t, display.BuildVersion("argspec", "1.2.3"), "argspec v1.2.3")
	assert.Equal(t, display.BuildVersion("argspec", "v0.4.0"), "argspec v0.4.0")
	assert.Equal(t, display.BuildVersion("", "2.0.0"), "v2.0.0")
}
