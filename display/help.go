package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/chriso345/argspec/core"
	"github.com/chriso345/argspec/internal/common"
)

// BuildHelp renders a listing of opts: each option's name and markers, its
// default values if any, and its description. Columns are aligned.
func BuildHelp(opts []core.Option) string {
	if len(opts) == 0 {
		return ""
	}

	var builder strings.Builder
	builder.WriteString(ansiHelp("Options:", ansiBold, ansiUnderline) + "\n")
	builder.WriteString(optionsHelp(opts))
	return builder.String()
}

// PrintHelp writes BuildHelp(opts) to w.
func PrintHelp(w io.Writer, opts []core.Option) error {
	_, err := io.WriteString(w, BuildHelp(opts))
	return err
}

// optionsHelp generates one aligned line per option.
func optionsHelp(opts []core.Option) string {
	var lines []string
	maxLen := 0

	for _, o := range opts {
		head := "  " + o.Name
		if len(o.Markers) > 0 {
			head += " (" + common.JoinMarkers(o.Markers) + ")"
		}
		if o.InputCount > 0 {
			head += fmt.Sprintf(" <%d>", o.InputCount)
		}
		if len(head) > maxLen {
			maxLen = len(head)
		}

		desc := o.Description
		if o.Required {
			desc = strings.TrimSpace(desc + " " + ansiHelp("(required)", ansiYellow))
		}
		if len(o.Defaults) > 0 {
			desc = strings.TrimSpace(desc + " " + ansiHelp("[default: "+strings.Join(o.Defaults, ", ")+"]", ansiCyan))
		}
		lines = append(lines, fmt.Sprintf("%s||%s", head, desc))
	}

	// Format with aligned descriptions
	var builder strings.Builder
	for _, line := range lines {
		parts := strings.SplitN(line, "||", 2)
		padding := strings.Repeat(" ", maxLen-len(parts[0]))
		builder.WriteString(strings.TrimRight(fmt.Sprintf("%s%s  %s", parts[0], padding, parts[1]), " ") + "\n")
	}
	return builder.String()
}
