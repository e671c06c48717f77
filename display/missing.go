package display

import (
	stderrs "errors"
	"fmt"
	"io"
	"strings"

	"github.com/chriso345/argspec/errors"
	"github.com/chriso345/argspec/internal/common"
)

// BuildMissing renders the options listed in err, one per line with their markers.
func BuildMissing(err *errors.MissingOptionsError) string {
	if err == nil || len(err.Missing) == 0 {
		return ""
	}

	var builder strings.Builder
	builder.WriteString(ansiHelp("The following options were expected:", ansiBold) + "\n")
	for _, m := range err.Missing {
		builder.WriteString(fmt.Sprintf("    %s (%s)\n", m.Name, common.JoinMarkers(m.Markers)))
	}
	return builder.String()
}

// PrintMissing writes BuildMissing(err) to w.
func PrintMissing(w io.Writer, err *errors.MissingOptionsError) error {
	_, werr := io.WriteString(w, BuildMissing(err))
	return werr
}

// Report writes a human-readable description of a parse failure to w. Missing
// options get the full listing; any other error is a single line.
func Report(w io.Writer, err error) error {
	if err == nil {
		return nil
	}
	var missing *errors.MissingOptionsError
	if stderrs.As(err, &missing) {
		return PrintMissing(w, missing)
	}
	_, werr := fmt.Fprintf(w, "%s %v\n", ansiHelp("error:", ansiBold, ansiRed), err)
	return werr
}
