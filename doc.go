// Package argspec declares command-line options as plain data and matches them
// against a flat list of tokens.
//
// Each Option names its markers (the literal tokens that select it), how many
// following tokens it consumes, whether it is required, and default values
// for when a required option is absent. Parse scans the tokens once, left to
// right, and returns a Result holding flags, positional arguments and option
// values, or a typed error from the errors package.
//
// Help listings and missing-option diagnostics are rendered separately by
// BuildHelp, PrintHelp and Report, so parsing itself never writes output.
package argspec
