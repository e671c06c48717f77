package log

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type LogLevel int

const (
	Debug LogLevel = iota
	Info
	Warn
	Error
)

func (l LogLevel) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Color returns the attribute used to paint a level's prefix.
func (l LogLevel) Color() color.Attribute {
	switch l {
	case Debug:
		return color.FgBlue
	case Info:
		return color.FgGreen
	case Warn:
		return color.FgYellow
	case Error:
		return color.FgRed
	default:
		return color.Reset
	}
}

// ParseLevel maps a level name, in any case, to its LogLevel.
func ParseLevel(level string) (LogLevel, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return Debug, nil
	case "INFO":
		return Info, nil
	case "WARN":
		return Warn, nil
	case "ERROR":
		return Error, nil
	default:
		return Info, fmt.Errorf("invalid log level %q", level)
	}
}
