package log

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	writer io.Writer
	closer io.Closer

	Name  string
	Level LogLevel

	TimeFormat string
	NoColor    bool
	JSON       bool
}

// Rotation bounds the size and age of a log file.
type Rotation struct {
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

var DefaultRotation = Rotation{
	MaxSize:    16,
	MaxBackups: 3,
	MaxAge:     7,
}

type logEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Service   string `json:"service,omitempty"`
	Message   string `json:"message"`
}

// NewLogger writes to out. When file is set, entries are also appended to a
// rotating log file and terminal colors are suppressed for that copy.
func NewLogger(name string, level LogLevel, out io.Writer, file string, rotation Rotation) *Logger {
	l := &Logger{
		Name:       name,
		Level:      level,
		TimeFormat: "2006-01-02 15:04:05",
	}

	var writers []io.Writer
	if out != nil {
		writers = append(writers, out)
	}
	if file != "" {
		fw := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    rotation.MaxSize,
			MaxBackups: rotation.MaxBackups,
			MaxAge:     rotation.MaxAge,
			Compress:   rotation.Compress,
		}
		writers = append(writers, fw)
		l.closer = fw
		l.NoColor = true
	}
	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}
	l.writer = io.MultiWriter(writers...)

	return l
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func (l *Logger) log(level LogLevel, msg string, args ...any) {
	if level < l.Level {
		return
	}

	timestamp := time.Now().Format(l.TimeFormat)
	formattedMsg := fmt.Sprintf(msg, args...)

	if l.JSON {
		entry := logEntry{
			Timestamp: timestamp,
			Level:     level.String(),
			Service:   l.Name,
			Message:   formattedMsg,
		}
		jsonBytes, _ := json.Marshal(entry)
		fmt.Fprintf(l.writer, "%s\n", jsonBytes)
		return
	}

	prefix := fmt.Sprintf("[%s] %-5s", timestamp, level)
	if l.Name != "" {
		prefix = fmt.Sprintf("%s [%s]", prefix, l.Name)
	}
	if !l.NoColor {
		prefix = color.New(level.Color()).Sprint(prefix)
	}
	fmt.Fprintf(l.writer, "%s %s\n", prefix, formattedMsg)
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(Debug, msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(Info, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(Warn, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(Error, msg, args...)
}

// Named returns a child logger sharing the same writer.
func (l *Logger) Named(name string) *Logger {
	child := *l
	child.closer = nil
	if l.Name != "" {
		child.Name = fmt.Sprintf("%s/%s", l.Name, name)
	} else {
		child.Name = name
	}
	return &child
}
