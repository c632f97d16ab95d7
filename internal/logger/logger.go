package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "INFO"
}

type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Category  string `json:"category"`
	Message   string `json:"message"`
	File      string `json:"file,omitempty"`
	Line      int    `json:"line,omitempty"`
}

// Options configures where a Logger writes. An empty Dir disables the
// JSON file sink; a nil Console writes to stdout.
type Options struct {
	Dir      string
	Name     string
	Console  io.Writer
	MinLevel LogLevel
}

type Logger struct {
	mu       sync.Mutex
	console  io.Writer
	logFile  *os.File
	minLevel LogLevel
	exit     func(int)
}

func NewLogger(opts Options) (*Logger, error) {
	l := &Logger{
		console:  opts.Console,
		minLevel: opts.MinLevel,
		exit:     os.Exit,
	}
	if l.console == nil {
		l.console = color.Output
	}

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		name := opts.Name
		if name == "" {
			name = "museum-api"
		}
		fileName := filepath.Join(opts.Dir, fmt.Sprintf("%s-%s.log", name, time.Now().Format("2006-01-02")))
		f, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.logFile = f
		l.Info("LOGGER", fmt.Sprintf("Log file: %s", fileName))
	}

	return l, nil
}

// Discard returns a logger that drops everything, for tests.
func Discard() *Logger {
	return &Logger{console: io.Discard, minLevel: FATAL + 1, exit: os.Exit}
}

func (l *Logger) log(level LogLevel, category, message string) {
	if level < l.minLevel {
		return
	}

	_, file, line, ok := runtime.Caller(2)
	if ok {
		file = filepath.Base(file)
	}

	entry := LogEntry{
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
		Level:     level.String(),
		Category:  strings.ToUpper(category),
		Message:   message,
		File:      file,
		Line:      line,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprint(l.console, formatTerminal(entry))
	if l.logFile != nil {
		if b, err := json.Marshal(entry); err == nil {
			l.logFile.Write(append(b, '\n'))
		}
	}
}

func levelColors(level string) (*color.Color, *color.Color) {
	switch level {
	case "DEBUG":
		return color.New(color.FgCyan), color.New(color.FgCyan, color.Bold)
	case "INFO":
		return color.New(color.FgGreen), color.New(color.FgGreen, color.Bold)
	case "WARN":
		return color.New(color.FgYellow), color.New(color.FgYellow, color.Bold)
	case "ERROR":
		return color.New(color.FgRed), color.New(color.FgRed, color.Bold)
	case "FATAL":
		return color.New(color.FgRed, color.Bold), color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgWhite), color.New(color.FgWhite, color.Bold)
	}
}

func formatTerminal(entry LogEntry) string {
	levelColor, categoryColor := levelColors(entry.Level)

	out := fmt.Sprintf("%s %s %s %s",
		color.New(color.FgBlue).Sprint(entry.Timestamp[11:19]),
		levelColor.Sprintf("%-5s", entry.Level),
		categoryColor.Sprintf("[%-10s]", entry.Category),
		entry.Message,
	)
	if entry.File != "" && entry.Line > 0 {
		out += color.New(color.FgMagenta).Sprintf(" (%s:%d)", entry.File, entry.Line)
	}
	return out + "\n"
}

func (l *Logger) Debug(category, message string) {
	l.log(DEBUG, category, message)
}

func (l *Logger) Info(category, message string) {
	l.log(INFO, category, message)
}

func (l *Logger) Warn(category, message string) {
	l.log(WARN, category, message)
}

func (l *Logger) Error(category, message string) {
	l.log(ERROR, category, message)
}

func (l *Logger) Fatal(category, message string) {
	l.log(FATAL, category, message)
	l.Close()
	l.exit(1)
}

func (l *Logger) LogAPI(method, path string, status int, duration time.Duration) {
	level := INFO
	if status >= http.StatusInternalServerError {
		level = ERROR
	}
	l.log(level, "API", fmt.Sprintf("%s %s - %d (%s)", method, path, status, duration.Round(time.Microsecond)))
}

func (l *Logger) LogDatabase(operation, table, message string) {
	l.log(INFO, "DATABASE", fmt.Sprintf("[%s] %s - %s", operation, table, message))
}

func (l *Logger) LogSecurity(event, message string) {
	l.log(WARN, "SECURITY", fmt.Sprintf("[%s] %s", event, message))
}

func (l *Logger) LogKafka(action, topic, message string) {
	l.log(INFO, "KAFKA", fmt.Sprintf("[%s] %s - %s", action, topic, message))
}

func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile != nil {
		l.logFile.Close()
		l.logFile = nil
	}
}

// ParseLevel maps a level name such as "debug" or "WARN" to its LogLevel.
func ParseLevel(name string) (LogLevel, error) {
	for level, n := range levelNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return level, nil
		}
	}
	return INFO, fmt.Errorf("unknown log level %q", name)
}
