package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// NewLogger creates a new hclog logger with standard settings
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	// Determine if JSON format should be used
	jsonFormat := os.Getenv("SFF_JSON_LOG") == "1"

	// Add prefix for non-JSON output
	if !jsonFormat {
		output = NewPrefixWriter("💬 ", output)
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// NewCLILogger builds the logger for a command-line tool. The explicit
// cliLevel (from a --log-level flag) wins over SFF_LOG_LEVEL; a level of
// the form "json:debug" forces JSON output. SFF_LOG_PATH redirects
// output to a file.
func NewCLILogger(name, cliLevel string) hclog.Logger {
	level := cliLevel
	if level == "" {
		level = GetLogLevel()
	}

	var output io.Writer = os.Stderr
	if logPath := os.Getenv("SFF_LOG_PATH"); logPath != "" {
		if file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			output = file
		}
	}

	if strings.HasPrefix(level, "json") {
		if _, rest, ok := strings.Cut(level, ":"); ok {
			level = rest
		} else {
			level = "info"
		}
		return hclog.New(&hclog.LoggerOptions{
			Name:       name,
			Level:      hclog.LevelFromString(level),
			JSONFormat: true,
			Output:     output,
			TimeFormat: "2006-01-02T15:04:05Z",
			TimeFn: func() time.Time {
				return time.Now().UTC()
			},
		})
	}

	return NewLogger(name, level, output)
}

// GetLogLevel returns the configured log level from environment
func GetLogLevel() string {
	level := os.Getenv("SFF_LOG_LEVEL")
	if level == "" {
		level = "warn" // Default to warn for production safety
	}
	return level
}
