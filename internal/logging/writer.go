package logging

import (
	"log/slog"
	"strings"
)

// Writer is an io.Writer that forwards subprocess output to slog. The live
// label resolver uses it to surface `gh` diagnostics at warn level without
// letting them interleave with the reorganized changelog on stdout.
type Writer struct {
	logger *slog.Logger
}

// NewWriter constructs a Writer bound to the provided logger.
func NewWriter(logger *slog.Logger) *Writer {
	return &Writer{logger: logger}
}

// Write logs the given bytes line by line at warn level.
func (w *Writer) Write(p []byte) (int, error) {
	if w.logger != nil {
		for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
			if line != "" {
				w.logger.Warn("gh output", "line", line)
			}
		}
	}
	return len(p), nil
}
