// Package runlog owns the plain-text log file written for each extraction run.
package runlog

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/KaramelBytes/imaris-cli/internal/utils"
	"github.com/google/uuid"
)

// Log is an open run log. Close must be called once the run is over.
type Log struct {
	*slog.Logger
	RunID string
	file  *os.File
}

// Open truncates path and returns a text logger writing to it. Every record
// carries the run id so appended logs from several runs stay separable.
func Open(path string, level slog.Level) (*Log, error) {
	if err := utils.EnsureParentDir(path); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	id := uuid.NewString()
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return &Log{Logger: slog.New(h).With("run", id), RunID: id, file: f}, nil
}

// Close flushes and releases the log file.
func (l *Log) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
