// Package applog builds the process logger shared by the binaries.
package applog

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a timestamped stderr logger at the named level
// (debug, info, warn, error).
func New(prefix, level string) (*log.Logger, error) {
	return NewTo(os.Stderr, prefix, level)
}

// NewTo is New with an explicit writer.
func NewTo(w io.Writer, prefix, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		var err error
		lvl, err = log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}
