package renderer

import (
	"fmt"
	"io"

	"github.com/fransixpaohui/RayTracing/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout, or to the
// writer given to NewWriterLogger
type DefaultLogger struct {
	out io.Writer
}

// Printf formats according to format and writes the result to the logger's output
func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	if dl.out == nil {
		fmt.Printf(format, args...)
		return
	}
	fmt.Fprintf(dl.out, format, args...)
}

// NewWriterLogger creates a logger that writes to w
func NewWriterLogger(w io.Writer) core.Logger {
	return &DefaultLogger{out: w}
}
