package log

import (
	"bytes"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// LineWriter is an io.WriteCloser that forwards every completed line written
// to it as a log record at a fixed level. Partial lines are buffered until a
// newline arrives or Close is called. It gives process output, such as the
// stdout and stderr of a child command, a place in the structured log
// without patching the process wide streams.
type LineWriter struct {
	logger *logrus.Entry
	level  logrus.Level

	mu  sync.Mutex
	buf bytes.Buffer
}

// NewLineWriter creates a LineWriter forwarding to the given logger at the
// given level.
func NewLineWriter(logger *logrus.Entry, level logrus.Level) *LineWriter {
	return &LineWriter{
		logger: logger,
		level:  level,
	}
}

// Write buffers p and logs each completed line it contains. It never fails
// and always reports the full length as written.
func (w *LineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)

	for {
		idx := bytes.IndexByte(w.buf.Bytes(), '\n')
		if idx < 0 {
			break
		}

		line := string(w.buf.Next(idx + 1))
		w.emit(line)
	}

	return len(p), nil
}

// Close flushes a trailing partial line, if any.
func (w *LineWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}

	return nil
}

func (w *LineWriter) emit(line string) {
	line = strings.TrimRight(line, " \t\r\n")
	if line == "" {
		return
	}

	w.logger.Log(w.level, line)
}
