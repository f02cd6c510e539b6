package xfsgen

import (
	"io"
)

// ProgressCallback is called while an image is being written to report progress
// current: bytes written so far
// total: total bytes to write
type ProgressCallback func(current int64, total int64)

// progressWriter wraps an io.Writer to report write progress
type progressWriter struct {
	writer   io.Writer
	total    int64
	current  int64
	callback ProgressCallback
}

func (pw *progressWriter) Write(p []byte) (int, error) {
	n, err := pw.writer.Write(p)
	pw.current += int64(n)
	if pw.callback != nil {
		pw.callback(pw.current, pw.total)
	}
	return n, err
}
