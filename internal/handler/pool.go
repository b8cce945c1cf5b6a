package handler

import (
	"bytes"
	"sync"
)

// Dashboard responses carry a full entry page plus every aggregate and
// chart series, so encoded payloads start in the kilobytes. Buffers are
// pooled pre-sized for that shape; ones grown far past it by a large page
// are dropped instead of pinned in the pool.
const (
	encodeBufferInitialCap = 4 * 1024
	encodeBufferMaxPooled  = 256 * 1024
)

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, encodeBufferInitialCap))
	},
}

// getBuffer hands out an empty buffer for one JSON encode.
func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets and pools the buffer unless it outgrew the pooling cap.
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > encodeBufferMaxPooled {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
