package handler

import (
	"bytes"
	"sync"
)

const (
	bufferInitialSize = 512
	bufferMaxRetained = 64 << 10 // seed lists are the largest payload
)

// bufferPool recycles JSON encoding buffers across responses
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, bufferInitialSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer returns buf to the pool unless it grew past bufferMaxRetained
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > bufferMaxRetained {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
