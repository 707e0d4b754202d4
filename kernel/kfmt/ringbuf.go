package kfmt

import "io"

// ringBufferSize is the capacity of the buffer that captures Printf output
// until an output sink is installed. It is sized to hold a few screens worth
// of boot output and must remain a power of two.
const ringBufferSize = 2048

// ringBuffer is a fixed-size byte ring. When it overflows, each new byte
// evicts the oldest buffered one, so a late-installed sink receives the most
// recent output.
type ringBuffer struct {
	data  [ringBufferSize]byte
	start int // index of the oldest buffered byte
	count int // number of buffered bytes, never above ringBufferSize
}

// Write implements io.Writer. It buffers all of p and never fails.
func (rb *ringBuffer) Write(p []byte) (int, error) {
	for _, b := range p {
		rb.data[(rb.start+rb.count)&(ringBufferSize-1)] = b
		if rb.count == ringBufferSize {
			rb.start = (rb.start + 1) & (ringBufferSize - 1)
		} else {
			rb.count++
		}
	}

	return len(p), nil
}

// Read implements io.Reader, draining the buffered bytes in write order. It
// reports io.EOF once the ring is empty.
func (rb *ringBuffer) Read(p []byte) (int, error) {
	if rb.count == 0 {
		return 0, io.EOF
	}

	var n int
	for ; n < len(p) && rb.count > 0; n++ {
		p[n] = rb.data[rb.start]
		rb.start = (rb.start + 1) & (ringBufferSize - 1)
		rb.count--
	}

	return n, nil
}
