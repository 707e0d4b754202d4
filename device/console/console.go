// Package console provides the system console subsystem: the capability
// interfaces implemented by character devices, a sink that discards
// everything, the serial backends for the Raspberry Pi 3 and the registry
// that tracks the currently active console.
package console

import "io"

// Writer is implemented by devices that can emit characters. The error slots
// in the embedded io interfaces exist to satisfy their contracts; console
// implementations in this tree always return nil errors and full counts.
type Writer interface {
	io.Writer
	io.StringWriter
	io.ByteWriter

	// Flush blocks until all previously submitted bytes have physically
	// left the device.
	Flush()
}

// Reader is implemented by devices that can consume characters.
type Reader interface {
	io.ByteReader

	// ClearRx discards any input that was received but not yet read.
	ClearRx()
}

// Statistics exposes the cumulative transfer counters of a device. Counters
// start at zero and never decrease.
type Statistics interface {
	// BytesWritten returns the number of bytes emitted by the device,
	// including any bytes added by newline translation.
	BytesWritten() uint64

	// BytesRead returns the number of bytes handed to callers of ReadByte.
	BytesRead() uint64
}

// The Device interface is implemented by objects that can function as the
// system console.
type Device interface {
	Writer
	Reader
	Statistics
}
