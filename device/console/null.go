package console

// NullConsole swallows all output and never produces input. The registry
// points at a NullConsole until a real driver registers, which keeps every
// print path safe from the first instruction on.
//
// The zero value is ready to use.
type NullConsole struct{}

// Write implements io.Writer; the data is discarded.
func (*NullConsole) Write(p []byte) (int, error) { return len(p), nil }

// WriteString implements io.StringWriter; the data is discarded.
func (*NullConsole) WriteString(s string) (int, error) { return len(s), nil }

// WriteByte implements io.ByteWriter; the byte is discarded.
func (*NullConsole) WriteByte(byte) error { return nil }

// Flush implements Writer. There is never anything to drain.
func (*NullConsole) Flush() {}

// ReadByte implements io.ByteReader. The null console has no receive path
// and reports a blank instead.
func (*NullConsole) ReadByte() (byte, error) { return ' ', nil }

// ClearRx implements Reader as a no-op.
func (*NullConsole) ClearRx() {}

// BytesWritten always returns zero; discarded bytes are not counted.
func (*NullConsole) BytesWritten() uint64 { return 0 }

// BytesRead always returns zero.
func (*NullConsole) BytesRead() uint64 { return 0 }

var _ Device = (*NullConsole)(nil)
