package console

import (
	"beacon/device"
	"beacon/kernel"
	"beacon/kernel/sync"
	"io"
)

// qemuOutputState is the mutable part of QEMUOutput. It is only ever touched
// inside the device's lock closure.
type qemuOutputState struct {
	bytesWritten uint64
}

// put emits one byte on the wire and counts it.
func (st *qemuOutputState) put(b byte) {
	qemuTxByteFn(b)
	st.bytesWritten++
}

// putTranslated emits b, expanding a line feed into a carriage return plus
// line feed pair so serial terminals advance to the start of the next line.
func (st *qemuOutputState) putTranslated(b byte) {
	if b == '\n' {
		st.put('\r')
	}
	st.put(b)
}

// QEMUOutput drives the serial output of an emulated Raspberry Pi 3. QEMU
// renders any byte stored to the PL011 data register without the UART being
// configured first, which makes this the earliest possible output path when
// the kernel runs under emulation. The device is write-only; its read side
// behaves like the null console.
type QEMUOutput struct {
	inner sync.Mutex[qemuOutputState]
}

// NewQEMUOutput creates a QEMUOutput with its state guarded by a NullLock.
func NewQEMUOutput() *QEMUOutput {
	return &QEMUOutput{
		inner: sync.NewNullLock(qemuOutputState{}),
	}
}

// Write implements io.Writer. The returned count is the number of bytes
// consumed from p; carriage returns added by newline expansion are counted
// only by the device statistics.
func (q *QEMUOutput) Write(p []byte) (int, error) {
	q.inner.Lock(func(st *qemuOutputState) {
		for _, b := range p {
			st.putTranslated(b)
		}
	})

	return len(p), nil
}

// WriteString implements io.StringWriter.
func (q *QEMUOutput) WriteString(s string) (int, error) {
	q.inner.Lock(func(st *qemuOutputState) {
		for i := 0; i < len(s); i++ {
			st.putTranslated(s[i])
		}
	})

	return len(s), nil
}

// WriteByte implements io.ByteWriter. A line feed is expanded to a carriage
// return plus line feed, exactly as on the string path.
func (q *QEMUOutput) WriteByte(c byte) error {
	q.inner.Lock(func(st *qemuOutputState) {
		st.putTranslated(c)
	})

	return nil
}

// Flush implements Writer. QEMU consumes bytes as they are stored so there
// is nothing to drain.
func (q *QEMUOutput) Flush() {}

// ReadByte implements io.ByteReader. The device has no receive path and
// reports a blank instead, like the null console.
func (q *QEMUOutput) ReadByte() (byte, error) { return ' ', nil }

// ClearRx implements Reader as a no-op.
func (q *QEMUOutput) ClearRx() {}

// BytesWritten returns the number of bytes stored to the data register,
// including carriage returns added by newline expansion.
func (q *QEMUOutput) BytesWritten() uint64 {
	var n uint64
	q.inner.Lock(func(st *qemuOutputState) {
		n = st.bytesWritten
	})

	return n
}

// BytesRead always returns zero.
func (q *QEMUOutput) BytesRead() uint64 { return 0 }

// DriverName returns the name of this driver.
func (q *QEMUOutput) DriverName() string {
	return "qemu_output"
}

// DriverVersion returns the version of this driver.
func (q *QEMUOutput) DriverVersion() (uint16, uint16, uint16) {
	return 0, 0, 1
}

// DriverInit initializes this driver. The emulated output path needs no
// device setup.
func (q *QEMUOutput) DriverInit(_ io.Writer) *kernel.Error {
	return nil
}

// probeForQEMUOutput returns a driver for the emulated serial output.
func probeForQEMUOutput() device.Driver {
	return NewQEMUOutput()
}

var (
	_ Device        = (*QEMUOutput)(nil)
	_ device.Driver = (*QEMUOutput)(nil)
)
