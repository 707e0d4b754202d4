package console

import (
	"beacon/device"
	"beacon/hardware/bcm2837"
	"beacon/kernel"
	"beacon/kernel/cpu"
	"beacon/kernel/kfmt"
	"beacon/kernel/sync"
	"io"
)

// pl011State is the mutable part of PL011: the register blocks it drives and
// the transfer counters. It is only ever touched inside the device's lock
// closure, so a register write and its counter update form one atomic unit.
type pl011State struct {
	regs         *bcm2837.PL011RegisterMap
	gpio         *bcm2837.GPIORegisterMap
	bytesWritten uint64
	bytesRead    uint64
}

// init programs the UART for 921600 baud 8n1 operation with FIFOs enabled.
// The UART must be disabled and fully drained before the baud and line
// control registers may change.
func (st *pl011State) init() {
	st.drain()
	st.regs.CR.Set(0)

	st.routeUARTPins()

	st.regs.ICR.Set(bcm2837.ClearAllInterrupts)
	st.regs.IBRD.Set(bcm2837.IntegerBaud921600)
	st.regs.FBRD.Set(bcm2837.FractionalBaud921600)
	st.regs.LCRH.Set(bcm2837.EnableFIFOs | bcm2837.WordLength8)
	st.regs.CR.Set(bcm2837.UARTEnable | bcm2837.TransmitEnable | bcm2837.ReceiveEnable)
}

// routeUARTPins hands GPIO pins 14 and 15 to the UART (alternate function 0)
// and disables their pull resistors. The pull sequence with its 150 cycle
// settle delays is the one prescribed by the datasheet.
func (st *pl011State) routeUARTPins() {
	const (
		txShift = (bcm2837.GPIOPinTXD0 % 10) * 3
		rxShift = (bcm2837.GPIOPinRXD0 % 10) * 3
		mask    = (7 << txShift) | (7 << rxShift)
		alt0    = (bcm2837.GPIOFuncAlt0 << txShift) | (bcm2837.GPIOFuncAlt0 << rxShift)
		pins    = (1 << bcm2837.GPIOPinTXD0) | (1 << bcm2837.GPIOPinRXD0)
	)

	fsel := st.gpio.FuncSelect[1].Get()
	fsel = (fsel &^ mask) | alt0
	st.gpio.FuncSelect[1].Set(fsel)

	st.gpio.PullUpDown.Set(bcm2837.GPIOPullOff)
	cpu.SpinCycles(150)
	st.gpio.PullUpDownClock0.Set(pins)
	cpu.SpinCycles(150)
	st.gpio.PullUpDown.Set(0)
	st.gpio.PullUpDownClock0.Set(0)
}

// put blocks until the transmit FIFO can accept a byte, then emits it.
func (st *pl011State) put(b byte) {
	for st.regs.FR.Get()&bcm2837.TransmitFIFOFull != 0 {
		cpu.SpinCycles(1)
	}

	st.regs.DR.Set(uint32(b))
	st.bytesWritten++
}

// putTranslated emits b, expanding a line feed into a carriage return plus
// line feed pair so serial terminals advance to the start of the next line.
func (st *pl011State) putTranslated(b byte) {
	if b == '\n' {
		st.put('\r')
	}
	st.put(b)
}

// get blocks until the receive FIFO holds a byte, then consumes it.
func (st *pl011State) get() byte {
	for st.regs.FR.Get()&bcm2837.ReceiveFIFOEmpty != 0 {
		cpu.SpinCycles(1)
	}

	b := byte(st.regs.DR.Get())
	st.bytesRead++

	return b
}

// drain spins until the transmit path reports idle.
func (st *pl011State) drain() {
	for st.regs.FR.Get()&bcm2837.TransmitBusy != 0 {
		cpu.SpinCycles(1)
	}
}

// clearRx pops and discards receive FIFO contents until it reads empty.
func (st *pl011State) clearRx() {
	for st.regs.FR.Get()&bcm2837.ReceiveFIFOEmpty == 0 {
		st.regs.DR.Get()
	}
}

// PL011 drives the ARM PrimeCell PL011 UART of the Raspberry Pi 3, the
// serial port behind GPIO pins 14 and 15. This is the real-hardware console:
// full duplex, with transfer statistics on both directions.
type PL011 struct {
	inner sync.Mutex[pl011State]
}

// NewPL011 creates a PL011 bound to the SoC register blocks, with its state
// guarded by a NullLock.
func NewPL011() *PL011 {
	return &PL011{
		inner: sync.NewNullLock(pl011State{
			regs: bcm2837.UART0,
			gpio: bcm2837.GPIO,
		}),
	}
}

// Write implements io.Writer. The returned count is the number of bytes
// consumed from p; carriage returns added by newline expansion are counted
// only by the device statistics.
func (u *PL011) Write(p []byte) (int, error) {
	u.inner.Lock(func(st *pl011State) {
		for _, b := range p {
			st.putTranslated(b)
		}
	})

	return len(p), nil
}

// WriteString implements io.StringWriter.
func (u *PL011) WriteString(s string) (int, error) {
	u.inner.Lock(func(st *pl011State) {
		for i := 0; i < len(s); i++ {
			st.putTranslated(s[i])
		}
	})

	return len(s), nil
}

// WriteByte implements io.ByteWriter. A line feed is expanded to a carriage
// return plus line feed, exactly as on the string path.
func (u *PL011) WriteByte(c byte) error {
	u.inner.Lock(func(st *pl011State) {
		st.putTranslated(c)
	})

	return nil
}

// Flush implements Writer; it returns once the transmit path has fully
// drained.
func (u *PL011) Flush() {
	u.inner.Lock(func(st *pl011State) {
		st.drain()
	})
}

// ReadByte implements io.ByteReader. It blocks until a byte arrives; the
// returned error is always nil.
func (u *PL011) ReadByte() (byte, error) {
	var b byte
	u.inner.Lock(func(st *pl011State) {
		b = st.get()
	})

	return b, nil
}

// ClearRx implements Reader. Discarded bytes are not counted as read.
func (u *PL011) ClearRx() {
	u.inner.Lock(func(st *pl011State) {
		st.clearRx()
	})
}

// BytesWritten returns the number of bytes emitted on the wire, including
// carriage returns added by newline expansion.
func (u *PL011) BytesWritten() uint64 {
	var n uint64
	u.inner.Lock(func(st *pl011State) {
		n = st.bytesWritten
	})

	return n
}

// BytesRead returns the number of bytes handed to ReadByte callers.
func (u *PL011) BytesRead() uint64 {
	var n uint64
	u.inner.Lock(func(st *pl011State) {
		n = st.bytesRead
	})

	return n
}

// DriverName returns the name of this driver.
func (u *PL011) DriverName() string {
	return "pl011_uart"
}

// DriverVersion returns the version of this driver.
func (u *PL011) DriverVersion() (uint16, uint16, uint16) {
	return 0, 0, 1
}

// DriverInit initializes this driver.
func (u *PL011) DriverInit(w io.Writer) *kernel.Error {
	u.inner.Lock(func(st *pl011State) {
		st.init()
	})

	kfmt.Fprintf(w, "programmed 921600 baud 8n1 on GPIO 14/15\n")

	return nil
}

// probeForPL011 returns a driver for the SoC UART.
func probeForPL011() device.Driver {
	return NewPL011()
}

var (
	_ Device        = (*PL011)(nil)
	_ device.Driver = (*PL011)(nil)
)
