package bcm2837

import "github.com/tinygo-org/tinygo/src/runtime/volatile"

// PL011RegisterMap describes the registers of the ARM PrimeCell PL011 UART.
// Field order and padding pin each register to its documented offset from the
// start of the block.
type PL011RegisterMap struct {
	DR         volatile.Register32 //0x00 data
	RSRECR     volatile.Register32 //0x04 receive status / error clear
	reserved00 [4]uint32           //0x08
	FR         volatile.Register32 //0x18 flags, read-only
	reserved01 uint32              //0x1C
	ILPR       volatile.Register32 //0x20 IrDA, unused
	IBRD       volatile.Register32 //0x24 integer baud rate divisor
	FBRD       volatile.Register32 //0x28 fractional baud rate divisor
	LCRH       volatile.Register32 //0x2C line control
	CR         volatile.Register32 //0x30 control
	IFLS       volatile.Register32 //0x34 FIFO level select
	IMSC       volatile.Register32 //0x38 interrupt mask
	RIS        volatile.Register32 //0x3C raw interrupt status, read-only
	MIS        volatile.Register32 //0x40 masked interrupt status, read-only
	ICR        volatile.Register32 //0x44 interrupt clear
}

// FR bits.
const (
	TransmitBusy      = 1 << 3
	ReceiveFIFOEmpty  = 1 << 4
	TransmitFIFOFull  = 1 << 5
	ReceiveFIFOFull   = 1 << 6
	TransmitFIFOEmpty = 1 << 7
)

// LCRH bits.
const (
	EnableFIFOs = 1 << 4
	WordLength8 = 3 << 5
)

// CR bits.
const (
	UARTEnable     = 1 << 0
	TransmitEnable = 1 << 8
	ReceiveEnable  = 1 << 9
)

// ClearAllInterrupts covers every writable bit of ICR.
const ClearAllInterrupts = 0x7FF

// Baud rate divisors for 921600 baud with the firmware-provided 48 MHz UART
// reference clock.
const (
	IntegerBaud921600    = 3
	FractionalBaud921600 = 16
)
