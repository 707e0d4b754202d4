package bcm2837

import "github.com/tinygo-org/tinygo/src/runtime/volatile"

// GPIORegisterMap describes the GPIO controller block. The event and edge
// detect registers between Level1 and PullUpDown are not used by any driver
// in this tree and are folded into padding.
type GPIORegisterMap struct {
	FuncSelect       [6]volatile.Register32 //0x00..0x14 three bits per pin
	reserved00       uint32                 //0x18
	OutputSet0       volatile.Register32    //0x1C
	OutputSet1       volatile.Register32    //0x20
	reserved01       uint32                 //0x24
	OutputClear0     volatile.Register32    //0x28
	OutputClear1     volatile.Register32    //0x2C
	reserved02       uint32                 //0x30
	Level0           volatile.Register32    //0x34
	Level1           volatile.Register32    //0x38
	reserved03       [22]uint32             //0x3C..0x90 event detect block
	PullUpDown       volatile.Register32    //0x94
	PullUpDownClock0 volatile.Register32    //0x98
	PullUpDownClock1 volatile.Register32    //0x9C
}

// Function select values for the FuncSelect fields.
const (
	GPIOFuncInput  = 0
	GPIOFuncOutput = 1
	GPIOFuncAlt0   = 4
	GPIOFuncAlt5   = 2
)

// Pull control values written to PullUpDown before clocking a pin via
// PullUpDownClock0/1.
const (
	GPIOPullOff  = 0
	GPIOPullDown = 1
	GPIOPullUp   = 2
)

// Pins with a fixed role on the Raspberry Pi 3 header.
const (
	GPIOPinTXD0 = 14
	GPIOPinRXD0 = 15
)
