package device

import (
	"beacon/kernel"
	"io"
)

// Driver is an interface implemented by all device drivers.
type Driver interface {
	// DriverName returns the name of the driver.
	DriverName() string

	// DriverVersion returns the driver version.
	DriverVersion() (major uint16, minor uint16, patch uint16)

	// DriverInit initializes the device driver. Drivers that need to log
	// output while initializing can use the supplied io.Writer together
	// with a call to kfmt.Fprintf.
	DriverInit(io.Writer) *kernel.Error
}

// ProbeFn is a function that checks for the presence of a particular piece
// of hardware and returns a driver for it, or nil if the hardware is not
// present.
type ProbeFn func() Driver
