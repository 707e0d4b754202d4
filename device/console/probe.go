package console

import (
	"beacon/device"
	"beacon/hardware/bcm2837"
)

var (
	// qemuTxByteFn emits one byte on the emulated serial output. The
	// default stores the byte to the PL011 data register, which QEMU
	// renders without any prior device setup. Tests replace this to
	// capture the exact byte sequence a write produces.
	qemuTxByteFn = func(b byte) {
		bcm2837.UART0.DR.Set(uint32(b))
	}

	// ProbeFuncs is a slice of device probe functions that is used by the
	// hal package to probe for console hardware. The board files in this
	// package use an init() block to append their probe function to this
	// list; as exactly one board file joins each build, the console
	// implementation is fixed at build time.
	ProbeFuncs []device.ProbeFn
)
