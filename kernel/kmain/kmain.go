// Package kmain contains the kernel entry point.
package kmain

import (
	"beacon/device/console"
	"beacon/kernel/hal"
	"beacon/kernel/kfmt"
)

// Kmain is the only Go symbol that is visible (exported) to the assembly
// boot stub. It is invoked on the boot hardware thread with interrupts
// masked, after the stub has set up a minimal stack for Go code and the
// firmware has mapped the peripheral window.
//
// Kmain is not expected to return. If it does, the boot stub halts the CPU.
//
//go:noinline
func Kmain() {
	// Anything printed before a console registers sits in the kfmt ring
	// buffer and reaches the console during bring-up.
	kfmt.Printf("beacon kernel booting\n")

	hal.DetectHardware()

	cons := console.Active()
	kfmt.Printf("console ready after %d bytes of output\n", cons.BytesWritten())
	kfmt.Printf("echoing input, '#' prints transfer statistics\n")

	echo(cons)

	kfmt.Panic("kmain: echo loop returned")
}

// echo reflects console input back to the sender, byte by byte. Enter is
// normalized to a line feed so terminals advance a line, and '#' prints the
// transfer statistics instead of echoing.
func echo(cons console.Device) {
	cons.ClearRx()

	for {
		b, _ := cons.ReadByte()

		switch b {
		case '\r':
			cons.WriteByte('\n')
		case '#':
			kfmt.Printf("\n%d bytes written, %d bytes read\n", cons.BytesWritten(), cons.BytesRead())
		default:
			kfmt.Printf("%c", b)
		}
	}
}
