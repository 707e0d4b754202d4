// Package cpu provides the processor-level helpers kernel code needs before
// any architecture support beyond a running core exists.
package cpu

import "github.com/tinygo-org/tinygo/src/runtime/volatile"

// spinSink soaks up the stores issued by the busy loops below. The stores are
// volatile so the loops survive optimization; without an observable side
// effect a compiler is free to collapse them.
var spinSink volatile.Register32

// SpinCycles busy-loops for at least n iterations. Peripheral setup sequences
// need short delays measured in core cycles (the GPIO pull control clock
// requires a 150-cycle settle time), not in wall-clock time.
func SpinCycles(n uint32) {
	for i := uint32(0); i < n; i++ {
		spinSink.Set(i)
	}
}

// Halt parks the calling core forever. It is the end of the line for kernel
// panics and for a kernel entry point that has nothing left to run.
func Halt() {
	for {
		spinSink.Set(0)
	}
}
