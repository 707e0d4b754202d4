package kfmt

import (
	"beacon/kernel"
	"beacon/kernel/cpu"
)

var (
	// cpuHaltFn is swapped out by tests that need Panic to return.
	cpuHaltFn = cpu.Halt

	errRuntimePanic = &kernel.Error{Module: "rt", Message: "unknown cause"}
)

// Panic prints a report for the supplied error through the regular output
// pipeline and halts the CPU. Calls to Panic never return. The console
// registry guarantees that a console is always installed, so the report
// always has somewhere to go; a fault handler may register an emergency
// backend right before panicking.
//
// Panic accepts a *kernel.Error, a plain error or a string; any other value
// produces an anonymous report.
func Panic(e interface{}) {
	var err *kernel.Error

	switch t := e.(type) {
	case *kernel.Error:
		err = t
	case string:
		errRuntimePanic.Message = t
		err = errRuntimePanic
	case error:
		errRuntimePanic.Message = t.Error()
		err = errRuntimePanic
	}

	Printf("\n-----------------------------------\n")
	if err != nil {
		Printf("[%s] unrecoverable error: %s\n", err.Module, err.Message)
	}
	Printf("*** kernel panic: system halted ***")
	Printf("\n-----------------------------------\n")

	cpuHaltFn()
}
