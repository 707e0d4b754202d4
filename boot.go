package main

import "beacon/kernel/kmain"

// main works as a trampoline for calling the actual kernel entrypoint
// (kmain.Kmain). It is intentionally defined to prevent the Go linker from
// optimizing away the kernel code, as the linker is not aware of the boot
// stub that jumps here after setting up a minimal stack for Go code.
//
// main is not expected to return. If it does, the boot stub will halt the
// CPU.
func main() {
	kmain.Kmain()
}
