// Package hal performs board bring-up: it walks the console probe list,
// initializes the drivers it finds and wires the first console into the
// registry and the kernel print pipeline.
package hal

import (
	"beacon/device"
	"beacon/device/console"
	"beacon/kernel/kfmt"
	"bytes"
)

// managedDevices contains the devices brought up by the HAL.
type managedDevices struct {
	activeConsole console.Device

	// activeDrivers tracks all initialized device drivers.
	activeDrivers []device.Driver
}

var (
	devices managedDevices
	strBuf  bytes.Buffer
)

// ActiveConsole returns the console selected during bring-up, or nil if
// DetectHardware has not run yet. Code that only needs to print should use
// console.Active instead, which is valid at any point.
func ActiveConsole() console.Device {
	return devices.activeConsole
}

// ActiveDrivers returns the drivers that were successfully initialized.
func ActiveDrivers() []device.Driver {
	return devices.activeDrivers
}

// DetectHardware probes for console hardware and initializes the appropriate
// drivers. The first console that initializes successfully becomes the
// active console.
func DetectHardware() {
	probe(console.ProbeFuncs)
}

// probe executes the supplied probe functions and attempts to initialize
// each detected device, logging progress with a per-driver prefix.
func probe(probeFns []device.ProbeFn) {
	var w = kfmt.PrefixWriter{Sink: kfmt.GetOutputSink()}

	for _, probeFn := range probeFns {
		drv := probeFn()
		if drv == nil {
			continue
		}

		// A registration in a previous iteration may have moved the
		// output sink; follow it.
		w.Sink = kfmt.GetOutputSink()

		strBuf.Reset()
		major, minor, patch := drv.DriverVersion()
		kfmt.Fprintf(&strBuf, "[hal] %s(%d.%d.%d): ", drv.DriverName(), major, minor, patch)
		w.Prefix = strBuf.Bytes()

		if err := drv.DriverInit(&w); err != nil {
			kfmt.Fprintf(&w, "init failed: %s\n", err.Message)
			continue
		}

		kfmt.Fprintf(&w, "initialized\n")
		onDriverInit(drv)
		devices.activeDrivers = append(devices.activeDrivers, drv)
	}
}

// onDriverInit is invoked by probe() whenever a device driver initializes
// successfully.
func onDriverInit(drv device.Driver) {
	if cons, ok := drv.(console.Device); ok {
		onConsoleInit(cons)
	}
}

// onConsoleInit installs the first initialized console into the console
// registry and points the kfmt output sink at the registry, which also
// replays any output buffered before bring-up.
func onConsoleInit(cons console.Device) {
	if devices.activeConsole != nil {
		return
	}

	devices.activeConsole = cons
	console.Register(cons)
	kfmt.SetOutputSink(console.Output())
}
