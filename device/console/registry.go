package console

import (
	"beacon/kernel/sync"
	"io"
)

// cur tracks the currently active console. The slot starts out pointing at a
// NullConsole so callers never observe a nil device. All access goes through
// the lock closure; the NullLock can be swapped for a real mutex once the
// kernel gains additional hardware threads without touching any caller.
var cur sync.Mutex[Device] = sync.NewNullLock[Device](&NullConsole{})

// Register installs d as the active console. A nil device is ignored.
// Registering the same device again is permitted and has no further effect;
// this allows a panic handler to force a known-good backend into place
// without having to check what is currently registered.
func Register(d Device) {
	if d == nil {
		return
	}

	cur.Lock(func(active *Device) {
		*active = d
	})
}

// Active returns the currently registered console. It never returns nil;
// before the first Register call it returns the shared NullConsole.
func Active() Device {
	var d Device
	cur.Lock(func(active *Device) {
		d = *active
	})

	return d
}

// Output returns an io.Writer that forwards each Write to whichever console
// is active at the time of the call. Holding on to the returned writer is
// safe across registrations; output follows the registry.
func Output() io.Writer {
	return activeWriter{}
}

type activeWriter struct{}

func (activeWriter) Write(p []byte) (int, error) {
	return Active().Write(p)
}
