package console

import (
	"beacon/kernel/sync"
	"testing"
)

// resetRegistry restores the registry to its boot state: a NullConsole
// behind a NullLock.
func resetRegistry() {
	cur = sync.NewNullLock[Device](&NullConsole{})
}

func TestRegistryDefaultsToNullConsole(t *testing.T) {
	defer resetRegistry()
	resetRegistry()

	d := Active()
	if _, ok := d.(*NullConsole); !ok {
		t.Fatalf("expected the pre-registration console to be a *NullConsole; got %T", d)
	}

	if got := d.BytesWritten(); got != 0 {
		t.Fatalf("expected 0 bytes written before registration; got %d", got)
	}

	if got := d.BytesRead(); got != 0 {
		t.Fatalf("expected 0 bytes read before registration; got %d", got)
	}
}

func TestRegisterThenActive(t *testing.T) {
	defer resetRegistry()
	resetRegistry()

	q := NewQEMUOutput()
	Register(q)

	if got := Active(); got != Device(q) {
		t.Fatalf("expected Active to return the registered device; got %T (%v)", got, got)
	}

	// Active is stable between registrations.
	if first, second := Active(), Active(); first != second {
		t.Fatal("expected repeated Active calls to return the same reference")
	}

	// Registering nil must not disturb the active console.
	Register(nil)
	if got := Active(); got != Device(q) {
		t.Fatalf("expected nil registration to be ignored; got %T", got)
	}

	// Re-registering the current device is tolerated; the panic path uses
	// this to force a known-good backend into place.
	Register(q)
	if got := Active(); got != Device(q) {
		t.Fatalf("expected re-registration to keep the device; got %T", got)
	}

	// A later registration replaces the earlier one.
	q2 := NewQEMUOutput()
	Register(q2)
	if got := Active(); got != Device(q2) {
		t.Fatalf("expected the latest registration to win; got %T", got)
	}
}

func TestOutputWriterFollowsRegistry(t *testing.T) {
	defer resetRegistry()
	resetRegistry()

	origTx := qemuTxByteFn
	defer func() { qemuTxByteFn = origTx }()

	var tx []byte
	qemuTxByteFn = func(b byte) { tx = append(tx, b) }

	w := Output()

	// Before registration the write lands on the null console.
	n, err := w.Write([]byte("dropped"))
	if err != nil || n != 7 {
		t.Fatalf("expected the null console to absorb (7, nil); got (%d, %v)", n, err)
	}

	if len(tx) != 0 {
		t.Fatalf("expected no wire traffic before registration; got %q", tx)
	}

	// The writer obtained earlier picks up the new device on its next
	// write.
	q := NewQEMUOutput()
	Register(q)

	if _, err = w.Write([]byte("hi\n")); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	if got, exp := string(tx), "hi\r\n"; got != exp {
		t.Fatalf("expected wire bytes %q; got %q", exp, got)
	}

	if got := q.BytesWritten(); got != 4 {
		t.Fatalf("expected 4 bytes written; got %d", got)
	}
}
