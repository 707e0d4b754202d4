package sync

// Mutex grants closure-scoped exclusive access to the value it wraps. All
// reads and writes of the wrapped value must happen inside the closure passed
// to Lock; holding on to the *T pointer after Lock returns is a logic error,
// as is calling Lock again from inside the closure. Results are returned by
// writing to variables captured by the closure.
//
// The closure contract is the seam for later kernel stages: when preemption
// or more cores arrive, a blocking implementation replaces NullLock behind
// the same interface and no caller changes.
type Mutex[T any] interface {
	// Lock runs f with exclusive access to the wrapped value.
	Lock(f func(data *T))
}

// NullLock wraps a value for the earliest boot phase, where exactly one
// hardware thread executes and nothing can preempt it. Lock runs the closure
// directly; there is nothing to contend with yet, so the operation cannot
// fail or block.
type NullLock[T any] struct {
	data T
}

// NewNullLock wraps data in a NullLock.
func NewNullLock[T any](data T) *NullLock[T] {
	return &NullLock[T]{data: data}
}

// Lock runs f with exclusive access to the wrapped value.
func (l *NullLock[T]) Lock(f func(data *T)) {
	f(&l.data)
}

// SpinMutex wraps a value behind a Spinlock. It honors the same closure
// contract as NullLock and is the implementation to substitute once more
// than one context can reach the protected state.
type SpinMutex[T any] struct {
	lock Spinlock
	data T
}

// NewSpinMutex wraps data in a SpinMutex.
func NewSpinMutex[T any](data T) *SpinMutex[T] {
	return &SpinMutex[T]{data: data}
}

// Lock runs f with exclusive access to the wrapped value, busy-waiting until
// any other holder releases it.
func (m *SpinMutex[T]) Lock(f func(data *T)) {
	m.lock.Acquire()
	f(&m.data)
	m.lock.Release()
}

var (
	_ Mutex[int] = (*NullLock[int])(nil)
	_ Mutex[int] = (*SpinMutex[int])(nil)
)
