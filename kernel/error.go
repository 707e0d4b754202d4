// Package kernel defines the handful of types shared by every kernel
// subsystem.
package kernel

// Error describes a kernel error. Kernel errors are declared as global
// variables pointing at statically initialized Error values; the Go allocator
// is not available this early in boot, so errors.New and fmt.Errorf are off
// limits to kernel code.
type Error struct {
	// The module where the error occurred.
	Module string

	// The error message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}
