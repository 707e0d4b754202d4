// Package kfmt provides allocation-free formatted output for the kernel.
package kfmt

import (
	"io"
	"unsafe"
)

// maxBufSize defines the buffer size for formatting numbers.
const maxBufSize = 32

var (
	errMissingArg   = []byte("(MISSING)")
	errWrongArgType = []byte("%!(WRONGTYPE)")
	errNoVerb       = []byte("%!(NOVERB)")
	errExtraArg     = []byte("%!(EXTRA)")
	trueValue       = []byte("true")
	falseValue      = []byte("false")

	// numBuf holds numbers while they are assembled right to left. The
	// extra slot leaves room for a sign in front of a fully padded number.
	numBuf [maxBufSize + 1]byte

	// singleByte is a shared one-byte buffer for handing individual
	// characters to doWrite.
	singleByte = []byte(" ")

	// earlyPrintBuffer captures Printf output emitted before a console
	// becomes available. SetOutputSink replays it into the new sink.
	earlyPrintBuffer ringBuffer

	// outputSink is the io.Writer that Printf sends its output to. While
	// it is nil, output is redirected to earlyPrintBuffer.
	outputSink io.Writer
)

// SetOutputSink sets the target for Printf output to w and replays any
// output that accumulated in the early print buffer.
func SetOutputSink(w io.Writer) {
	outputSink = w
	if w != nil {
		io.Copy(w, &earlyPrintBuffer)
	}
}

// GetOutputSink returns the io.Writer that Printf output currently targets.
// Before a sink is installed it returns the early print buffer.
func GetOutputSink() io.Writer {
	if outputSink == nil {
		return &earlyPrintBuffer
	}

	return outputSink
}

// Printf is a minimal fmt.Printf replacement that can be used before the Go
// runtime has been fully initialized. It performs no memory allocation.
//
// The following subset of formatting verbs is supported:
//
// Strings:
//		%s the uninterpreted bytes of the string or byte slice
//
// Characters:
//		%c the byte or rune printed as a single character
//
// Integers:
//		%o base 8
//		%d base 10
//		%x base 16, with lower-case letters for a-f
//
// Booleans:
//		%t "true" or "false"
//
// Width is specified by an optional decimal number immediately preceding the
// verb. If absent, the width is whatever is necessary to represent the
// value. Strings and base-10 integers shorter than the width are left-padded
// with spaces; base-8 and base-16 integers are left-padded with zeroes.
//
// Printf supports all built-in string and integer types but it will not
// check whether an argument implements fmt.Stringer; interface dispatch
// through itables cannot be assumed to work at the point the kernel calls
// Printf. Pointer formatting (%p) is deliberately missing as it would pull
// in the reflect package whose use triggers memory allocations.
//
// Output goes to the currently installed output sink. Until bring-up
// installs one, output lands in a ring buffer that is replayed when
// SetOutputSink is called.
func Printf(format string, args ...interface{}) {
	Fprintf(outputSink, format, args...)
}

// Fprintf behaves exactly like Printf but writes the formatted output to w.
func Fprintf(w io.Writer, format string, args ...interface{}) {
	var (
		argIndex int
		from, i  int
	)

	for i < len(format) {
		if format[i] != '%' {
			i++
			continue
		}

		// Flush the literal run before this directive.
		emitString(w, format[from:i])

		pad := 0
		i++
	scan:
		for ; i < len(format); i++ {
			switch ch := format[i]; {
			case ch == '%':
				singleByte[0] = '%'
				doWrite(w, singleByte)
				break scan
			case ch >= '0' && ch <= '9':
				pad = pad*10 + int(ch-'0')
			case ch == 'd' || ch == 'o' || ch == 'x' || ch == 's' || ch == 'c' || ch == 't':
				if argIndex >= len(args) {
					doWrite(w, errMissingArg)
					break scan
				}

				switch ch {
				case 'o':
					fmtInt(w, args[argIndex], 8, pad)
				case 'd':
					fmtInt(w, args[argIndex], 10, pad)
				case 'x':
					fmtInt(w, args[argIndex], 16, pad)
				case 's':
					fmtString(w, args[argIndex], pad)
				case 'c':
					fmtChar(w, args[argIndex])
				case 't':
					fmtBool(w, args[argIndex])
				}

				argIndex++
				break scan
			default:
				doWrite(w, errNoVerb)
				break scan
			}
		}

		i++
		from = i
	}

	if from < len(format) {
		emitString(w, format[from:])
	}

	// Flag unused arguments.
	for ; argIndex < len(args); argIndex++ {
		doWrite(w, errExtraArg)
	}
}

// emitString writes s one byte at a time through the shared singleByte
// buffer; converting s to a byte slice would allocate.
func emitString(w io.Writer, s string) {
	for i := 0; i < len(s); i++ {
		singleByte[0] = s[i]
		doWrite(w, singleByte)
	}
}

// fmtBool writes a formatted version of boolean value v.
func fmtBool(w io.Writer, v interface{}) {
	switch bVal := v.(type) {
	case bool:
		if bVal {
			doWrite(w, trueValue)
		} else {
			doWrite(w, falseValue)
		}
	default:
		doWrite(w, errWrongArgType)
	}
}

// fmtChar writes the character represented by v, accepting byte and rune
// arguments. The console backends are byte devices so runes are truncated to
// their low byte.
func fmtChar(w io.Writer, v interface{}) {
	switch c := v.(type) {
	case byte:
		singleByte[0] = c
		doWrite(w, singleByte)
	case rune:
		singleByte[0] = byte(c)
		doWrite(w, singleByte)
	default:
		doWrite(w, errWrongArgType)
	}
}

// fmtString writes a formatted version of string or []byte value v, applying
// the padding specified by padLen.
func fmtString(w io.Writer, v interface{}, padLen int) {
	switch sVal := v.(type) {
	case string:
		fmtRepeat(w, ' ', padLen-len(sVal))
		emitString(w, sVal)
	case []byte:
		fmtRepeat(w, ' ', padLen-len(sVal))
		doWrite(w, sVal)
	default:
		doWrite(w, errWrongArgType)
	}
}

// fmtRepeat writes count bytes with value ch.
func fmtRepeat(w io.Writer, ch byte, count int) {
	singleByte[0] = ch
	for i := 0; i < count; i++ {
		doWrite(w, singleByte)
	}
}

// fmtInt writes a formatted version of v in the requested base, applying the
// padding specified by padLen. All built-in signed and unsigned integer
// types are supported. Base-10 output is space-padded; base-8 and base-16
// output is zero-padded, with the sign of a negative number placed in front
// of the pad.
func fmtInt(w io.Writer, v interface{}, base, padLen int) {
	var (
		uval uint64
		neg  bool
	)

	switch n := v.(type) {
	case uint8:
		uval = uint64(n)
	case uint16:
		uval = uint64(n)
	case uint32:
		uval = uint64(n)
	case uint64:
		uval = n
	case uintptr:
		uval = uint64(n)
	case int8:
		neg, uval = n < 0, abs(int64(n))
	case int16:
		neg, uval = n < 0, abs(int64(n))
	case int32:
		neg, uval = n < 0, abs(int64(n))
	case int64:
		neg, uval = n < 0, abs(n)
	case int:
		neg, uval = n < 0, abs(int64(n))
	default:
		doWrite(w, errWrongArgType)
		return
	}

	padCh := byte('0')
	if base == 10 {
		padCh = ' '
	}

	if padLen > maxBufSize-1 {
		padLen = maxBufSize - 1
	}

	// Assemble the digits right to left.
	pos := len(numBuf)
	for {
		pos--
		digit := byte(uval % uint64(base))
		if digit < 10 {
			numBuf[pos] = '0' + digit
		} else {
			numBuf[pos] = 'a' + digit - 10
		}

		uval /= uint64(base)
		if uval == 0 {
			break
		}
	}

	if padCh == ' ' {
		// The sign sits next to the digits and counts towards the
		// requested width.
		if neg {
			pos--
			numBuf[pos] = '-'
		}
		for len(numBuf)-pos < padLen {
			pos--
			numBuf[pos] = ' '
		}
	} else {
		for len(numBuf)-pos < padLen {
			pos--
			numBuf[pos] = '0'
		}
		if neg {
			pos--
			numBuf[pos] = '-'
		}
	}

	doWrite(w, numBuf[pos:])
}

// abs returns the magnitude of n as a uint64.
func abs(n int64) uint64 {
	if n < 0 {
		return uint64(-n)
	}

	return uint64(n)
}

// doWrite is a proxy that uses the runtime.noescape hack to hide p from the
// compiler's escape analysis. Without the hack the compiler cannot prove
// that p stays put (w is an unknown io.Writer) and flags it as escaping,
// which makes every Printf call allocate through runtime.convT2E. An
// allocation before the Go allocator is initialized crashes the kernel.
func doWrite(w io.Writer, p []byte) {
	doRealWrite(w, noEscape(unsafe.Pointer(&p)))
}

func doRealWrite(w io.Writer, bufPtr unsafe.Pointer) {
	p := *(*[]byte)(bufPtr)
	if w != nil {
		w.Write(p)
	} else {
		earlyPrintBuffer.Write(p)
	}
}

// noEscape hides a pointer from escape analysis. This function is copied
// over from runtime/stubs.go.
//go:nosplit
func noEscape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}
