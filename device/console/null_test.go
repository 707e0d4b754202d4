package console

import "testing"

func TestNullConsoleCountsNothing(t *testing.T) {
	origTx := qemuTxByteFn
	defer func() { qemuTxByteFn = origTx }()

	var wireTraffic int
	qemuTxByteFn = func(byte) { wireTraffic++ }

	var cons NullConsole

	ops := []struct {
		descr string
		fn    func()
	}{
		{"Write", func() { cons.Write([]byte("the null console eats everything")) }},
		{"WriteString", func() { cons.WriteString("hi\n") }},
		{"WriteByte", func() { cons.WriteByte('\n') }},
		{"Flush", func() { cons.Flush() }},
		{"ReadByte", func() { cons.ReadByte() }},
		{"ClearRx", func() { cons.ClearRx() }},
	}

	for opIndex, op := range ops {
		op.fn()

		if got := cons.BytesWritten(); got != 0 {
			t.Fatalf("[op %d: %s] expected BytesWritten to stay 0; got %d", opIndex, op.descr, got)
		}

		if got := cons.BytesRead(); got != 0 {
			t.Fatalf("[op %d: %s] expected BytesRead to stay 0; got %d", opIndex, op.descr, got)
		}
	}

	if wireTraffic != 0 {
		t.Fatalf("expected the null console to produce no wire traffic; got %d bytes", wireTraffic)
	}
}

func TestNullConsoleWritesReportSuccess(t *testing.T) {
	var cons NullConsole

	if n, err := cons.Write([]byte("hello")); n != 5 || err != nil {
		t.Fatalf("expected Write to report (5, nil); got (%d, %v)", n, err)
	}

	if n, err := cons.WriteString("hi\n"); n != 3 || err != nil {
		t.Fatalf("expected WriteString to report (3, nil); got (%d, %v)", n, err)
	}

	if err := cons.WriteByte('x'); err != nil {
		t.Fatalf("expected WriteByte to succeed; got %v", err)
	}
}

func TestNullConsoleReadByteReturnsBlank(t *testing.T) {
	var cons NullConsole

	b, err := cons.ReadByte()
	if err != nil {
		t.Fatalf("expected ReadByte to succeed; got %v", err)
	}

	if b != ' ' {
		t.Fatalf("expected ReadByte to return a blank; got %q", b)
	}
}
