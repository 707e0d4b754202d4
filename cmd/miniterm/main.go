// Command miniterm is a host-side serial bridge for talking to a board
// over a UART cable. It is not a terminal emulator: both directions are
// copied verbatim, so whatever the kernel transmits is exactly what
// appears on stdout and every local keystroke reaches the kernel as it
// was typed.
//
// Press ctrl-] to end the session.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tty "github.com/mattn/go-tty"
)

// escapeByte ends the session. 0x1d is ctrl-], same as telnet.
const escapeByte = 0x1d

var devFlag = flag.String("dev", "/dev/ttyUSB0", "serial device the board is attached to")

func main() {
	log.SetFlags(0)
	flag.Parse()

	dev, err := tty.OpenDevice(*devFlag)
	if err != nil {
		log.Fatalf("miniterm: open %s: %v", *devFlag, err)
	}
	defer dev.Close()
	_ = dev.MustRaw()

	local, err := tty.Open()
	if err != nil {
		log.Fatalf("miniterm: open local terminal: %v", err)
	}
	defer local.Close()

	fmt.Printf("miniterm: connected to %s, press ctrl-] to quit\n", *devFlag)

	// Raw mode from here on: keystrokes arrive one byte at a time and
	// nothing is echoed locally. The kernel echoes what it reads.
	restore := local.MustRaw()

	errc := make(chan error, 2)
	go func() {
		_, err := io.Copy(os.Stdout, dev.Input())
		errc <- err
	}()
	go func() {
		errc <- forward(dev.Output(), local.Input())
	}()

	err = <-errc
	restore()
	if err != nil && err != io.EOF {
		log.Fatalf("miniterm: %v", err)
	}
	fmt.Printf("\nminiterm: session closed\n")
}

// forward copies keystrokes from src to dst one byte at a time so the
// board sees them as they are typed. It returns nil once the escape byte
// is read; the escape byte itself is not forwarded.
func forward(dst io.Writer, src io.Reader) error {
	var b [1]byte
	for {
		n, err := src.Read(b[:])
		if err != nil {
			return err
		}
		if n == 0 {
			continue
		}
		if b[0] == escapeByte {
			return nil
		}
		if _, err := dst.Write(b[:1]); err != nil {
			return err
		}
	}
}
