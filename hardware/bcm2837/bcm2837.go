// Package bcm2837 describes the peripheral memory map of the Broadcom
// BCM2837, the SoC of the Raspberry Pi 3. Register blocks are plain structs
// of volatile registers overlaid on fixed physical addresses; earlier boot
// stages are responsible for mapping the window device-uncached and strictly
// ordered.
package bcm2837

import "unsafe"

// MMIOBase is the ARM physical address of the BCM2837 peripheral window.
const MMIOBase uintptr = 0x3F000000

var (
	GPIO  = (*GPIORegisterMap)(unsafe.Pointer(MMIOBase + 0x00200000))
	UART0 = (*PL011RegisterMap)(unsafe.Pointer(MMIOBase + 0x00201000))
)
