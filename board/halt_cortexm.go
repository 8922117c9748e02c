//go:build cortexm

package board

import "device/arm"

// Halt stops the processor for good: interrupts off, then wait for an interrupt that
// can never arrive. Only a reset gets out of here.
func Halt() {
	arm.DisableInterrupts()
	for {
		arm.Asm("wfi")
	}
}
