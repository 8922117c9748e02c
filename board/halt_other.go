//go:build !cortexm

package board

// Halt blocks the calling goroutine forever. With nothing else running the Go runtime
// reports the deadlock and exits.
func Halt() {
	select {}
}
