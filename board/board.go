// Package board provides the platform pieces the pattern sequencer needs on an
// STM32F411 Black Pill: a one-time claim on the peripherals, the clock settings,
// the user led on PC13 and a busy-wait delay.
//
// Initialisation can fail (see StatusErr) and every failure is fatal - the caller
// is expected to Halt. Once running, nothing here returns an error.
//
//	p, err := board.Take()
//	if err != nil {
//		board.Halt()
//	}
//	clocks, err := p.FreezeClocks(board.DefaultClockConfig)
//	...
package board

import (
	"fmt"
	"sync/atomic"
)

// Status is used for error reporting - see StatusErr
type Status int

// Error codes
const (
	PeripheralsTaken = iota + 1
	BadClockConfig
	ClocksNotFrozen
)

// StatusErr is an implementation of error interface to include a Status integer
type StatusErr struct {
	Status  Status
	Message string
}

func (se StatusErr) Error() string {
	return se.Message
}

// MHz in Hz
const MHz = 1_000_000

// Frequency limits for the STM32F411 (RM0383). The HSE crystal must be 4-26MHz
// and SYSCLK can not exceed 100MHz.
const (
	minHSE    = 4 * MHz
	maxHSE    = 26 * MHz
	maxSysClk = 100 * MHz
)

// DefaultClockConfig is the Black Pill's 25MHz crystal run up to 84MHz.
var DefaultClockConfig = ClockConfig{
	HSE:    25 * MHz,
	SysClk: 84 * MHz,
}

var taken uint32

// Peripherals is exclusive ownership of the chip's hardware. There is only ever one.
type Peripherals struct {
	clocks Clocks
}

// Take claims the peripherals. It succeeds once per reset.
func Take() (*Peripherals, error) {
	if !atomic.CompareAndSwapUint32(&taken, 0, 1) {
		return nil, StatusErr{
			Status:  PeripheralsTaken,
			Message: "peripherals already taken",
		}
	}
	return &Peripherals{}, nil
}

// Release gives the peripherals back so Take can succeed again. The firmware never
// calls it; the host simulator does when a run finishes.
func (p *Peripherals) Release() {
	atomic.StoreUint32(&taken, 0)
}

// ClockConfig asks for an external crystal frequency and a system clock, both in Hz.
type ClockConfig struct {
	HSE    uint32
	SysClk uint32
}

// Clocks is a frozen clock configuration. The zero value is not frozen and is
// refused by NewDelay.
type Clocks struct {
	hse    uint32
	sysclk uint32
}

// HSE is the requested external oscillator frequency in Hz
func (c Clocks) HSE() uint32 { return c.hse }

// SysClk is the requested system clock frequency in Hz
func (c Clocks) SysClk() uint32 { return c.sysclk }

// Frozen reports whether the clocks came from FreezeClocks.
func (c Clocks) Frozen() bool { return c.sysclk != 0 }

// String reports the requested frequencies. They are not measured from the chip.
func (c Clocks) String() string {
	return fmt.Sprintf("requested hse=%dMHz sysclk=%dMHz", c.hse/MHz, c.sysclk/MHz)
}

// FreezeClocks checks cfg against the chip's limits and fixes it for the life of the
// program. It does not touch RCC: the runtime has already programmed the PLL by the
// time main runs, so the result holds the requested frequencies, which can differ
// from what the runtime actually set.
func (p *Peripherals) FreezeClocks(cfg ClockConfig) (Clocks, error) {
	if p.clocks.Frozen() {
		return p.clocks, nil
	}

	if cfg.HSE < minHSE || cfg.HSE > maxHSE {
		return Clocks{}, StatusErr{
			Status:  BadClockConfig,
			Message: fmt.Sprintf("hse %dHz outside %d-%dHz", cfg.HSE, minHSE, maxHSE),
		}
	}
	if cfg.SysClk == 0 || cfg.SysClk > maxSysClk {
		return Clocks{}, StatusErr{
			Status:  BadClockConfig,
			Message: fmt.Sprintf("sysclk %dHz outside 1-%dHz", cfg.SysClk, maxSysClk),
		}
	}

	p.clocks = Clocks{hse: cfg.HSE, sysclk: cfg.SysClk}
	return p.clocks, nil
}
