//go:build stm32f4

package board

import "machine"

// LEDPin is the user led on the Black Pill (STM32F411CEU6)
const LEDPin = machine.PC13

// ConfigureLED sets PC13 up as a push-pull output and returns the led, switched off.
func (p *Peripherals) ConfigureLED() *LED {
	LEDPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led := NewLED(LEDPin, LEDPolarity)
	led.Deactivate()
	return led
}
