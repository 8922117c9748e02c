package board

// Polarity is the pin level that lights the led.
type Polarity uint8

const (
	// ActiveHigh leds light when the pin is driven high
	ActiveHigh Polarity = iota
	// ActiveLow leds light when the pin is driven low (sinks current)
	ActiveLow
)

// LEDPolarity is the wiring of the Black Pill user led: PC13 sinks the led's
// current, so driving the pin LOW turns the led ON.
const LEDPolarity = ActiveLow

// Pin is the part of machine.Pin the led needs.
type Pin interface {
	High()
	Low()
}

// LED is a led on a push-pull output pin. It implements ledpattern.Output.
type LED struct {
	pin      Pin
	polarity Polarity
}

// NewLED wraps a configured output pin.
func NewLED(pin Pin, polarity Polarity) *LED {
	return &LED{pin: pin, polarity: polarity}
}

// Activate lights the led
func (l *LED) Activate() {
	if l.polarity == ActiveLow {
		l.pin.Low()
		return
	}
	l.pin.High()
}

// Deactivate puts the led out
func (l *LED) Deactivate() {
	if l.polarity == ActiveLow {
		l.pin.High()
		return
	}
	l.pin.Low()
}
