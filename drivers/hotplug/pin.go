package hotplug

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// OpenPin initializes the host drivers and returns the named GPIO, set up to
// report rising edges like the transmitter's interrupt output.
func OpenPin(name string) (gpio.PinIn, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("hotplug: periph host init: %w", err)
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("hotplug: no gpio %q", name)
	}
	if err := p.In(gpio.PullNoChange, gpio.RisingEdge); err != nil {
		return nil, fmt.Errorf("hotplug: %s: %w", name, err)
	}
	return p, nil
}

var _ EdgeSource = gpio.PinIn(nil)
