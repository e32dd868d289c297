//go:build rp2040 || rp2350

package platform

import (
	"machine"

	"github.com/rzbrk/push2talk/keyboard"
	"github.com/rzbrk/push2talk/platform/boards"
	"github.com/rzbrk/push2talk/services/announce"
	"github.com/rzbrk/push2talk/store"
)

// GetResources configures the selected board's pins and peripherals.
func GetResources() Resources {
	bd := boards.Selected

	talk := machine.Pin(bd.TalkPin)
	talk.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	sel := machine.Pin(bd.SelectPin)
	sel.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	led := machine.Pin(bd.IndicatorPin)
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	res := Resources{
		Device:    bd.Device,
		Talk:      rpInputPin{talk},
		Select:    rpInputPin{sel},
		Indicator: rpOutputPin{led},
		Store:     store.NewFlash(),
	}

	switch bd.Sink {
	case "ezkey":
		uart := machine.UART0
		_ = uart.Configure(machine.UARTConfig{
			BaudRate: 9600,
			TX:       machine.UART0_TX_PIN,
			RX:       machine.UART0_RX_PIN,
		})
		res.Sink = keyboard.NewSerial(uart, machine.Serial)
	default:
		res.Sink = keyboard.NewUSB()
	}

	if bd.OLEDAddr != 0 {
		_ = machine.I2C0.Configure(machine.I2CConfig{
			Frequency: 400 * machine.KHz,
			SDA:       machine.I2C0_SDA_PIN,
			SCL:       machine.I2C0_SCL_PIN,
		})
		res.Display = announce.NewOLED(machine.I2C0, bd.OLEDAddr)
	}

	return res
}

type rpInputPin struct{ p machine.Pin }

func (r rpInputPin) Get() bool { return r.p.Get() }

type rpOutputPin struct{ p machine.Pin }

func (r rpOutputPin) Set(high bool) { r.p.Set(high) }
