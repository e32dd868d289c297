package announce

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/rzbrk/push2talk/x/strconvx"
)

// OLED renders the selection on a 128x32 SSD1306 over I2C.
type OLED struct {
	dev *ssd1306.Device
}

func NewOLED(i2c drivers.I2C, addr uint16) *OLED {
	dev := ssd1306.NewI2C(i2c)
	dev.Configure(ssd1306.Config{
		Width:   128,
		Height:  32,
		Address: addr,
	})
	dev.ClearDisplay()
	return &OLED{dev: dev}
}

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func (o *OLED) ShowSelection(index int, label string) error {
	o.dev.ClearBuffer()
	tinyfont.WriteLine(o.dev, &proggy.TinySZ8pt7b, 0, 10, "profile "+strconvx.Itoa(index), white)
	tinyfont.WriteLine(o.dev, &proggy.TinySZ8pt7b, 0, 24, label, white)
	return o.dev.Display()
}
