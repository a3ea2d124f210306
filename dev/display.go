//go:build tinygo

package dev

import (
	"fmt"
	"image/color"
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var white = color.RGBA{255, 255, 255, 255}

// Panel is the little status display: speed and mode on the top line,
// the tail of the decoded transmission below it.
type Panel struct {
	d         ssd1306.Device
	cfg       ssd1306.Config
	lastReset time.Time
}

func NewPanel(bus drivers.I2C) *Panel {
	return &Panel{
		d:   ssd1306.NewI2C(bus),
		cfg: ssd1306.Config{Width: 128, Height: 64, Address: 0x3C, VccState: ssd1306.SWITCHCAPVCC},
	}
}

func (p *Panel) Configure() {
	p.d.Configure(p.cfg)
	p.d.ClearDisplay()
	p.lastReset = time.Now()
}

// Status is one frame of what the operator sees.
type Status struct {
	WPM       int
	Iambic    bool
	Autospace bool
	Text      string
}

// Draw renders a frame. The controller sometimes wedges after a
// brown-out, so it is re-initialized every ten seconds.
func (p *Panel) Draw(st Status) {
	if time.Since(p.lastReset) > time.Second*10 {
		p.d.Configure(p.cfg)
		time.Sleep(time.Millisecond * 100)
		p.lastReset = time.Now()
	}

	p.d.ClearBuffer()
	mode := "LAST"
	if st.Iambic {
		mode = "IAMB"
	}
	autosp := "  "
	if st.Autospace {
		autosp = "AS"
	}
	tinyfont.WriteLine(&p.d, &proggy.TinySZ8pt7b, 0, 9, fmt.Sprintf("%2d WPM  %s %s", st.WPM, mode, autosp), white)

	y := int16(22)
	for _, line := range TailLines(st.Text, 21, 4) {
		tinyfont.WriteLine(&p.d, &proggy.TinySZ8pt7b, 0, y, line, white)
		y += 11
	}
	p.d.Display()
}
