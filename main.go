//go:build tinygo

package main

import (
	"machine"
	"time"

	"github.com/tinycw/elbug/config"
	"github.com/tinycw/elbug/dev"
	"github.com/tinycw/elbug/keyer"
	"github.com/tinycw/elbug/morse"
)

//go:generate tinygo flash -target=pico

func main() {
	machine.InitADC()

	paddles, err := dev.NewPaddles(config.PaddleDot, config.PaddleDash, false)
	if err != nil {
		println("paddles: " + err.Error())
		return
	}
	paddles.Configure()

	key := dev.NewKeyLine(config.KeyOut)
	key.Configure()
	led := dev.NewKeyLine(config.StatusLED)
	led.Configure()
	tone := dev.NewSidetone(config.Buzzer)
	tone.Configure()

	pot := dev.NewSpeedPot(config.SpeedPot, config.PotOversample)
	pot.Configure()

	machine.I2C0.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz})
	// the delay is needed for display start from a cold reboot, not sure why
	time.Sleep(time.Second)
	panel := dev.NewPanel(machine.I2C0)
	panel.Configure()

	cfg := keyer.DefaultConfig()
	k, err := keyer.New(cfg, paddles, dev.Fanout{key, tone, led}, pot)
	if err != nil {
		println("keyer: " + err.Error())
		return
	}
	tracker := morse.NewTracker(morse.NewDecoder(feedDecoded))

	machine.Watchdog.Configure(machine.WatchdogConfig{
		TimeoutMillis: 3000,
	})
	machine.Watchdog.Start()

	go runStation(panel, cfg)

	ticker := time.NewTicker(config.TickPeriod)
	for range ticker.C {
		k.Tick()
		tracker.Tick(k.KeyDown(), k.Unit())
		unitNow.Store(int32(k.Unit()))
		machine.Watchdog.Update()
	}
}
