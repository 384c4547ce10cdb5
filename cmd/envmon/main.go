// Command envmon is the device entry point: bring up the I2C bus, configure
// the sensor and the panel, then hand control to the monitor service's
// wake loop. Any fatal error parks the device in a low-activity state; with
// no sensor and no network there is nothing useful left to run.
package main

import (
	"context"
	"time"

	"envmon-go/bus"
	"envmon-go/drivers/bme280"
	"envmon-go/drivers/ssd1306"
	"envmon-go/services/config"
	"envmon-go/services/monitor"
)

const deviceID = "thermo"

func main() {
	i2c, err := openBus()
	if err != nil {
		halt("i2c", err)
	}

	sensor := bme280.New(i2c)
	if err := sensor.Configure(); err != nil {
		halt("bme280", err)
	}
	display := ssd1306.New(i2c)
	if err := display.Configure(); err != nil {
		halt("ssd1306", err)
	}

	b := bus.New(8)
	ctx := context.WithValue(context.Background(), config.CtxDeviceKey, deviceID)
	config.NewService().Start(ctx, b.NewConnection("config"))

	clk := newTimerClock()
	mon := monitor.New(sensor, display, clk)
	if err := mon.Start(ctx, b.NewConnection("monitor"), clk.Wake()); err != nil {
		halt("monitor", err)
	}
}

func halt(what string, err error) {
	println("Fatal:", what, err.Error())
	for {
		time.Sleep(time.Hour)
	}
}
