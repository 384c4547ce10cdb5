// Command hostsim runs the whole measurement pipeline on the host against a
// simulated I2C bus: real bme280/ssd1306 drivers, real monitor service,
// canned ADC words. It prints each rendered frame and the readings the
// monitor publishes, which makes it the fastest way to eyeball a change to
// the compensation or render path without flashing a board.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"envmon-go/bus"
	"envmon-go/drivers/bme280"
	"envmon-go/drivers/ssd1306"
	"envmon-go/rtc"
	"envmon-go/services/config"
	"envmon-go/services/monitor"
	"envmon-go/types"
	"envmon-go/x/conv"
)

func main() {
	cfgPath := flag.String("config", "", "YAML simulation config (optional)")
	flag.Parse()

	cfg := Default()
	if *cfgPath != "" {
		var err error
		cfg, err = Load(*cfgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "hostsim:", err)
			os.Exit(1)
		}
	}

	sim := newSimBus(cfg.Samples)
	clk := newSimClock(rtc.Time{
		Hours:   cfg.Start.Hours,
		Minutes: cfg.Start.Minutes,
		Seconds: cfg.Start.Seconds,
	})

	sensor := bme280.New(sim)
	if err := sensor.Configure(); err != nil {
		fmt.Fprintln(os.Stderr, "hostsim: sensor:", err)
		os.Exit(1)
	}
	display := ssd1306.New(sim)
	if err := display.Configure(); err != nil {
		fmt.Fprintln(os.Stderr, "hostsim: display:", err)
		os.Exit(1)
	}

	b := bus.New(16)
	ctx, cancel := context.WithCancel(
		context.WithValue(context.Background(), config.CtxDeviceKey, "thermo"))
	defer cancel()

	config.NewService().Start(ctx, b.NewConnection("config"))
	time.Sleep(10 * time.Millisecond) // let the retained config land

	obs := b.NewConnection("hostsim")
	readings := obs.Subscribe("reading/env")
	defer obs.Disconnect()

	wake := make(chan struct{})
	done := make(chan error, 1)
	mon := monitor.New(sensor, display, clk)
	go func() {
		done <- mon.Start(ctx, b.NewConnection("monitor"), wake)
	}()

	for cycle := 0; cycle < cfg.Cycles; cycle++ {
		if cycle > 0 {
			sim.NextCycle()
			wake <- struct{}{}
		}
		select {
		case msg := <-readings.Channel():
			report(cycle, sim, clk, msg.Payload)
		case err := <-done:
			fmt.Fprintln(os.Stderr, "hostsim: monitor:", err)
			os.Exit(1)
		case <-time.After(2 * time.Second):
			fmt.Fprintln(os.Stderr, "hostsim: timed out waiting for a reading")
			os.Exit(1)
		}
	}
	cancel()
	<-done
}

func report(cycle int, sim *simBus, clk *simClock, payload any) {
	r, ok := payload.(types.EnvReading)
	if !ok {
		fmt.Fprintln(os.Stderr, "hostsim: unexpected payload type")
		os.Exit(1)
	}

	raw := sim.samples[cycle%len(sim.samples)]
	var hp, ht, hh [8]byte
	fmt.Printf("cycle %d  raw P=%s T=%s H=%s\n", cycle,
		conv.U32Hex(hp[:], raw.Press), conv.U32Hex(ht[:], raw.Temp), conv.U32Hex(hh[:], raw.Hum))
	var lt, lh, lp [16]byte
	fmt.Printf("  temp %s  hum %s  press %s\n",
		conv.FormatFixed(lt[:], r.TempInt, r.TempFrac, "C"),
		conv.FormatFixed(lh[:], r.HumInt, r.HumFrac, "%"),
		conv.FormatFixed(lp[:], r.PressInt, r.PressFrac, "hPa"))

	sched := clk.Scheduled()
	if len(sched) > 0 {
		next := sched[len(sched)-1]
		fmt.Printf("  next alarm %02d:%02d:%02d\n", next.Hours, next.Minutes, next.Seconds)
	}

	printFrame(sim.Frame())
}

// printFrame draws the captured display RAM as ASCII, one text row per
// glyph row actually in use (pages 0..2).
func printFrame(frame [8][128]byte) {
	for page := 0; page < 3; page++ {
		for bit := 0; bit < 8; bit++ {
			line := make([]byte, 128)
			for col := 0; col < 128; col++ {
				if frame[page][col]&(1<<bit) != 0 {
					line[col] = '#'
				} else {
					line[col] = ' '
				}
			}
			fmt.Printf("  |%s|\n", line)
		}
	}
}
