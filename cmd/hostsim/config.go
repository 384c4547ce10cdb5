package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives the simulation: how many wake cycles to run, where the RTC
// starts, and the raw ADC words the simulated sensor serves per cycle
// (cycling through the list when there are more wakes than samples).
type Config struct {
	Cycles  int        `yaml:"cycles"`
	Start   StartTime  `yaml:"start"`
	Samples []RawWords `yaml:"samples"`
}

type StartTime struct {
	Hours   uint8 `yaml:"hours"`
	Minutes uint8 `yaml:"minutes"`
	Seconds uint8 `yaml:"seconds"`
}

type RawWords struct {
	Press uint32 `yaml:"press"`
	Temp  uint32 `yaml:"temp"`
	Hum   uint32 `yaml:"hum"`
}

// Default returns a configuration that exercises a plausible day: room
// conditions, then warmer, then a frosty reading, straddling midnight.
func Default() *Config {
	return &Config{
		Cycles: 3,
		Start:  StartTime{Hours: 23, Minutes: 55, Seconds: 2},
		Samples: []RawWords{
			{Press: 415148, Temp: 519888, Hum: 30000},
			{Press: 395000, Temp: 530000, Hum: 28000},
			{Press: 436000, Temp: 260000, Hum: 22000},
		},
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Cycles <= 0 {
		cfg.Cycles = 1
	}
	if len(cfg.Samples) == 0 {
		cfg.Samples = Default().Samples
	}
	return cfg, nil
}
