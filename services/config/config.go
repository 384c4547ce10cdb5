// Package config publishes the device's embedded configuration as retained
// bus messages, one topic per top-level key ("config/monitor", ...).
// Services subscribe to their own key and receive the retained value
// whenever they come up, in any start order.
package config

import (
	"context"
	"errors"

	"envmon-go/bus"

	"github.com/andreyvit/tinyjson"
)

const (
	serviceName  = "config"
	topicPrefix  = "config/"
	CtxDeviceKey = ctxKey("device")
)

type ctxKey string

// EmbeddedConfigLookup resolves a device ID to its raw JSON config. Tests
// override it.
var EmbeddedConfigLookup = func(device string) ([]byte, bool) {
	b, ok := embeddedConfigs[device]
	return b, ok
}

type Service struct {
	Name string
}

func NewService() *Service {
	return &Service{Name: serviceName}
}

// publishConfig decodes the embedded JSON object and publishes each
// top-level key retained.
func (s *Service) publishConfig(ctx context.Context, conn *bus.Connection) error {
	device, _ := ctx.Value(CtxDeviceKey).(string)
	if device == "" {
		return errors.New("config: missing device ID in context")
	}

	raw, ok := EmbeddedConfigLookup(device)
	if !ok || len(raw) == 0 {
		return errors.New("config: no embedded config for device: " + device)
	}

	r := tinyjson.Raw(raw)
	val := r.Value()
	r.EnsureEOF()

	m, ok := val.(map[string]any)
	if !ok {
		return errors.New("config: embedded config is not a JSON object")
	}

	for k, v := range m {
		conn.Publish(&bus.Message{
			Topic:    topicPrefix + k,
			Payload:  v,
			Retained: true,
		})
	}
	return nil
}

// Start publishes the config in the background. Failure is logged, not
// fatal: services fall back to their compiled-in defaults.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	go func() {
		if err := s.publishConfig(ctx, conn); err != nil {
			println("Warn:", err.Error())
		}
	}()
}
