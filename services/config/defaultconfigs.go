package config

// Embedded per-device configuration. Key: device ID (placed in ctx under
// CtxDeviceKey). Val: raw JSON for that device. Populate manually or via
// code generation at build time.

const cfgThermo = `{
  "monitor": {
      "wake_minutes": 10
  }
}`

var embeddedConfigs = map[string][]byte{
	"thermo": []byte(cfgThermo),
}
