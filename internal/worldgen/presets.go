package worldgen

import (
	"fmt"
	"sort"
	"sync"
)

// PresetFactory constructs a configuration.
type PresetFactory func() Config

var (
	presetsMu sync.RWMutex
	presets   = map[string]PresetFactory{}
)

func init() {
	Register("default", DefaultConfig)
	Register("small", SmallConfig)
}

// Register adds a named preset. Registering the same name twice replaces the
// earlier factory.
func Register(name string, factory PresetFactory) {
	presetsMu.Lock()
	defer presetsMu.Unlock()
	presets[name] = factory
}

// Preset returns the configuration registered under name.
func Preset(name string) (Config, error) {
	presetsMu.RLock()
	factory, ok := presets[name]
	presetsMu.RUnlock()
	if !ok {
		return Config{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, name)
	}
	return factory(), nil
}

// Presets lists the registered preset names in sorted order.
func Presets() []string {
	presetsMu.RLock()
	defer presetsMu.RUnlock()
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
