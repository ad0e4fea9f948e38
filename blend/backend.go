package blend

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-blend/blend/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Backend describes one registered lane backend.
type Backend struct {
	Name      string
	LaneWidth int
	Priority  int
	Supported bool // usable on the running CPU
}

var (
	laneBackend         *registry.OpEntry
	laneBackendInitOnce sync.Once
)

// Backends lists the registered lane backends, highest priority first.
func Backends() []Backend {
	defaultBackend() // sorts the registry
	features := cpu.DetectFeatures()

	entries := registry.Global.ListEntries()
	out := make([]Backend, len(entries))
	for i, e := range entries {
		out[i] = Backend{
			Name:      e.Name,
			LaneWidth: e.LaneWidth,
			Priority:  e.Priority,
			Supported: cpu.Supports(features, e.SIMDLevel),
		}
	}
	return out
}

// DefaultBackend returns the lane backend the vector executor uses when no
// backend is named.
func DefaultBackend() Backend {
	e := defaultBackend()
	return Backend{Name: e.Name, LaneWidth: e.LaneWidth, Priority: e.Priority, Supported: true}
}

func defaultBackend() *registry.OpEntry {
	laneBackendInitOnce.Do(initLaneBackend)
	return laneBackend
}

func initLaneBackend() {
	features := cpu.DetectFeatures()
	entry := registry.Global.Lookup(features)
	if entry == nil {
		panic("blend: no lane backend registered (missing generic fallback?)")
	}
	if entry.ScreenPackets == nil {
		panic("blend: selected lane backend missing ScreenPackets")
	}
	laneBackend = entry

	Logger().Debug("blend: lane backend selected",
		"backend", entry.Name,
		"lanes", entry.LaneWidth,
		"arch", features.Architecture)
}

// lookupBackend resolves a backend by name; "" selects the default.
func lookupBackend(name string) (*registry.OpEntry, error) {
	if name == "" {
		return defaultBackend(), nil
	}
	entry := registry.Global.Find(name)
	if entry == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	if !cpu.Supports(cpu.DetectFeatures(), entry.SIMDLevel) {
		return nil, fmt.Errorf("%w: %q not supported by this CPU", ErrUnknownBackend, name)
	}
	return entry, nil
}
