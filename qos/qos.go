// Package qos implements the per-domain QoS shadow save/restore engine
// (§4.6 of the governing specification): a snapshot of each QoS port's five
// bus-arbiter registers taken before power-off and reprogrammed after
// power-on, so bus-priority configuration survives a power cycle.
package qos

import (
	"sync"

	"github.com/drivercraft/rk3588-power/chip"
	"github.com/drivercraft/rk3588-power/mmio"
)

// Port register offsets relative to a QoS port's base address (§6).
const (
	offPriority   uint64 = 0x08
	offMode       uint64 = 0x0c
	offBandwidth  uint64 = 0x10
	offSaturation uint64 = 0x14
	offExtControl uint64 = 0x18
)

// Tuple is one QoS port's five configuration registers.
type Tuple struct {
	Priority   uint32
	Mode       uint32
	Bandwidth  uint32
	Saturation uint32
	ExtControl uint32
}

// Shadows is the dynamic mapping from domain ID to its saved port tuples.
// Absence of an entry means no snapshot is held for that domain. A domain's
// shadow, once present, always has exactly len(descriptor.QoSPorts) tuples.
type Shadows struct {
	mu   sync.Mutex
	byID map[chip.ID][]Tuple
}

// NewShadows returns an empty shadow store.
func NewShadows() *Shadows {
	return &Shadows{byID: make(map[chip.ID][]Tuple)}
}

// HasShadow reports whether a snapshot is held for id.
func (s *Shadows) HasShadow(id chip.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.byID[id]
	return ok
}

// ClearShadow discards any snapshot held for id. A no-op if none exists.
func (s *Shadows) ClearShadow(id chip.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
}

// ClearAllShadows discards every snapshot.
func (s *Shadows) ClearAllShadows() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = make(map[chip.ID][]Tuple)
}

// Save snapshots every QoS port of d into the shadow store, in port order.
// It is a no-op if d has no QoS ports, or if a shadow already exists for
// d.ID — a second save while a snapshot is outstanding must never overwrite
// the original (the caller may power-cycle the domain repeatedly without
// having touched the ports in between).
func Save(bus mmio.Backend, d *chip.Descriptor, shadows *Shadows) {
	if len(d.QoSPorts) == 0 {
		return
	}
	shadows.mu.Lock()
	defer shadows.mu.Unlock()
	if _, exists := shadows.byID[d.ID]; exists {
		return
	}

	tuples := make([]Tuple, len(d.QoSPorts))
	for i, port := range d.QoSPorts {
		base := uint64(port)
		tuples[i] = Tuple{
			Priority:   bus.Read32(base + offPriority),
			Mode:       bus.Read32(base + offMode),
			Bandwidth:  bus.Read32(base + offBandwidth),
			Saturation: bus.Read32(base + offSaturation),
			ExtControl: bus.Read32(base + offExtControl),
		}
	}
	shadows.byID[d.ID] = tuples
}

// Restore reprograms every QoS port of d from its shadow, in the order
// priority, mode, bandwidth, saturation, extcontrol per port, then drops
// the shadow. It is a no-op if no shadow is held for d.ID.
func Restore(bus mmio.Backend, d *chip.Descriptor, shadows *Shadows) {
	shadows.mu.Lock()
	tuples, ok := shadows.byID[d.ID]
	if ok {
		delete(shadows.byID, d.ID)
	}
	shadows.mu.Unlock()
	if !ok {
		return
	}

	for i, port := range d.QoSPorts {
		if i >= len(tuples) {
			break
		}
		base := uint64(port)
		t := tuples[i]
		bus.Write32(base+offPriority, t.Priority)
		bus.Write32(base+offMode, t.Mode)
		bus.Write32(base+offBandwidth, t.Bandwidth)
		bus.Write32(base+offSaturation, t.Saturation)
		bus.Write32(base+offExtControl, t.ExtControl)
	}
}
