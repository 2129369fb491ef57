// Package depmgr wraps the power sequencer with the parent-before-child
// power-on / child-before-parent power-off policy (§4.7 of the governing
// specification) and tracks the in-memory active set that policy consults.
package depmgr

import (
	"sort"
	"sync"

	"github.com/drivercraft/rk3588-power/chip"
	"github.com/drivercraft/rk3588-power/mmio"
	"github.com/drivercraft/rk3588-power/qos"
	"github.com/drivercraft/rk3588-power/rkerr"
	"github.com/drivercraft/rk3588-power/sequencer"
)

// Manager owns the active set and QoS shadow for one chip instance and
// dispatches the dependency-enforcing and non-enforcing power operations
// against it. Manager is not reentrant; concurrent calls on the same
// Manager from multiple goroutines require external serialization (§5).
type Manager struct {
	mu      sync.Mutex
	table   *chip.Table
	pmu     mmio.Backend
	bus     mmio.Backend
	shadows *qos.Shadows
	opts    sequencer.Options
	active  map[chip.ID]bool
}

// New constructs a Manager over table, using pmu for PMU-relative register
// access and bus for QoS port access.
func New(table *chip.Table, pmu, bus mmio.Backend, opts sequencer.Options) *Manager {
	return &Manager{
		table:   table,
		pmu:     pmu,
		bus:     bus,
		shadows: qos.NewShadows(),
		opts:    opts,
		active:  make(map[chip.ID]bool),
	}
}

// PowerOn runs the sequencer's power-on sequence for id without consulting
// or updating dependency state, for callers that manage ordering
// themselves.
func (m *Manager) PowerOn(id chip.ID) error {
	d, err := m.table.Lookup(id)
	if err != nil {
		return rkerr.New(rkerr.InvalidDomain, "power-on:lookup", uint16(id), err)
	}
	return sequencer.PowerOn(m.pmu, m.bus, m.table.Layout, d, m.shadows, m.opts)
}

// PowerOff runs the sequencer's power-off sequence for id without
// consulting or updating dependency state.
func (m *Manager) PowerOff(id chip.ID) error {
	d, err := m.table.Lookup(id)
	if err != nil {
		return rkerr.New(rkerr.InvalidDomain, "power-off:lookup", uint16(id), err)
	}
	return sequencer.PowerOff(m.pmu, m.bus, m.table.Layout, d, m.shadows, m.opts)
}

// PowerOnWithDeps verifies id's parent (if any) is active, runs power-on,
// and on success marks id active. No PMU writes occur if the precondition
// fails.
func (m *Manager) PowerOnWithDeps(id chip.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, err := m.table.Lookup(id)
	if err != nil {
		return rkerr.New(rkerr.InvalidDomain, "power-on-with-deps:lookup", uint16(id), err)
	}
	if !m.parentSatisfied(d) {
		return rkerr.New(rkerr.DependencyNotMet, "power-on-with-deps:parent-inactive", uint16(id), nil)
	}
	if err := sequencer.PowerOn(m.pmu, m.bus, m.table.Layout, d, m.shadows, m.opts); err != nil {
		return err
	}
	m.active[id] = true
	return nil
}

// PowerOffWithDeps verifies no active child of id exists, runs power-off,
// and on success marks id inactive. No PMU writes occur if the
// precondition fails.
func (m *Manager) PowerOffWithDeps(id chip.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, err := m.table.Lookup(id)
	if err != nil {
		return rkerr.New(rkerr.InvalidDomain, "power-off-with-deps:lookup", uint16(id), err)
	}
	for _, child := range m.table.Children(id) {
		if m.active[child.ID] {
			return rkerr.New(rkerr.DependencyNotMet, "power-off-with-deps:child-active", uint16(id), nil)
		}
	}
	if err := sequencer.PowerOff(m.pmu, m.bus, m.table.Layout, d, m.shadows, m.opts); err != nil {
		return err
	}
	m.active[id] = false
	return nil
}

// parentSatisfied reports whether d's parent-before-child precondition
// holds: d has no parent, its parent is already in the active set, or its
// parent is an always-on subtree root (PwrBit == NoBit) that the active set
// never tracks because PowerOnWithDeps/PowerOffWithDeps are never called on
// it.
func (m *Manager) parentSatisfied(d *chip.Descriptor) bool {
	if !d.HasParent {
		return true
	}
	if m.active[d.Parent] {
		return true
	}
	parent, err := m.table.Lookup(d.Parent)
	return err == nil && parent.PwrBit == chip.NoBit
}

// ActiveDomains returns every domain ID whose active-set flag is true, in
// ascending order.
func (m *Manager) ActiveDomains() []chip.ID {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]chip.ID, 0, len(m.active))
	for id, on := range m.active {
		if on {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HasShadow, ClearShadow, and ClearAllShadows expose the QoS shadow store
// for inspection and explicit clearing (§4.6).
func (m *Manager) HasShadow(id chip.ID) bool { return m.shadows.HasShadow(id) }
func (m *Manager) ClearShadow(id chip.ID)    { m.shadows.ClearShadow(id) }
func (m *Manager) ClearAllShadows()          { m.shadows.ClearAllShadows() }
