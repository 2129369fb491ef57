// Package rkpower is the top-level facade (§4.8): it wires a chip variant's
// descriptor table and register layout to a sequencer, a dependency
// manager, and a QoS shadow store, and exposes the driver's public surface
// to callers outside the module. It is the only package in this module that
// performs logging, matching the teacher's convention of keeping device
// hot paths (core_engine/devices) free of log calls and logging only at the
// boundary (core_engine/virtual_machine.go).
package rkpower

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/drivercraft/rk3588-power/chip"
	"github.com/drivercraft/rk3588-power/depmgr"
	"github.com/drivercraft/rk3588-power/mmio"
	"github.com/drivercraft/rk3588-power/rkerr"
	"github.com/drivercraft/rk3588-power/sequencer"
)

// Re-export the error vocabulary at the package callers actually import.
var (
	ErrInvalidDomain    = rkerr.InvalidDomain
	ErrTimeout          = rkerr.Timeout
	ErrDependencyNotMet = rkerr.DependencyNotMet
	ErrUnsupported      = rkerr.Unsupported
)

// Error is the concrete error type every Driver method returns on failure.
type Error = rkerr.Error

// Options configures a Driver beyond the mandatory PMU base and variant.
type Options struct {
	// PollAttempts bounds every register poll the sequencer issues;
	// <= 0 uses mmio.DefaultPollAttempts.
	PollAttempts int

	// Bus serves QoS port reads/writes. Nil defaults to the same
	// backend used for PMU-relative access (true on every RK3568/RK3588
	// layout shipped so far, where QoS ports sit on the same bus).
	Bus mmio.Backend

	// Logger receives structured operational log entries. A nil Logger
	// gets a logrus.New() default at Info level.
	Logger *logrus.Logger
}

// Driver is the public entry point for one chip instance: a PMU register
// window plus the domain table for its variant. Driver is not safe for
// concurrent use by multiple goroutines without external serialization
// (§5) — the same restriction depmgr.Manager documents.
type Driver struct {
	variant chip.Variant
	table   *chip.Table
	mgr     *depmgr.Manager
	log     *logrus.Logger
}

// New constructs a Driver for variant, reading and writing PMU registers
// through pmu. It fails with ErrUnsupported if variant is not recognized.
func New(pmu mmio.Backend, variant chip.Variant, opts Options) (*Driver, error) {
	if !variant.Valid() {
		return nil, rkerr.New(rkerr.Unsupported, "new", 0, fmt.Errorf("unrecognized variant %d", int(variant)))
	}
	table, err := chip.TableFor(variant)
	if err != nil {
		return nil, rkerr.New(rkerr.Unsupported, "new:table", 0, err)
	}

	bus := opts.Bus
	if bus == nil {
		bus = pmu
	}
	log := opts.Logger
	if log == nil {
		log = logrus.New()
	}

	return &Driver{
		variant: variant,
		table:   table,
		mgr:     depmgr.New(table, pmu, bus, sequencer.Options{PollAttempts: opts.PollAttempts}),
		log:     log,
	}, nil
}

// NewFromBase is a convenience constructor for real hardware: it wraps base
// (already mapped into this process's address space) in a PMUBackend and
// calls New.
func NewFromBase(base uintptr, variant chip.Variant, opts Options) (*Driver, error) {
	return New(mmio.NewPMUBackend(base), variant, opts)
}

func (d *Driver) callID() string {
	return uuid.NewString()
}

// Variant reports the chip variant this Driver was constructed for.
func (d *Driver) Variant() chip.Variant { return d.variant }

// Table exposes the underlying descriptor table, for callers that want to
// enumerate domains or inspect dependency edges directly.
func (d *Driver) Table() *chip.Table { return d.table }

// PowerOn runs the power-on sequence for id without consulting or updating
// dependency state.
func (d *Driver) PowerOn(id chip.ID) error {
	entry := d.log.WithFields(logrus.Fields{"call_id": d.callID(), "op": "power-on", "domain": id})
	entry.Info("power-on start")
	if err := d.mgr.PowerOn(id); err != nil {
		entry.WithError(err).Warn("power-on failed")
		return err
	}
	entry.Info("power-on complete")
	return nil
}

// PowerOff runs the power-off sequence for id without consulting or
// updating dependency state.
func (d *Driver) PowerOff(id chip.ID) error {
	entry := d.log.WithFields(logrus.Fields{"call_id": d.callID(), "op": "power-off", "domain": id})
	entry.Info("power-off start")
	if err := d.mgr.PowerOff(id); err != nil {
		entry.WithError(err).Warn("power-off failed")
		return err
	}
	entry.Info("power-off complete")
	return nil
}

// PowerOnWithDeps enforces parent-before-child ordering (§4.7) before
// running the power-on sequence, and marks id active on success.
func (d *Driver) PowerOnWithDeps(id chip.ID) error {
	entry := d.log.WithFields(logrus.Fields{"call_id": d.callID(), "op": "power-on-with-deps", "domain": id})
	entry.Info("power-on-with-deps start")
	if err := d.mgr.PowerOnWithDeps(id); err != nil {
		entry.WithError(err).Warn("power-on-with-deps rejected or failed")
		return err
	}
	entry.Info("power-on-with-deps complete")
	return nil
}

// PowerOffWithDeps enforces child-before-parent ordering (§4.7) before
// running the power-off sequence, and marks id inactive on success.
func (d *Driver) PowerOffWithDeps(id chip.ID) error {
	entry := d.log.WithFields(logrus.Fields{"call_id": d.callID(), "op": "power-off-with-deps", "domain": id})
	entry.Info("power-off-with-deps start")
	if err := d.mgr.PowerOffWithDeps(id); err != nil {
		entry.WithError(err).Warn("power-off-with-deps rejected or failed")
		return err
	}
	entry.Info("power-off-with-deps complete")
	return nil
}

// ActiveDomains returns every domain ID the dependency manager currently
// considers powered on, in ascending order.
func (d *Driver) ActiveDomains() []chip.ID { return d.mgr.ActiveDomains() }

// HasShadow reports whether id has an outstanding QoS snapshot awaiting
// restore.
func (d *Driver) HasShadow(id chip.ID) bool { return d.mgr.HasShadow(id) }

// ClearShadow discards id's QoS snapshot without restoring it.
func (d *Driver) ClearShadow(id chip.ID) { d.mgr.ClearShadow(id) }

// ClearAllShadows discards every outstanding QoS snapshot.
func (d *Driver) ClearAllShadows() { d.mgr.ClearAllShadows() }

// Lookup returns the static descriptor for id, for callers that want
// register offsets or dependency edges without issuing any I/O.
func (d *Driver) Lookup(id chip.ID) (*chip.Descriptor, error) {
	desc, err := d.table.Lookup(id)
	if err != nil {
		return nil, rkerr.New(rkerr.InvalidDomain, "lookup", uint16(id), err)
	}
	return desc, nil
}
