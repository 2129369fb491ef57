package rkpower_test

import (
	"errors"
	"testing"

	"github.com/drivercraft/rk3588-power/chip"
	"github.com/drivercraft/rk3588-power/mmio"
	"github.com/drivercraft/rk3588-power/rkpower"
)

// armAll wires every descriptor in tbl so its request/state and
// request/ack register pairs settle after a couple of reads, letting a
// driver-level PowerOn/PowerOff succeed against the mock.
func armAll(backend *mmio.MockBackend, tbl *chip.Table) {
	var repairMask, memOffMask, pwrOffMask uint32
	for _, id := range tbl.Order {
		d, _ := tbl.Lookup(id)
		memMask := d.MemMask()
		pwrMask := uint32(0)
		if d.PwrBit != chip.NoBit {
			pwrMask = 1 << uint(d.PwrBit)
		}
		reqMask := uint32(0)
		if d.ReqBit != chip.NoBit {
			reqMask = 1 << uint(d.ReqBit)
		}
		if d.RepairBit != chip.NoBit {
			repairMask |= 1 << uint(d.RepairBit)
		}
		memOffMask |= memMask
		pwrOffMask |= pwrMask
		backend.OnSettle(tbl.Layout.MemReq, tbl.Layout.MemState, memMask, 0, 1)
		backend.OnSettle(tbl.Layout.BusIdleReq, tbl.Layout.BusIdleAck, reqMask, 0, 1)
		backend.OnSettle(tbl.Layout.BusIdleReq, tbl.Layout.BusIdleState, reqMask, 0, 1)
		backend.OnSettle(tbl.Layout.PwrReq, tbl.Layout.PwrState, pwrMask, 0, 1)
	}
	// A fresh MockBackend reads every register as 0, which under
	// ActiveHighIsOff already means "on". Seed the shared state registers
	// so every domain starts genuinely off and PowerOn has a transition to
	// drive.
	offValue := func(mask uint32) uint32 {
		if tbl.Layout.PowerPolarity == chip.ActiveHighIsOn {
			return 0
		}
		return mask
	}
	if memOffMask != 0 {
		backend.Seed(tbl.Layout.MemState, offValue(memOffMask))
	}
	if pwrOffMask != 0 {
		backend.Seed(tbl.Layout.PwrState, offValue(pwrOffMask))
	}
	if repairMask != 0 {
		backend.Seed(tbl.Layout.RepairStatus, repairMask)
	}
}

func newDriver(t *testing.T, v chip.Variant) (*rkpower.Driver, *mmio.MockBackend) {
	t.Helper()
	tbl, err := chip.TableFor(v)
	if err != nil {
		t.Fatalf("TableFor: %v", err)
	}
	backend := mmio.NewMockBackend()
	armAll(backend, tbl)
	drv, err := rkpower.New(backend, v, rkpower.Options{PollAttempts: 200})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return drv, backend
}

func TestNewRejectsUnsupportedVariant(t *testing.T) {
	_, err := rkpower.New(mmio.NewMockBackend(), chip.Variant(99), rkpower.Options{})
	if !errors.Is(err, rkpower.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestDriverPowerOnOffRoundTrip(t *testing.T) {
	drv, _ := newDriver(t, chip.RK3588)
	if err := drv.PowerOn(chip.RK3588GPU); err != nil {
		t.Fatalf("PowerOn: %v", err)
	}
	if err := drv.PowerOff(chip.RK3588GPU); err != nil {
		t.Fatalf("PowerOff: %v", err)
	}
}

func TestDriverWithDepsEnforcesOrdering(t *testing.T) {
	drv, _ := newDriver(t, chip.RK3588)

	if err := drv.PowerOnWithDeps(chip.RK3588NPU1); !errors.Is(err, rkpower.ErrDependencyNotMet) {
		t.Fatalf("expected ErrDependencyNotMet, got %v", err)
	}
	if err := drv.PowerOnWithDeps(chip.RK3588NPUTOP); err != nil {
		t.Fatalf("PowerOnWithDeps(NPUTOP): %v", err)
	}
	if err := drv.PowerOnWithDeps(chip.RK3588NPU1); err != nil {
		t.Fatalf("PowerOnWithDeps(NPU1): %v", err)
	}

	active := drv.ActiveDomains()
	if len(active) != 2 {
		t.Fatalf("expected 2 active domains, got %v", active)
	}

	if err := drv.PowerOffWithDeps(chip.RK3588NPUTOP); !errors.Is(err, rkpower.ErrDependencyNotMet) {
		t.Fatalf("expected ErrDependencyNotMet powering off parent with active child, got %v", err)
	}
	if err := drv.PowerOffWithDeps(chip.RK3588NPU1); err != nil {
		t.Fatalf("PowerOffWithDeps(NPU1): %v", err)
	}
	if err := drv.PowerOffWithDeps(chip.RK3588NPUTOP); err != nil {
		t.Fatalf("PowerOffWithDeps(NPUTOP): %v", err)
	}
}

func TestDriverLookupUnknownDomain(t *testing.T) {
	drv, _ := newDriver(t, chip.RK3568)
	_, err := drv.Lookup(chip.ID(9999))
	if !errors.Is(err, rkpower.ErrInvalidDomain) {
		t.Fatalf("expected ErrInvalidDomain, got %v", err)
	}
}

func TestDriverQoSShadowPassthrough(t *testing.T) {
	drv, _ := newDriver(t, chip.RK3588)
	if err := drv.PowerOn(chip.RK3588GPU); err != nil {
		t.Fatalf("PowerOn: %v", err)
	}
	if err := drv.PowerOff(chip.RK3588GPU); err != nil {
		t.Fatalf("PowerOff: %v", err)
	}
	if !drv.HasShadow(chip.RK3588GPU) {
		t.Fatal("expected a QoS shadow after powering off a domain with QoS ports")
	}
	drv.ClearShadow(chip.RK3588GPU)
	if drv.HasShadow(chip.RK3588GPU) {
		t.Fatal("expected shadow cleared")
	}
}
