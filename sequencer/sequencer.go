// Package sequencer implements the power-on/power-off state machine (§4.3
// of the governing specification): the ordered sequence of masked register
// writes and poll-wait confirmations that drives one domain between
// powered-on and powered-off, including the optional memory-power,
// bus-idle, repair-wait, and QoS save/restore sub-stages.
package sequencer

import (
	"github.com/drivercraft/rk3588-power/chip"
	"github.com/drivercraft/rk3588-power/mmio"
	"github.com/drivercraft/rk3588-power/qos"
	"github.com/drivercraft/rk3588-power/rkerr"
)

// Options bundles the knobs a caller rarely needs to change; PollAttempts
// <= 0 uses mmio.DefaultPollAttempts.
type Options struct {
	PollAttempts int
}

// PowerOn drives d from its current hardware state to powered-on, running
// memory power-on, bus-idle cancellation, main power-on, repair wait, and
// QoS restore in that order. Any sub-step's descriptor field being the
// sentinel skips that sub-step. pmu serves PMU-relative registers; bus
// serves the domain's QoS ports (absolute physical addresses).
func PowerOn(pmu, bus mmio.Backend, layout chip.RegisterLayout, d *chip.Descriptor, shadows *qos.Shadows, opts Options) error {
	onSet := layout.PowerPolarity == chip.ActiveHighIsOn

	if err := ensureMask(pmu, layout.MemReq, layout.MemState, d.MemMask(), onSet, opts.PollAttempts); err != nil {
		return rkerr.New(rkerr.Timeout, "power-on:memory", uint16(d.ID), err)
	}

	if err := busIdle(pmu, layout, d, false, opts.PollAttempts); err != nil {
		return rkerr.New(rkerr.Timeout, "power-on:bus-idle", uint16(d.ID), err)
	}

	if err := ensureMask(pmu, layout.PwrReq, layout.PwrState, pwrMask(d), onSet, opts.PollAttempts); err != nil {
		return rkerr.New(rkerr.Timeout, "power-on:main-power", uint16(d.ID), err)
	}

	if err := repairWait(pmu, layout, d, opts.PollAttempts); err != nil {
		return rkerr.New(rkerr.Timeout, "power-on:repair", uint16(d.ID), err)
	}

	if shadows != nil && shadows.HasShadow(d.ID) {
		qos.Restore(bus, d, shadows)
	}
	return nil
}

// PowerOff drives d from its current hardware state to powered-off, saving
// QoS state first, then asserting bus idle, gating main power, and finally
// gating memory power.
func PowerOff(pmu, bus mmio.Backend, layout chip.RegisterLayout, d *chip.Descriptor, shadows *qos.Shadows, opts Options) error {
	onSet := layout.PowerPolarity == chip.ActiveHighIsOn
	offSet := !onSet

	if shadows != nil {
		qos.Save(bus, d, shadows)
	}

	if err := busIdle(pmu, layout, d, true, opts.PollAttempts); err != nil {
		return rkerr.New(rkerr.Timeout, "power-off:bus-idle", uint16(d.ID), err)
	}

	if err := ensureMask(pmu, layout.PwrReq, layout.PwrState, pwrMask(d), offSet, opts.PollAttempts); err != nil {
		return rkerr.New(rkerr.Timeout, "power-off:main-power", uint16(d.ID), err)
	}

	if err := ensureMask(pmu, layout.MemReq, layout.MemState, d.MemMask(), offSet, opts.PollAttempts); err != nil {
		return rkerr.New(rkerr.Timeout, "power-off:memory", uint16(d.ID), err)
	}
	return nil
}

func pwrMask(d *chip.Descriptor) uint32 {
	if d.PwrBit == chip.NoBit {
		return 0
	}
	return 1 << uint(d.PwrBit)
}

// ensureMask drives the bits in mask (within reqOffset/stateOffset) to
// setToReachTarget, first checking whether the state register already
// reports the target value — the idempotence shortcut the specification
// calls for, so a repeated power-on/power-off of an already-transitioned
// domain issues no redundant memory-power or main-power writes (the
// bus-idle handshake in busIdle has no such check and is re-issued). A
// zero mask (sentinel field) is always a no-op.
func ensureMask(pmu mmio.Backend, reqOffset, stateOffset uint64, mask uint32, setToReachTarget bool, attempts int) error {
	if mask == 0 {
		return nil
	}
	var want uint32
	if setToReachTarget {
		want = mask
	}
	if pmu.Read32(stateOffset)&mask == want {
		return nil
	}
	mmio.MaskedWrite(pmu, reqOffset, mask, setToReachTarget)
	return mmio.PollBits(pmu, stateOffset, mask, setToReachTarget, attempts)
}

// busIdle implements the three-register handshake of §4.5: assert writes 1
// and polls ack then state to 1; deassert writes 0 and polls both to 0.
// Polling of ack and state is sequential, never interleaved.
func busIdle(pmu mmio.Backend, layout chip.RegisterLayout, d *chip.Descriptor, assert bool, attempts int) error {
	if d.ReqBit == chip.NoBit {
		return nil
	}
	mask := uint32(1) << uint(d.ReqBit)
	mmio.MaskedWrite(pmu, layout.BusIdleReq, mask, assert)
	if err := mmio.PollBits(pmu, layout.BusIdleAck, mask, assert, attempts); err != nil {
		return err
	}
	return mmio.PollBits(pmu, layout.BusIdleState, mask, assert, attempts)
}

// repairWait polls REPAIR_STATUS until d's repair bit reports complete.
// Skipped entirely when the descriptor carries no repair bit.
func repairWait(pmu mmio.Backend, layout chip.RegisterLayout, d *chip.Descriptor, attempts int) error {
	if d.RepairBit == chip.NoBit {
		return nil
	}
	mask := uint32(1) << uint(d.RepairBit)
	return mmio.PollBits(pmu, layout.RepairStatus, mask, true, attempts)
}
