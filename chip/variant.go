// Package chip holds the static, read-only per-chip data the rest of the
// driver consults: which PMU register offsets a variant exposes, and which
// domains exist with their bit positions and dependency edges. Nothing in
// this package performs I/O; it is pure data plus O(1)/O(N) lookup helpers.
package chip

import "fmt"

// Variant is the closed set of supported chip families. Each selects a
// RegisterLayout and a domain descriptor table.
type Variant int

const (
	RK3568 Variant = iota
	RK3588
)

func (v Variant) String() string {
	switch v {
	case RK3568:
		return "RK3568"
	case RK3588:
		return "RK3588"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Valid reports whether v is a recognized variant.
func (v Variant) Valid() bool {
	switch v {
	case RK3568, RK3588:
		return true
	default:
		return false
	}
}

// Polarity describes what a PMU power/memory-power register's "1" bit
// means. The RK convention observed in §6 of the driver's governing
// specification is ActiveHighIsOff on every variant shipped so far, but the
// sequencer consults this field rather than assuming it, per the design
// guidance against hardcoding polarity.
type Polarity int

const (
	// ActiveHighIsOff: a set bit in the request/state register means
	// "request power off" / "is currently off". This is the Rockchip
	// convention for PWR_REQ/PWR_STATE and MEM_REQ/MEM_STATE.
	ActiveHighIsOff Polarity = iota
	// ActiveHighIsOn: a set bit means "request power on" / "is on".
	ActiveHighIsOn
)

// RegisterLayout fixes the PMU register offsets and polarity for one chip
// variant. Offsets are relative to the PMU base address the driver is
// constructed with.
type RegisterLayout struct {
	PwrReq   uint64
	PwrState uint64

	MemReq   uint64
	MemState uint64

	BusIdleReq   uint64
	BusIdleAck   uint64
	BusIdleState uint64

	RepairStatus uint64

	// PowerPolarity applies to PwrReq/PwrState and MemReq/MemState alike:
	// both register pairs share the same "on vs off" bit convention on
	// every RK variant observed.
	PowerPolarity Polarity
}
