package chip

// ID is a domain identifier: a small non-negative integer, unique within a
// chip variant. 0 is reserved for the always-on root domain; the sequencer
// treats it as a no-op target.
type ID uint16

// Bit indexes a bit position (0-31) within a PMU register. NoBit is the
// sentinel meaning "this domain has no software-controlled gate of this
// kind" — the corresponding sequencer sub-step is skipped entirely.
type Bit int8

const NoBit Bit = -1

// QoSPort is the physical base address of a 5-register QoS configuration
// block (see §4.6 / §6 of the governing specification).
type QoSPort uint64

// MaxQoSPorts is the cardinality ceiling the specification places on a
// single domain's qos_ports list.
const MaxQoSPorts = 8

// Descriptor is the static per-chip record for one power domain. Every
// field is read-only once constructed; mem_bits and qos_ports are never
// resized after construction.
type Descriptor struct {
	ID   ID
	Name string

	// PwrBit is the domain's bit in PWR_REQ/PWR_STATE, or NoBit if the
	// domain has no software-controlled main power (always on).
	PwrBit Bit

	// MemBits lists the domain's bits in MEM_REQ/MEM_STATE, in the order
	// they must be programmed. Empty for domains without controlled
	// memory.
	MemBits []Bit

	// ReqBit is the domain's bit in the bus-idle-request/ack/state
	// registers, or NoBit if the domain lacks a bus-idle gate.
	ReqBit Bit

	// RepairBit is the domain's bit in REPAIR_STATUS, or NoBit if no
	// repair wait applies.
	RepairBit Bit

	// HasParent and Parent together express the optional dependency
	// edge; ID 0 is a valid domain, so a sentinel ID cannot mean "no
	// parent".
	HasParent bool
	Parent    ID

	// QoSPorts lists the domain's QoS port base addresses in save/restore
	// order. len(QoSPorts) <= MaxQoSPorts.
	QoSPorts []QoSPort
}

// MemMask ORs every bit in MemBits into a single register mask, letting the
// sequencer program them in one masked write when the underlying register
// supports a multi-bit mask in a single cycle (§4.4).
func (d *Descriptor) MemMask() uint32 {
	var mask uint32
	for _, b := range d.MemBits {
		mask |= 1 << uint(b)
	}
	return mask
}
