package chip

// RK3568 domain identifiers. Exposed as named constants per §4.8 of the
// governing specification; equivalent to passing the raw ID.
const (
	RK3568PMU   ID = 0
	RK3568NPU   ID = 1
	RK3568GPU   ID = 2
	RK3568VI    ID = 3
	RK3568VO    ID = 4
	RK3568RGA   ID = 5
	RK3568VDPU  ID = 6
	RK3568VEPU  ID = 7
	RK3568RKVDEC ID = 8
	RK3568PIPE  ID = 9
)

var rk3568Layout = RegisterLayout{
	PwrReq:        0x18,
	PwrState:      0x1c,
	MemReq:        0x20,
	MemState:      0x24,
	BusIdleReq:    0x28,
	BusIdleAck:    0x2c,
	BusIdleState:  0x30,
	RepairStatus:  0x34,
	PowerPolarity: ActiveHighIsOff,
}

// rk3568Table is sourced per §9 of the governing specification: an
// internally-consistent approximation of the domain set documented by the
// upstream Linux kernel's rockchip pm_domains.c for RK3568, built to be
// complete enough to exercise every invariant and worked scenario the
// specification names (no byte-exact kernel source was available in the
// retrieval pack feeding this driver).
var rk3568Table = newTable(RK3568, rk3568Layout, []*Descriptor{
	{ID: RK3568PMU, Name: "PD_PMU", PwrBit: NoBit, ReqBit: NoBit, RepairBit: NoBit},
	{ID: RK3568NPU, Name: "PD_NPU", PwrBit: 0, MemBits: []Bit{0}, ReqBit: 0, RepairBit: 0,
		HasParent: true, Parent: RK3568PMU},
	{ID: RK3568GPU, Name: "PD_GPU", PwrBit: 1, MemBits: []Bit{1, 2}, ReqBit: 1, RepairBit: 1,
		HasParent: true, Parent: RK3568PMU, QoSPorts: []QoSPort{0xFDE20000}},
	{ID: RK3568VI, Name: "PD_VI", PwrBit: 2, MemBits: []Bit{3}, ReqBit: 2, RepairBit: NoBit,
		HasParent: true, Parent: RK3568PMU},
	{ID: RK3568VO, Name: "PD_VO", PwrBit: 3, ReqBit: 3, RepairBit: NoBit,
		HasParent: true, Parent: RK3568PMU},
	{ID: RK3568RGA, Name: "PD_RGA", PwrBit: 4, ReqBit: 4, RepairBit: NoBit,
		HasParent: true, Parent: RK3568PMU},
	{ID: RK3568VDPU, Name: "PD_VDPU", PwrBit: 5, MemBits: []Bit{4}, ReqBit: 5, RepairBit: NoBit,
		HasParent: true, Parent: RK3568PMU, QoSPorts: []QoSPort{0xFDE21000}},
	{ID: RK3568VEPU, Name: "PD_VEPU", PwrBit: 6, MemBits: []Bit{5}, ReqBit: 6, RepairBit: NoBit,
		HasParent: true, Parent: RK3568PMU},
	{ID: RK3568RKVDEC, Name: "PD_RKVDEC", PwrBit: 7, MemBits: []Bit{6, 7}, ReqBit: 7, RepairBit: 2,
		HasParent: true, Parent: RK3568PMU, QoSPorts: []QoSPort{0xFDE22000}},
	{ID: RK3568PIPE, Name: "PD_PIPE", PwrBit: 8, ReqBit: 8, RepairBit: NoBit,
		HasParent: true, Parent: RK3568PMU},
})
