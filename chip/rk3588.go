package chip

// RK3588 domain identifiers. The NPU and VCODEC sub-hierarchies below
// reproduce the parent/child shapes the governing specification's worked
// scenarios (S1, S5) name literally.
const (
	RK3588PMU     ID = 0
	RK3588NPUTOP  ID = 1
	RK3588NPU0    ID = 2
	RK3588NPU1    ID = 3
	RK3588GPU     ID = 4
	RK3588VCODEC  ID = 5
	RK3588VENC0   ID = 6
	RK3588VENC1   ID = 7
	RK3588RKVDEC0 ID = 8
	RK3588RKVDEC1 ID = 9
	RK3588VDPU    ID = 10
	RK3588RGA30   ID = 11
	RK3588VI      ID = 12
	RK3588VO0     ID = 13
	RK3588VO1     ID = 14
	RK3588AV1     ID = 15
	RK3588USB     ID = 16
	RK3588PCIE    ID = 17
	RK3588SDIO    ID = 18
	RK3588BUS     ID = 19
)

var rk3588Layout = RegisterLayout{
	PwrReq:        0x3c,
	PwrState:      0x40,
	MemReq:        0x44,
	MemState:      0x48,
	BusIdleReq:    0x4c,
	BusIdleAck:    0x50,
	BusIdleState:  0x54,
	RepairStatus:  0x58,
	PowerPolarity: ActiveHighIsOff,
}

// rk3588Table is sourced per §9 of the governing specification: an
// internally-consistent approximation of the domain set documented by the
// upstream Linux kernel's rockchip pm_domains.c for RK3588, built to be
// complete enough to exercise every invariant and worked scenario the
// specification names (no byte-exact kernel source was available in the
// retrieval pack feeding this driver).
var rk3588Table = newTable(RK3588, rk3588Layout, []*Descriptor{
	{ID: RK3588PMU, Name: "PD_PMU", PwrBit: NoBit, ReqBit: NoBit, RepairBit: NoBit},
	{ID: RK3588BUS, Name: "PD_BUS", PwrBit: NoBit, MemBits: []Bit{18}, ReqBit: 18, RepairBit: NoBit,
		HasParent: true, Parent: RK3588PMU},

	{ID: RK3588NPUTOP, Name: "PD_NPUTOP", PwrBit: 0, ReqBit: 0, RepairBit: NoBit,
		HasParent: true, Parent: RK3588PMU},
	{ID: RK3588NPU0, Name: "PD_NPU0", PwrBit: 1, MemBits: []Bit{0}, ReqBit: 1, RepairBit: NoBit,
		HasParent: true, Parent: RK3588NPUTOP},
	{ID: RK3588NPU1, Name: "PD_NPU1", PwrBit: 2, MemBits: []Bit{1}, ReqBit: 2, RepairBit: NoBit,
		HasParent: true, Parent: RK3588NPUTOP},

	{ID: RK3588GPU, Name: "PD_GPU", PwrBit: 3, MemBits: []Bit{2, 3}, ReqBit: 3, RepairBit: 1,
		HasParent: true, Parent: RK3588PMU, QoSPorts: []QoSPort{0xFDF35000, 0xFDF35100}},

	{ID: RK3588VCODEC, Name: "PD_VCODEC", PwrBit: 4, ReqBit: 4, RepairBit: NoBit,
		HasParent: true, Parent: RK3588PMU},
	{ID: RK3588VENC0, Name: "PD_VENC0", PwrBit: 5, MemBits: []Bit{4}, ReqBit: 5, RepairBit: NoBit,
		HasParent: true, Parent: RK3588VCODEC, QoSPorts: []QoSPort{0xFDF50000}},
	{ID: RK3588VENC1, Name: "PD_VENC1", PwrBit: 6, MemBits: []Bit{5}, ReqBit: 6, RepairBit: NoBit,
		HasParent: true, Parent: RK3588VCODEC, QoSPorts: []QoSPort{0xFDF50100}},
	{ID: RK3588RKVDEC0, Name: "PD_RKVDEC0", PwrBit: 7, MemBits: []Bit{6}, ReqBit: 7, RepairBit: 2,
		HasParent: true, Parent: RK3588VCODEC, QoSPorts: []QoSPort{0xFDF51000}},
	{ID: RK3588RKVDEC1, Name: "PD_RKVDEC1", PwrBit: 8, MemBits: []Bit{7}, ReqBit: 8, RepairBit: 3,
		HasParent: true, Parent: RK3588VCODEC, QoSPorts: []QoSPort{0xFDF51100}},

	{ID: RK3588VDPU, Name: "PD_VDPU", PwrBit: 9, MemBits: []Bit{8}, ReqBit: 9, RepairBit: NoBit,
		HasParent: true, Parent: RK3588PMU},
	{ID: RK3588RGA30, Name: "PD_RGA30", PwrBit: 10, ReqBit: 10, RepairBit: NoBit,
		HasParent: true, Parent: RK3588PMU},
	{ID: RK3588VI, Name: "PD_VI", PwrBit: 11, MemBits: []Bit{9}, ReqBit: 11, RepairBit: NoBit,
		HasParent: true, Parent: RK3588PMU},
	{ID: RK3588VO0, Name: "PD_VO0", PwrBit: 12, MemBits: []Bit{10}, ReqBit: 12, RepairBit: NoBit,
		HasParent: true, Parent: RK3588PMU},
	{ID: RK3588VO1, Name: "PD_VO1", PwrBit: 13, MemBits: []Bit{11}, ReqBit: 13, RepairBit: NoBit,
		HasParent: true, Parent: RK3588PMU},
	{ID: RK3588AV1, Name: "PD_AV1", PwrBit: 14, MemBits: []Bit{12, 13}, ReqBit: 14, RepairBit: 4,
		HasParent: true, Parent: RK3588PMU, QoSPorts: []QoSPort{0xFDF52000}},
	{ID: RK3588USB, Name: "PD_USB", PwrBit: 15, ReqBit: 15, RepairBit: NoBit,
		HasParent: true, Parent: RK3588PMU},
	{ID: RK3588PCIE, Name: "PD_PCIE", PwrBit: 16, ReqBit: 16, RepairBit: NoBit,
		HasParent: true, Parent: RK3588PMU},
	{ID: RK3588SDIO, Name: "PD_SDIO", PwrBit: 17, ReqBit: 17, RepairBit: NoBit,
		HasParent: true, Parent: RK3588PMU},
})
