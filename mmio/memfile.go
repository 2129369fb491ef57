package mmio

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// MemBackend maps a physical PMU window through an open /dev/mem-style file
// descriptor and serves Backend reads/writes from the mapping, the approach
// periph.io's Allwinner and BCM283x host drivers use to reach SoC PMU/clock
// registers from userspace Linux. Bare-metal targets that already have the
// PMU window mapped into their address space should use PMUBackend instead.
type MemBackend struct {
	data     []byte
	pageOff  uintptr
	physBase uintptr
}

// NewMemBackend mmaps length bytes of fd starting at physBase (rounded down
// to the host page size) and returns a Backend reading/writing that window.
func NewMemBackend(fd int, physBase uintptr, length int) (*MemBackend, error) {
	pageSize := uintptr(unix.Getpagesize())
	aligned := physBase &^ (pageSize - 1)
	pageOff := physBase - aligned
	mapLen := length + int(pageOff)

	data, err := unix.Mmap(fd, int64(aligned), mapLen, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmio: mmap PMU window at 0x%x: %w", physBase, err)
	}
	return &MemBackend{data: data, pageOff: pageOff, physBase: physBase}, nil
}

// Close unmaps the PMU window.
func (m *MemBackend) Close() error {
	return unix.Munmap(m.data)
}

func (m *MemBackend) index(offset uint64) uintptr {
	return m.pageOff + uintptr(offset)
}

// Read32 performs a barrier-guarded load of the register at offset.
func (m *MemBackend) Read32(offset uint64) uint32 {
	i := m.index(offset)
	v := uint32(m.data[i]) | uint32(m.data[i+1])<<8 | uint32(m.data[i+2])<<16 | uint32(m.data[i+3])<<24
	Barrier()
	return v
}

// Write32 performs a barrier-guarded store to the register at offset.
func (m *MemBackend) Write32(offset uint64, value uint32) {
	i := m.index(offset)
	m.data[i] = byte(value)
	m.data[i+1] = byte(value >> 8)
	m.data[i+2] = byte(value >> 16)
	m.data[i+3] = byte(value >> 24)
	Barrier()
}
