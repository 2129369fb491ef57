package mmio_test

import (
	"testing"

	"github.com/drivercraft/rk3588-power/mmio"
)

func TestMaskedWriteEncoding(t *testing.T) {
	b := mmio.NewMockBackend()
	mmio.MaskedWrite(b, 0x10, 0x0003, true)
	trace := b.Trace()
	if len(trace) != 1 {
		t.Fatalf("expected 1 write, got %d", len(trace))
	}
	want := uint32(0x0003<<16) | 0x0003
	if trace[0].Value != want {
		t.Errorf("got %#x want %#x", trace[0].Value, want)
	}
	if got := b.Peek(0x10); got != 0x0003 {
		t.Errorf("expected masked bits set, got %#x", got)
	}

	mmio.MaskedWrite(b, 0x10, 0x0001, false)
	if got := b.Peek(0x10); got != 0x0002 {
		t.Errorf("expected bit 0 cleared, bit 1 untouched, got %#x", got)
	}
}

func TestMaskedWritePreservesUnmaskedBits(t *testing.T) {
	b := mmio.NewMockBackend()
	b.Seed(0x20, 0xFFFF)
	mmio.MaskedWrite(b, 0x20, 0x0001, false)
	if got := b.Peek(0x20); got != 0xFFFE {
		t.Errorf("expected only masked bit cleared, got %#x", got)
	}
}

func TestPollBitsSucceedsOnceSettled(t *testing.T) {
	b := mmio.NewMockBackend()
	b.OnSettle(0x10, 0x14, 0x1, 0, 3)
	mmio.MaskedWrite(b, 0x10, 0x1, true)
	if err := mmio.PollBits(b, 0x14, 0x1, true, 100); err != nil {
		t.Fatalf("PollBits: %v", err)
	}
	if b.ReadCount(0x14) < 3 {
		t.Errorf("expected at least 3 reads before success, got %d", b.ReadCount(0x14))
	}
}

func TestPollBitsTimesOut(t *testing.T) {
	b := mmio.NewMockBackend()
	err := mmio.PollBits(b, 0x14, 0x1, true, 10)
	if err != mmio.ErrTimeout {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if b.ReadCount(0x14) != 10 {
		t.Errorf("expected exactly 10 reads (attempt ceiling), got %d", b.ReadCount(0x14))
	}
}

func TestPollBitsDefaultAttempts(t *testing.T) {
	b := mmio.NewMockBackend()
	err := mmio.PollBits(b, 0x14, 0x1, true, 0)
	if err != mmio.ErrTimeout {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if b.ReadCount(0x14) != mmio.DefaultPollAttempts {
		t.Errorf("expected %d reads, got %d", mmio.DefaultPollAttempts, b.ReadCount(0x14))
	}
}
