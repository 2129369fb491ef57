package chip_test

import (
	"testing"

	"github.com/drivercraft/rk3588-power/chip"
)

func allTables(t *testing.T) map[chip.Variant]*chip.Table {
	t.Helper()
	out := map[chip.Variant]*chip.Table{}
	for _, v := range []chip.Variant{chip.RK3568, chip.RK3588} {
		tbl, err := chip.TableFor(v)
		if err != nil {
			t.Fatalf("TableFor(%s): %v", v, err)
		}
		out[v] = tbl
	}
	return out
}

func TestParentReferencesResolve(t *testing.T) {
	for v, tbl := range allTables(t) {
		for _, d := range tbl.Descriptors {
			if !d.HasParent {
				continue
			}
			if _, err := tbl.Lookup(d.Parent); err != nil {
				t.Errorf("%s: domain %s has dangling parent %d", v, d.Name, d.Parent)
			}
		}
	}
}

func TestDependencyGraphIsForest(t *testing.T) {
	for v, tbl := range allTables(t) {
		for _, d := range tbl.Descriptors {
			seen := map[chip.ID]bool{d.ID: true}
			cur := d
			for cur.HasParent {
				if seen[cur.Parent] {
					t.Fatalf("%s: cycle detected starting at domain %s", v, d.Name)
				}
				seen[cur.Parent] = true
				next, err := tbl.Lookup(cur.Parent)
				if err != nil {
					break
				}
				cur = next
			}
		}
	}
}

func TestQoSPortCardinality(t *testing.T) {
	for v, tbl := range allTables(t) {
		for _, d := range tbl.Descriptors {
			if len(d.QoSPorts) > chip.MaxQoSPorts {
				t.Errorf("%s: domain %s has %d QoS ports, exceeds max %d", v, d.Name, len(d.QoSPorts), chip.MaxQoSPorts)
			}
		}
	}
}

func TestLookupUnknownDomain(t *testing.T) {
	tbl, err := chip.TableFor(chip.RK3568)
	if err != nil {
		t.Fatalf("TableFor: %v", err)
	}
	if _, err := tbl.Lookup(chip.ID(9999)); err == nil {
		t.Fatal("expected error looking up unknown domain 9999")
	} else if _, ok := err.(*chip.ErrInvalidDomain); !ok {
		t.Fatalf("expected *chip.ErrInvalidDomain, got %T", err)
	}
}

func TestChildrenScan(t *testing.T) {
	tbl, err := chip.TableFor(chip.RK3588)
	if err != nil {
		t.Fatalf("TableFor: %v", err)
	}
	children := tbl.Children(chip.RK3588VCODEC)
	if len(children) != 4 {
		t.Fatalf("expected 4 children of PD_VCODEC, got %d", len(children))
	}
	want := map[chip.ID]bool{
		chip.RK3588VENC0: true, chip.RK3588VENC1: true,
		chip.RK3588RKVDEC0: true, chip.RK3588RKVDEC1: true,
	}
	for _, c := range children {
		if !want[c.ID] {
			t.Errorf("unexpected child %s", c.Name)
		}
	}
}

func TestUnsupportedVariant(t *testing.T) {
	if _, err := chip.TableFor(chip.Variant(99)); err == nil {
		t.Fatal("expected error for unsupported variant")
	}
}
