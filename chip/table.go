package chip

import "fmt"

// ErrInvalidDomain is returned by Lookup when id has no descriptor in the
// table.
type ErrInvalidDomain struct {
	Variant Variant
	ID      ID
}

func (e *ErrInvalidDomain) Error() string {
	return fmt.Sprintf("chip: domain %d not found for %s", e.ID, e.Variant)
}

// Table is a chip variant's complete static data: its register layout and
// its domain descriptors keyed by ID. N is small (<= ~45 per the governing
// specification), so a map lookup is already effectively O(1) and a linear
// scan over Descriptors (used by the dependency manager to find children)
// is cheap enough not to warrant a reverse index.
type Table struct {
	Variant     Variant
	Layout      RegisterLayout
	Descriptors map[ID]*Descriptor
	// Order lists every ID in ascending order, for deterministic
	// iteration (active-domains queries, dependency scans).
	Order []ID
}

// Lookup returns the descriptor for id, or ErrInvalidDomain.
func (t *Table) Lookup(id ID) (*Descriptor, error) {
	d, ok := t.Descriptors[id]
	if !ok {
		return nil, &ErrInvalidDomain{Variant: t.Variant, ID: id}
	}
	return d, nil
}

// Children returns every descriptor whose Parent is id, in ascending ID
// order.
func (t *Table) Children(id ID) []*Descriptor {
	var out []*Descriptor
	for _, cid := range t.Order {
		d := t.Descriptors[cid]
		if d.HasParent && d.Parent == id {
			out = append(out, d)
		}
	}
	return out
}

// newTable builds a Table from a layout and an unordered descriptor list,
// indexing by ID and recording ascending iteration order.
func newTable(v Variant, layout RegisterLayout, descriptors []*Descriptor) *Table {
	t := &Table{
		Variant:     v,
		Layout:      layout,
		Descriptors: make(map[ID]*Descriptor, len(descriptors)),
	}
	for _, d := range descriptors {
		t.Descriptors[d.ID] = d
	}
	t.Order = make([]ID, 0, len(descriptors))
	for _, d := range descriptors {
		t.Order = append(t.Order, d.ID)
	}
	sortIDs(t.Order)
	return t
}

func sortIDs(ids []ID) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}

// TableFor returns the descriptor table for v.
func TableFor(v Variant) (*Table, error) {
	switch v {
	case RK3568:
		return rk3568Table, nil
	case RK3588:
		return rk3588Table, nil
	default:
		return nil, fmt.Errorf("chip: unsupported variant %s", v)
	}
}
