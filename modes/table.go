package modes

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrInvalidDescriptor = errors.New("modes: invalid descriptor")
	ErrNoMatchingMode    = errors.New("modes: no matching mode")
)

// Table is an ordered, immutable list of modes.
type Table struct {
	modes []Descriptor
	dups  []Duplicate
}

// Duplicate records an entry that can never be returned by [Table.Lookup]
// because an earlier entry has the same width, height and depth.
type Duplicate struct {
	First  int // index of the entry Lookup returns
	Shadow int // index of the later entry
}

// NewTable validates modes and returns a table holding a private copy of
// them. Entries sharing width, height and depth are accepted; see
// [Table.Duplicates].
func NewTable(modes []Descriptor) (*Table, error) {
	t := &Table{modes: make([]Descriptor, 0, len(modes))}
	first := make(map[key]int)
	for i := range modes {
		d := &modes[i]
		if err := d.validate(); err != nil {
			return nil, fmt.Errorf("%w: entry %d (%v): %v", ErrInvalidDescriptor, i, d, err)
		}
		if j, ok := first[d.key()]; ok {
			t.dups = append(t.dups, Duplicate{First: j, Shadow: i})
		} else {
			first[d.key()] = i
		}
		t.modes = append(t.modes, d.clone())
	}
	return t, nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in SM712 table.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := NewTable(sm712Modes)
		if err != nil {
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}

// Lookup returns the first mode in declaration order matching the width,
// height and depth, whatever its refresh rate. The descriptor is a copy.
func (t *Table) Lookup(width, height, bpp int) (*Descriptor, bool) {
	return t.find(width, height, bpp, 0)
}

// LookupRefresh is like Lookup but also requires the refresh rate to match.
func (t *Table) LookupRefresh(width, height, bpp, hz int) (*Descriptor, bool) {
	if hz <= 0 {
		return nil, false
	}
	return t.find(width, height, bpp, hz)
}

func (t *Table) find(width, height, bpp, hz int) (*Descriptor, bool) {
	for i := range t.modes {
		d := &t.modes[i]
		if d.Width != width || d.Height != height || d.BitsPerPixel != bpp {
			continue
		}
		if hz != 0 && d.RefreshHz != hz {
			continue
		}
		c := d.clone()
		return &c, true
	}
	return nil, false
}

// Select returns the mode matching r. A zero r.RefreshHz matches any refresh
// rate. If no mode matches, the error wraps ErrNoMatchingMode.
func (t *Table) Select(r Request) (*Descriptor, error) {
	var (
		d  *Descriptor
		ok bool
	)
	if r.RefreshHz == 0 {
		d, ok = t.Lookup(r.Width, r.Height, r.BitsPerPixel)
	} else {
		d, ok = t.LookupRefresh(r.Width, r.Height, r.BitsPerPixel, r.RefreshHz)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoMatchingMode, r)
	}
	return d, nil
}

// All returns copies of the table's modes in declaration order.
func (t *Table) All() []*Descriptor {
	all := make([]*Descriptor, len(t.modes))
	for i := range t.modes {
		all[i] = t.At(i)
	}
	return all
}

// At returns a copy of the i-th mode.
func (t *Table) At(i int) *Descriptor {
	c := t.modes[i].clone()
	return &c
}

func (t *Table) Len() int { return len(t.modes) }

// Duplicates lists entries shadowed by an earlier entry with the same width,
// height and depth, in table order.
func (t *Table) Duplicates() []Duplicate {
	return append([]Duplicate(nil), t.dups...)
}
