// Package translate implements the bidirectional mapping between
// canonical ACE bits and a platform's native bit assignments.
//
// Mappings are data, not code: each platform supplies an ordered list
// of (canonical bit, native bit) pairs, and the engine performs
// per-bit translation in either direction. Native bit assignments vary
// per platform and kernel version, so keeping them declarative lets
// platform tables evolve without touching the canonical core.
package translate

import (
	"fmt"
	"math/bits"
	"slices"
)

// Pair maps exactly one canonical bit to exactly one native bit.
type Pair struct {
	// Canonical is the bit's position in the 32-bit canonical ACE word.
	Canonical uint32

	// Native is the bit's position in the platform's own assignment.
	Native uint32
}

// Table is an immutable partial bijection between canonical and native
// bits for one bit group of one platform.
//
// Tables are built once, typically at process start from static
// platform definitions, and are read-only afterwards. They may be
// shared freely across concurrent translations.
type Table struct {
	pairs       []Pair
	toCanonical map[uint32]uint32
	toNative    map[uint32]uint32
}

// BuildTable constructs a Table from mapping pairs.
//
// Each side of every pair must be a single set bit, and no bit may
// appear twice on either side: a many-to-one mapping in either
// direction would make translation ambiguous. Ambiguity is rejected
// here, at construction time, so runtime translation never needs to
// branch on it. A DuplicateMappingError from a static platform table
// should halt startup, not be handled per call.
func BuildTable(pairs []Pair) (*Table, error) {
	t := &Table{
		pairs:       slices.Clone(pairs),
		toCanonical: make(map[uint32]uint32, len(pairs)),
		toNative:    make(map[uint32]uint32, len(pairs)),
	}

	for i, p := range pairs {
		if bits.OnesCount32(p.Canonical) != 1 {
			return nil, fmt.Errorf("pair %d: canonical side must be a single bit, got 0x%08x", i, p.Canonical)
		}
		if bits.OnesCount32(p.Native) != 1 {
			return nil, fmt.Errorf("pair %d: native side must be a single bit, got 0x%08x", i, p.Native)
		}

		if _, dup := t.toNative[p.Canonical]; dup {
			return nil, &DuplicateMappingError{Side: "canonical", Bit: p.Canonical}
		}
		if _, dup := t.toCanonical[p.Native]; dup {
			return nil, &DuplicateMappingError{Side: "native", Bit: p.Native}
		}

		t.toNative[p.Canonical] = p.Native
		t.toCanonical[p.Native] = p.Canonical
	}

	return t, nil
}

// EncodeNativeToCanonical translates native bits into canonical bits.
//
// Every set input bit with a table entry contributes its canonical
// counterpart to the result; every set bit without one is returned in
// unmapped. The operation never fails: whether a nonzero residue is an
// error is the caller's policy, but the residue is always observable
// rather than silently dropped.
func (t *Table) EncodeNativeToCanonical(native uint32) (canonical, unmapped uint32) {
	return apply(t.toCanonical, native)
}

// DecodeCanonicalToNative translates canonical bits into native bits,
// with the same unmapped-residue contract as EncodeNativeToCanonical.
func (t *Table) DecodeCanonicalToNative(canonical uint32) (native, unmapped uint32) {
	return apply(t.toNative, canonical)
}

// Pairs returns a copy of the mapping pairs in construction order.
func (t *Table) Pairs() []Pair {
	return slices.Clone(t.pairs)
}

// Len returns the number of mapping pairs.
func (t *Table) Len() int {
	return len(t.pairs)
}

func apply(mapping map[uint32]uint32, in uint32) (out, unmapped uint32) {
	for b := in; b != 0; b &= b - 1 {
		bit := b & -b
		if mapped, ok := mapping[bit]; ok {
			out |= mapped
		} else {
			unmapped |= bit
		}
	}
	return out, unmapped
}
