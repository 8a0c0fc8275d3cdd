package translate

import "fmt"

// DuplicateMappingError reports a malformed platform table in which a
// canonical or native bit appears in more than one pair.
type DuplicateMappingError struct {
	// Side is "canonical" or "native".
	Side string

	// Bit is the repeated bit.
	Bit uint32
}

func (e *DuplicateMappingError) Error() string {
	return fmt.Sprintf("duplicate %s bit 0x%08x in translation table", e.Side, e.Bit)
}

// UnmappedBitsError reports input bits that had no counterpart in the
// active translation table.
type UnmappedBitsError struct {
	// Group is the bit group the residue came from.
	Group BitGroup

	// Bits is the residue.
	Bits uint32
}

func (e *UnmappedBitsError) Error() string {
	return fmt.Sprintf("%s: unmapped bits 0x%08x", e.Group, e.Bits)
}

// EntryError wraps a translation failure with the index of the ACL
// entry that caused it.
type EntryError struct {
	Index int
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %d: %v", e.Index, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
