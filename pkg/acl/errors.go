package acl

import "fmt"

// InvalidEncodingError reports a value that violates the 32-bit
// canonical layout: reserved bits set, or a field holding a value
// outside its defined enumerants.
//
// It is always fatal to the specific ACE being processed and is never
// recovered silently.
type InvalidEncodingError struct {
	// Bits is the offending value (the full word, or the offending
	// field in-place when the error comes from a struct-built Ace).
	Bits uint32

	// Reason describes which constraint was violated.
	Reason string
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid canonical encoding 0x%08x: %s", e.Bits, e.Reason)
}

// BrandMismatchError reports a field value that is legal in the
// canonical model but not legal for the stated brand, such as NFS4
// inheritance flags on a POSIX entry.
type BrandMismatchError struct {
	// Brand is the brand the entry was checked against.
	Brand Brand

	// Field names the offending field: "permissions", "tag", "type" or
	// "flags".
	Field string

	// Reason describes the violated rule.
	Reason string
}

func (e *BrandMismatchError) Error() string {
	return fmt.Sprintf("%s not valid for brand %s: %s", e.Field, e.Brand, e.Reason)
}
