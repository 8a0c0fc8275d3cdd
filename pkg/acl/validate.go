package acl

import "fmt"

// Validate checks a raw 32-bit value against the canonical layout.
//
// It fails if any reserved bit (26-31) is set. The tag and type fields
// are 3 and 2 bits wide and every representable field value is a
// defined enumerant, so a packed word cannot carry an out-of-range tag
// or type; struct-built entries can, and ValidateForBrand covers them.
//
// Validate does not check permission or flag applicability to a brand.
// That is the brand-aware check in ValidateForBrand.
func Validate(bits uint32) error {
	if reserved := bits &^ ValidBits; reserved != 0 {
		return &InvalidEncodingError{
			Bits:   bits,
			Reason: fmt.Sprintf("reserved bits 0x%08x set", reserved),
		}
	}
	return nil
}

// ValidateForBrand checks that every field of the entry is legal for
// the given brand.
//
// Tag and type are not independent of brand: the Mask and Other tags
// are only legal under the POSIX brand, while Everyone and any effect
// other than Allow are only legal under NFS4. This cross-field
// invariant is enforced here, centrally, so every code path that
// manufactures an Ace gets consistent semantics.
func ValidateForBrand(a Ace, brand Brand) error {
	// Field-range checks first. Struct-built entries can hold values a
	// packed word never could.
	if bits := uint32(a.Perms) &^ PermBits; bits != 0 {
		return &InvalidEncodingError{Bits: bits, Reason: "permission bits outside bits 0-13"}
	}
	if bits := uint32(a.Tag) &^ TagBits; bits != 0 {
		return &InvalidEncodingError{Bits: bits, Reason: "tag value outside the tag field"}
	}
	if bits := uint32(a.Type) &^ AceTypeBits; bits != 0 {
		return &InvalidEncodingError{Bits: bits, Reason: "type value outside the type field"}
	}
	if bits := uint32(a.Flags) &^ FlagBits; bits != 0 {
		return &InvalidEncodingError{Bits: bits, Reason: "flag bits outside bits 19-25"}
	}

	switch brand {
	case BrandPosix:
		if extra := a.Perms &^ PermPosixMask; extra != 0 {
			return &BrandMismatchError{
				Brand:  brand,
				Field:  "permissions",
				Reason: fmt.Sprintf("POSIX entries carry only read/write/execute, got %s", extra),
			}
		}
		if a.Tag == TagEveryone {
			return &BrandMismatchError{
				Brand:  brand,
				Field:  "tag",
				Reason: "everyone is NFS4-only (POSIX uses other)",
			}
		}
		if a.Type != AceTypeAllow {
			return &BrandMismatchError{
				Brand:  brand,
				Field:  "type",
				Reason: fmt.Sprintf("POSIX entries are implicitly allow, got %s", a.Type),
			}
		}
		if a.Flags != 0 {
			return &BrandMismatchError{
				Brand:  brand,
				Field:  "flags",
				Reason: fmt.Sprintf("inheritance/audit flags are NFS4-only, got %s", a.Flags),
			}
		}

	case BrandNfs4:
		if a.Tag == TagOther || a.Tag == TagMask {
			return &BrandMismatchError{
				Brand:  brand,
				Field:  "tag",
				Reason: fmt.Sprintf("%s is POSIX-only (NFS4 uses everyone)", a.Tag),
			}
		}

	default:
		return &BrandMismatchError{
			Brand:  brand,
			Field:  "brand",
			Reason: "brand must be posix or nfs4",
		}
	}

	return nil
}
