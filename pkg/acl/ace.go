package acl

// Ace is one canonical access control entry.
//
// Aces are immutable value objects: they are created by a native-to-
// canonical translation or by a wire decode, and are never mutated
// afterwards. The zero value is a valid NFS4-meaningless entry
// (undefined tag, allow, no permissions).
type Ace struct {
	// Brand is the ACL family whose rules govern this entry.
	Brand Brand

	// Perms is the canonical permission bit set (bits 0-13).
	Perms Perm

	// Tag is the principal class (bits 14-16, stored in-place).
	Tag Tag

	// Type is the effect (bits 17-18, stored in-place).
	Type AceType

	// Flags is the inheritance/audit flag set (bits 19-25, in-place).
	Flags Flag

	// Principal is the externally supplied identifier (user/group id or
	// name) this entry applies to. It rides alongside the entry but is
	// not part of the 32-bit encoding.
	Principal string
}

// Bits packs the entry into its 32-bit canonical form. All fields are
// stored in-place, so packing is a plain OR.
func (a Ace) Bits() uint32 {
	return uint32(a.Perms) | uint32(a.Tag) | uint32(a.Type) | uint32(a.Flags)
}

// AceFromBits unpacks a 32-bit canonical value into an Ace.
//
// The value is validated first: a raw integer arriving from a platform
// or from the network carries no guarantee of being in range, so it is
// never trusted implicitly. Brand applicability is a separate check
// (ValidateForBrand) because the bit layout alone does not say which
// family the entry belongs to.
func AceFromBits(brand Brand, bits uint32, principal string) (Ace, error) {
	if err := Validate(bits); err != nil {
		return Ace{}, err
	}

	return Ace{
		Brand:     brand,
		Perms:     Perm(bits & PermBits),
		Tag:       Tag(bits & TagBits),
		Type:      AceType(bits & AceTypeBits),
		Flags:     Flag(bits & FlagBits),
		Principal: principal,
	}, nil
}

// ACL is an ordered sequence of entries plus the variant discriminator.
//
// Order is significant for NFS4-family ACLs (first-match-wins
// evaluation) and is preserved verbatim for POSIX ACLs even though it
// is conventionally irrelevant there.
type ACL struct {
	// Type discriminates access/default (POSIX.1e) from nfs4.
	Type Type

	// Aces are the entries, in evaluation order.
	Aces []Ace
}

// Brand returns the ACL family implied by the discriminator.
func (a *ACL) Brand() Brand {
	return a.Type.Brand()
}
