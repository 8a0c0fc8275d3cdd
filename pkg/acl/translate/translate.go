package translate

import (
	"github.com/marmos91/aclwire/pkg/acl"
)

// BitGroup identifies one of the three translated bit groups of an ACE.
//
// Tag and type are translated together: they occupy contiguous bit
// ranges in the canonical word and platforms present them in a single
// native word.
type BitGroup int

const (
	GroupPerms BitGroup = iota
	GroupTagType
	GroupFlags
)

func (g BitGroup) String() string {
	switch g {
	case GroupPerms:
		return "permissions"
	case GroupTagType:
		return "tag/type"
	case GroupFlags:
		return "flags"
	default:
		return "unknown"
	}
}

// NativeAce is one ACL entry in a platform's own bit assignment, as
// supplied by a platform ACL reader or consumed by a platform ACL
// writer. The grouping (permissions, combined tag+type word, flags)
// matches the three translation tables; each platform definition
// documents its native word layouts.
type NativeAce struct {
	// Perms is the native permission bit set.
	Perms uint32

	// TagType is the native combined tag/type word.
	TagType uint32

	// Flags is the native inheritance/audit flag set.
	Flags uint32

	// Principal is the platform-supplied principal identifier. It is
	// carried through translation untouched.
	Principal string
}

// Tables bundles the three per-group translation tables for one
// platform. Like Table, a Tables value is immutable after construction
// and safe for concurrent use.
type Tables struct {
	Perms   *Table
	TagType *Table
	Flags   *Table
}

// TranslateAce converts a native entry into a canonical Ace.
//
// The three group translations run in sequence, then the assembled
// word is validated against the canonical layout and against the
// brand's rules. Any nonzero unmapped residue is an error here: a
// silently narrowed entry could under-enforce, so callers that want to
// degrade must do so explicitly via the Table primitives.
func TranslateAce(t *Tables, native NativeAce, brand acl.Brand) (acl.Ace, error) {
	perms, unmapped := t.Perms.EncodeNativeToCanonical(native.Perms)
	if unmapped != 0 {
		return acl.Ace{}, &UnmappedBitsError{Group: GroupPerms, Bits: unmapped}
	}

	tagType, unmapped := t.TagType.EncodeNativeToCanonical(native.TagType)
	if unmapped != 0 {
		return acl.Ace{}, &UnmappedBitsError{Group: GroupTagType, Bits: unmapped}
	}

	flags, unmapped := t.Flags.EncodeNativeToCanonical(native.Flags)
	if unmapped != 0 {
		return acl.Ace{}, &UnmappedBitsError{Group: GroupFlags, Bits: unmapped}
	}

	ace, err := acl.AceFromBits(brand, perms|tagType|flags, native.Principal)
	if err != nil {
		return acl.Ace{}, err
	}

	if err := acl.ValidateForBrand(ace, brand); err != nil {
		return acl.Ace{}, err
	}

	return ace, nil
}

// DecodeAce converts a canonical Ace back into the platform's native
// bit assignment. Mirror of TranslateAce, with the same unmapped-bit
// contract: an entry the platform cannot represent in full is an
// error, never a truncation.
func DecodeAce(t *Tables, ace acl.Ace) (NativeAce, error) {
	if err := acl.ValidateForBrand(ace, ace.Brand); err != nil {
		return NativeAce{}, err
	}

	perms, unmapped := t.Perms.DecodeCanonicalToNative(uint32(ace.Perms))
	if unmapped != 0 {
		return NativeAce{}, &UnmappedBitsError{Group: GroupPerms, Bits: unmapped}
	}

	tagType, unmapped := t.TagType.DecodeCanonicalToNative(uint32(ace.Tag) | uint32(ace.Type))
	if unmapped != 0 {
		return NativeAce{}, &UnmappedBitsError{Group: GroupTagType, Bits: unmapped}
	}

	flags, unmapped := t.Flags.DecodeCanonicalToNative(uint32(ace.Flags))
	if unmapped != 0 {
		return NativeAce{}, &UnmappedBitsError{Group: GroupFlags, Bits: unmapped}
	}

	return NativeAce{
		Perms:     perms,
		TagType:   tagType,
		Flags:     flags,
		Principal: ace.Principal,
	}, nil
}

// TranslateACL converts an ordered native entry list into a canonical
// ACL, preserving sequence.
//
// Translation is all-or-nothing: the first failing entry aborts the
// whole conversion, reported with its index. A partially translated
// ACL is never returned, since omitting entries could silently
// under-enforce security.
func TranslateACL(t *Tables, aclType acl.Type, natives []NativeAce) (*acl.ACL, error) {
	brand := aclType.Brand()

	aces := make([]acl.Ace, 0, len(natives))
	for i, native := range natives {
		ace, err := TranslateAce(t, native, brand)
		if err != nil {
			return nil, &EntryError{Index: i, Err: err}
		}
		aces = append(aces, ace)
	}

	return &acl.ACL{Type: aclType, Aces: aces}, nil
}

// DecodeACL converts a canonical ACL into the platform's native entry
// list, in order, all-or-nothing. Mirror of TranslateACL.
func DecodeACL(t *Tables, a *acl.ACL) ([]NativeAce, error) {
	natives := make([]NativeAce, 0, len(a.Aces))
	for i, ace := range a.Aces {
		native, err := DecodeAce(t, ace)
		if err != nil {
			return nil, &EntryError{Index: i, Err: err}
		}
		natives = append(natives, native)
	}
	return natives, nil
}
