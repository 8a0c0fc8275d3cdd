// Package acl defines the transport-neutral canonical form of filesystem
// Access Control Entries.
//
// A canonical ACE is exactly 32 bits:
//
//	bits  0-13  permissions (the low 3 are the POSIX rwx subset)
//	bits 14-16  tag (principal class)
//	bits 17-18  type (effect)
//	bits 19-25  inheritance/audit flags
//	bits 26-31  reserved, must be zero
//
// The canonical form exists so that ACLs originating from heterogeneous
// native models (POSIX.1e, NFSv4/ZFS, SMB, macOS) can cross the wire
// between systems that do not share a native ACL representation. This
// package owns the vocabulary and validity rules; translation to and
// from native bit assignments lives in the translate and platform
// subpackages.
package acl

// Field layout of the 32-bit canonical ACE word.
const (
	// PermBits covers the 14 permission bits (0-13).
	PermBits uint32 = 1<<14 - 1

	// TagShift is the bit offset of the 3-bit tag field.
	TagShift = 14

	// TagBits covers the tag field (bits 14-16).
	TagBits uint32 = 7 << TagShift

	// AceTypeShift is the bit offset of the 2-bit type field.
	AceTypeShift = 17

	// AceTypeBits covers the type field (bits 17-18).
	AceTypeBits uint32 = 3 << AceTypeShift

	// FlagShift is the bit offset of the 7-bit flag field.
	FlagShift = 19

	// FlagBits covers the flag field (bits 19-25).
	FlagBits uint32 = 127 << FlagShift

	// ValidBits covers every assigned bit. Bits 26-31 are reserved and
	// must be zero in any valid canonical value.
	ValidBits uint32 = 1<<26 - 1
)

// Brand identifies the ACL family an entry's rules belong to.
type Brand uint32

const (
	BrandUnknown Brand = 0
	BrandPosix   Brand = 1
	BrandNfs4    Brand = 2
)

func (b Brand) String() string {
	switch b {
	case BrandPosix:
		return "posix"
	case BrandNfs4:
		return "nfs4"
	default:
		return "unknown"
	}
}

// Type discriminates the ACL variants carried on the wire.
type Type uint32

const (
	TypeUnknown Type = 0

	// TypeAccess is a POSIX.1e access ACL.
	TypeAccess Type = 1

	// TypeDefault is a POSIX.1e default ACL. Only directories carry one;
	// it governs inheritance for newly created children.
	TypeDefault Type = 2

	// TypeNfs4 covers all extended-ACL platforms (NFSv4, ZFS, SMB, macOS).
	TypeNfs4 Type = 3
)

func (t Type) String() string {
	switch t {
	case TypeAccess:
		return "access"
	case TypeDefault:
		return "default"
	case TypeNfs4:
		return "nfs4"
	default:
		return "unknown"
	}
}

// Brand returns the ACL family implied by the discriminator.
func (t Type) Brand() Brand {
	switch t {
	case TypeAccess, TypeDefault:
		return BrandPosix
	case TypeNfs4:
		return BrandNfs4
	default:
		return BrandUnknown
	}
}

// Perm is a set of canonical permission bits (bits 0-13 of the ACE word).
//
// POSIX.1e uses only Execute, Write and Read. NFSv4-family ACLs use all
// fourteen.
type Perm uint32

const (
	// PermExecute - execute file / traverse directory
	PermExecute Perm = 1 << 0

	// PermWrite - write data / add file
	PermWrite Perm = 1 << 1

	// PermRead - read data / list directory
	PermRead Perm = 1 << 2

	// PermAppendData - append data / add subdirectory
	PermAppendData Perm = 1 << 3

	// PermReadExtAttr - read extended (named) attributes
	PermReadExtAttr Perm = 1 << 4

	// PermWriteExtAttr - write extended (named) attributes
	PermWriteExtAttr Perm = 1 << 5

	// PermDeleteChild - delete a child of a directory
	PermDeleteChild Perm = 1 << 6

	// PermReadAttr - read basic attributes
	PermReadAttr Perm = 1 << 7

	// PermWriteAttr - write basic attributes
	PermWriteAttr Perm = 1 << 8

	// PermDelete - delete the object itself
	PermDelete Perm = 1 << 9

	// PermReadAcl - read the ACL
	PermReadAcl Perm = 1 << 10

	// PermWriteAcl - write the ACL
	PermWriteAcl Perm = 1 << 11

	// PermWriteOwner - change the owner
	PermWriteOwner Perm = 1 << 12

	// PermSynchronize - synchronize access
	PermSynchronize Perm = 1 << 13

	// PermPosixMask covers the permissions a POSIX-brand entry may carry.
	PermPosixMask Perm = 7 << 0

	// PermNfs4Mask covers the permissions an NFS4-brand entry may carry.
	PermNfs4Mask Perm = 1<<14 - 1
)

var permNames = []struct {
	bit  Perm
	name string
}{
	{PermExecute, "execute"},
	{PermWrite, "write"},
	{PermRead, "read"},
	{PermAppendData, "append_data"},
	{PermReadExtAttr, "read_xattr"},
	{PermWriteExtAttr, "write_xattr"},
	{PermDeleteChild, "delete_child"},
	{PermReadAttr, "read_attr"},
	{PermWriteAttr, "write_attr"},
	{PermDelete, "delete"},
	{PermReadAcl, "read_acl"},
	{PermWriteAcl, "write_acl"},
	{PermWriteOwner, "write_owner"},
	{PermSynchronize, "synchronize"},
}

func (p Perm) String() string {
	return joinBitNames(uint32(p), func(bit uint32) (string, bool) {
		for _, n := range permNames {
			if uint32(n.bit) == bit {
				return n.name, true
			}
		}
		return "", false
	})
}

// Tag identifies the principal class an entry applies to. Values are
// stored in-place in the tag field (bits 14-16).
type Tag uint32

const (
	TagUndefined Tag = 0 << TagShift
	TagUserObj   Tag = 1 << TagShift
	TagUser      Tag = 2 << TagShift
	TagGroupObj  Tag = 3 << TagShift
	TagGroup     Tag = 4 << TagShift

	// TagOther is POSIX.1e only.
	TagOther Tag = 5 << TagShift

	// TagMask is POSIX.1e only.
	TagMask Tag = 6 << TagShift

	// TagEveryone is NFS4-family only.
	TagEveryone Tag = 7 << TagShift
)

func (t Tag) String() string {
	switch t {
	case TagUserObj:
		return "user_obj"
	case TagUser:
		return "user"
	case TagGroupObj:
		return "group_obj"
	case TagGroup:
		return "group"
	case TagOther:
		return "other"
	case TagMask:
		return "mask"
	case TagEveryone:
		return "everyone"
	case TagUndefined:
		return "undefined"
	default:
		return "invalid"
	}
}

// AceType is the effect of an entry. Values are stored in-place in the
// type field (bits 17-18). POSIX ACLs only ever use the implicit Allow.
type AceType uint32

const (
	AceTypeAllow AceType = 0 << AceTypeShift
	AceTypeDeny  AceType = 1 << AceTypeShift
	AceTypeAudit AceType = 2 << AceTypeShift
	AceTypeAlarm AceType = 3 << AceTypeShift
)

func (t AceType) String() string {
	switch t {
	case AceTypeAllow:
		return "allow"
	case AceTypeDeny:
		return "deny"
	case AceTypeAudit:
		return "audit"
	case AceTypeAlarm:
		return "alarm"
	default:
		return "invalid"
	}
}

// Flag is a set of canonical inheritance/audit flag bits, stored in-place
// in the flag field (bits 19-25). Flags are NFS4-family only; POSIX
// entries always carry an empty set.
type Flag uint32

const (
	// FlagObjectInherit - object (file) inherit
	FlagObjectInherit Flag = 1 << 19

	// FlagContainerInherit - container (directory) inherit
	FlagContainerInherit Flag = 1 << 20

	// FlagNoPropagateInherit - no propagate inherit
	FlagNoPropagateInherit Flag = 1 << 21

	// FlagInheritOnly - inherit only
	FlagInheritOnly Flag = 1 << 22

	// FlagInherited - entry was inherited from a parent
	FlagInherited Flag = 1 << 23

	// FlagSuccessfulAccess - audit/alarm on successful access
	FlagSuccessfulAccess Flag = 1 << 24

	// FlagFailedAccess - audit/alarm on failed access
	FlagFailedAccess Flag = 1 << 25
)

var flagNames = []struct {
	bit  Flag
	name string
}{
	{FlagObjectInherit, "object_inherit"},
	{FlagContainerInherit, "container_inherit"},
	{FlagNoPropagateInherit, "no_propagate_inherit"},
	{FlagInheritOnly, "inherit_only"},
	{FlagInherited, "inherited"},
	{FlagSuccessfulAccess, "successful_access"},
	{FlagFailedAccess, "failed_access"},
}

func (f Flag) String() string {
	return joinBitNames(uint32(f), func(bit uint32) (string, bool) {
		for _, n := range flagNames {
			if uint32(n.bit) == bit {
				return n.name, true
			}
		}
		return "", false
	})
}

// joinBitNames renders a bit set as a comma-separated name list.
// Unrecognized bits render as empty; callers validate separately.
func joinBitNames(bits uint32, name func(uint32) (string, bool)) string {
	if bits == 0 {
		return "none"
	}

	out := ""
	for b := bits; b != 0; b &= b - 1 {
		bit := b & -b
		n, ok := name(bit)
		if !ok {
			continue
		}
		if out != "" {
			out += ","
		}
		out += n
	}

	if out == "" {
		return "none"
	}
	return out
}
