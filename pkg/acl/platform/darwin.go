package platform

import (
	"github.com/marmos91/aclwire/pkg/acl"
	"github.com/marmos91/aclwire/pkg/acl/translate"
)

// macOS kauth vnode rights, per <sys/kauth.h>.
const (
	kauthReadData       = 1 << 1  // KAUTH_VNODE_READ_DATA
	kauthWriteData      = 1 << 2  // KAUTH_VNODE_WRITE_DATA
	kauthExecute        = 1 << 3  // KAUTH_VNODE_EXECUTE
	kauthDelete         = 1 << 4  // KAUTH_VNODE_DELETE
	kauthAppendData     = 1 << 5  // KAUTH_VNODE_APPEND_DATA
	kauthDeleteChild    = 1 << 6  // KAUTH_VNODE_DELETE_CHILD
	kauthReadAttrs      = 1 << 7  // KAUTH_VNODE_READ_ATTRIBUTES
	kauthWriteAttrs     = 1 << 8  // KAUTH_VNODE_WRITE_ATTRIBUTES
	kauthReadExtAttrs   = 1 << 9  // KAUTH_VNODE_READ_EXTATTRIBUTES
	kauthWriteExtAttrs  = 1 << 10 // KAUTH_VNODE_WRITE_EXTATTRIBUTES
	kauthReadSecurity   = 1 << 11 // KAUTH_VNODE_READ_SECURITY
	kauthWriteSecurity  = 1 << 12 // KAUTH_VNODE_WRITE_SECURITY
	kauthChangeOwner    = 1 << 13 // KAUTH_VNODE_CHANGE_OWNER
	kauthSynchronize    = 1 << 20 // KAUTH_VNODE_SYNCHRONIZE
)

// macOS kauth ACE flags.
const (
	kauthInherited        = 1 << 4  // KAUTH_ACE_INHERITED
	kauthFileInherit      = 1 << 5  // KAUTH_ACE_FILE_INHERIT
	kauthDirectoryInherit = 1 << 6  // KAUTH_ACE_DIRECTORY_INHERIT
	kauthLimitInherit     = 1 << 7  // KAUTH_ACE_LIMIT_INHERIT
	kauthOnlyInherit      = 1 << 8  // KAUTH_ACE_ONLY_INHERIT
	kauthSuccess          = 1 << 9  // KAUTH_ACE_SUCCESS
	kauthFailure          = 1 << 10 // KAUTH_ACE_FAILURE
)

// Darwin covers macOS extended ACLs.
//
// kauth ACE kinds (permit=1, deny=2, audit=3, alarm=4) do not match
// the canonical numbering, so the reader maps kinds onto the package's
// tag/type word convention; the rights and flag masks are the kernel's
// own values.
var Darwin = &Definition{
	Name:  "darwin",
	Brand: acl.BrandNfs4,
	Perms: []translate.Pair{
		{Canonical: uint32(acl.PermExecute), Native: kauthExecute},
		{Canonical: uint32(acl.PermWrite), Native: kauthWriteData},
		{Canonical: uint32(acl.PermRead), Native: kauthReadData},
		{Canonical: uint32(acl.PermAppendData), Native: kauthAppendData},
		{Canonical: uint32(acl.PermReadExtAttr), Native: kauthReadExtAttrs},
		{Canonical: uint32(acl.PermWriteExtAttr), Native: kauthWriteExtAttrs},
		{Canonical: uint32(acl.PermDeleteChild), Native: kauthDeleteChild},
		{Canonical: uint32(acl.PermReadAttr), Native: kauthReadAttrs},
		{Canonical: uint32(acl.PermWriteAttr), Native: kauthWriteAttrs},
		{Canonical: uint32(acl.PermDelete), Native: kauthDelete},
		{Canonical: uint32(acl.PermReadAcl), Native: kauthReadSecurity},
		{Canonical: uint32(acl.PermWriteAcl), Native: kauthWriteSecurity},
		{Canonical: uint32(acl.PermWriteOwner), Native: kauthChangeOwner},
		{Canonical: uint32(acl.PermSynchronize), Native: kauthSynchronize},
	},
	TagType: append(tagPairs(), typePairs()...),
	Flags: []translate.Pair{
		{Canonical: uint32(acl.FlagObjectInherit), Native: kauthFileInherit},
		{Canonical: uint32(acl.FlagContainerInherit), Native: kauthDirectoryInherit},
		{Canonical: uint32(acl.FlagNoPropagateInherit), Native: kauthLimitInherit},
		{Canonical: uint32(acl.FlagInheritOnly), Native: kauthOnlyInherit},
		{Canonical: uint32(acl.FlagInherited), Native: kauthInherited},
		{Canonical: uint32(acl.FlagSuccessfulAccess), Native: kauthSuccess},
		{Canonical: uint32(acl.FlagFailedAccess), Native: kauthFailure},
	},
}
