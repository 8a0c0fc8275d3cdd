package platform

import (
	"github.com/marmos91/aclwire/pkg/acl"
	"github.com/marmos91/aclwire/pkg/acl/translate"
)

// NFSv4 access mask bits per RFC 7530 §6.2.1.3.1, shared by FreeBSD
// and ZFS ACLs.
const (
	ace4ReadData        = 0x00000001 // ACE4_READ_DATA
	ace4WriteData       = 0x00000002 // ACE4_WRITE_DATA
	ace4AppendData      = 0x00000004 // ACE4_APPEND_DATA
	ace4ReadNamedAttrs  = 0x00000008 // ACE4_READ_NAMED_ATTRS
	ace4WriteNamedAttrs = 0x00000010 // ACE4_WRITE_NAMED_ATTRS
	ace4Execute         = 0x00000020 // ACE4_EXECUTE
	ace4DeleteChild     = 0x00000040 // ACE4_DELETE_CHILD
	ace4ReadAttributes  = 0x00000080 // ACE4_READ_ATTRIBUTES
	ace4WriteAttributes = 0x00000100 // ACE4_WRITE_ATTRIBUTES
	ace4Delete          = 0x00010000 // ACE4_DELETE
	ace4ReadACL         = 0x00020000 // ACE4_READ_ACL
	ace4WriteACL        = 0x00040000 // ACE4_WRITE_ACL
	ace4WriteOwner      = 0x00080000 // ACE4_WRITE_OWNER
	ace4Synchronize     = 0x00100000 // ACE4_SYNCHRONIZE
)

// NFSv4 ACE flag bits per RFC 7530 §6.2.1.4.
const (
	ace4FileInherit        = 0x00000001 // ACE4_FILE_INHERIT_ACE
	ace4DirectoryInherit   = 0x00000002 // ACE4_DIRECTORY_INHERIT_ACE
	ace4NoPropagateInherit = 0x00000004 // ACE4_NO_PROPAGATE_INHERIT_ACE
	ace4InheritOnly        = 0x00000008 // ACE4_INHERIT_ONLY_ACE
	ace4SuccessfulAccess   = 0x00000010 // ACE4_SUCCESSFUL_ACCESS_ACE_FLAG
	ace4FailedAccess       = 0x00000020 // ACE4_FAILED_ACCESS_ACE_FLAG
	ace4Inherited          = 0x00000080 // ACE4_INHERITED_ACE
)

// Nfs4 covers NFSv4, FreeBSD and ZFS extended ACLs.
//
// The NFSv4 ace type values (allow=0, deny=1, audit=2, alarm=3) match
// the canonical numbering, so the type side of the tag/type word
// carries the protocol's genuine values. The who field is a string on
// the wire; the reader presents it packed per the package convention.
var Nfs4 = &Definition{
	Name:  "nfs4",
	Brand: acl.BrandNfs4,
	Perms: []translate.Pair{
		{Canonical: uint32(acl.PermExecute), Native: ace4Execute},
		{Canonical: uint32(acl.PermWrite), Native: ace4WriteData},
		{Canonical: uint32(acl.PermRead), Native: ace4ReadData},
		{Canonical: uint32(acl.PermAppendData), Native: ace4AppendData},
		{Canonical: uint32(acl.PermReadExtAttr), Native: ace4ReadNamedAttrs},
		{Canonical: uint32(acl.PermWriteExtAttr), Native: ace4WriteNamedAttrs},
		{Canonical: uint32(acl.PermDeleteChild), Native: ace4DeleteChild},
		{Canonical: uint32(acl.PermReadAttr), Native: ace4ReadAttributes},
		{Canonical: uint32(acl.PermWriteAttr), Native: ace4WriteAttributes},
		{Canonical: uint32(acl.PermDelete), Native: ace4Delete},
		{Canonical: uint32(acl.PermReadAcl), Native: ace4ReadACL},
		{Canonical: uint32(acl.PermWriteAcl), Native: ace4WriteACL},
		{Canonical: uint32(acl.PermWriteOwner), Native: ace4WriteOwner},
		{Canonical: uint32(acl.PermSynchronize), Native: ace4Synchronize},
	},
	TagType: append(tagPairs(), typePairs()...),
	Flags: []translate.Pair{
		{Canonical: uint32(acl.FlagObjectInherit), Native: ace4FileInherit},
		{Canonical: uint32(acl.FlagContainerInherit), Native: ace4DirectoryInherit},
		{Canonical: uint32(acl.FlagNoPropagateInherit), Native: ace4NoPropagateInherit},
		{Canonical: uint32(acl.FlagInheritOnly), Native: ace4InheritOnly},
		{Canonical: uint32(acl.FlagInherited), Native: ace4Inherited},
		{Canonical: uint32(acl.FlagSuccessfulAccess), Native: ace4SuccessfulAccess},
		{Canonical: uint32(acl.FlagFailedAccess), Native: ace4FailedAccess},
	},
}
