package platform

import (
	"github.com/marmos91/aclwire/pkg/acl"
	"github.com/marmos91/aclwire/pkg/acl/translate"
)

// NT access mask bits (file rights subset plus the standard rights the
// ACL model uses), per MS-DTYP §2.4.3.
const (
	ntFileReadData        = 0x00000001 // FILE_READ_DATA
	ntFileWriteData       = 0x00000002 // FILE_WRITE_DATA
	ntFileAppendData      = 0x00000004 // FILE_APPEND_DATA
	ntFileReadEA          = 0x00000008 // FILE_READ_EA
	ntFileWriteEA         = 0x00000010 // FILE_WRITE_EA
	ntFileExecute         = 0x00000020 // FILE_EXECUTE
	ntFileDeleteChild     = 0x00000040 // FILE_DELETE_CHILD
	ntFileReadAttributes  = 0x00000080 // FILE_READ_ATTRIBUTES
	ntFileWriteAttributes = 0x00000100 // FILE_WRITE_ATTRIBUTES
	ntDelete              = 0x00010000 // DELETE
	ntReadControl         = 0x00020000 // READ_CONTROL
	ntWriteDAC            = 0x00040000 // WRITE_DAC
	ntWriteOwner          = 0x00080000 // WRITE_OWNER
	ntSynchronize         = 0x00100000 // SYNCHRONIZE
)

// NT ACE header flag bits, per MS-DTYP §2.4.4.1. Note INHERITED_ACE is
// 0x10 here but 0x80 in NFSv4; the tables make that renumbering
// explicit instead of relying on truncation.
const (
	ntObjectInherit      = 0x01 // OBJECT_INHERIT_ACE
	ntContainerInherit   = 0x02 // CONTAINER_INHERIT_ACE
	ntNoPropagateInherit = 0x04 // NO_PROPAGATE_INHERIT_ACE
	ntInheritOnly        = 0x08 // INHERIT_ONLY_ACE
	ntInherited          = 0x10 // INHERITED_ACE
	ntSuccessfulAccess   = 0x40 // SUCCESSFUL_ACCESS_ACE_FLAG
	ntFailedAccess       = 0x80 // FAILED_ACCESS_ACE_FLAG
)

// SMB covers NT security descriptor ACLs as carried over SMB.
//
// NT ACE header type values (access allowed=0, denied=1, audit=2,
// alarm=3) match the canonical numbering; the tag side of the word is
// the reader-packed SID class per the package convention.
var SMB = &Definition{
	Name:  "smb",
	Brand: acl.BrandNfs4,
	Perms: []translate.Pair{
		{Canonical: uint32(acl.PermExecute), Native: ntFileExecute},
		{Canonical: uint32(acl.PermWrite), Native: ntFileWriteData},
		{Canonical: uint32(acl.PermRead), Native: ntFileReadData},
		{Canonical: uint32(acl.PermAppendData), Native: ntFileAppendData},
		{Canonical: uint32(acl.PermReadExtAttr), Native: ntFileReadEA},
		{Canonical: uint32(acl.PermWriteExtAttr), Native: ntFileWriteEA},
		{Canonical: uint32(acl.PermDeleteChild), Native: ntFileDeleteChild},
		{Canonical: uint32(acl.PermReadAttr), Native: ntFileReadAttributes},
		{Canonical: uint32(acl.PermWriteAttr), Native: ntFileWriteAttributes},
		{Canonical: uint32(acl.PermDelete), Native: ntDelete},
		{Canonical: uint32(acl.PermReadAcl), Native: ntReadControl},
		{Canonical: uint32(acl.PermWriteAcl), Native: ntWriteDAC},
		{Canonical: uint32(acl.PermWriteOwner), Native: ntWriteOwner},
		{Canonical: uint32(acl.PermSynchronize), Native: ntSynchronize},
	},
	TagType: append(tagPairs(), typePairs()...),
	Flags: []translate.Pair{
		{Canonical: uint32(acl.FlagObjectInherit), Native: ntObjectInherit},
		{Canonical: uint32(acl.FlagContainerInherit), Native: ntContainerInherit},
		{Canonical: uint32(acl.FlagNoPropagateInherit), Native: ntNoPropagateInherit},
		{Canonical: uint32(acl.FlagInheritOnly), Native: ntInheritOnly},
		{Canonical: uint32(acl.FlagInherited), Native: ntInherited},
		{Canonical: uint32(acl.FlagSuccessfulAccess), Native: ntSuccessfulAccess},
		{Canonical: uint32(acl.FlagFailedAccess), Native: ntFailedAccess},
	},
}
