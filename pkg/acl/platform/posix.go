package platform

import (
	"github.com/marmos91/aclwire/pkg/acl"
	"github.com/marmos91/aclwire/pkg/acl/translate"
)

// POSIX.1e permission bits, as used by acl_get_perm and friends on
// Linux and the BSDs.
const (
	posixExecute = 0x01 // ACL_EXECUTE
	posixWrite   = 0x02 // ACL_WRITE
	posixRead    = 0x04 // ACL_READ
)

// Posix covers POSIX.1e minimal and default ACLs.
//
// Only the low three canonical permission bits map; everything else a
// caller feeds in comes back as unmapped residue. POSIX entries carry
// no type (implicitly allow) and no flags, so the tag/type table maps
// tags only and the flags table is empty.
var Posix = &Definition{
	Name:  "posix",
	Brand: acl.BrandPosix,
	Perms: []translate.Pair{
		{Canonical: uint32(acl.PermExecute), Native: posixExecute},
		{Canonical: uint32(acl.PermWrite), Native: posixWrite},
		{Canonical: uint32(acl.PermRead), Native: posixRead},
	},
	TagType: tagPairs(),
	Flags:   nil,
}
