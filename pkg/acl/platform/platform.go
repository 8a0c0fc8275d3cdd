// Package platform ships the declarative translation tables for the
// supported native ACL models and a registry to look them up by name.
//
// A platform is data, not code: adding one means writing three pair
// lists (permissions, tag/type, flags), not touching the engine.
// Permission and flag pairs use the platform's real kernel or protocol
// bit values. Tags have no portable numeric encoding (NFSv4 carries
// "who" strings, POSIX exposes one-hot enum constants), so every table
// here uses the same documented tag/type word layout, which the
// platform ACL reader is responsible for presenting:
//
//	bits 0-1  type (effect), in canonical numbering where the platform
//	          has no numeric type of its own
//	bits 8-10 tag (principal class), packed in canonical numbering
//
// NFSv4 and NT type values (allow=0, deny=1, audit=2, alarm=3) already
// match the canonical numbering, so for those platforms bits 0-1 carry
// the platform's genuine values.
package platform

import (
	"fmt"
	"sort"
	"sync"

	"github.com/marmos91/aclwire/pkg/acl"
	"github.com/marmos91/aclwire/pkg/acl/translate"
)

// Native tag/type word layout shared by the shipped tables.
const (
	nativeTypeBit0 = 1 << 0
	nativeTypeBit1 = 1 << 1
	nativeTagBit0  = 1 << 8
	nativeTagBit1  = 1 << 9
	nativeTagBit2  = 1 << 10
)

// tagPairs maps the three canonical tag bits onto the shared native
// tag word layout.
func tagPairs() []translate.Pair {
	return []translate.Pair{
		{Canonical: 1 << acl.TagShift, Native: nativeTagBit0},
		{Canonical: 2 << acl.TagShift, Native: nativeTagBit1},
		{Canonical: 4 << acl.TagShift, Native: nativeTagBit2},
	}
}

// typePairs maps the two canonical type bits onto the shared native
// type word layout.
func typePairs() []translate.Pair {
	return []translate.Pair{
		{Canonical: 1 << acl.AceTypeShift, Native: nativeTypeBit0},
		{Canonical: 2 << acl.AceTypeShift, Native: nativeTypeBit1},
	}
}

// Definition is one platform's declarative translation table set.
type Definition struct {
	// Name is the registry key, e.g. "nfs4".
	Name string

	// Brand is the ACL family the platform's entries belong to.
	Brand acl.Brand

	// Perms, TagType and Flags are the mapping pairs for the three bit
	// groups. An empty list is valid and makes every input bit of that
	// group unmapped (POSIX has no flags, for example).
	Perms   []translate.Pair
	TagType []translate.Pair
	Flags   []translate.Pair
}

// Build constructs the runtime tables from the definition.
//
// A DuplicateMappingError here means the definition itself is
// malformed; callers should treat it as fatal at startup.
func (d *Definition) Build() (*translate.Tables, error) {
	perms, err := translate.BuildTable(d.Perms)
	if err != nil {
		return nil, fmt.Errorf("platform %s: permissions table: %w", d.Name, err)
	}

	tagType, err := translate.BuildTable(d.TagType)
	if err != nil {
		return nil, fmt.Errorf("platform %s: tag/type table: %w", d.Name, err)
	}

	flags, err := translate.BuildTable(d.Flags)
	if err != nil {
		return nil, fmt.Errorf("platform %s: flags table: %w", d.Name, err)
	}

	return &translate.Tables{Perms: perms, TagType: tagType, Flags: flags}, nil
}

var (
	registryMu sync.RWMutex
	registry   = map[string]*Definition{
		Posix.Name:  Posix,
		Nfs4.Name:   Nfs4,
		SMB.Name:    SMB,
		Darwin.Name: Darwin,
	}
)

// Register adds a platform definition to the registry. Registering a
// name twice is a programming or configuration error.
func Register(d *Definition) error {
	if d.Name == "" {
		return fmt.Errorf("platform definition has no name")
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[d.Name]; exists {
		return fmt.Errorf("platform %q already registered", d.Name)
	}
	registry[d.Name] = d
	return nil
}

// Lookup returns the definition registered under name.
func Lookup(name string) (*Definition, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	d, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown platform %q (available: %v)", name, names())
	}
	return d, nil
}

// Names returns the registered platform names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return names()
}

func names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
