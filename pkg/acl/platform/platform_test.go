package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/aclwire/pkg/acl"
	"github.com/marmos91/aclwire/pkg/acl/translate"
)

// ============================================================================
// Definition Tests
// ============================================================================

func TestBuiltinDefinitions(t *testing.T) {
	builtins := []*Definition{Posix, Nfs4, SMB, Darwin}

	t.Run("AllBuild", func(t *testing.T) {
		for _, def := range builtins {
			tables, err := def.Build()
			require.NoError(t, err, "platform %s must build", def.Name)
			require.NotNil(t, tables)
		}
	})

	t.Run("RoundTripEveryMappedBit", func(t *testing.T) {
		// For every platform table, encoding the full native mask and
		// decoding it back must reproduce the original bits with zero
		// residue in both directions.
		for _, def := range builtins {
			tables, err := def.Build()
			require.NoError(t, err)

			groups := map[string]struct {
				pairs []translate.Pair
				table *translate.Table
			}{
				"perms":    {def.Perms, tables.Perms},
				"tag/type": {def.TagType, tables.TagType},
				"flags":    {def.Flags, tables.Flags},
			}

			for name, g := range groups {
				var allNative, allCanonical uint32
				for _, p := range g.pairs {
					allNative |= p.Native
					allCanonical |= p.Canonical
				}

				canonical, unmapped := g.table.EncodeNativeToCanonical(allNative)
				require.Zero(t, unmapped, "%s %s: native residue", def.Name, name)
				require.Equal(t, allCanonical, canonical, "%s %s", def.Name, name)

				native, unmapped := g.table.DecodeCanonicalToNative(canonical)
				require.Zero(t, unmapped, "%s %s: canonical residue", def.Name, name)
				require.Equal(t, allNative, native, "%s %s", def.Name, name)
			}
		}
	})

	t.Run("Nfs4MapsEveryCanonicalPermission", func(t *testing.T) {
		tables, err := Nfs4.Build()
		require.NoError(t, err)

		var allNative uint32
		for _, p := range Nfs4.Perms {
			allNative |= p.Native
		}

		native, unmapped := tables.Perms.DecodeCanonicalToNative(uint32(acl.PermNfs4Mask))
		assert.Zero(t, unmapped)
		assert.Equal(t, allNative, native)

		for _, p := range Nfs4.Perms {
			got, un := tables.Perms.DecodeCanonicalToNative(p.Canonical)
			require.Zero(t, un)
			require.Equal(t, p.Native, got)
		}
	})

	t.Run("PosixMapsOnlyRwx", func(t *testing.T) {
		tables, err := Posix.Build()
		require.NoError(t, err)

		// rwx encodes cleanly
		canonical, unmapped := tables.Perms.EncodeNativeToCanonical(0x07)
		assert.Equal(t, uint32(acl.PermPosixMask), canonical)
		assert.Zero(t, unmapped)

		// extended canonical permissions have no POSIX counterpart
		_, unmapped = tables.Perms.DecodeCanonicalToNative(uint32(acl.PermReadAcl))
		assert.Equal(t, uint32(acl.PermReadAcl), unmapped)

		// POSIX has no flags at all
		_, unmapped = tables.Flags.DecodeCanonicalToNative(uint32(acl.FlagObjectInherit))
		assert.Equal(t, uint32(acl.FlagObjectInherit), unmapped)
	})

	t.Run("SmbRenumbersInheritedFlag", func(t *testing.T) {
		// NFSv4 carries INHERITED as 0x80, NT as 0x10. The tables must
		// renumber rather than truncate.
		nfs4Tables, err := Nfs4.Build()
		require.NoError(t, err)
		smbTables, err := SMB.Build()
		require.NoError(t, err)

		canonical, unmapped := nfs4Tables.Flags.EncodeNativeToCanonical(0x80)
		require.Zero(t, unmapped)
		assert.Equal(t, uint32(acl.FlagInherited), canonical)

		native, unmapped := smbTables.Flags.DecodeCanonicalToNative(canonical)
		require.Zero(t, unmapped)
		assert.Equal(t, uint32(0x10), native)
	})

	t.Run("CrossPlatformPermissionTransfer", func(t *testing.T) {
		// darwin read+write+execute -> canonical -> smb
		darwinTables, err := Darwin.Build()
		require.NoError(t, err)
		smbTables, err := SMB.Build()
		require.NoError(t, err)

		canonical, unmapped := darwinTables.Perms.EncodeNativeToCanonical(
			kauthReadData | kauthWriteData | kauthExecute)
		require.Zero(t, unmapped)
		assert.Equal(t, uint32(acl.PermRead|acl.PermWrite|acl.PermExecute), canonical)

		native, unmapped := smbTables.Perms.DecodeCanonicalToNative(canonical)
		require.Zero(t, unmapped)
		assert.Equal(t, uint32(ntFileReadData|ntFileWriteData|ntFileExecute), native)
	})
}

// ============================================================================
// Registry Tests
// ============================================================================

func TestRegistry(t *testing.T) {
	t.Run("LooksUpBuiltins", func(t *testing.T) {
		for _, name := range []string{"posix", "nfs4", "smb", "darwin"} {
			def, err := Lookup(name)
			require.NoError(t, err)
			assert.Equal(t, name, def.Name)
		}
	})

	t.Run("RejectsUnknownName", func(t *testing.T) {
		_, err := Lookup("plan9")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "plan9")
	})

	t.Run("RegistersCustomDefinition", func(t *testing.T) {
		custom := &Definition{
			Name:  "testfs",
			Brand: acl.BrandNfs4,
			Perms: []translate.Pair{{Canonical: uint32(acl.PermRead), Native: 1 << 7}},
		}
		require.NoError(t, Register(custom))

		got, err := Lookup("testfs")
		require.NoError(t, err)
		assert.Equal(t, custom, got)
		assert.Contains(t, Names(), "testfs")
	})

	t.Run("RejectsDuplicateName", func(t *testing.T) {
		require.Error(t, Register(&Definition{Name: "posix"}))
	})

	t.Run("RejectsEmptyName", func(t *testing.T) {
		require.Error(t, Register(&Definition{}))
	})
}
