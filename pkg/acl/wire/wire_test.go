package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/aclwire/pkg/acl"
)

// ============================================================================
// Encode Tests
// ============================================================================

func TestEncode(t *testing.T) {
	t.Run("ProducesExpectedBytes", func(t *testing.T) {
		a := &acl.ACL{
			Type: acl.TypeAccess,
			Aces: []acl.Ace{
				{
					Brand: acl.BrandPosix,
					Perms: acl.PermRead | acl.PermWrite | acl.PermExecute,
					Tag:   acl.TagUserObj,
				},
			},
		}

		data, err := Encode(a)
		require.NoError(t, err)

		want := []byte{
			0x01,                   // brand: posix
			0x01,                   // type: access
			0x00, 0x00, 0x00, 0x01, // entry count
			0x00, 0x00, 0x40, 0x07, // rwx, user_obj
			0x00, 0x00, 0x00, 0x00, // empty principal
		}
		assert.Equal(t, want, data)
	})

	t.Run("PadsPrincipalToFourBytes", func(t *testing.T) {
		a := &acl.ACL{
			Type: acl.TypeNfs4,
			Aces: []acl.Ace{
				{Brand: acl.BrandNfs4, Tag: acl.TagUser, Perms: acl.PermRead, Principal: "bob"},
			},
		}

		data, err := Encode(a)
		require.NoError(t, err)

		// brand + type + count + ace word + string length + "bob" + 1 pad
		require.Len(t, data, 2+4+4+4+4)
		assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x03}, data[10:14])
		assert.Equal(t, []byte{'b', 'o', 'b', 0x00}, data[14:18])
	})

	t.Run("RejectsUnknownType", func(t *testing.T) {
		_, err := Encode(&acl.ACL{Type: acl.TypeUnknown})
		require.Error(t, err)
	})

	t.Run("RejectsBrandViolatingEntry", func(t *testing.T) {
		a := &acl.ACL{
			Type: acl.TypeAccess, // posix
			Aces: []acl.Ace{
				{Brand: acl.BrandPosix, Tag: acl.TagUserObj, Perms: acl.PermRead},
				{Brand: acl.BrandPosix, Tag: acl.TagUserObj, Flags: acl.FlagInheritOnly},
			},
		}

		_, err := Encode(a)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "entry 1")
	})
}

// ============================================================================
// Decode Tests
// ============================================================================

func TestDecode(t *testing.T) {
	t.Run("RoundTripsNfs4ACL", func(t *testing.T) {
		original := &acl.ACL{
			Type: acl.TypeNfs4,
			Aces: []acl.Ace{
				{
					Brand:     acl.BrandNfs4,
					Perms:     acl.PermNfs4Mask,
					Tag:       acl.TagUserObj,
					Principal: "owner@",
				},
				{
					Brand:     acl.BrandNfs4,
					Perms:     acl.PermRead | acl.PermReadAttr,
					Tag:       acl.TagEveryone,
					Type:      acl.AceTypeDeny,
					Flags:     acl.FlagContainerInherit | acl.FlagInheritOnly,
					Principal: "everyone@",
				},
			},
		}

		data, err := Encode(original)
		require.NoError(t, err)

		decoded, err := Decode(data)
		require.NoError(t, err)
		assert.Equal(t, original, decoded)
	})

	t.Run("RoundTripsEmptyACL", func(t *testing.T) {
		original := &acl.ACL{Type: acl.TypeDefault}

		data, err := Encode(original)
		require.NoError(t, err)

		decoded, err := Decode(data)
		require.NoError(t, err)
		assert.Equal(t, acl.TypeDefault, decoded.Type)
		assert.Empty(t, decoded.Aces)
	})

	t.Run("RejectsShortInput", func(t *testing.T) {
		_, err := Decode([]byte{0x01})
		require.Error(t, err)
	})

	t.Run("RejectsUnknownTypeByte", func(t *testing.T) {
		_, err := Decode([]byte{0x01, 0x09, 0x00, 0x00, 0x00, 0x00})
		require.Error(t, err)
	})

	t.Run("RejectsMismatchedBrandByte", func(t *testing.T) {
		// nfs4 brand byte with a posix access discriminator
		_, err := Decode([]byte{0x02, 0x01, 0x00, 0x00, 0x00, 0x00})
		require.Error(t, err)
	})

	t.Run("RejectsReservedBitsInEntry", func(t *testing.T) {
		data := []byte{
			0x02, 0x03, // nfs4
			0x00, 0x00, 0x00, 0x01, // one entry
			0x80, 0x00, 0x00, 0x01, // reserved bit 31 set
			0x00, 0x00, 0x00, 0x00, // empty principal
		}

		_, err := Decode(data)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "entry 0")

		var encErr *acl.InvalidEncodingError
		require.ErrorAs(t, err, &encErr)
	})

	t.Run("RejectsBrandViolatingEntry", func(t *testing.T) {
		data := []byte{
			0x01, 0x01, // posix access
			0x00, 0x00, 0x00, 0x01, // one entry
			0x00, 0x00, 0x40, 0x0F, // append_data is NFS4-only
			0x00, 0x00, 0x00, 0x00, // empty principal
		}

		_, err := Decode(data)
		require.Error(t, err)

		var mismatch *acl.BrandMismatchError
		require.ErrorAs(t, err, &mismatch)
	})

	t.Run("RejectsTruncatedBody", func(t *testing.T) {
		data := []byte{0x02, 0x03, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00}
		_, err := Decode(data)
		require.Error(t, err)
	})
}
