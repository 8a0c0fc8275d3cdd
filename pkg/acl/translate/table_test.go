package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Table Construction Tests
// ============================================================================

func TestBuildTable(t *testing.T) {
	t.Run("BuildsEmptyTable", func(t *testing.T) {
		table, err := BuildTable(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, table.Len())
	})

	t.Run("BuildsValidTable", func(t *testing.T) {
		table, err := BuildTable([]Pair{
			{Canonical: 1 << 0, Native: 1 << 5},
			{Canonical: 1 << 1, Native: 1 << 1},
			{Canonical: 1 << 2, Native: 1 << 0},
		})
		require.NoError(t, err)
		assert.Equal(t, 3, table.Len())
	})

	t.Run("RejectsDuplicateCanonicalBit", func(t *testing.T) {
		_, err := BuildTable([]Pair{
			{Canonical: 1 << 0, Native: 1 << 0},
			{Canonical: 1 << 0, Native: 1 << 1},
		})
		require.Error(t, err)

		var dup *DuplicateMappingError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "canonical", dup.Side)
		assert.Equal(t, uint32(1<<0), dup.Bit)
	})

	t.Run("RejectsDuplicateNativeBit", func(t *testing.T) {
		_, err := BuildTable([]Pair{
			{Canonical: 1 << 0, Native: 1 << 3},
			{Canonical: 1 << 1, Native: 1 << 3},
		})
		require.Error(t, err)

		var dup *DuplicateMappingError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "native", dup.Side)
		assert.Equal(t, uint32(1<<3), dup.Bit)
	})

	t.Run("RejectsMultiBitPair", func(t *testing.T) {
		_, err := BuildTable([]Pair{{Canonical: 0x3, Native: 1 << 0}})
		require.Error(t, err)

		_, err = BuildTable([]Pair{{Canonical: 1 << 0, Native: 0x3}})
		require.Error(t, err)
	})

	t.Run("RejectsZeroBitPair", func(t *testing.T) {
		_, err := BuildTable([]Pair{{Canonical: 0, Native: 1 << 0}})
		require.Error(t, err)
	})
}

// ============================================================================
// Bit Translation Tests
// ============================================================================

func TestBitTranslation(t *testing.T) {
	// Identity table for the POSIX rwx bits.
	rwx, err := BuildTable([]Pair{
		{Canonical: 1 << 0, Native: 1 << 0},
		{Canonical: 1 << 1, Native: 1 << 1},
		{Canonical: 1 << 2, Native: 1 << 2},
	})
	require.NoError(t, err)

	t.Run("EncodesPosixRwx", func(t *testing.T) {
		canonical, unmapped := rwx.EncodeNativeToCanonical(0b111)
		assert.Equal(t, uint32(0b111), canonical)
		assert.Zero(t, unmapped)
	})

	t.Run("DecodesBackWithZeroResidue", func(t *testing.T) {
		native, unmapped := rwx.DecodeCanonicalToNative(0b111)
		assert.Equal(t, uint32(0b111), native)
		assert.Zero(t, unmapped)
	})

	t.Run("ReportsUnmappedNativeBits", func(t *testing.T) {
		canonical, unmapped := rwx.EncodeNativeToCanonical(0b111 | 1<<9)
		assert.Equal(t, uint32(0b111), canonical)
		assert.Equal(t, uint32(1<<9), unmapped)
	})

	t.Run("ReportsUnmappedCanonicalBits", func(t *testing.T) {
		native, unmapped := rwx.DecodeCanonicalToNative(1 << 10)
		assert.Zero(t, native)
		assert.Equal(t, uint32(1<<10), unmapped)
	})

	t.Run("TranslatesRenumberedBits", func(t *testing.T) {
		table, err := BuildTable([]Pair{
			{Canonical: 1 << 0, Native: 1 << 5},
			{Canonical: 1 << 2, Native: 1 << 0},
		})
		require.NoError(t, err)

		canonical, unmapped := table.EncodeNativeToCanonical(1<<5 | 1<<0)
		assert.Equal(t, uint32(1<<0|1<<2), canonical)
		assert.Zero(t, unmapped)

		native, unmapped := table.DecodeCanonicalToNative(canonical)
		assert.Equal(t, uint32(1<<5|1<<0), native)
		assert.Zero(t, unmapped)
	})

	t.Run("EmptyTableMapsNothing", func(t *testing.T) {
		empty, err := BuildTable(nil)
		require.NoError(t, err)

		canonical, unmapped := empty.EncodeNativeToCanonical(0xDEADBEEF)
		assert.Zero(t, canonical)
		assert.Equal(t, uint32(0xDEADBEEF), unmapped)
	})

	t.Run("RoundTripsEveryMappedBit", func(t *testing.T) {
		var allNative uint32
		for _, p := range rwx.Pairs() {
			allNative |= p.Native
		}

		canonical, unmapped := rwx.EncodeNativeToCanonical(allNative)
		require.Zero(t, unmapped)

		native, unmapped := rwx.DecodeCanonicalToNative(canonical)
		require.Zero(t, unmapped)
		assert.Equal(t, allNative, native)
	})
}
