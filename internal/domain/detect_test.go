package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numera-labs/phone-lookup-platform/internal/domain"
)

func TestDetect(t *testing.T) {
	det := domain.NewDetector(domain.DefaultRegistry())

	t.Run("full international number resolves by dial code", func(t *testing.T) {
		rec, ok := det.Detect("+201014348488")
		require.True(t, ok)
		assert.Equal(t, "EG", rec.ISOCode)
	})

	t.Run("separators and spaces are ignored", func(t *testing.T) {
		rec, ok := det.Detect("+20 101-434-8488")
		require.True(t, ok)
		assert.Equal(t, "EG", rec.ISOCode)
	})

	t.Run("dial code without plus still matches", func(t *testing.T) {
		rec, ok := det.Detect("201014348488")
		require.True(t, ok)
		assert.Equal(t, "EG", rec.ISOCode)
	})

	t.Run("shared +1 code resolves to the earlier-listed record", func(t *testing.T) {
		rec, ok := det.Detect("+14155552671")
		require.True(t, ok)
		assert.Equal(t, "US", rec.ISOCode, "US precedes CA in registry order")
	})

	t.Run("three-digit dial codes are not shadowed by two-digit ones", func(t *testing.T) {
		rec, ok := det.Detect("+212612345678")
		require.True(t, ok)
		assert.Equal(t, "MA", rec.ISOCode)
	})

	t.Run("national number with trunk zero resolves via prefix hints", func(t *testing.T) {
		// No dial code starts with 0, so the primary pass misses and the
		// hint pass sees the zero-stripped form.
		rec, ok := det.Detect("01014348488")
		require.True(t, ok)
		assert.Equal(t, "EG", rec.ISOCode)
	})

	t.Run("hint collisions resolve in registry order", func(t *testing.T) {
		// "50..." is a hint for both Saudi Arabia and the Emirates;
		// Saudi Arabia is listed first.
		rec, ok := det.Detect("0501234567")
		require.True(t, ok)
		assert.Equal(t, "SA", rec.ISOCode)
	})

	t.Run("single digit is too short for the hint pass", func(t *testing.T) {
		_, ok := det.Detect("0")
		assert.False(t, ok)
	})

	t.Run("unmatchable input is a miss, not an error", func(t *testing.T) {
		_, ok := det.Detect("000000")
		assert.False(t, ok)
	})

	t.Run("empty and non-digit input is a miss", func(t *testing.T) {
		for _, input := range []string{"", "+", "abc", "- -"} {
			_, ok := det.Detect(input)
			assert.False(t, ok, "input %q", input)
		}
	})

	t.Run("detection is deterministic", func(t *testing.T) {
		first, ok1 := det.Detect("+9665012345678")
		second, ok2 := det.Detect("+9665012345678")
		assert.Equal(t, ok1, ok2)
		assert.Equal(t, first, second)
	})
}
