package service

import (
	"strings"
	"testing"

	apperrors "github.com/dkueng01/team-rule-tracker/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJoinCode(t *testing.T) {
	t.Run("has fixed length and alphabet", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			code, err := GenerateJoinCode()
			require.NoError(t, err)
			assert.Len(t, code, 8)
			for _, c := range code {
				assert.Contains(t, joinCodeAlphabet, string(c))
			}
		}
	})

	t.Run("codes differ across calls", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			code, err := GenerateJoinCode()
			require.NoError(t, err)
			assert.False(t, seen[code], "generated duplicate code %s", code)
			seen[code] = true
		}
	})

	t.Run("generated codes survive normalization unchanged", func(t *testing.T) {
		code, err := GenerateJoinCode()
		require.NoError(t, err)

		normalized, err := NormalizeJoinCode(code)
		require.NoError(t, err)
		assert.Equal(t, code, normalized)
	})
}

func TestNormalizeJoinCode(t *testing.T) {
	t.Run("upper-cases lower case input", func(t *testing.T) {
		normalized, err := NormalizeJoinCode("abcd2345")
		require.NoError(t, err)
		assert.Equal(t, "ABCD2345", normalized)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		normalized, err := NormalizeJoinCode("  ABCD2345 ")
		require.NoError(t, err)
		assert.Equal(t, "ABCD2345", normalized)
	})

	t.Run("rejects wrong lengths", func(t *testing.T) {
		for _, code := range []string{"", "ABC", "ABCD23456", strings.Repeat("A", 100)} {
			_, err := NormalizeJoinCode(code)
			assert.True(t, apperrors.IsValidation(err), "expected validation error for %q", code)
		}
	})
}
