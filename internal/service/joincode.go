package service

import (
	"crypto/rand"
	"fmt"
	"strings"

	apperrors "github.com/dkueng01/team-rule-tracker/internal/errors"
)

// joinCodeAlphabet avoids the lookalikes 0/O, 1/I and l so codes survive
// being read aloud or written down.
const joinCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const joinCodeLength = 8

// GenerateJoinCode returns a random 8 character join code.
func GenerateJoinCode() (string, error) {
	buf := make([]byte, joinCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate join code: %w", err)
	}
	// 32 symbols divide 256 evenly, so the modulo is unbiased
	for i, b := range buf {
		buf[i] = joinCodeAlphabet[int(b)%len(joinCodeAlphabet)]
	}
	return string(buf), nil
}

// NormalizeJoinCode upper-cases and trims user input so lookups are
// case-insensitive. Codes of the wrong length are rejected before any
// database access.
func NormalizeJoinCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != joinCodeLength {
		return "", apperrors.NewValidationError("join_code", fmt.Sprintf("must be exactly %d characters", joinCodeLength))
	}
	return code, nil
}
