// Package gate implements the shared-passcode check that unlocks a session.
package gate

import (
	"errors"
	"fmt"
	"strings"

	"AppealOS/internal/session"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidPasscode = errors.New("invalid access code")

// bcrypt only reads the first 72 bytes of the input and its NUL terminator,
// so longer input, or input holding a NUL, can match on a prefix.
const maxPasscodeBytes = 72

// Gate compares submitted passcodes against the one configured secret. Only
// the bcrypt hash is kept in memory.
type Gate struct {
	hash []byte
}

// New hashes passcode with the given bcrypt cost (bcrypt.DefaultCost in
// production, bcrypt.MinCost in tests).
func New(passcode string, cost int) (*Gate, error) {
	if !hashable(passcode) {
		return nil, fmt.Errorf("hash passcode: must be at most %d bytes without NUL", maxPasscodeBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), cost)
	if err != nil {
		return nil, fmt.Errorf("hash passcode: %w", err)
	}
	return &Gate{hash: hash}, nil
}

// Check reports whether passcode equals the configured secret.
func (g *Gate) Check(passcode string) bool {
	if !hashable(passcode) {
		return false
	}
	return bcrypt.CompareHashAndPassword(g.hash, []byte(passcode)) == nil
}

// Unlock marks st authenticated when passcode matches. A failed attempt never
// locks an already unlocked session again; there is no attempt limit.
func (g *Gate) Unlock(st *session.State, passcode string) error {
	if !g.Check(passcode) {
		return ErrInvalidPasscode
	}
	st.Authenticated = true
	return nil
}

func hashable(passcode string) bool {
	return len(passcode) <= maxPasscodeBytes && !strings.ContainsRune(passcode, 0)
}
