// Package service holds the match lifecycle operations behind the HTTP
// handlers: creating a match, resolving rounds, resignations and timeouts.
package service

import (
	"crypto/rand"
	"errors"

	"github.com/lukeharte/wizard-arena/internal/storage"
)

// MatchRepo is the minimal repository interface required by the round
// operations. Using a small interface simplifies testing.
type MatchRepo interface {
	FindMatchByJoinCode(code string) (*storage.Match, error)
	UpdateMatch(m *storage.Match) error
	UpdateStatsOnMatchEnd(m *storage.Match, resigned bool) error
}

var (
	ErrMatchNotFound       = errors.New("match not found")
	ErrMatchNotInProgress  = errors.New("match is not in progress")
	ErrNotYourMatch        = errors.New("match belongs to another player")
	ErrEnemyNotFound       = errors.New("unknown enemy wizard")
	ErrInvalidAction       = errors.New("action index out of range")
	ErrActionNotAffordable = errors.New("not enough mana for that action")
)

// joinCodeAlphabet omits easily-confused characters (0/O, 1/I/L).
const joinCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const joinCodeLength = 6

// NewJoinCode returns a short random code players use to reference a match.
func NewJoinCode() string {
	b := make([]byte, joinCodeLength)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the host is broken; a zeroed buffer
		// still yields a valid (if predictable) code.
		_ = err
	}
	for i := range b {
		b[i] = joinCodeAlphabet[int(b[i])%len(joinCodeAlphabet)]
	}
	return string(b)
}
