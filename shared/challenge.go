package shared

import (
	"encoding/hex"
	"fmt"
)

// Challenge is the externally supplied hash a proof is bound to.
type Challenge [ChallengeSize]byte

// ZeroChallenge is the all-zero challenge.
var ZeroChallenge Challenge

// ChallengeFromBytes copies b into a Challenge. b must be exactly ChallengeSize bytes long.
func ChallengeFromBytes(b []byte) (Challenge, error) {
	var ch Challenge
	if len(b) != ChallengeSize {
		return ch, fmt.Errorf("invalid challenge length; expected: %d, given: %d", ChallengeSize, len(b))
	}
	copy(ch[:], b)
	return ch, nil
}

func (ch Challenge) String() string {
	return hex.EncodeToString(ch[:])
}
