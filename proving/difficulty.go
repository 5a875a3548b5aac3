package proving

import (
	"encoding/binary"
	"math/bits"

	"github.com/spacemeshos/pow/shared"
)

// DeriveTarget returns the target a digest has to reach for the given difficulty.
//
// The target is 2^64 - floor(2^64 / difficulty), truncated to 64 bits and encoded in little-endian order. The share
// of the 64-bit space at or above the target is about 1/difficulty, so a search is expected to take difficulty
// attempts. The target never decreases as the difficulty grows. A difficulty of 1 yields the all-zero target,
// accepting every digest.
func DeriveTarget(difficulty uint64) (shared.Target, error) {
	var target shared.Target
	if difficulty == 0 {
		return target, shared.ErrInvalidDifficulty
	}

	// 2^64 / 1 doesn't fit in 64 bits; its low 64 bits, and thereby the target, are 0.
	if difficulty == 1 {
		return target, nil
	}

	// 128-by-64 bit division of 2^64 (hi = 1, lo = 0). hi < difficulty holds, so the quotient fits.
	quo, _ := bits.Div64(1, 0, difficulty)
	binary.LittleEndian.PutUint64(target[:], -quo)
	return target, nil
}

// IsAcceptable reports whether digest reaches target. Both are read as little-endian magnitudes and compared from the
// most significant byte down; a digest equal to the target is accepted.
func IsAcceptable(digest shared.Digest, target shared.Target) bool {
	for i := shared.DigestSize - 1; i >= 0; i-- {
		if digest[i] == target[i] {
			continue
		}
		return digest[i] > target[i]
	}
	return true
}
