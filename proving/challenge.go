package proving

import (
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/spacemeshos/pow/shared"
)

// EncodeWorkBuffer returns the preimage for the given entropy and challenge: the entropy at offset 0 followed by the
// challenge at offset shared.EntropySize.
func EncodeWorkBuffer(entropy shared.Entropy, challenge shared.Challenge) shared.WorkBuffer {
	var buf shared.WorkBuffer
	encode(buf[:], entropy[:], challenge[:])
	return buf
}

// encode writes entropy and challenge into dst. It panics with shared.ErrEncodingInvariant if any of the sizes is off.
func encode(dst, entropy, challenge []byte) {
	if len(dst) != shared.WorkBufferSize || len(entropy) != shared.EntropySize || len(challenge) != shared.ChallengeSize {
		panic(fmt.Errorf("%w: buffer: %d, entropy: %d, challenge: %d",
			shared.ErrEncodingInvariant, len(dst), len(entropy), len(challenge)))
	}

	copy(dst, entropy)
	copy(dst[shared.EntropySize:], challenge)
}

// ComputeDigest hashes buf with SHA3-256 and writes the first shared.DigestSize bytes of the hash into out.
// It doesn't allocate, which makes it suitable for the search loop.
func ComputeDigest(buf *shared.WorkBuffer, out *shared.Digest) {
	sum := sha3.Sum256(buf[:])
	copy(out[:], sum[:shared.DigestSize])
}

// Digest returns the truncated hash of buf.
func Digest(buf shared.WorkBuffer) shared.Digest {
	var d shared.Digest
	ComputeDigest(&buf, &d)
	return d
}
