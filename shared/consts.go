package shared

const (
	// ChallengeSize is the size of the challenge a proof is bound to, in bytes.
	ChallengeSize = 32

	// EntropySize is the size of the entropy seed (and thereby of the nonce), in bytes.
	EntropySize = 8

	// WorkBufferSize is the size of the preimage hashed on every attempt.
	WorkBufferSize = EntropySize + ChallengeSize

	// DigestSize is the number of hash output bytes used for the acceptance test.
	DigestSize = 8

	// TargetSize equals DigestSize; a digest is compared to a target as a little-endian uint64.
	TargetSize = DigestSize
)
