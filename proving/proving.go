package proving

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spacemeshos/pow/shared"
)

// ErrMaxIterations is returned when a search bounded with WithMaxIterations runs out of attempts.
var ErrMaxIterations = errors.New("max iterations reached")

// GenerateProof searches for a nonce proving the requested amount of work for challenge and returns it hex encoded.
//
// The search isn't bounded: it returns once a nonce is found, which takes difficulty attempts on average. Use Search
// to bound it with a context or an iteration cap.
func GenerateProof(challenge shared.Challenge, difficulty uint64) (string, error) {
	proof, err := Search(context.Background(), challenge, difficulty)
	if err != nil {
		return "", err
	}
	return proof.String(), nil
}

// Search searches for a nonce such that the digest of the nonce followed by challenge reaches the target derived from
// difficulty.
//
// The search stops early if ctx is done, returning ctx.Err(), or when a limit set with WithMaxIterations is reached.
func Search(ctx context.Context, challenge shared.Challenge, difficulty uint64, opts ...OptionFunc) (*Proof, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	target, err := DeriveTarget(difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to derive target: %w", err)
	}

	logger := options.logger
	logger.Debug("searching for nonce",
		zap.Stringer("challenge", challenge),
		zap.Uint64("difficulty", difficulty),
		zap.Stringer("target", target),
	)

	proof, err := search(ctx, challenge, target, options)
	if err != nil {
		return nil, err
	}

	logger.Debug("found nonce",
		zap.Stringer("nonce", proof.Nonce),
		zap.Uint64("iterations", proof.Iterations),
		zap.Uint64("reseeds", proof.Reseeds),
	)
	return proof, nil
}
