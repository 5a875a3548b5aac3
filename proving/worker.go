package proving

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/spacemeshos/pow/shared"
)

// search looks for entropy that, prefixed to challenge, hashes to a digest reaching target.
// Work buffer and digest are reused across attempts; the loop itself doesn't allocate.
func search(ctx context.Context, challenge shared.Challenge, target shared.Target, opts *option) (*Proof, error) {
	logger := opts.logger

	var buf shared.WorkBuffer
	if err := reseed(&buf, challenge, opts.entropy); err != nil {
		return nil, err
	}

	var (
		digest     shared.Digest
		iterations uint64
		reseeds    uint64
		done       = ctx.Done()
	)
	for {
		ComputeDigest(&buf, &digest)
		iterations++

		if IsAcceptable(digest, target) {
			return &Proof{
				Nonce:      buf.Entropy(),
				Iterations: iterations,
				Reseeds:    reseeds,
			}, nil
		}

		if opts.logRate > 0 && iterations%opts.logRate == 0 {
			logger.Debug("still searching for nonce", zap.Uint64("iterations", iterations), zap.Uint64("reseeds", reseeds))
		}

		if opts.maxIterations > 0 && iterations >= opts.maxIterations {
			return nil, fmt.Errorf("%w: %d attempts", ErrMaxIterations, iterations)
		}

		if done != nil && iterations%opts.checkInterval == 0 {
			select {
			case <-done:
				logger.Debug("search for nonce interrupted", zap.Uint64("iterations", iterations))
				return nil, ctx.Err()
			default:
				// continue looking for a nonce
			}
		}

		if !nextEntropy(&buf, shared.EntropySize) {
			reseeds++
			logger.Debug("entropy space exhausted, drawing new seed", zap.Uint64("reseeds", reseeds))
			if err := reseed(&buf, challenge, opts.entropy); err != nil {
				return nil, err
			}
		}
	}
}

// nextEntropy increments the first size bytes of buf as a little-endian counter. Bytes from index size onwards are
// left untouched. It returns false if the counter wrapped around to zero.
func nextEntropy(buf *shared.WorkBuffer, size int) bool {
	for i := 0; i < size; i++ {
		buf[i]++
		if buf[i] != 0 {
			return true
		}
	}
	return false
}

// reseed draws fresh entropy from r and re-encodes buf with it and challenge.
func reseed(buf *shared.WorkBuffer, challenge shared.Challenge, r io.Reader) error {
	var entropy shared.Entropy
	if _, err := io.ReadFull(r, entropy[:]); err != nil {
		return fmt.Errorf("failed to draw entropy: %w", err)
	}
	encode(buf[:], entropy[:], challenge[:])
	return nil
}
