package proving

import "github.com/spacemeshos/pow/shared"

// Proof is the outcome of a successful search.
type Proof struct {
	Nonce shared.Nonce

	// Iterations is the number of digests computed, including the accepted one.
	Iterations uint64
	// Reseeds counts how often the entropy space was exhausted and a fresh seed drawn.
	Reseeds uint64
}

// String returns the hex encoded nonce.
func (p *Proof) String() string {
	return p.Nonce.String()
}
