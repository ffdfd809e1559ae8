// Package deck builds the per-room card order every participant swipes through.
// The order is derived locally from the room seed, so two devices holding the same
// candidate list and seed always produce the same deck.
package deck

// Modulus and Multiplier parametrise the Lehmer generator behind Shuffle.
const (
	Modulus    int64 = 1<<35 - 31
	Multiplier int64 = 185852
)

// Source is a seeded Lehmer generator. It is not safe for concurrent use.
type Source struct {
	state int64
}

// NewSource returns a generator whose state starts at seed mod Modulus.
func NewSource(seed int64) *Source {
	s := seed % Modulus
	if s < 0 {
		s += Modulus
	}
	return &Source{state: s}
}

// Float64 advances the generator and returns a value in [0,1).
// state < 2^35 and Multiplier < 2^18, so the product never overflows int64.
func (s *Source) Float64() float64 {
	s.state = (s.state * Multiplier) % Modulus
	return float64(s.state) / float64(Modulus)
}

// Shuffle returns a permutation of items fully determined by seed.
// The input slice is never modified.
func Shuffle[T any](items []T, seed int64) []T {
	out := make([]T, len(items))
	copy(out, items)
	if len(out) < 2 {
		return out
	}

	rng := NewSource(seed)
	for i := len(out) - 1; i > 0; i-- {
		j := int(rng.Float64() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}
