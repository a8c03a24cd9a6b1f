package core

import "math/rand"

// Shuffle permutes s in place with the Fisher–Yates algorithm.
// Every permutation is equally likely given a uniform rng.
func Shuffle[T any](rng *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Shuffled returns a shuffled copy of s, leaving s unchanged.
func Shuffled[T any](rng *rand.Rand, s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	Shuffle(rng, out)
	return out
}
