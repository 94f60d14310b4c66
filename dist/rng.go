// SPDX-License-Identifier: MIT
// Package dist: deterministic random sources.
//
// Goals:
//   - Determinism: same seed ⇒ identical samples across platforms.
//   - Encapsulation: one source factory; no time-based seeding anywhere.
//
// Concurrency:
//   - A rand.Source is NOT goroutine-safe. Use DeriveSource to hand each
//     worker its own stream.

package dist

import "math/rand/v2"

// DefaultSeed is used when callers pass seed == 0.
const DefaultSeed uint64 = 1

// NewSource returns a PCG source seeded from seed.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim as
// the first PCG word and its SplitMix64 mix as the second.
//
// Complexity: O(1).
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.NewPCG(seed, mixSeed(seed, 0))
}

// DeriveSource creates an independent stream from parent and a stream id.
// parent.Uint64() is consumed once, so reusing a stream id on the same parent
// still yields distinct children. A nil parent uses DefaultSeed.
//
// Complexity: O(1).
func DeriveSource(parent rand.Source, stream uint64) rand.Source {
	base := DefaultSeed
	if parent != nil {
		base = parent.Uint64()
	}
	s := mixSeed(base, stream)

	return rand.NewPCG(s, mixSeed(s, stream+1))
}

// mixSeed is a SplitMix64 finalizer over parent and stream.
func mixSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
