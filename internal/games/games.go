// Package games resolves wager outcomes. Games are pure: given a bet and a
// source of uniform randomness they produce a win amount and a structured
// result, with no knowledge of balances or storage.
package games

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

type Name string

const (
	Slots    Name = "slots"
	Roulette Name = "roulette"
)

// Rand supplies uniform random integers for game draws. Injected so tests
// can drive outcomes deterministically.
type Rand interface {
	IntN(n int) int
}

// SystemRand draws from the process-wide math/rand/v2 source.
type SystemRand struct{}

func (SystemRand) IntN(n int) int { return rand.IntN(n) }

// Detail is the variant-tagged outcome payload of a resolved round.
type Detail interface {
	isDetail()
}

type Game interface {
	Name() Name
	// Play resolves one round. win is zero on a loss and is computed with
	// exact decimal arithmetic; the bet itself is not deducted here.
	Play(bet decimal.Decimal, rng Rand) (win decimal.Decimal, detail Detail)
}
