package games

import "github.com/shopspring/decimal"

const (
	ColorGreen = "green"
	ColorRed   = "red"
	ColorBlack = "black"
)

var (
	multGreen = decimal.NewFromInt(35)
	multColor = decimal.NewFromInt(2)
)

// RouletteDetail is the drawn wheel position and its color.
type RouletteDetail struct {
	Number int    `json:"number"`
	Color  string `json:"color"`
}

func (RouletteDetail) isDetail() {}

type roulette struct {
	choice string
}

// NewRoulette returns a roulette round for the caller's chosen color.
// The choice is not validated against the wheel's colors: an unrecognized
// choice never matches and therefore never wins.
func NewRoulette(choice string) Game { return roulette{choice: choice} }

func (roulette) Name() Name { return Roulette }

// Play draws one position uniformly from [0,36]. A matching color pays 35x
// on green and 2x otherwise.
func (g roulette) Play(bet decimal.Decimal, rng Rand) (decimal.Decimal, Detail) {
	number := rng.IntN(37)
	color := wheelColor(number)

	detail := RouletteDetail{Number: number, Color: color}

	if g.choice != color {
		return decimal.Zero, detail
	}

	if color == ColorGreen {
		return bet.Mul(multGreen), detail
	}

	return bet.Mul(multColor), detail
}

// wheelColor maps a wheel position to its color: 0 is green, odd positions
// are red, the remaining even positions are black.
func wheelColor(number int) string {
	switch {
	case number == 0:
		return ColorGreen
	case number%2 == 1:
		return ColorRed
	default:
		return ColorBlack
	}
}
