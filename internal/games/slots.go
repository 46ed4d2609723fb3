package games

import "github.com/shopspring/decimal"

// ReelSymbols is the fixed 6-symbol alphabet a reel is drawn from.
var ReelSymbols = [6]string{"🍒", "🍋", "🍊", "💎", "7️⃣", "⭐"}

const (
	SymbolDiamond = "💎"
	SymbolSeven   = "7️⃣"
)

var (
	multTripleDiamond = decimal.NewFromInt(10)
	multTripleSeven   = decimal.NewFromInt(7)
	multTriple        = decimal.NewFromInt(5)
	multPair          = decimal.NewFromInt(2)
)

// SlotsDetail is the ordered triple of drawn reel symbols.
type SlotsDetail struct {
	Reels [3]string `json:"reels"`
}

func (SlotsDetail) isDetail() {}

type slots struct{}

func NewSlots() Game { return slots{} }

func (slots) Name() Name { return Slots }

// Play draws three independent reels and resolves in priority order:
// a triple pays 10x for diamonds, 7x for sevens, 5x otherwise; an adjacent
// pair (positions 0-1 or 1-2, never 0-2 alone) pays 2x; anything else loses.
func (slots) Play(bet decimal.Decimal, rng Rand) (decimal.Decimal, Detail) {
	var reels [3]string
	for i := range reels {
		reels[i] = ReelSymbols[rng.IntN(len(ReelSymbols))]
	}

	detail := SlotsDetail{Reels: reels}

	switch {
	case reels[0] == reels[1] && reels[1] == reels[2]:
		switch reels[0] {
		case SymbolDiamond:
			return bet.Mul(multTripleDiamond), detail
		case SymbolSeven:
			return bet.Mul(multTripleSeven), detail
		default:
			return bet.Mul(multTriple), detail
		}
	case reels[0] == reels[1] || reels[1] == reels[2]:
		return bet.Mul(multPair), detail
	default:
		return decimal.Zero, detail
	}
}
