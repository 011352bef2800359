package games

import (
	"fmt"
	"math"
	"strings"

	"coin-casino-backend/internal/models"
)

// Outcome is what a resolver produces from one play. Multiplier is
// payout over bet: 0 means the stake is lost, 1 means a push (stake
// returned), anything above 1 is a win.
type Outcome struct {
	Won        bool
	Push       bool
	Multiplier float64
	Narrative  interface{}
}

// Delta converts the outcome into a signed balance change for a given bet.
func (o Outcome) Delta(bet int64) int64 {
	payout := o.Payout(bet)
	return payout - bet
}

// Payout is the gross amount returned to the player, stake included.
func (o Outcome) Payout(bet int64) int64 {
	return int64(math.Round(float64(bet) * o.Multiplier))
}

type CoinflipResult struct {
	Choice string `json:"choice"`
	Landed string `json:"landed"`
}

// Coinflip pays 2x when the coin lands on the chosen face.
func Coinflip(src RandomSource, choice string) (Outcome, error) {
	choice = strings.ToLower(choice)
	if choice != "heads" && choice != "tails" {
		return Outcome{}, fmt.Errorf("%w: choice must be heads or tails, got %q", models.ErrInvalidParameter, choice)
	}

	landed := "heads"
	if src.IntN(0, 1) == 1 {
		landed = "tails"
	}

	won := landed == choice
	multiplier := 0.0
	if won {
		multiplier = 2
	}

	return Outcome{
		Won:        won,
		Multiplier: multiplier,
		Narrative:  CoinflipResult{Choice: choice, Landed: landed},
	}, nil
}

type DiceResult struct {
	Dice  [2]int `json:"dice"`
	Total int    `json:"total"`
}

// Dice rolls two dice and pays on the sum. The table is intentionally
// asymmetric: double six pays more than double one.
func Dice(src RandomSource) Outcome {
	dice := [2]int{src.IntN(1, 6), src.IntN(1, 6)}
	total := dice[0] + dice[1]

	var multiplier float64
	switch {
	case total == 12:
		multiplier = 10
	case total == 2:
		multiplier = 5
	case total >= 10:
		multiplier = 3
	case total >= 7:
		multiplier = 1.5
	default:
		multiplier = 0
	}

	return Outcome{
		Won:        multiplier > 0,
		Multiplier: multiplier,
		Narrative:  DiceResult{Dice: dice, Total: total},
	}
}

var (
	slotSymbols = []string{"cherry", "lemon", "orange", "grape", "diamond", "seven"}
	slotWeights = []int{30, 25, 20, 15, 8, 2}

	// Payout for three of a kind, keyed by symbol. Rarer symbols pay more.
	slotTriples = map[string]float64{
		"cherry":  2,
		"lemon":   3,
		"orange":  5,
		"grape":   10,
		"diamond": 20,
		"seven":   50,
	}
)

type SlotsResult struct {
	Reels   [3]string `json:"reels"`
	Jackpot bool      `json:"jackpot"`
}

// Slots spins three independent weighted reels. Three of a kind pays by
// symbol rarity, any pair pays 1.5x.
func Slots(src RandomSource) Outcome {
	var reels [3]string
	for i := range reels {
		reels[i] = slotSymbols[src.WeightedIndex(slotWeights)]
	}

	var multiplier float64
	switch {
	case reels[0] == reels[1] && reels[1] == reels[2]:
		multiplier = slotTriples[reels[0]]
	case reels[0] == reels[1] || reels[1] == reels[2] || reels[0] == reels[2]:
		multiplier = 1.5
	default:
		multiplier = 0
	}

	return Outcome{
		Won:        multiplier > 0,
		Multiplier: multiplier,
		Narrative:  SlotsResult{Reels: reels, Jackpot: multiplier >= 20},
	}
}

// The European single-zero red numbers. Zero is green, everything else
// not in this set is black.
var rouletteRed = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

type RouletteResult struct {
	Number  int    `json:"number"`
	Color   string `json:"color"`
	BetType string `json:"bet_type"`
}

// Roulette spins a single-zero wheel. Color bets pay 2x, green pays 36x,
// even/odd pay 2x with zero winning neither.
func Roulette(src RandomSource, betType string) (Outcome, error) {
	betType = strings.ToLower(betType)
	switch betType {
	case "red", "black", "green", "even", "odd":
	default:
		return Outcome{}, fmt.Errorf("%w: unknown roulette bet type %q", models.ErrInvalidParameter, betType)
	}

	number := src.IntN(0, 36)

	color := "black"
	switch {
	case number == 0:
		color = "green"
	case rouletteRed[number]:
		color = "red"
	}

	var won bool
	multiplier := 2.0
	switch betType {
	case "red", "black":
		won = color == betType
	case "green":
		won = number == 0
		multiplier = 36
	case "even":
		won = number%2 == 0 && number != 0
	case "odd":
		won = number%2 == 1
	}
	if !won {
		multiplier = 0
	}

	return Outcome{
		Won:        won,
		Multiplier: multiplier,
		Narrative:  RouletteResult{Number: number, Color: color, BetType: betType},
	}, nil
}

// Crash cashout bounds.
const (
	CrashMinCashout = 1.01
	CrashMaxCashout = 100.0
)

type CrashResult struct {
	Cashout    float64 `json:"cashout"`
	CrashPoint float64 `json:"crash_point"`
}

// Crash draws a crash point from a four-tier distribution weighted toward
// low multipliers and pays the requested cashout when the round survives
// past it.
func Crash(src RandomSource, cashout float64) (Outcome, error) {
	if cashout < CrashMinCashout || cashout > CrashMaxCashout {
		return Outcome{}, fmt.Errorf("%w: cashout must be between %.2f and %.0f, got %v",
			models.ErrInvalidParameter, CrashMinCashout, CrashMaxCashout, cashout)
	}

	tier := src.Float64()
	var crashPoint float64
	switch {
	case tier < 0.33:
		crashPoint = uniform(src, 1.0, 2.0)
	case tier < 0.66:
		crashPoint = uniform(src, 2.0, 5.0)
	case tier < 0.90:
		crashPoint = uniform(src, 5.0, 10.0)
	default:
		crashPoint = uniform(src, 10.0, 50.0)
	}
	crashPoint = math.Round(crashPoint*100) / 100

	won := cashout <= crashPoint
	multiplier := 0.0
	if won {
		multiplier = cashout
	}

	return Outcome{
		Won:        won,
		Multiplier: multiplier,
		Narrative:  CrashResult{Cashout: cashout, CrashPoint: crashPoint},
	}, nil
}

func uniform(src RandomSource, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}
