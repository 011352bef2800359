package games

import "fmt"

type card struct {
	rank  string
	suit  string
	value int
}

func (c card) String() string { return c.rank + c.suit }

var (
	cardSuits  = []string{"♠", "♥", "♦", "♣"}
	cardRanks  = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
	cardValues = []int{11, 2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10, 10}
)

func newDeck(src RandomSource) []card {
	deck := make([]card, 0, 52)
	for _, suit := range cardSuits {
		for i, rank := range cardRanks {
			deck = append(deck, card{rank: rank, suit: suit, value: cardValues[i]})
		}
	}
	src.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// handValue sums the hand with aces at 11, then drops aces to 1 one at a
// time while the hand is busted (standard soft/hard rule).
func handValue(hand []card) int {
	value := 0
	aces := 0
	for _, c := range hand {
		value += c.value
		if c.rank == "A" {
			aces++
		}
	}
	for value > 21 && aces > 0 {
		value -= 10
		aces--
	}
	return value
}

func handStrings(hand []card) []string {
	out := make([]string, len(hand))
	for i, c := range hand {
		out[i] = c.String()
	}
	return out
}

type BlackjackResult struct {
	PlayerHand  []string `json:"player_hand"`
	DealerHand  []string `json:"dealer_hand"`
	PlayerValue int      `json:"player_value"`
	DealerValue int      `json:"dealer_value"`
	Blackjack   bool     `json:"blackjack"`
	Summary     string   `json:"summary"`
}

// Blackjack plays one fully automated hand against the dealer from a
// freshly shuffled 52-card deck. Both sides stand on 17. A natural pays
// 2.5x, a regular win 2x, ties push the stake back.
func Blackjack(src RandomSource) Outcome {
	deck := newDeck(src)
	next := 0
	deal := func() card {
		c := deck[next]
		next++
		return c
	}

	player := []card{deal(), deal()}
	dealer := []card{deal(), deal()}

	playerValue := handValue(player)
	dealerValue := handValue(dealer)

	result := func(won, push, blackjack bool, multiplier float64, summary string) Outcome {
		return Outcome{
			Won:        won,
			Push:       push,
			Multiplier: multiplier,
			Narrative: BlackjackResult{
				PlayerHand:  handStrings(player),
				DealerHand:  handStrings(dealer),
				PlayerValue: handValue(player),
				DealerValue: handValue(dealer),
				Blackjack:   blackjack,
				Summary:     summary,
			},
		}
	}

	// Natural 21 on the opening deal.
	if playerValue == 21 {
		if dealerValue == 21 {
			return result(false, true, true, 1, "both dealt blackjack, push")
		}
		return result(true, false, true, 2.5, "blackjack")
	}

	for playerValue < 17 {
		player = append(player, deal())
		playerValue = handValue(player)
	}
	if playerValue > 21 {
		return result(false, false, false, 0, fmt.Sprintf("player busts with %d", playerValue))
	}

	for dealerValue < 17 {
		dealer = append(dealer, deal())
		dealerValue = handValue(dealer)
	}

	switch {
	case dealerValue > 21:
		return result(true, false, false, 2, fmt.Sprintf("dealer busts with %d", dealerValue))
	case playerValue > dealerValue:
		return result(true, false, false, 2, fmt.Sprintf("player wins %d to %d", playerValue, dealerValue))
	case playerValue < dealerValue:
		return result(false, false, false, 0, fmt.Sprintf("dealer wins %d to %d", dealerValue, playerValue))
	default:
		return result(false, true, false, 1, fmt.Sprintf("push at %d", playerValue))
	}
}
