package games

import "math/rand"

// RandomSource is the single source of chance for every resolver. The
// production implementation draws from the shared math/rand generator;
// tests substitute a seeded one. Fairness, not security, is the
// requirement here.
type RandomSource interface {
	// Float64 returns a uniform real in [0, 1).
	Float64() float64
	// IntN returns a uniform integer in the closed range [min, max].
	IntN(min, max int) int
	// WeightedIndex picks an index with probability proportional to its weight.
	WeightedIndex(weights []int) int
	// Shuffle randomizes the order of n elements.
	Shuffle(n int, swap func(i, j int))
}

type systemSource struct{}

// NewSource returns the production RandomSource. The top-level math/rand
// functions are safe for concurrent use, so one value serves all callers.
func NewSource() RandomSource {
	return systemSource{}
}

func (systemSource) Float64() float64 { return rand.Float64() }

func (systemSource) IntN(min, max int) int { return min + rand.Intn(max-min+1) }

func (systemSource) WeightedIndex(weights []int) int {
	return weightedIndex(systemSource{}, weights)
}

func (systemSource) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

type seededSource struct {
	rng *rand.Rand
}

// NewSeededSource returns a deterministic RandomSource for tests and
// audit replays. Not safe for concurrent use.
func NewSeededSource(seed int64) RandomSource {
	return &seededSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *seededSource) Float64() float64 { return s.rng.Float64() }

func (s *seededSource) IntN(min, max int) int { return min + s.rng.Intn(max-min+1) }

func (s *seededSource) WeightedIndex(weights []int) int {
	return weightedIndex(s, weights)
}

func (s *seededSource) Shuffle(n int, swap func(i, j int)) { s.rng.Shuffle(n, swap) }

func weightedIndex(src RandomSource, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}

	pick := src.IntN(1, total)
	for i, w := range weights {
		pick -= w
		if pick <= 0 {
			return i
		}
	}
	return len(weights) - 1
}
