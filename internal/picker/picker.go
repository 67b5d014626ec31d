// Package picker builds the ordered question list for a session from a
// normalized bank, under difficulty, count, and mixed-mode constraints.
package picker

import (
	"math/rand"
	"strings"
	"time"

	"github.com/abhisek/deltabase/internal/bank"
)

// Request count bounds. Enforced by the caller before any fetch or
// selection work happens.
const (
	MaxSingleCount = 20
	MaxMixedCount  = 50
)

// MixedMode is the difficulty value selecting a balanced cross-tier draw.
const MixedMode = "mixed"

// Picker draws question lists from a bank. The rand source is injected so
// selection is reproducible in tests.
type Picker struct {
	rng *rand.Rand
}

// New creates a Picker. A nil rng gets a time-seeded source.
func New(rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Picker{rng: rng}
}

// ValidateCount checks the requested question count against the bounds
// for the given difficulty. Returns *ErrInvalidRequest when out of range.
func ValidateCount(difficulty string, count int) error {
	max := MaxSingleCount
	if strings.ToLower(difficulty) == MixedMode {
		max = MaxMixedCount
	}
	if count < 1 || count > max {
		return &ErrInvalidRequest{Count: count, Max: max}
	}
	return nil
}

// Pick selects count questions for the given difficulty, dispatching to
// the mixed draw when difficulty is "mixed".
func (p *Picker) Pick(b bank.Bank, difficulty string, count int) ([]bank.Question, error) {
	if strings.ToLower(difficulty) == MixedMode {
		return p.Mixed(b, count)
	}
	return p.Single(b, difficulty, count)
}

// Single draws up to count questions from the tier named by difficulty.
// The flattened-union fallback applies only when the tier's key is
// genuinely absent from the bank (neet on a non-biology dataset);
// normalized banks materialize their base tiers, so a merely unpopulated
// tier stays an empty pool. The pool is validated first; a pool with no
// playable questions yields *ErrEmptyPool.
func (p *Picker) Single(b bank.Bank, difficulty string, count int) ([]bank.Question, error) {
	tier := bank.Tier(strings.ToLower(difficulty))

	pool, ok := b[tier]
	if !ok {
		pool = b.Flatten()
	}
	pool = validPool(pool)
	if len(pool) == 0 {
		return nil, &ErrEmptyPool{Difficulty: difficulty}
	}

	picked := p.shuffled(pool)
	if count < len(picked) {
		picked = picked[:count]
	}
	return picked, nil
}

// Mixed draws an as-even-as-possible sample across all non-empty tiers:
// each tier contributes up to ceil(total/numberOfNonemptyTiers) questions,
// the draws are concatenated, shuffled, and truncated to total.
func (p *Picker) Mixed(b bank.Bank, total int) ([]bank.Question, error) {
	pools := make([][]bank.Question, 0, len(bank.Tiers))
	for _, t := range bank.Tiers {
		pool := validPool(b[t])
		if len(pool) > 0 {
			pools = append(pools, pool)
		}
	}
	if len(pools) == 0 {
		return nil, &ErrEmptyPool{Difficulty: MixedMode}
	}

	perTier := (total + len(pools) - 1) / len(pools)
	var mixed []bank.Question
	for _, pool := range pools {
		take := perTier
		if take > len(pool) {
			take = len(pool)
		}
		mixed = append(mixed, p.shuffled(pool)[:take]...)
	}

	mixed = p.shuffled(mixed)
	if total < len(mixed) {
		mixed = mixed[:total]
	}
	return mixed, nil
}

// validPool canonicalizes and filters a tier's questions, dropping any
// that are not playable.
func validPool(qs []bank.Question) []bank.Question {
	out := make([]bank.Question, 0, len(qs))
	for _, q := range qs {
		q = bank.Canonicalize(q)
		if q.Valid() {
			out = append(out, q)
		}
	}
	return out
}

// shuffled returns a Fisher–Yates shuffled copy; the input is untouched.
func (p *Picker) shuffled(qs []bank.Question) []bank.Question {
	out := make([]bank.Question, len(qs))
	copy(out, qs)
	p.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
