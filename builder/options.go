package builder

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/graphlab/core"
)

// builderConfig aggregates the knobs used by constructors. It is passed by
// value, so constructors cannot leak changes into each other.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand // nil means no randomness
	weightFn WeightFn

	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig applies opts in order; later options override earlier.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG, making stochastic builders reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithPartitionPrefix sets the side labels of CompleteBipartite. Empty
// values fall back to "L" and "R".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) { c.leftPrefix, c.rightPrefix = left, right }
}

// IDFn generates a vertex identifier from its zero-based index. It must be
// pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the spreadsheet column name for idx, e.g. 0→"A",
// 25→"Z", 26→"AA". Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic("builder: ExcelColumnIDFn: negative index")
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns core.DefaultWeight.
func DefaultWeightFn(_ *rand.Rand) int64 { return core.DefaultWeight }

// ConstantWeightFn always yields w. Negative values are allowed.
func ConstantWeightFn(w int64) WeightFn {
	return func(_ *rand.Rand) int64 { return w }
}

// UniformWeightFn samples uniformly from [lo, hi]. Without an RNG it yields
// lo. Panics if hi < lo.
func UniformWeightFn(lo, hi int64) WeightFn {
	if hi < lo {
		panic("builder: UniformWeightFn: hi < lo")
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || hi == lo {
			return lo
		}
		return lo + rng.Int63n(hi-lo+1)
	}
}
