package spell

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/they4kman/experimentation/bruteforce/sacred-geometry/closure"
)

var numPrinter = message.NewPrinter(language.English)

type CasterParams struct {
	// Number of (dice, target) verdicts remembered between casts
	CacheSize int

	// Params of every Engine built while casting
	Engine closure.Params

	// Receives progress messages. Set to nil to stay quiet.
	Logf func(format string, args ...interface{})
}

func DefaultCasterParams() *CasterParams {
	return &CasterParams{
		CacheSize: 1024,
		Engine:    *closure.DefaultParams(),
	}
}

// Caster tries each target of a spell level against a roll of dice, in order,
// until one of them can be reached. It is safe for concurrent use.
type Caster struct {
	tiers  Tiers
	params CasterParams
	cache  *lru.Cache
}

type Result struct {
	Level int
	Dice  []uint

	Solved     bool
	Target     uint
	Expression string

	// Targets tried, in order, including the solved one
	Tried []uint

	// Targets whose search ran out of budget before reaching a verdict
	Exhausted []uint
}

type verdict struct {
	solved      bool
	expression  string
	expressions int
}

func NewCaster(tiers Tiers, params *CasterParams) (*Caster, error) {
	if err := tiers.Validate(); err != nil {
		return nil, err
	}
	if params.CacheSize <= 0 {
		return nil, fmt.Errorf("CacheSize %d must be a positive number", params.CacheSize)
	}
	if err := tiers.fit(&params.Engine); err != nil {
		return nil, err
	}

	cache, err := lru.New(params.CacheSize)
	if err != nil {
		return nil, err
	}

	return &Caster{
		tiers:  tiers,
		params: *params,
		cache:  cache,
	}, nil
}

func (c *Caster) Tiers() Tiers {
	return c.tiers
}

func (c *Caster) logf(format string, args ...interface{}) {
	if c.params.Logf != nil {
		c.params.Logf(format, args...)
	}
}

// cacheKey identifies a verdict by the multiset of dice, since the slot
// order of equal values doesn't change what can be reached
func cacheKey(dice []uint, target uint) string {
	sorted := slices.Clone(dice)
	slices.Sort(sorted)
	return fmt.Sprintf("%v=%d", sorted, target)
}

// Cached reports whether the verdict for dice and target is already known
func (c *Caster) Cached(dice []uint, target uint) bool {
	return c.cache.Contains(cacheKey(dice, target))
}

// Solve reports whether target can be reached from dice, with its derivation
func (c *Caster) Solve(dice []uint, target uint) (bool, string, error) {
	key := cacheKey(dice, target)
	if cached, ok := c.cache.Get(key); ok {
		v := cached.(verdict)
		c.logf("%v → %d: cached", dice, target)
		return v.solved, v.expression, nil
	}

	engine, err := closure.NewWithParams(dice, target, &c.params.Engine)
	if err != nil {
		return false, "", err
	}

	err = engine.Solve()
	if err != nil {
		c.logf("%v → %d: gave up after %s expressions", dice, target, numPrinter.Sprintf("%d", engine.Len()))
		return false, "", err
	}

	v := verdict{
		solved:      engine.HasSolution(),
		expressions: engine.Len(),
	}
	if v.solved {
		v.expression, err = engine.RenderSolution()
		if err != nil {
			return false, "", err
		}
	}

	c.logf("%v → %d: solved=%t after %s expressions", dice, target, v.solved, numPrinter.Sprintf("%d", v.expressions))
	c.cache.Add(key, v)
	return v.solved, v.expression, nil
}

// Cast tries every target of level in order, stopping at the first one reached
func (c *Caster) Cast(dice []uint, level int) (*Result, error) {
	targets, err := c.tiers.Targets(level)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Level: level,
		Dice:  slices.Clone(dice),
	}

	for _, target := range targets {
		result.Tried = append(result.Tried, target)

		solved, expression, err := c.Solve(dice, target)
		if errors.Is(err, closure.ErrBudgetExhausted) {
			result.Exhausted = append(result.Exhausted, target)
			continue
		} else if err != nil {
			return nil, fmt.Errorf("casting level %d with %v: %w", level, dice, err)
		}

		if solved {
			result.Solved = true
			result.Target = target
			result.Expression = expression
			break
		}
	}

	return result, nil
}
