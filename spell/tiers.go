package spell

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/they4kman/experimentation/bruteforce/sacred-geometry/closure"
)

var (
	ErrUnknownLevel = errors.New("unknown spell level")
	ErrInvalidTiers = errors.New("invalid tier table")
)

// Tiers maps a spell level to the prime constants that may be targeted, tried in order
type Tiers map[int][]uint

// DefaultTiers returns the Sacred Geometry prime constants: three consecutive
// primes per spell level, from 3, 5, 7 at level 1 up to 101, 103, 107 at level 9
func DefaultTiers() Tiers {
	return PrimeTiers(9, 3)
}

type tiersFile struct {
	Levels Tiers `yaml:"levels"`
}

// LoadTiers reads a tier table of the form
//
//	levels:
//	  1: [3, 5, 7]
//	  2: [11, 13, 17]
func LoadTiers(r io.Reader) (Tiers, error) {
	var file tiersFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTiers, err)
	}
	if err := file.Levels.Validate(); err != nil {
		return nil, err
	}
	return file.Levels, nil
}

func (t Tiers) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: no levels", ErrInvalidTiers)
	}
	for level, targets := range t {
		if level < 0 {
			return fmt.Errorf("%w: level %d is negative", ErrInvalidTiers, level)
		}
		if len(targets) == 0 {
			return fmt.Errorf("%w: level %d has no targets", ErrInvalidTiers, level)
		}
	}
	return nil
}

// fit checks that engines built with params can encode every target, so
// that a level never stops on a target it can't search for
func (t Tiers) fit(params *closure.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	ceiling := params.MaxValue()
	for _, level := range t.Levels() {
		for _, target := range t[level] {
			if uint64(target) > ceiling {
				return fmt.Errorf("%w: level %d target %d exceeds %d", ErrInvalidTiers, level, target, ceiling)
			}
		}
	}
	return nil
}

// Levels returns the configured spell levels in ascending order
func (t Tiers) Levels() []int {
	levels := make([]int, 0, len(t))
	for level := range t {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	return levels
}

func (t Tiers) Targets(level int) ([]uint, error) {
	targets, ok := t[level]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, level)
	}
	return targets, nil
}
