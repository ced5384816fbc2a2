package spell

import "math"

// primesFrom yields every prime ≥ from, in order, until done is closed
func primesFrom(from uint, done <-chan struct{}) <-chan uint {
	primes := make(chan uint)

	go func() {
		defer close(primes)

	nextCandidate:
		for n := range primeCandidates(from, done) {
			maxFactor := uint(math.Sqrt(float64(n)))
			for factor := uint(3); factor <= maxFactor; factor += 2 {
				if n%factor == 0 {
					continue nextCandidate
				}
			}

			select {
			case primes <- n:
			case <-done:
				return
			}
		}
	}()

	return primes
}

// primeCandidates yields 2 (if from ≤ 2) followed by every odd number ≥ from
func primeCandidates(from uint, done <-chan struct{}) <-chan uint {
	numbers := make(chan uint, 100)

	go func() {
		defer close(numbers)

		if from <= 2 {
			select {
			case numbers <- 2:
			case <-done:
				return
			}
			from = 3
		}
		if from%2 == 0 {
			from++
		}

		for n := from; ; n += 2 {
			select {
			case numbers <- n:
			case <-done:
				return
			}
		}
	}()

	return numbers
}

// PrimeTiers deals consecutive primes, starting at 3, perLevel at a time to
// spell levels 1 through levels
func PrimeTiers(levels, perLevel int) Tiers {
	tiers := make(Tiers, levels)
	if levels <= 0 || perLevel <= 0 {
		return tiers
	}

	done := make(chan struct{})
	defer close(done)

	primes := primesFrom(3, done)
	for level := 1; level <= levels; level++ {
		targets := make([]uint, perLevel)
		for i := range targets {
			targets[i] = <-primes
		}
		tiers[level] = targets
	}
	return tiers
}
