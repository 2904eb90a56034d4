package radixsort

// Stats accumulates counters describing the work done by sorts configured
// with WithStats.
type Stats struct {
	Passes    int // counting+permutation passes
	Sweeps    int // permutation sweeps across all passes
	Swaps     int // element swaps performed by the permutation engine
	Fallbacks int // ranges handed to the comparison sort
	Exhausted int // string elements retired because they had no character left
	MaxRound  int // deepest round a radix pass ran at
}

// Reset zeroes all counters.
func (s *Stats) Reset() {
	*s = Stats{}
}

func (s *Stats) pass(round, swaps, sweeps int) {
	if s == nil {
		return
	}
	s.Passes++
	s.Swaps += swaps
	s.Sweeps += sweeps
	s.MaxRound = max(s.MaxRound, round)
}

func (s *Stats) fallback() {
	if s != nil {
		s.Fallbacks++
	}
}

func (s *Stats) exhausted(n int) {
	if s != nil {
		s.Exhausted += n
	}
}
