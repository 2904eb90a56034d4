package radixsort

import (
	"github.com/tamirms/radixsort/internal/introsort"
)

// Keys describes how the engine walks the keys of an element type: either a
// fixed sequence of byte rounds (ScalarKeys) or a variable-length run of
// characters (VectorKeys). The interface is sealed; those two are the only
// implementations.
type Keys[T any] interface {
	sort(data []T, cfg *sortConfig)
	order() func(a, b T) int
}

// task is one pending sub-range of the work list: data[lo:hi] still needs
// ordering, starting at round.
type task struct {
	lo, hi int
	round  int
}

// ScalarKeys is a fixed-width key decomposed into byte rounds, most
// significant first.
type ScalarKeys[T any] struct {
	// Rounds are the byte extractors, one per radix pass.
	Rounds []ByteKey[T]
	// Cutoffs[r] is the size at or below which a range reaching round r is
	// handed to Compare instead of getting a radix pass. Missing entries are 0.
	Cutoffs []int
	// Compare orders two whole elements. When nil, cutoffs are ignored and
	// every range is radix sorted down to the last round.
	Compare func(a, b T) int
}

func (k ScalarKeys[T]) cutoff(round int) int {
	if k.Compare == nil || round >= len(k.Cutoffs) {
		return 0
	}
	return k.Cutoffs[round]
}

func (k ScalarKeys[T]) order() func(a, b T) int { return k.Compare }

func (k ScalarKeys[T]) sort(data []T, cfg *sortConfig) {
	if len(data) < 2 || len(k.Rounds) == 0 {
		return
	}

	var (
		p     partitions
		t     recurseTable
		buf   [64]task
		stats = cfg.stats
	)
	stack := append(buf[:0], task{lo: 0, hi: len(data)})
	for len(stack) > 0 {
		tk := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		part := data[tk.lo:tk.hi]

		if len(part) <= k.cutoff(tk.round) {
			stats.fallback()
			introsort.SortFunc(part, k.Compare)
			continue
		}

		key := k.Rounds[tk.round]
		countPartitions(&p, part, key)
		swaps, sweeps := permute(&p, part, key)
		stats.pass(tk.round, swaps, sweeps)

		// Elements sharing every byte are equal.
		if tk.round+1 == len(k.Rounds) {
			continue
		}
		p.table(&t)
		for i := t.n - 1; i >= 0; i-- {
			s := t.spans[i]
			stack = append(stack, task{lo: tk.lo + s.begin, hi: tk.lo + s.end, round: tk.round + 1})
		}
	}
}

// VectorKeys is a variable-length key made of characters, compared
// lexicographically with shorter strings first.
type VectorKeys[T any] struct {
	// Ended reports whether x has no character at index i.
	Ended func(x T, i int) bool
	// At returns character i of x. It is only called when Ended(x, i) is false.
	At func(x T, i int) uint16
	// Wide splits every character into a high-byte and a low-byte round.
	// Otherwise characters are assumed to fit in 8 bits.
	Wide bool
	// Cutoff is the range size at or below which Compare takes over.
	Cutoff int
	// Compare orders a and b, given that their first from characters are equal.
	// When nil, Cutoff is ignored.
	Compare func(a, b T, from int) int
}

func (k VectorKeys[T]) order() func(a, b T) int {
	if k.Compare == nil {
		return nil
	}
	return func(a, b T) int { return k.Compare(a, b, 0) }
}

func (k VectorKeys[T]) sort(data []T, cfg *sortConfig) {
	if len(data) < 2 {
		return
	}

	perChar := 1
	if k.Wide {
		perChar = 2
	}
	cutoff := k.Cutoff
	if k.Compare == nil {
		cutoff = 0
	}

	var (
		p     partitions
		t     recurseTable
		buf   [64]task
		stats = cfg.stats
	)
	stack := append(buf[:0], task{lo: 0, hi: len(data)})
	for len(stack) > 0 {
		tk := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		idx, sub := tk.round/perChar, tk.round%perChar

		if sub == 0 {
			// Everything in the range agrees on the first idx characters, so
			// the strings that end here are equal and smallest.
			n := k.partitionEnded(data[tk.lo:tk.hi], idx)
			stats.exhausted(n)
			tk.lo += n
		}
		part := data[tk.lo:tk.hi]
		if len(part) < 2 {
			continue
		}

		if len(part) <= cutoff {
			stats.fallback()
			introsort.SortFunc(part, func(a, b T) int {
				return k.Compare(a, b, idx)
			})
			continue
		}

		key := k.digit(idx, sub)
		countPartitions(&p, part, key)
		swaps, sweeps := permute(&p, part, key)
		stats.pass(tk.round, swaps, sweeps)

		p.table(&t)
		for i := t.n - 1; i >= 0; i-- {
			s := t.spans[i]
			stack = append(stack, task{lo: tk.lo + s.begin, hi: tk.lo + s.end, round: tk.round + 1})
		}
	}
}

// partitionEnded moves the elements without a character at idx to the front
// of data and returns how many there are. Relative order is not kept.
func (k VectorKeys[T]) partitionEnded(data []T, idx int) int {
	n := 0
	for i := range data {
		if k.Ended(data[i], idx) {
			data[n], data[i] = data[i], data[n]
			n++
		}
	}
	return n
}

// digit returns the byte extractor for sub-round sub of character idx.
func (k VectorKeys[T]) digit(idx, sub int) ByteKey[T] {
	at := k.At
	if !k.Wide {
		return func(x T) uint8 {
			return uint8(at(x, idx))
		}
	}
	word := WordKey[T](func(x T) uint16 {
		return at(x, idx)
	})
	if sub == 0 {
		return Compose(HighByte, word)
	}
	return Compose(LowByte, word)
}

// SortBy sorts data in place by a caller-supplied key description. The
// cutoffs come from keys itself; opts may attach stats or verification.
// Verification needs a comparator and is skipped when keys has none.
func SortBy[T any](data []T, keys Keys[T], opts ...Option) {
	cfg := defaultSortConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	sortKeys(data, keys, &cfg)
}

// sortKeys runs keys over data and applies the configured post-condition.
func sortKeys[T any](data []T, keys Keys[T], cfg *sortConfig) {
	keys.sort(data, cfg)
	if cfg.verify {
		if compare := keys.order(); compare != nil {
			mustBeSorted(data, compare)
		}
	}
}
