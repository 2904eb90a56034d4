package radixsort

// Thresholds are the partition sizes at which the engine stops issuing radix
// passes and hands a range to the comparison sort instead. A range larger
// than its threshold gets another radix pass; a range at or below it is
// comparison sorted. The defaults were tuned empirically and any
// non-negative values produce correct results.
type Thresholds struct {
	// Uint16Pass: 16-bit buffers at or below this size skip the high-byte pass.
	Uint16Pass int
	// Uint16Low: high-byte buckets above this size get a low-byte pass.
	Uint16Low int
	// Word32: 32-bit ranges above this size get the next byte round.
	Word32 int
	// Narrow: byte-string ranges above this size get the next character round.
	Narrow int
	// Wide: 16-bit-character string ranges above this size get the next round.
	Wide int
}

// DefaultThresholds returns the tuned defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Uint16Pass: 150,
		Uint16Low:  75,
		Word32:     50,
		Narrow:     50,
		Wide:       128,
	}
}

// Option is a functional option for configuring a Sorter.
type Option func(*sortConfig)

type sortConfig struct {
	thresholds Thresholds
	stats      *Stats
	verify     bool
}

func defaultSortConfig() sortConfig {
	return sortConfig{thresholds: DefaultThresholds()}
}

// WithThresholds replaces the partition-size thresholds.
func WithThresholds(t Thresholds) Option {
	return func(c *sortConfig) {
		c.thresholds = t
	}
}

// WithStats makes every sort add its pass counters to st.
// A Sorter configured with stats must not be used from several goroutines.
func WithStats(st *Stats) Option {
	return func(c *sortConfig) {
		c.stats = st
	}
}

// WithVerify enables a post-condition check after every in-memory sort: if
// the result is out of order the call panics with an error wrapping
// errors.ErrNotSorted. File sorts report the same failure as an error and
// additionally compare multiset digests taken before and after.
//
// This is a debugging aid; it costs one extra scan per call.
func WithVerify() Option {
	return func(c *sortConfig) {
		c.verify = true
	}
}
