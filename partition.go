package radixsort

// numBuckets is the fan-out of one byte round.
const numBuckets = 256

// partitions is the bookkeeping for one counting/permutation pass.
//
// For every bucket b, start[b] and next[b] bound the bucket's final range and
// do not change during the pass. offset[b] is the insertion cursor: elements
// in [start[b], offset[b]) are placed, elements in [offset[b], next[b]) are
// still waiting. offset[b] only grows and reaches next[b] exactly when the
// bucket is complete.
//
// valid[:nvalid] lists the non-empty buckets in ascending key order; the
// permutation engine compacts it as buckets complete.
type partitions struct {
	start  [numBuckets]int
	offset [numBuckets]int
	next   [numBuckets]int
	valid  [numBuckets]uint8
	nvalid int
}

// span is a half-open [begin, end) sub-range of the buffer.
type span struct {
	begin, end int
}

// recurseTable lists, in ascending key order, the buckets of a finished pass
// that hold more than one element. It is what the dispatcher hands to the
// next round or to the fallback sort.
type recurseTable struct {
	spans [numBuckets]span
	n     int
}

// tally counts the occurrences of every key value in data.
func tally[T any](data []T, key ByteKey[T], counts *[numBuckets]int) {
	for _, v := range data {
		counts[key(v)]++
	}
}

// countPartitions runs the counting pass over data and converts the counts
// into bucket boundaries.
func countPartitions[T any](p *partitions, data []T, key ByteKey[T]) {
	var counts [numBuckets]int
	tally(data, key, &counts)

	p.nvalid = 0
	total := 0
	for b, c := range counts {
		p.start[b] = total
		p.offset[b] = total
		total += c
		p.next[b] = total
		if c != 0 {
			p.valid[p.nvalid] = uint8(b)
			p.nvalid++
		}
	}
}

// table fills t with the buckets of p that still need ordering.
// It must be called after the permutation finished, before p is reused.
func (p *partitions) table(t *recurseTable) {
	t.n = 0
	for b := range numBuckets {
		if p.next[b]-p.start[b] > 1 {
			t.spans[t.n] = span{begin: p.start[b], end: p.next[b]}
			t.n++
		}
	}
}

// Histogram returns the number of elements of data falling into each of the
// 256 buckets of key. It is the counting pass of one radix round on its own,
// useful for inspecting how a dataset spreads over a round.
func Histogram[T any](data []T, key ByteKey[T]) [numBuckets]int {
	var counts [numBuckets]int
	tally(data, key, &counts)
	return counts
}
