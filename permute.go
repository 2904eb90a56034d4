package radixsort

// permute moves every element of data into its bucket in place, using the
// boundaries computed by countPartitions with the same key.
//
// Each sweep walks the waiting region of every open bucket and swaps each
// element it finds into the cursor of the bucket it belongs to, which places
// that element for good. Buckets whose cursor reached their end are dropped
// from the valid list between sweeps. Once a single bucket is left open, the
// elements still waiting in it are exactly the ones that belong there, so the
// pass ends. Every swap places one element, so swaps never exceed len(data);
// a swap of an element with itself is harmless.
//
// On return offset[b] == next[b] for every bucket.
func permute[T any](p *partitions, data []T, key ByteKey[T]) (swaps, sweeps int) {
	open := p.valid[:p.nvalid]
	for {
		n := 0
		for _, b := range open {
			if p.offset[b] != p.next[b] {
				open[n] = b
				n++
			}
		}
		open = open[:n]
		if len(open) <= 1 {
			break
		}

		sweeps++
		for _, b := range open {
			from, end := p.offset[b], p.next[b]
			for i := from; i < end; i++ {
				dst := key(data[i])
				j := p.offset[dst]
				p.offset[dst]++
				data[i], data[j] = data[j], data[i]
			}
			swaps += end - from
		}
	}

	// The last open bucket holds only its own elements.
	for _, b := range open {
		p.offset[b] = p.next[b]
	}
	p.nvalid = len(open)
	return swaps, sweeps
}
