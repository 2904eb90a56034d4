// Bench is a benchmarking tool for measuring radixsort throughput against
// slices.Sort, in memory and over memory-mapped files, along with peak memory.
//
// Usage:
//
//	go run ./cmd/bench -n 10000000 -kind uint32 -pattern uniform
//
// Flags:
//
//	-n         Number of elements (default: 10,000,000)
//	-kind      Element kind: uint8 ... int32, or string (default: uint32)
//	-pattern   uniform, sorted, reverse, dups, few, collide (default: uniform)
//	-seed      murmur3 seed for the data (default: 0x1234)
//	-file      Also sort through a memory-mapped temp file (default: true)
//	-verify    Enable the post-sort check (default: false)
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/metrics"
	"runtime/pprof"
	"slices"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spaolacci/murmur3"

	"github.com/tamirms/radixsort"
	"github.com/tamirms/radixsort/internal/dataset"
)

// getMaxRSS returns the maximum resident set size in bytes.
// Uses getrusage(RUSAGE_SELF) which tracks peak RSS since process start.
func getMaxRSS() uint64 {
	var rusage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &rusage); err != nil {
		return 0
	}
	// On macOS, MaxRss is in bytes. On Linux, it's in kilobytes.
	maxRSS := uint64(rusage.Maxrss)
	if runtime.GOOS == "linux" {
		maxRSS *= 1024
	}
	return maxRSS
}

// peakSampler tracks peak heap and RSS every 10ms until stopped. It reads
// runtime/metrics rather than ReadMemStats to avoid stop-the-world pauses
// while the sort runs.
type peakSampler struct {
	heap, rss atomic.Uint64
	done      chan struct{}
}

func startSampler() *peakSampler {
	p := &peakSampler{done: make(chan struct{})}
	go func() {
		samples := []metrics.Sample{{Name: "/memory/classes/heap/objects:bytes"}}
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-p.done:
				return
			case <-ticker.C:
				metrics.Read(samples)
				storeMax(&p.heap, samples[0].Value.Uint64())
				storeMax(&p.rss, getMaxRSS())
			}
		}
	}()
	return p
}

func (p *peakSampler) stop() (heap, rss uint64) {
	close(p.done)
	var final runtime.MemStats
	runtime.ReadMemStats(&final)
	storeMax(&p.heap, final.Alloc)
	storeMax(&p.rss, getMaxRSS())
	return p.heap.Load(), p.rss.Load()
}

func storeMax(v *atomic.Uint64, x uint64) {
	for {
		old := v.Load()
		if x <= old || v.CompareAndSwap(old, x) {
			return
		}
	}
}

// words generates n 32-bit keys: murmur3 of the index for uniform data,
// the dataset package for the structured patterns.
func words(pattern dataset.Pattern, n int, seed uint32) []uint32 {
	if pattern != dataset.Uniform {
		return dataset.Words(pattern, n, seed)
	}
	out := make([]uint32, n)
	var buf [8]byte
	for i := range out {
		binary.LittleEndian.PutUint64(buf[:], uint64(i))
		h, _ := murmur3.Sum128WithSeed(buf[:], seed)
		out[i] = uint32(h)
	}
	return out
}

func convert[T radixsort.Integer](in []uint32) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = T(v)
	}
	return out
}

type result struct {
	name     string
	duration time.Duration
}

// benchFixed times radixsort and slices.Sort on copies of the same data.
func benchFixed[T radixsort.Integer](s *radixsort.Sorter, src []T) []result {
	data := slices.Clone(src)
	start := time.Now()
	radixsort.SortWith(s, data)
	radix := time.Since(start)

	copy(data, src)
	start = time.Now()
	slices.Sort(data)
	std := time.Since(start)

	return []result{{"radixsort", radix}, {"slices.Sort", std}}
}

func benchStrings(s *radixsort.Sorter, src []string) []result {
	data := slices.Clone(src)
	start := time.Now()
	s.Strings(data)
	radix := time.Since(start)

	copy(data, src)
	start = time.Now()
	slices.Sort(data)
	std := time.Since(start)

	return []result{{"radixsort", radix}, {"slices.Sort", std}}
}

// benchFile writes the packed data to a temp file and sorts it in place.
func benchFile(s *radixsort.Sorter, dir string, kind radixsort.Kind, src []uint32) (result, error) {
	width := kind.Width()
	buf := make([]byte, len(src)*width)
	dataset.PutFixed(buf, src, width)
	path := filepath.Join(dir, "bench.bin")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return result{}, err
	}
	start := time.Now()
	if _, err := s.SortFile(path, kind); err != nil {
		return result{}, err
	}
	return result{"radixsort (mmap file)", time.Since(start)}, nil
}

func main() {
	nFlag := flag.Int("n", 10_000_000, "number of elements")
	kindFlag := flag.String("kind", "uint32", "element kind: uint8, int8, uint16, int16, uint32, int32, string")
	patternFlag := flag.String("pattern", "uniform", "data pattern")
	seedFlag := flag.Uint("seed", 0x1234, "data seed")
	fileFlag := flag.Bool("file", true, "also sort through a memory-mapped temp file")
	verifyFlag := flag.Bool("verify", false, "enable the post-sort check")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file (sort phase only)")
	flag.Parse()

	n := *nFlag
	seed := uint32(*seedFlag)
	pattern, err := dataset.ParsePattern(*patternFlag)
	if err != nil {
		fmt.Println(err)
		return
	}

	var st radixsort.Stats
	opts := []radixsort.Option{radixsort.WithStats(&st)}
	if *verifyFlag {
		opts = append(opts, radixsort.WithVerify())
	}
	s := radixsort.New(opts...)

	fmt.Println("Generating data...")
	var (
		src     []uint32
		strs    []string
		kind    radixsort.Kind
		dataLen int64
	)
	if *kindFlag == "string" {
		strs = dataset.Strings(pattern, n, 16, seed)
		for _, x := range strs {
			dataLen += int64(len(x))
		}
	} else {
		kind, err = radixsort.ParseKind(*kindFlag)
		if err != nil {
			fmt.Println(err)
			return
		}
		src = words(pattern, n, seed)
		dataLen = int64(n * kind.Width())
	}

	runtime.GC()
	time.Sleep(50 * time.Millisecond)
	var baseline runtime.MemStats
	runtime.ReadMemStats(&baseline)
	baselineRSS := getMaxRSS()
	sampler := startSampler()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Printf("could not create CPU profile: %v\n", err)
			return
		}
		defer func() { _ = f.Close() }()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("could not start CPU profile: %v\n", err)
			return
		}
	}

	fmt.Println("Sorting...")
	var results []result
	switch kind {
	case 0:
		results = benchStrings(s, strs)
	case radixsort.KindUint8:
		results = benchFixed(s, convert[uint8](src))
	case radixsort.KindInt8:
		results = benchFixed(s, convert[int8](src))
	case radixsort.KindUint16:
		results = benchFixed(s, convert[uint16](src))
	case radixsort.KindInt16:
		results = benchFixed(s, convert[int16](src))
	case radixsort.KindUint32:
		results = benchFixed(s, src)
	case radixsort.KindInt32:
		results = benchFixed(s, convert[int32](src))
	}

	if *fileFlag && kind != 0 {
		tmpDir, err := os.MkdirTemp("", "bench-")
		if err != nil {
			fmt.Printf("Failed to create temp dir: %v\n", err)
			return
		}
		defer func() { _ = os.RemoveAll(tmpDir) }()
		r, err := benchFile(s, tmpDir, kind, src)
		if err != nil {
			fmt.Printf("File sort failed: %v\n", err)
			return
		}
		results = append(results, r)
	}

	if *cpuprofile != "" {
		pprof.StopCPUProfile()
	}
	peakHeap, peakRSS := sampler.stop()

	fmt.Println()
	fmt.Printf("Elements:    %d (%s, %s)\n", n, *kindFlag, pattern)
	fmt.Printf("Data size:   %.2f MB\n", float64(dataLen)/(1<<20))
	for _, r := range results {
		rate := float64(n) / r.duration.Seconds() / 1e6
		fmt.Printf("%-22s %10v  %8.2f M elem/s\n", r.name, r.duration.Round(time.Microsecond), rate)
	}
	fmt.Println()
	fmt.Printf("Radix passes: %d, sweeps: %d, swaps: %d, fallbacks: %d, deepest round: %d\n",
		st.Passes, st.Sweeps, st.Swaps, st.Fallbacks, st.MaxRound)
	fmt.Printf("Peak heap:   %.2f MB\n", float64(peakHeap-min(peakHeap, baseline.Alloc))/(1<<20))
	fmt.Printf("Peak RSS:    %.2f MB\n", float64(peakRSS-min(peakRSS, baselineRSS))/(1<<20))
}
