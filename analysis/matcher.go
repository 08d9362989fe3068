// Package analysis classifies the lookup tables of a synthesized netlist
// against the function sets of the custom c1 and c2 cells. A k-input LUT
// matches a cell when some assignment of its inputs onto the cell pins
// realizes the same 8-input function.
package analysis

import (
	"log"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/sarchlab/lutra/lut"
)

// A Match records which cells can realize one lookup table.
type Match struct {
	C1 bool
	C2 bool
}

// Any reports whether at least one cell matches.
func (m Match) Any() bool {
	return m.C1 || m.C2
}

// Both reports whether both cells match.
func (m Match) Both() bool {
	return m.C1 && m.C2
}

// A Matcher classifies lookup tables against the c1 and c2 configuration
// sets. Matchers are safe for concurrent use, as the sets are never
// written after Build.
type Matcher struct {
	c1 lut.ConfigSet
	c2 lut.ConfigSet

	workers    int
	onProgress func(done, total int)
}

// MatcherBuilder builds matchers.
type MatcherBuilder struct {
	c1         lut.ConfigSet
	c2         lut.ConfigSet
	workers    int
	onProgress func(done, total int)
}

// MakeMatcherBuilder returns a builder with default parameters.
func MakeMatcherBuilder() MatcherBuilder {
	return MatcherBuilder{}
}

// WithConfigSets sets precomputed c1 and c2 configuration sets. Without
// them, Build computes the closures of the cell base tables.
func (b MatcherBuilder) WithConfigSets(c1, c2 lut.ConfigSet) MatcherBuilder {
	b.c1 = c1
	b.c2 = c2
	return b
}

// WithWorkers bounds the number of classification goroutines. The default
// is one per available CPU.
func (b MatcherBuilder) WithWorkers(n int) MatcherBuilder {
	b.workers = n
	return b
}

// WithProgressFunc registers a function called after each classified LUT.
// The function may be called from multiple goroutines.
func (b MatcherBuilder) WithProgressFunc(
	fn func(done, total int),
) MatcherBuilder {
	b.onProgress = fn
	return b
}

// Build creates the matcher.
func (b MatcherBuilder) Build() *Matcher {
	b.parametersMustBeValid()

	m := &Matcher{
		c1:         b.c1,
		c2:         b.c2,
		workers:    b.workers,
		onProgress: b.onProgress,
	}

	if m.c1 == nil {
		m.c1 = lut.Configurations(lut.C1TruthTable())
		m.c2 = lut.Configurations(lut.C2TruthTable())
	}

	if m.workers == 0 {
		m.workers = runtime.GOMAXPROCS(0)
	}

	return m
}

func (b MatcherBuilder) parametersMustBeValid() {
	if b.workers < 0 {
		log.Panicf("worker count must not be negative, got %d", b.workers)
	}

	if (b.c1 == nil) != (b.c2 == nil) {
		log.Panic("c1 and c2 configuration sets must be given together")
	}
}

// Classify tests which cells can realize a lookup table with the given
// number of select inputs and table mask. Tables wider than the cell pins
// never match.
func (m *Matcher) Classify(width int, mask lut.TruthTable) Match {
	if width == 0 {
		return m.classifyConstant(mask)
	}

	if width > lut.NumInputs {
		return Match{}
	}

	var match Match
	for _, assignment := range lut.Arrangements(width) {
		expanded := lut.ExpandWith(mask, assignment)

		if !match.C1 && m.c1.Contains(expanded) {
			match.C1 = true
		}
		if !match.C2 && m.c2.Contains(expanded) {
			match.C2 = true
		}
		if match.C1 && match.C2 {
			break
		}
	}

	return match
}

// classifyConstant handles zero-input tables, which expand to one of the
// two constant functions.
func (m *Matcher) classifyConstant(mask lut.TruthTable) Match {
	var expanded lut.TruthTable
	if mask.Bit(0) == 1 {
		expanded = lut.AllOnes()
	}

	return Match{
		C1: m.c1.Contains(expanded),
		C2: m.c2.Contains(expanded),
	}
}

// ClassifyAll classifies every LUT, spreading the work across the
// configured number of workers. Results keep the order of the input.
func (m *Matcher) ClassifyAll(luts []LUT) []Result {
	results := make([]Result, len(luts))

	jobs := make(chan int, len(luts))
	for i := range luts {
		jobs <- i
	}
	close(jobs)

	var done atomic.Int64
	var waitGroup sync.WaitGroup
	for w := 0; w < m.workers; w++ {
		waitGroup.Add(1)

		go func() {
			defer waitGroup.Done()

			for i := range jobs {
				match := m.Classify(luts[i].Width, luts[i].Mask)
				results[i] = Result{
					Name:  luts[i].Name,
					Width: luts[i].Width,
					C1:    match.C1,
					C2:    match.C2,
				}

				if m.onProgress != nil {
					m.onProgress(int(done.Add(1)), len(luts))
				}
			}
		}()
	}
	waitGroup.Wait()

	return results
}
