package trackfile

import (
	"runtime"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/mpapenbr/f1gp-track-go/log"
	"github.com/mpapenbr/f1gp-track-go/pkg/model"
)

const (
	DefaultMinTrackLength = 2500.0 // meters
	DefaultMaxTrackLength = 8000.0 // meters
)

// DefaultCandidates lists the skip distances tried between the track data
// address and the first section record. Every value up to 128, even values
// up to 512, every fourth value up to 2048.
var DefaultCandidates = func() []int {
	ret := make([]int, 0, 129+192+384)
	for i := 0; i <= 128; i++ {
		ret = append(ret, i)
	}
	for i := 130; i <= 512; i += 2 {
		ret = append(ret, i)
	}
	for i := 516; i <= 2048; i += 4 {
		ret = append(ret, i)
	}
	return ret
}()

// candidate is the outcome of decoding the section list at one skip distance.
type candidate struct {
	index  int
	skip   int
	list   *SectionList
	length float64
	err    error
}

func (c *candidate) sectionCount() int {
	if c == nil || c.list == nil {
		return 0
	}
	return len(c.list.Sections)
}

type searchResult struct {
	best  *candidate // nil if no candidate was accepted
	tried int
}

func sumLength(sections []model.TrackSection) float64 {
	return lo.SumBy(sections, func(s model.TrackSection) float64 { return s.Length })
}

func evaluate(data []byte, start, index, skip int) *candidate {
	ret := &candidate{index: index, skip: skip}
	c := NewCursor(data)
	if ret.err = c.Seek(start + skip); ret.err != nil {
		return ret
	}
	ret.list, ret.err = decodeSectionList(c)
	if ret.err == nil {
		ret.length = sumLength(ret.list.Sections)
	}
	return ret
}

// acceptable reports whether c decoded completely with a plausible length.
func (d *Decoder) acceptable(c *candidate) bool {
	return c.err == nil && c.length >= d.minLength && c.length <= d.maxLength
}

// better reports whether c replaces best. Only acceptable candidates are
// considered, a higher section count wins, on equal counts the earlier
// candidate stays.
func (d *Decoder) better(c, best *candidate) bool {
	if !d.acceptable(c) {
		return false
	}
	if best == nil {
		return true
	}
	if c.sectionCount() != best.sectionCount() {
		return c.sectionCount() > best.sectionCount()
	}
	return c.index < best.index
}

func (d *Decoder) search(data []byte, start int) searchResult {
	if d.parallel {
		return d.searchParallel(data, start)
	}
	return d.searchSequential(data, start)
}

func (d *Decoder) searchSequential(data []byte, start int) searchResult {
	ret := searchResult{}
	for i, skip := range d.candidates {
		c := evaluate(data, start, i, skip)
		ret.tried++
		if d.better(c, ret.best) {
			d.logger.Debug("candidate accepted",
				log.Int("skip", skip),
				log.Int("sections", c.sectionCount()),
				log.Float64("length", c.length))
			ret.best = c
		}
	}
	return ret
}

// searchParallel evaluates all candidates concurrently and reduces them in
// candidate order, so the result equals the sequential one.
func (d *Decoder) searchParallel(data []byte, start int) searchResult {
	results := make([]*candidate, len(d.candidates))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, skip := range d.candidates {
		g.Go(func() error {
			results[i] = evaluate(data, start, i, skip)
			return nil
		})
	}
	//nolint:errcheck // candidates never return errors
	g.Wait()

	ret := searchResult{tried: len(results)}
	for _, c := range results {
		if d.better(c, ret.best) {
			ret.best = c
		}
	}
	return ret
}
