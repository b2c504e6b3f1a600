// Package lint validates lists of image references, one reference per line.
package lint

//go:generate mockgen -destination=./resolver_mock_test.go -package=lint_test github.com/wuxler/imgref/pkg/lint Resolver

import (
	"bufio"
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/wuxler/imgref/pkg/errdefs"
	"github.com/wuxler/imgref/pkg/reference"
	"github.com/wuxler/imgref/pkg/util/xcache"
	"github.com/wuxler/imgref/pkg/xlog"
)

const (
	// DefaultJobs is the default number of lines resolved concurrently.
	DefaultJobs = 4

	// MaxLineLength is the longest line read in full. Longer lines are
	// reported as issues wrapping ErrLineTooLong, with Input holding the
	// first inputPrefixLength bytes.
	MaxLineLength = 64 * 1024

	inputPrefixLength = 64
)

// ErrLineTooLong is the issue error of a line longer than MaxLineLength.
var ErrLineTooLong = errdefs.Newf(reference.ErrInvalidReference, "line exceeds %d bytes", MaxLineLength)

// Resolver turns a raw line into a reference.
type Resolver interface {
	Resolve(ctx context.Context, raw string) (reference.Reference, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, raw string) (reference.Reference, error)

// Resolve calls f(ctx, raw).
func (f ResolverFunc) Resolve(ctx context.Context, raw string) (reference.Reference, error) {
	return f(ctx, raw)
}

// ParseFunc adapts a parse function such as reference.ParseNormalizedNamed
// to a Resolver.
func ParseFunc[T reference.Reference](parse func(string) (T, error)) Resolver {
	return ResolverFunc(func(_ context.Context, raw string) (reference.Reference, error) {
		ref, err := parse(raw)
		if err != nil {
			return nil, err
		}
		return ref, nil
	})
}

// Result is the resolution of one distinct raw reference.
type Result struct {
	Reference reference.Reference
	Err       error
}

// Issue is an invalid line.
type Issue struct {
	Line  int
	Input string
	Err   error
}

// Duplicate is a reference found on more than one line.
type Duplicate struct {
	Reference string
	Lines     []int
}

// Report summarizes a lint run.
type Report struct {
	// Checked is the number of non-blank, non-comment lines.
	Checked int
	// Issues are the invalid lines, ordered by line number.
	Issues []Issue
	// Duplicates are valid references resolved from several lines,
	// ordered by first line.
	Duplicates []Duplicate
	// Elapsed is the wall time of the run.
	Elapsed time.Duration
}

// OK reports whether no invalid line was found.
func (r *Report) OK() bool {
	return len(r.Issues) == 0
}

// Option configures a Linter.
type Option func(*Linter)

// WithJobs sets the number of lines resolved concurrently.
func WithJobs(jobs int) Option {
	return func(l *Linter) {
		l.jobs = jobs
	}
}

// WithCache sets the cache memoizing resolutions by raw line.
func WithCache(cache xcache.Cache[Result]) Option {
	return func(l *Linter) {
		l.cache = cache
	}
}

// WithClock sets the clock used to measure elapsed time.
func WithClock(clk clock.Clock) Option {
	return func(l *Linter) {
		l.clock = clk
	}
}

// New returns a Linter resolving lines with resolver.
func New(resolver Resolver, options ...Option) *Linter {
	l := &Linter{
		resolver: resolver,
		jobs:     DefaultJobs,
		cache:    xcache.NewMemory[Result](),
		clock:    clock.New(),
	}
	for _, apply := range options {
		apply(l)
	}
	if l.jobs < 1 {
		l.jobs = 1
	}
	return l
}

// Linter checks reference lists.
type Linter struct {
	resolver Resolver
	jobs     int
	cache    xcache.Cache[Result]
	clock    clock.Clock
}

type entry struct {
	line int
	raw  string
	err  error
}

// Lint reads r line by line and resolves every reference. Blank lines and
// lines starting with "#" are skipped. A line repeated verbatim is resolved
// once.
func (l *Linter) Lint(ctx context.Context, r io.Reader) (*Report, error) {
	start := l.clock.Now()

	entries, err := readEntries(r)
	if err != nil {
		return nil, err
	}
	xlog.C(ctx).Debugf("resolving %d references with %d jobs", len(entries), l.jobs)

	var (
		results    = make([]Result, len(entries))
		invalid    = xsync.NewCounter()
		occurrence = xsync.NewMapOf[string, []int]()
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.jobs)
	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := Result{Err: e.err}
			if e.err == nil {
				res = l.resolve(gctx, e.raw)
			}
			results[i] = res
			if res.Err != nil {
				invalid.Inc()
				return nil
			}
			occurrence.Compute(res.Reference.String(), func(lines []int, _ bool) ([]int, bool) {
				return append(lines, e.line), false
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Checked: len(entries)}
	report.Issues = make([]Issue, 0, invalid.Value())
	for i, res := range results {
		if res.Err != nil {
			report.Issues = append(report.Issues, Issue{Line: entries[i].line, Input: entries[i].raw, Err: res.Err})
		}
	}
	occurrence.Range(func(ref string, lines []int) bool {
		if len(lines) > 1 {
			sort.Ints(lines)
			report.Duplicates = append(report.Duplicates, Duplicate{Reference: ref, Lines: lines})
		}
		return true
	})
	sort.Slice(report.Duplicates, func(i, j int) bool {
		return report.Duplicates[i].Lines[0] < report.Duplicates[j].Lines[0]
	})
	report.Elapsed = l.clock.Since(start)
	return report, nil
}

func (l *Linter) resolve(ctx context.Context, raw string) Result {
	res, _ := l.cache.Get(ctx, raw, xcache.WithLoader(func(ctx context.Context, key string) (Result, bool) {
		ref, err := l.resolver.Resolve(ctx, key)
		if err != nil {
			xlog.C(ctx).Debug("invalid reference", "input", key, "error", err)
		}
		return Result{Reference: ref, Err: err}, true
	}))
	return res
}

func readEntries(r io.Reader) ([]entry, error) {
	var entries []entry
	br := bufio.NewReaderSize(r, MaxLineLength)
	for line := 1; ; line++ {
		raw, long, err := readLine(br)
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		if long {
			entries = append(entries, entry{line: line, raw: raw[:min(len(raw), inputPrefixLength)], err: ErrLineTooLong})
			continue
		}
		entries = append(entries, entry{line: line, raw: raw})
	}
}

// readLine returns the next line without its end of line marker. A line
// that does not fit the reader buffer is drained and its buffered prefix
// is returned with long set.
func readLine(br *bufio.Reader) (line string, long bool, err error) {
	b, isPrefix, err := br.ReadLine()
	if err != nil {
		return "", false, err
	}
	line = string(b)
	for isPrefix {
		long = true
		if _, isPrefix, err = br.ReadLine(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", false, err
		}
	}
	return line, long, nil
}

// Inputs returns the distinct invalid inputs of the report.
func (r *Report) Inputs() []string {
	return lo.Uniq(lo.Map(r.Issues, func(issue Issue, _ int) string {
		return issue.Input
	}))
}
