package certgen

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif" // template decode support; JPEG/PNG register via encode.go
	"runtime"
	"sync"
	"time"
)

// Worker sizing constants.
const (
	// MinWorkers ensures at least one worker is available.
	MinWorkers = 1

	// MaxWorkers caps the auto-sized pool; each worker holds its own
	// decoded template copy in memory.
	MaxWorkers = 16

	// warmStep is the size increment used when pre-warming a worker's
	// FontCache; the fit search still probes finer steps on demand.
	warmStep = 4

	// maxErrorSamples bounds the error messages carried in the summary.
	maxErrorSamples = 5
)

// Progress is a periodic throughput snapshot delivered while a run is in
// flight. It is informational only.
type Progress struct {
	Completed int
	Total     int
	Elapsed   time.Duration
	Rate      float64 // jobs per second
}

// ProgressFunc receives Progress snapshots as batches complete.
type ProgressFunc func(Progress)

// Summary aggregates a finished run.
type Summary struct {
	Total        int
	Succeeded    int
	Failed       int
	Cancelled    int
	Elapsed      time.Duration
	Rate         float64  // jobs per second over the whole run
	ErrorSamples []string // up to maxErrorSamples failure messages
}

// Report is the complete outcome of Run: exactly one Result per
// submitted job, in submission order, plus the aggregate summary.
type Report struct {
	Results []Result
	Summary Summary
}

// Engine renders batches of jobs against one template configuration.
// An Engine is immutable after construction and safe to share; each Run
// builds its own workers.
type Engine struct {
	cfg      Config
	fit      FitOptions
	sink     Sink
	progress ProgressFunc
}

// NewEngine validates cfg, applies defaults, and builds an Engine.
// Template decodability is checked in Run, not here, so that raw bytes
// can be handed over without paying the decode cost twice.
func NewEngine(cfg Config, opts ...EngineOption) (*Engine, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg: cfg,
		fit: FitOptions{}.withDefaults(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// ResolveWorkers determines the worker count.
// Priority: explicit value > GOMAXPROCS-based calculation.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	// Rendering is CPU-bound; use the full GOMAXPROCS budget (adjusted by
	// automaxprocs in the CLI), clamped for template memory.
	n := runtime.GOMAXPROCS(0)
	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}

// span is a contiguous batch of job indices [start, end).
type span struct {
	start int
	end   int
}

// partition splits n jobs into contiguous spans of at most batchSize.
func partition(n, batchSize int) []span {
	spans := make([]span, 0, (n+batchSize-1)/batchSize)
	for start := 0; start < n; start += batchSize {
		end := start + batchSize
		if end > n {
			end = n
		}
		spans = append(spans, span{start: start, end: end})
	}
	return spans
}

// Run renders all jobs and blocks until every job has a Result.
//
// Fatal input errors (no jobs, no sink, undecodable template) abort the
// run before any job is dispatched. Per-job failures are isolated: they
// are recorded in that job's Result and never abort the batch or the
// worker. Cancelling ctx stops dispatch between jobs; jobs not yet run
// are marked with ErrCancelled.
func (e *Engine) Run(ctx context.Context, jobs []Job) (*Report, error) {
	if len(jobs) == 0 {
		return nil, ErrNoJobs
	}
	if e.sink == nil {
		return nil, ErrNoSink
	}

	// Fatal input check before dispatch; workers decode their own copies.
	if _, _, err := image.Decode(bytes.NewReader(e.cfg.Template)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateDecode, err)
	}

	start := time.Now()
	batches := partition(len(jobs), e.cfg.BatchSize)
	workers := ResolveWorkers(e.cfg.Workers)
	if workers > len(batches) {
		workers = len(batches)
	}

	// Disjoint index spans let workers write results without locking.
	results := make([]Result, len(jobs))
	batchCh := make(chan span, len(batches))
	doneCh := make(chan int, len(batches))

	var wg sync.WaitGroup
	for n := 0; n < workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			// Initializer: runs once per worker, before its first batch.
			wk, err := e.newWorker()

			for b := range batchCh {
				if err != nil {
					// Worker never came up; fail its batches individually.
					for i := b.start; i < b.end; i++ {
						results[i] = Result{Text: jobs[i].Text, Dest: jobs[i].Dest, Err: err}
					}
				} else {
					wk.processBatch(ctx, jobs, results, b)
				}
				doneCh <- b.end - b.start
			}
		}()
	}

	// Submit all batches eagerly; channel buffering bounds coordination.
	for _, b := range batches {
		batchCh <- b
	}
	close(batchCh)

	go func() {
		wg.Wait()
		close(doneCh)
	}()

	// Aggregate as batches complete (arrival order is unspecified).
	completed := 0
	for n := range doneCh {
		completed += n
		if e.progress != nil {
			elapsed := time.Since(start)
			e.progress(Progress{
				Completed: completed,
				Total:     len(jobs),
				Elapsed:   elapsed,
				Rate:      jobRate(completed, elapsed),
			})
		}
	}

	return &Report{
		Results: results,
		Summary: summarize(results, time.Since(start)),
	}, nil
}

// worker owns the per-worker state: a private decoded template copy and
// a private font cache. Created once, before the worker's first batch.
type worker struct {
	engine   *Engine
	template image.Image
	fitter   *Fitter
}

// newWorker decodes the template and pre-warms the font cache. Decoding
// happens once per worker, not per job or per batch.
func (e *Engine) newWorker() (*worker, error) {
	img, _, err := image.Decode(bytes.NewReader(e.cfg.Template))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateDecode, err)
	}

	cache := NewFontCache(LoadFontSource(e.cfg.FontPath))
	cache.Warm(e.fit.MinSize, e.cfg.MaxFontSize, warmStep)

	return &worker{
		engine:   e,
		template: img,
		fitter:   NewFitter(cache, e.cfg.Box, e.fit),
	}, nil
}

// processBatch renders one batch sequentially, in submission order.
func (w *worker) processBatch(ctx context.Context, jobs []Job, results []Result, b span) {
	for i := b.start; i < b.end; i++ {
		if err := ctx.Err(); err != nil {
			results[i] = Result{
				Text: jobs[i].Text,
				Dest: jobs[i].Dest,
				Err:  fmt.Errorf("%w: %v", ErrCancelled, err),
			}
			continue
		}
		results[i] = w.process(jobs[i])
	}
}

// process renders, encodes, and writes a single job.
func (w *worker) process(job Job) Result {
	res := Result{Text: job.Text, Dest: job.Dest}
	cfg := &w.engine.cfg

	maxSize := job.MaxFontSize
	if maxSize == 0 {
		maxSize = cfg.MaxFontSize
	}

	face, _ := w.fitter.Fit(job.Text, maxSize)
	img := Render(w.template, cfg.Box, job.Text, face, cfg.Color, cfg.Anchor)

	data, err := Encode(img, job.Dest, cfg.Quality)
	if err != nil {
		res.Err = err
		return res
	}

	if err := w.engine.sink.Write(job.Dest, data); err != nil {
		res.Err = err
	}
	return res
}

// summarize tallies results into a Summary.
func summarize(results []Result, elapsed time.Duration) Summary {
	s := Summary{
		Total:   len(results),
		Elapsed: elapsed,
		Rate:    jobRate(len(results), elapsed),
	}

	for _, r := range results {
		switch {
		case r.Err == nil:
			s.Succeeded++
		case r.Cancelled():
			s.Cancelled++
		default:
			s.Failed++
			if len(s.ErrorSamples) < maxErrorSamples {
				s.ErrorSamples = append(s.ErrorSamples, fmt.Sprintf("%s: %v", r.Text, r.Err))
			}
		}
	}

	return s
}

// jobRate computes jobs per second, guarding the zero-elapsed case.
func jobRate(completed int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(completed) / elapsed.Seconds()
}
