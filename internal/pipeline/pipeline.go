// Package pipeline orchestrates the merge run: read, filter, extract,
// resolve, match, merge, write.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sneiksus/VINF2025/internal/corpus"
	"github.com/sneiksus/VINF2025/internal/extract"
	"github.com/sneiksus/VINF2025/internal/logger"
	"github.com/sneiksus/VINF2025/internal/merge"
	"github.com/sneiksus/VINF2025/internal/models"
	"github.com/sneiksus/VINF2025/internal/reference"
	"github.com/sneiksus/VINF2025/internal/resolve"
)

// ErrRecordCountMismatch signals a violated left-join cardinality invariant.
var ErrRecordCountMismatch = errors.New("merged record count does not match reference record count")

const pageBuffer = 256

// Options holds everything one merge run needs. No stage reaches into
// ambient state beyond this.
type Options struct {
	ReferencePath string
	CorpusPath    string
	OutputPath    string
	Workers       int
}

// Summary reports the run counters to the operator.
type Summary struct {
	ReferenceRecords int
	MatchedRecords   int
	FieldsUpdated    int
	Collisions       int
	PagesScanned     int64
	PagesExtracted   int64
	Duration         time.Duration
}

// MatchedPercent returns the matched share of reference records.
func (s *Summary) MatchedPercent() float64 {
	if s.ReferenceRecords == 0 {
		return 0
	}

	return float64(s.MatchedRecords) / float64(s.ReferenceRecords) * 100
}

// Pipeline runs the extraction-and-merge batch job.
type Pipeline struct {
	opts      Options
	log       *logger.Logger
	extractor *extract.Extractor
	resolver  *resolve.Resolver
}

// New creates a pipeline for one run.
func New(opts Options, log *logger.Logger) *Pipeline {
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	return &Pipeline{
		opts:      opts,
		log:       log,
		extractor: extract.NewExtractor(),
		resolver:  resolve.NewResolver(),
	}
}

// Run executes the full pipeline. Fatal conditions (missing inputs,
// unwritable output) abort before any stage runs; per-article parse
// failures only drop that article. The output file appears atomically on
// success and never partially.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()

	if err := p.checkInputs(); err != nil {
		return nil, err
	}

	table, err := reference.Read(p.opts.ReferencePath)
	if err != nil {
		return nil, err
	}

	p.log.Info("reference table loaded",
		"records", len(table.Records), "columns", len(table.Columns))

	matcher := merge.NewMatcher(table.Names())

	var scanned, extracted int64

	if err := p.scanCorpus(ctx, matcher, &scanned, &extracted); err != nil {
		return nil, err
	}

	p.log.Info("corpus scan complete",
		"pages", scanned, "extracted", extracted,
		"matched", matcher.Matched(), "collisions", matcher.Collisions())

	merger := merge.NewMerger(table.Columns)
	merged := make([]models.MergedRecord, 0, len(table.Records))
	updated := 0

	for _, rec := range table.Records {
		out, n := merger.Merge(matcher.Match(rec))
		merged = append(merged, out)
		updated += n
	}

	if len(merged) != len(table.Records) {
		return nil, ErrRecordCountMismatch
	}

	if err := reference.Write(p.opts.OutputPath, table.OutputColumns(), merged); err != nil {
		return nil, err
	}

	p.log.Info("output published", "path", p.opts.OutputPath, "records", len(merged))

	return &Summary{
		ReferenceRecords: len(table.Records),
		MatchedRecords:   matcher.Matched(),
		FieldsUpdated:    updated,
		Collisions:       matcher.Collisions(),
		PagesScanned:     scanned,
		PagesExtracted:   extracted,
		Duration:         time.Since(start),
	}, nil
}

// checkInputs verifies the fatal preconditions up front: both inputs must
// exist and the output directory must accept a file.
func (p *Pipeline) checkInputs() error {
	if _, err := os.Stat(p.opts.ReferencePath); err != nil {
		return fmt.Errorf("reference input: %w", err)
	}

	if _, err := os.Stat(p.opts.CorpusPath); err != nil {
		return fmt.Errorf("corpus input: %w", err)
	}

	probe, err := os.CreateTemp(filepath.Dir(p.opts.OutputPath), ".peoplemerge-probe-*")
	if err != nil {
		return fmt.Errorf("output sink unwritable: %w", err)
	}

	probe.Close()
	os.Remove(probe.Name())

	return nil
}

// scanCorpus streams pages through the extraction worker pool and feeds
// accepted extractions into the matcher. The matcher's name set is built
// before the pool starts and only read by workers; Add runs on a single
// collector goroutine, so the join map needs no locking.
func (p *Pipeline) scanCorpus(ctx context.Context, matcher *merge.Matcher, scanned, extracted *int64) error {
	rd, err := corpus.Open(p.opts.CorpusPath)
	if err != nil {
		return err
	}
	defer rd.Close()

	pages := make(chan *models.ArticlePage, pageBuffer)
	results := make(chan models.ExtractedFields, pageBuffer)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(pages)

		for {
			page, err := rd.Next()
			if err == io.EOF {
				return nil
			}

			if err != nil {
				return err
			}

			atomic.AddInt64(scanned, 1)

			select {
			case pages <- page:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	workers := &errgroup.Group{}

	for i := 0; i < p.opts.Workers; i++ {
		workers.Go(func() error {
			for page := range pages {
				fields, ok := p.processPage(page, matcher)
				if !ok {
					continue
				}

				atomic.AddInt64(extracted, 1)

				select {
				case results <- fields:
				case <-gctx.Done():
					return gctx.Err()
				}
			}

			return nil
		})
	}

	g.Go(func() error {
		defer close(results)

		return workers.Wait()
	})

	collectDone := make(chan struct{})

	go func() {
		defer close(collectDone)

		for fields := range results {
			matcher.Add(fields)
		}
	}()

	err = g.Wait()
	<-collectDone

	return err
}

// processPage runs the per-article stages: resolve the title, skip articles
// outside the reference name set or carrying a disambiguation qualifier,
// then extract fields. Any article that fails along the way is simply
// treated as unmatched.
func (p *Pipeline) processPage(page *models.ArticlePage, matcher *merge.Matcher) (models.ExtractedFields, bool) {
	key, ok := p.resolver.Resolve(page.Title)
	if !ok || !matcher.WantsKey(key) {
		return models.ExtractedFields{}, false
	}

	fields, ok := p.extractor.Extract(page)
	if !ok {
		return models.ExtractedFields{}, false
	}

	fields.JoinKey = key

	return fields, true
}
