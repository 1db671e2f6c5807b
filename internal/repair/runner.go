// Package repair audits and fixes stored image paths in batches.
package repair

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/assetpath"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/observability"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/storage"
)

// Store is the record access the runner needs.
type Store interface {
	ListPage(ctx context.Context, after uuid.UUID, limit int) ([]storage.Record, error)
	UpdateImagePath(ctx context.Context, id uuid.UUID, imagePath string) error
}

// Invalidator drops cached lookups after records change.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// Outcome classifies one checked record.
type Outcome string

const (
	OutcomeMatched     Outcome = "matched"
	OutcomeUpdated     Outcome = "updated"
	OutcomeUnmapped    Outcome = "unmapped"
	OutcomeMissingFile Outcome = "missing_file"
	OutcomeFailed      Outcome = "failed"
)

// Config configures a run.
type Config struct {
	BatchSize  int
	BatchDelay time.Duration
	Workers    int
	// DryRun reports what would change without writing.
	DryRun bool
	// LocalDir, when set, is checked for the generated file before a path is written.
	LocalDir string
}

// DefaultConfig returns the default repair configuration.
func DefaultConfig() Config {
	return Config{
		BatchSize:  50,
		BatchDelay: 200 * time.Millisecond,
		Workers:    4,
	}
}

// Issue describes a record that did not match its generated path.
type Issue struct {
	RecordID      uuid.UUID `json:"record_id"`
	Configuration string    `json:"configuration"`
	Outcome       Outcome   `json:"outcome"`
	Stored        string    `json:"stored"`
	Expected      string    `json:"expected,omitempty"`
	Error         string    `json:"error,omitempty"`
}

// Report summarizes a run. In a dry run Updated counts the records that
// would have been rewritten.
type Report struct {
	DryRun      bool          `json:"dry_run"`
	Checked     int           `json:"checked"`
	Matched     int           `json:"matched"`
	Updated     int           `json:"updated"`
	Unmapped    int           `json:"unmapped"`
	MissingFile int           `json:"missing_file"`
	Failed      int           `json:"failed"`
	Batches     int           `json:"batches"`
	Issues      []Issue       `json:"issues,omitempty"`
	Duration    time.Duration `json:"duration"`
}

func (r *Report) add(issue Issue) {
	r.Checked++
	switch issue.Outcome {
	case OutcomeMatched:
		r.Matched++
		return
	case OutcomeUpdated:
		r.Updated++
	case OutcomeUnmapped:
		r.Unmapped++
	case OutcomeMissingFile:
		r.MissingFile++
	case OutcomeFailed:
		r.Failed++
	}
	r.Issues = append(r.Issues, issue)
}

// Runner walks every stored record, compares its image path with the
// generated one and rewrites the differing ones.
type Runner struct {
	store       Store
	generator   *assetpath.Generator
	logger      *observability.Logger
	config      Config
	invalidator Invalidator
	onBatch     func(Report)
}

// NewRunner creates a repair runner.
func NewRunner(store Store, generator *assetpath.Generator, logger *observability.Logger, config Config) *Runner {
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultConfig().BatchSize
	}
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if logger == nil {
		logger = observability.NopLogger()
	}
	operation := "repair"
	if config.DryRun {
		operation = "audit"
	}
	return &Runner{
		store:     store,
		generator: generator,
		logger:    logger.WithComponent("repair").WithOperation(operation),
		config:    config,
	}
}

// WithInvalidator sets the cache to invalidate after a run that wrote records.
func (r *Runner) WithInvalidator(inv Invalidator) *Runner {
	r.invalidator = inv
	return r
}

// OnBatch registers a callback receiving the running totals after each batch.
func (r *Runner) OnBatch(fn func(Report)) *Runner {
	r.onBatch = fn
	return r
}

// Run processes all records. Per-record failures are counted in the report;
// only listing failures and cancellation abort the run.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	report := &Report{DryRun: r.config.DryRun}
	cursor := uuid.Nil

	for {
		page, err := r.store.ListPage(ctx, cursor, r.config.BatchSize)
		if err != nil {
			report.Duration = time.Since(start)
			return report, fmt.Errorf("list records after %s: %w", cursor, err)
		}
		if len(page) == 0 {
			break
		}

		for _, issue := range r.processBatch(ctx, page) {
			report.add(issue)
		}
		report.Batches++
		cursor = page[len(page)-1].ID

		r.logger.Info().
			Int("batch", report.Batches).
			Int("checked", report.Checked).
			Int("updated", report.Updated).
			Int("failed", report.Failed).
			Msg("Batch processed")
		if r.onBatch != nil {
			r.onBatch(*report)
		}

		if len(page) < r.config.BatchSize {
			break
		}
		if err := sleep(ctx, r.config.BatchDelay); err != nil {
			report.Duration = time.Since(start)
			return report, err
		}
	}

	if report.Updated > 0 && !r.config.DryRun && r.invalidator != nil {
		if err := r.invalidator.Invalidate(ctx); err != nil {
			r.logger.Warn().Err(err).Msg("Failed to invalidate query cache")
		}
	}

	report.Duration = time.Since(start)
	return report, nil
}

func (r *Runner) processBatch(ctx context.Context, page []storage.Record) []Issue {
	issues := make([]Issue, len(page))

	var g errgroup.Group
	g.SetLimit(r.config.Workers)
	for i, rec := range page {
		i, rec := i, rec
		g.Go(func() error {
			issues[i] = r.processRecord(ctx, rec)
			return nil
		})
	}
	_ = g.Wait()

	return issues
}

func (r *Runner) processRecord(ctx context.Context, rec storage.Record) Issue {
	cfg := rec.Canonical()
	issue := Issue{
		RecordID:      rec.ID,
		Configuration: cfg.String(),
		Stored:        rec.ImagePath,
	}

	mismatch, err := r.generator.Check(cfg, rec.ImagePath)
	if err != nil {
		issue.Outcome = OutcomeUnmapped
		issue.Error = err.Error()
		return issue
	}

	expected := rec.ImagePath
	if mismatch != nil {
		expected = mismatch.Expected
	}
	issue.Expected = expected

	if r.config.LocalDir != "" {
		exists, err := r.fileExists(expected)
		if err != nil {
			issue.Outcome = OutcomeFailed
			issue.Error = err.Error()
			return issue
		}
		if !exists {
			issue.Outcome = OutcomeMissingFile
			return issue
		}
	}

	if mismatch == nil {
		issue.Outcome = OutcomeMatched
		return issue
	}

	if r.config.DryRun {
		issue.Outcome = OutcomeUpdated
		return issue
	}

	if err := r.store.UpdateImagePath(ctx, rec.ID, expected); err != nil {
		r.logger.Warn().Err(err).Str("record_id", rec.ID.String()).Msg("Failed to update image path")
		issue.Outcome = OutcomeFailed
		issue.Error = err.Error()
		return issue
	}
	issue.Outcome = OutcomeUpdated
	return issue
}

// fileExists maps a generated web path onto LocalDir and stats it.
func (r *Runner) fileExists(webPath string) (bool, error) {
	rel := strings.TrimPrefix(webPath, "/"+r.generator.AssetRoot()+"/")
	_, err := os.Stat(filepath.Join(r.config.LocalDir, filepath.FromSlash(rel)))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
