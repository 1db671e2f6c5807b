// Package resolver maps a configurator form selection to its stored preview record.
//
// Resolution runs in three steps: the form is normalized to stored vocabulary,
// an exact lookup is tried, and on a miss a relaxed lookup is issued with the
// equivalent spellings of the material and border tokens. A miss on both is a
// normal NotFound result; a store failure is returned as a *StoreError.
package resolver

import (
	"context"
	"time"

	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/observability"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/storage"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/vocabulary"
)

// RecordStore is the read contract the resolver needs from the record store.
type RecordStore interface {
	Query(ctx context.Context, f storage.Filter) ([]storage.Record, error)
}

// Status is the outcome of a resolution.
type Status string

const (
	StatusFound         Status = "found"
	StatusFoundFallback Status = "found_fallback"
	StatusNotFound      Status = "not_found"
)

// Result is the outcome of Resolve.
type Result struct {
	Status Status          `json:"status"`
	Record *storage.Record `json:"record,omitempty"`
	// Canonical is the normalized form selection.
	Canonical vocabulary.CanonicalConfiguration `json:"canonical"`
	// MaterialCandidates and BorderCandidates are set when the relaxed lookup ran.
	MaterialCandidates []string `json:"material_candidates,omitempty"`
	BorderCandidates   []string `json:"border_candidates,omitempty"`
	// Alternatives counts the matching records that were not selected.
	Alternatives int `json:"alternatives"`
}

// Found reports whether a record was selected.
func (r *Result) Found() bool {
	return r.Record != nil
}

// Ambiguous reports whether more than one record matched.
func (r *Result) Ambiguous() bool {
	return r.Alternatives > 0
}

// Config configures lookup behavior.
type Config struct {
	// FallbackEnabled allows the relaxed lookup after an exact miss.
	FallbackEnabled bool
	// QueryTimeout bounds each store query. Zero means no bound beyond ctx.
	QueryTimeout time.Duration
}

// DefaultConfig returns the default resolver configuration.
func DefaultConfig() Config {
	return Config{
		FallbackEnabled: true,
		QueryTimeout:    2 * time.Second,
	}
}

// Resolver resolves form selections. It holds no per-call state and is safe
// for concurrent use.
type Resolver struct {
	store  RecordStore
	logger *observability.Logger
	config Config
}

// New creates a resolver over store.
func New(store RecordStore, logger *observability.Logger, config Config) *Resolver {
	if logger == nil {
		logger = observability.NopLogger()
	}
	return &Resolver{
		store:  store,
		logger: logger.WithComponent("resolver"),
		config: config,
	}
}

// Resolve normalizes form and looks up its record, exact match first.
func (r *Resolver) Resolve(ctx context.Context, form vocabulary.FormConfiguration) (*Result, error) {
	canonical := vocabulary.Normalize(form)
	result := &Result{Status: StatusNotFound, Canonical: canonical}
	logger := r.logger.WithOperation("resolve").WithContext(ctx)

	exact := storage.ExactFilter(canonical)
	records, err := r.query(ctx, exact)
	if err != nil {
		logger.Error().Err(err).Str("configuration", canonical.String()).Msg("Strict lookup failed")
		return nil, &StoreError{Stage: StageStrict, Err: err}
	}
	if len(records) > 0 {
		r.selectInto(logger, result, records, exact)
		result.Status = StatusFound
		logger.Debug().
			Str("configuration", canonical.String()).
			Str("record_id", result.Record.ID.String()).
			Msg("Strict lookup hit")
		return result, nil
	}

	if !r.config.FallbackEnabled {
		logger.Debug().Str("configuration", canonical.String()).Msg("Strict lookup missed, fallback disabled")
		return result, nil
	}

	relaxed := storage.Filter{
		MatType:        string(canonical.MatType),
		CellStructure:  string(canonical.CellStructure),
		MaterialColors: vocabulary.CandidateMaterialSet(canonical.MatType, canonical.CellStructure, canonical.MaterialColor),
		BorderColors:   vocabulary.CandidateBorderSet(canonical.BorderColor),
	}
	result.MaterialCandidates = relaxed.MaterialColors
	result.BorderCandidates = relaxed.BorderColors

	records, err = r.query(ctx, relaxed)
	if err != nil {
		logger.Error().Err(err).Str("configuration", canonical.String()).Msg("Fallback lookup failed")
		return nil, &StoreError{Stage: StageFallback, Err: err}
	}
	if len(records) == 0 {
		logger.Debug().
			Str("configuration", canonical.String()).
			Strs("material_candidates", relaxed.MaterialColors).
			Strs("border_candidates", relaxed.BorderColors).
			Msg("No record for configuration")
		return result, nil
	}

	r.selectInto(logger, result, records, relaxed)
	result.Status = StatusFoundFallback
	logger.Debug().
		Str("configuration", canonical.String()).
		Str("record_id", result.Record.ID.String()).
		Str("material_color", result.Record.MaterialColor).
		Str("border_color", result.Record.BorderColor).
		Msg("Fallback lookup hit")
	return result, nil
}

func (r *Resolver) query(ctx context.Context, f storage.Filter) ([]storage.Record, error) {
	if r.config.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.QueryTimeout)
		defer cancel()
	}
	return r.store.Query(ctx, f)
}

func (r *Resolver) selectInto(logger *observability.Logger, result *Result, records []storage.Record, f storage.Filter) {
	best, others := Select(records, f.MaterialColors, f.BorderColors)
	result.Record = &best
	result.Alternatives = len(others)

	if len(others) > 0 {
		ids := make([]string, len(others))
		for i, rec := range others {
			ids[i] = rec.ID.String()
		}
		logger.Warn().
			Str("configuration", result.Canonical.String()).
			Str("selected_id", best.ID.String()).
			Strs("alternative_ids", ids).
			Msg("Multiple records match configuration")
	}
}
