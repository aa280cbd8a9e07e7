// Package engine orchestrates the activity log: it validates submissions,
// computes durations, writes through the configured store, and maintains
// the in-memory view state the presentation layer reads from.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/shibashis07/time-logger/internal/aggregate"
	"github.com/shibashis07/time-logger/internal/domain"
	"github.com/shibashis07/time-logger/internal/duration"
	"github.com/shibashis07/time-logger/internal/errors"
	"github.com/shibashis07/time-logger/internal/export"
	"github.com/shibashis07/time-logger/internal/logging"
	"github.com/shibashis07/time-logger/internal/store"
	"github.com/shibashis07/time-logger/internal/validation"
)

// Scope controls which records the view covers.
type Scope string

const (
	// ScopeAll lists every stored record.
	ScopeAll Scope = "all"
	// ScopeToday lists only records whose date matches the active day key.
	// Out-of-scope records are hidden, never deleted.
	ScopeToday Scope = "today"
)

// RefreshStrategy controls how the view is refreshed after a commit.
type RefreshStrategy string

const (
	// RefreshReload re-lists from the store after every mutation; the
	// store is authoritative.
	RefreshReload RefreshStrategy = "reload"
	// RefreshOptimistic appends the canonical stored record to the view
	// without re-querying; deletions drop the record from the view in place.
	RefreshOptimistic RefreshStrategy = "optimistic"
)

// Input carries the raw submission fields from the presentation layer.
type Input struct {
	Activity  string
	StartTime string
	EndTime   string
}

// View is the snapshot handed to the presentation layer.
type View struct {
	Records []*domain.ActivityRecord
	Buckets []aggregate.Bucket
	Palette []string
}

// Options configures an Engine.
type Options struct {
	Scope            Scope
	Refresh          RefreshStrategy
	ExportBaseName   string
	ExportDateSuffix bool
	// Now supplies the current instant; defaults to time.Now.
	Now func() time.Time
}

// Engine owns the view state and serializes every operation that touches it.
type Engine struct {
	mu        sync.Mutex
	store     store.Store
	validator *validation.RecordValidator

	scope   Scope
	refresh RefreshStrategy
	now     func() time.Time

	exportBase       string
	exportDateSuffix bool

	// view state, guarded by mu
	day     string
	records []*domain.ActivityRecord
}

// New creates an Engine over the given store.
func New(s store.Store, opts Options) *Engine {
	if opts.Scope == "" {
		opts.Scope = ScopeAll
	}
	if opts.Refresh == "" {
		opts.Refresh = RefreshReload
	}
	if opts.ExportBaseName == "" {
		opts.ExportBaseName = "time-log"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Engine{
		store:            s,
		validator:        validation.NewRecordValidator(),
		scope:            opts.Scope,
		refresh:          opts.Refresh,
		now:              opts.Now,
		exportBase:       opts.ExportBaseName,
		exportDateSuffix: opts.ExportDateSuffix,
	}
}

// Load populates the view state from the store. Call once on startup.
func (e *Engine) Load(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reloadLocked(ctx)
}

// Reload re-derives the active day key and re-lists from the store.
func (e *Engine) Reload(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reloadLocked(ctx)
}

// Submit validates and persists one activity submission. On success the
// canonical stored record is returned and the view is refreshed; on any
// failure the view state is untouched so the caller can surface the error
// and let the user retry with their input preserved.
func (e *Engine) Submit(ctx context.Context, input Input) (*domain.ActivityRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.validator.ValidateSubmission(input.Activity, input.StartTime, input.EndTime); err != nil {
		return nil, errors.NewValidationError("invalid submission", err)
	}

	activity, err := e.validator.GetValidActivityName(input.Activity)
	if err != nil {
		return nil, errors.NewValidationError("invalid activity name", err)
	}

	now := e.now()
	minutes, err := duration.Compute(input.StartTime, input.EndTime, now)
	if err != nil {
		return nil, err
	}

	record := domain.NewActivityRecord(activity, input.StartTime, input.EndTime, minutes, now)
	if err := e.validator.ValidateRecord(record); err != nil {
		return nil, errors.NewValidationError("invalid record", err)
	}

	if err := e.store.Append(ctx, &record); err != nil {
		logging.Debugf("append failed, view state untouched: %v\n", err)
		return nil, err
	}

	switch e.refresh {
	case RefreshOptimistic:
		if e.inScope(&record) {
			e.records = append(e.records, &record)
		}
	default:
		if err := e.reloadLocked(ctx); err != nil {
			return nil, err
		}
	}

	return &record, nil
}

// Delete removes a record by id and refreshes the view. Deletion operates
// on the id alone; the active day scope never restricts it.
func (e *Engine) Delete(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.validator.ValidateRecordID(id); err != nil {
		return errors.NewValidationError("invalid record id", err)
	}

	if err := e.store.Delete(ctx, id); err != nil {
		return err
	}

	if e.refresh == RefreshOptimistic {
		remaining := e.records[:0]
		for _, record := range e.records {
			if record.ID != id {
				remaining = append(remaining, record)
			}
		}
		e.records = remaining
		return nil
	}

	return e.reloadLocked(ctx)
}

// View returns a snapshot of the current records with their chart buckets.
func (e *Engine) View() View {
	e.mu.Lock()
	defer e.mu.Unlock()

	records := make([]*domain.ActivityRecord, len(e.records))
	copy(records, e.records)

	return View{
		Records: records,
		Buckets: aggregate.Buckets(records),
		Palette: aggregate.Palette(),
	}
}

// ExportView renders the current view state as CSV text.
func (e *Engine) ExportView() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return export.CSV(e.records)
}

// ExportFilename returns the file name the export should be saved under.
func (e *Engine) ExportFilename() string {
	return export.Filename(e.exportBase, e.now(), e.exportDateSuffix)
}

// Scope returns the configured day scope.
func (e *Engine) Scope() Scope {
	return e.scope
}

// ActiveDay returns the current day key, or "" when scoped to all records.
func (e *Engine) ActiveDay() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.day
}

// reloadLocked re-derives the day key and re-lists. Callers hold mu.
func (e *Engine) reloadLocked(ctx context.Context) error {
	filter := store.Filter{}
	if e.scope == ScopeToday {
		e.day = domain.DayKey(e.now())
		filter = store.FilterByDay(e.day)
	}

	records, err := e.store.List(ctx, filter)
	if err != nil {
		return err
	}

	e.records = records
	logging.Debugf("view reloaded: %d records (scope=%s day=%s)\n", len(records), e.scope, e.day)
	return nil
}

// inScope reports whether a record belongs to the active view.
func (e *Engine) inScope(record *domain.ActivityRecord) bool {
	if e.scope != ScopeToday {
		return true
	}
	e.day = domain.DayKey(e.now())
	return record.Date == e.day
}
