// Package enricher resolves preview issues to their full records.
//
// For every preview the enricher fetches the full issue from the forge, merges
// it into the persistent issue cache, records it in the caller's preview
// mapping, reports it to the result sinks and fetches the owner's avatar.
package enricher

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lerenn/issues-full/pkg/dependencies"
	"github.com/lerenn/issues-full/pkg/issue"
	"github.com/lerenn/issues-full/pkg/mapping"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of enriching one preview.
//
// Issue is nil with a nil Err when the preview body holds no issue URL.
// Err is set when the issue could not be fetched or stored; when only the
// avatar fetch failed, Issue is set alongside an ErrAvatarFetch error.
type Result struct {
	PreviewID int64
	Issue     *issue.Full
	Err       error
}

// NewEnricherParams contains parameters for creating a new Enricher instance.
type NewEnricherParams struct {
	Dependencies *dependencies.Dependencies
	// Concurrency limits the previews processed at once. Zero or less means no limit.
	Concurrency int
	Sinks       []ResultSink
}

// Enricher resolves preview issues to full issues.
type Enricher struct {
	deps        *dependencies.Dependencies
	concurrency int
	sinks       []ResultSink
}

// NewEnricher creates a new Enricher instance.
func NewEnricher(params NewEnricherParams) (*Enricher, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	return &Enricher{
		deps:        deps,
		concurrency: params.Concurrency,
		sinks:       params.Sinks,
	}, nil
}

// Enrich resolves every preview concurrently and returns one result per
// preview, in input order. It fails as a whole only when no auth token is
// available, before any network call; per-preview failures are reported in
// the results.
func (e *Enricher) Enrich(ctx context.Context, session *mapping.Mapping, previews []issue.Preview) ([]Result, error) {
	if session == nil {
		return nil, ErrNoMapping
	}
	if e.deps.Auth.Token() == "" {
		return nil, ErrNoAuthToken
	}

	batchID := uuid.NewString()
	e.deps.Logger.Logf("Batch %s: enriching %d previews", batchID, len(previews))

	results := make([]Result, len(previews))

	var g errgroup.Group
	if e.concurrency > 0 {
		g.SetLimit(e.concurrency)
	}
	for i, preview := range previews {
		g.Go(func() error {
			results[i] = e.enrichOne(ctx, batchID, session, preview)
			return nil
		})
	}
	_ = g.Wait()

	return results, nil
}

func (e *Enricher) enrichOne(ctx context.Context, batchID string, session *mapping.Mapping, preview issue.Preview) Result {
	result := Result{PreviewID: preview.ID}

	ref, err := issue.ParseReference(preview.Body)
	if err != nil {
		e.deps.Logger.Logf("Batch %s: preview %d: %v", batchID, preview.ID, err)
		return result
	}

	full, err := e.deps.Forge.GetIssue(ctx, *ref)
	if err != nil {
		result.Err = fmt.Errorf("%w: %s: %w", ErrFetchIssue, ref, err)
		return result
	}

	written, err := e.deps.Cache.Merge(full)
	if err != nil {
		result.Err = fmt.Errorf("%w: %d: %w", ErrCacheIssue, full.ID, err)
		return result
	}
	if written {
		e.deps.Logger.Logf("Batch %s: cached issue %d (%s) updated at %s",
			batchID, full.ID, ref, full.UpdatedAt.Format("2006-01-02 15:04:05"))
	}

	session.Set(preview.ID, *full)
	if err := session.Save(); err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrSaveMapping, err)
		return result
	}

	for _, sink := range e.sinks {
		sink.Report(preview.ID, full.ID)
	}

	result.Issue = full

	if org := full.Owner(); org != "" {
		if err := e.deps.Avatars.FetchAvatar(ctx, org); err != nil {
			result.Err = fmt.Errorf("%w: %s: %w", ErrAvatarFetch, org, err)
		}
	}

	return result
}
