package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/lerenn/issues-full/pkg/enricher"
	"github.com/lerenn/issues-full/pkg/issue"
	"github.com/lerenn/issues-full/pkg/mapping"
)

// EnrichOptions configures one enrichment run.
type EnrichOptions struct {
	// Input is a previews JSON file, or "-" for Stdin.
	Input string
	Stdin io.Reader
	// Stdout receives the results; nil discards them.
	Stdout io.Writer
	Format string
	// AvatarsDir receives the downloaded owner avatars when set.
	AvatarsDir string
}

// EnrichedPreview is the printed outcome of one preview.
type EnrichedPreview struct {
	PreviewID int64       `json:"preview_id" yaml:"preview_id"`
	Issue     *issue.Full `json:"issue" yaml:"issue"`
	Error     string      `json:"error,omitempty" yaml:"error,omitempty"`
}

// Enrich reads the previews, resolves them in a session-scoped mapping and prints the results.
func Enrich(ctx context.Context, session *Session, opts EnrichOptions) error {
	deps := session.Dependencies

	previews, err := ReadPreviews(deps.FS, opts.Input, opts.Stdin)
	if err != nil {
		return err
	}

	previewMapping, err := mapping.Load(deps.Store)
	if err != nil {
		return err
	}

	var sinks []enricher.ResultSink
	if Verbose {
		sinks = append(sinks, enricher.LogSink{Logger: deps.Logger})
	}

	e, err := enricher.NewEnricher(enricher.NewEnricherParams{
		Dependencies: deps,
		Concurrency:  session.Config.Enrich.Concurrency,
		Sinks:        sinks,
	})
	if err != nil {
		return err
	}

	results, err := e.Enrich(ctx, previewMapping, previews)
	if err != nil {
		return err
	}

	output := make([]EnrichedPreview, 0, len(results))
	failed := 0
	for _, result := range results {
		enriched := EnrichedPreview{PreviewID: result.PreviewID, Issue: result.Issue}
		if result.Err != nil {
			enriched.Error = result.Err.Error()
			failed++
		}
		output = append(output, enriched)
	}
	deps.Logger.Logf("Enriched %d previews, %d failed", len(results), failed)

	if opts.AvatarsDir != "" {
		if err := SaveAvatars(session, opts.AvatarsDir); err != nil {
			return err
		}
	}

	if opts.Stdout == nil {
		return nil
	}
	return Print(opts.Stdout, opts.Format, output)
}

// SaveAvatars writes every cached owner avatar to dir, one file per organization.
func SaveAvatars(session *Session, dir string) error {
	for _, org := range session.Avatars.Organizations() {
		image, ok := session.Avatars.Get(org)
		if !ok {
			continue
		}

		path := filepath.Join(dir, org+imageExtension(image))
		if err := session.Dependencies.FS.WriteFileAtomic(path, image, 0o644); err != nil {
			return fmt.Errorf("failed to save avatar of %s: %w", org, err)
		}
	}
	return nil
}

func imageExtension(image []byte) string {
	switch http.DetectContentType(image) {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
