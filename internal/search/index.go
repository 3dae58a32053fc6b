package search

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/feedbackboardapp/feedback-board/internal/domain"
)

// Index wraps a Bleve index with feedback-specific operations.
//
// Thread safety: all public methods are safe for concurrent use.
type Index struct {
	index  bleve.Index
	logger *slog.Logger
	mu     sync.RWMutex
}

// Options configures the search index.
type Options struct {
	// DataPath is the directory for index storage. Empty means an
	// in-memory index (used by tests and throwaway sessions).
	DataPath string
	Logger   *slog.Logger
}

// NewIndex creates or opens a search index. A corrupted on-disk index is
// removed and recreated; the store re-warms it from the snapshot on load.
func NewIndex(opts Options) (*Index, error) {
	if opts.DataPath == "" {
		idx, err := bleve.NewMemOnly(buildIndexMapping())
		if err != nil {
			return nil, fmt.Errorf("create in-memory index: %w", err)
		}
		return &Index{index: idx, logger: opts.Logger}, nil
	}

	indexPath := filepath.Join(opts.DataPath, "feedback.bleve")

	idx, err := bleve.Open(indexPath)
	if err != nil {
		if opts.Logger != nil && err != bleve.ErrorIndexPathDoesNotExist {
			opts.Logger.Warn("failed to open existing index, recreating", "path", indexPath, "error", err)
		}
		if removeErr := os.RemoveAll(indexPath); removeErr != nil {
			return nil, fmt.Errorf("remove old index: %w", removeErr)
		}
		idx, err = bleve.New(indexPath, buildIndexMapping())
		if err != nil {
			return nil, fmt.Errorf("create index: %w", err)
		}
	}

	return &Index{index: idx, logger: opts.Logger}, nil
}

// buildIndexMapping creates the Bleve mapping: English analysis on title
// and description, exact keyword matching on the filter fields.
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = en.AnalyzerName

	docMapping := bleve.NewDocumentMapping()

	titleField := bleve.NewTextFieldMapping()
	titleField.Analyzer = en.AnalyzerName
	titleField.Store = true
	docMapping.AddFieldMappingsAt("title", titleField)

	descField := bleve.NewTextFieldMapping()
	descField.Analyzer = en.AnalyzerName
	descField.Store = false
	docMapping.AddFieldMappingsAt("description", descField)

	for _, field := range []string{"board_id", "category", "status"} {
		keywordField := bleve.NewTextFieldMapping()
		keywordField.Analyzer = keyword.Name
		keywordField.Store = true
		docMapping.AddFieldMappingsAt(field, keywordField)
	}

	indexMapping.DefaultMapping = docMapping
	return indexMapping
}

// IndexFeedback adds or replaces the feedback in the index. Implements
// store.SearchIndexer.
func (i *Index) IndexFeedback(ctx context.Context, f *domain.Feedback) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.index.Index(f.ID, newDocument(f)); err != nil {
		return fmt.Errorf("index feedback %s: %w", f.ID, err)
	}
	return nil
}

// DeleteFeedback removes the feedback from the index. Implements
// store.SearchIndexer. Deleting an unindexed id is a no-op.
func (i *Index) DeleteFeedback(ctx context.Context, feedbackID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.index.Delete(feedbackID); err != nil {
		return fmt.Errorf("delete feedback %s from index: %w", feedbackID, err)
	}
	return nil
}

// DocCount returns the number of indexed feedback items.
func (i *Index) DocCount() (uint64, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.index.DocCount()
}

// Close releases the index.
func (i *Index) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.index.Close()
}
