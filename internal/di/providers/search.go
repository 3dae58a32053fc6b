package providers

import (
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/feedbackboardapp/feedback-board/internal/config"
	"github.com/feedbackboardapp/feedback-board/internal/search"
	"github.com/feedbackboardapp/feedback-board/internal/store"
)

// SearchIndexHandle wraps the search index with shutdown capability.
type SearchIndexHandle struct {
	*search.Index
}

// Shutdown implements do.Shutdownable.
func (h *SearchIndexHandle) Shutdown() error {
	if h.Index == nil {
		return nil
	}
	return h.Index.Close()
}

// ProvideSearchIndex provides the bleve feedback index and wires it to
// the store so mutations keep the index current. When search is
// disabled the store keeps its no-op indexer.
func ProvideSearchIndex(i do.Injector) (*SearchIndexHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*slog.Logger](i)
	st := do.MustInvoke[*store.Store](i)

	if !cfg.Search.Enabled {
		log.Info("Search index disabled")
		return &SearchIndexHandle{}, nil
	}

	index, err := search.NewIndex(search.Options{
		DataPath: cfg.Search.Path,
		Logger:   log,
	})
	if err != nil {
		return nil, err
	}

	st.SetSearchIndexer(index)

	docCount, _ := index.DocCount()
	log.Info("Search index initialized", "documents", docCount)

	return &SearchIndexHandle{Index: index}, nil
}
