package search

import (
	"context"
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// Params configures a feedback search.
type Params struct {
	// Query is the user's search text, matched against title and
	// description.
	Query string
	// BoardID scopes the search to one board. Empty searches all boards.
	BoardID string
	// Category and Status filter by exact value when non-empty.
	Category string
	Status   string

	Limit  int
	Offset int
}

// DefaultParams returns sensible defaults.
func DefaultParams() Params {
	return Params{Limit: 20}
}

// Result holds one page of search results.
type Result struct {
	Total  uint64 `json:"total"`
	TookMs int64  `json:"took_ms"`
	Hits   []Hit  `json:"hits"`
}

// Hit is a single matching feedback item. Callers resolve the id against
// the store; the hit carries only what the result list needs.
type Hit struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
	Title string  `json:"title"`
}

// Search runs a full-text query over the indexed feedback.
func (i *Index) Search(ctx context.Context, params Params) (*Result, error) {
	if params.Limit <= 0 {
		params.Limit = 20
	}

	conjuncts := make([]query.Query, 0, 4)

	if params.Query != "" {
		titleMatch := bleve.NewMatchQuery(params.Query)
		titleMatch.SetField("title")
		titleMatch.SetBoost(2.0)

		descMatch := bleve.NewMatchQuery(params.Query)
		descMatch.SetField("description")

		conjuncts = append(conjuncts, bleve.NewDisjunctionQuery(titleMatch, descMatch))
	} else {
		conjuncts = append(conjuncts, bleve.NewMatchAllQuery())
	}

	for field, value := range map[string]string{
		"board_id": params.BoardID,
		"category": params.Category,
		"status":   params.Status,
	} {
		if value == "" {
			continue
		}
		term := bleve.NewTermQuery(value)
		term.SetField(field)
		conjuncts = append(conjuncts, term)
	}

	req := bleve.NewSearchRequestOptions(bleve.NewConjunctionQuery(conjuncts...), params.Limit, params.Offset, false)
	req.Fields = []string{"title"}

	i.mu.RLock()
	res, err := i.index.SearchInContext(ctx, req)
	i.mu.RUnlock()
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	result := &Result{
		Total:  res.Total,
		TookMs: res.Took.Milliseconds(),
		Hits:   make([]Hit, 0, len(res.Hits)),
	}
	for _, hit := range res.Hits {
		h := Hit{ID: hit.ID, Score: hit.Score}
		if title, ok := hit.Fields["title"].(string); ok {
			h.Title = title
		}
		result.Hits = append(result.Hits, h)
	}
	return result, nil
}
