package index

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
)

// Hit is one search result row.
type Hit struct {
	ID     string
	Score  float64
	Fields map[string]interface{}
}

// Result holds a query's hits and the total match count.
type Result struct {
	Total uint64
	Hits  []Hit
}

// Search runs a query-string search across all fields of an existing index.
func Search(indexDir, query string, limit int) (*Result, error) {
	idx, err := bleve.Open(indexDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}
	defer idx.Close()

	req := bleve.NewSearchRequestOptions(bleve.NewQueryStringQuery(query), limit, 0, false)
	req.Fields = []string{"*"}

	res, err := idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	out := &Result{Total: res.Total}

	for _, h := range res.Hits {
		out.Hits = append(out.Hits, Hit{
			ID:     h.ID,
			Score:  h.Score,
			Fields: h.Fields,
		})
	}

	return out, nil
}
