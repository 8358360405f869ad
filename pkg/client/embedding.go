package client

import (
	"context"

	"github.com/steamship-core/steamship-go/internal/wire"
	"github.com/steamship-core/steamship-go/pkg/task"
)

const (
	RouteEmbed          = "embedding/create"
	RouteEmbedAndSearch = "embedding/search"
)

// EmbedRequest asks for one vector per document.
type EmbedRequest struct {
	Docs  []string `json:"docs"`
	Model string   `json:"model"`
}

// EmbedResult holds vectors in the order of EmbedRequest.Docs.
type EmbedResult struct {
	Embeddings [][]float64
}

// EmbedResultFromMap decodes {embeddings: [[...], ...]}.
func EmbedResultFromMap(v any) EmbedResult {
	items := wire.Slice(wire.Map(v)["embeddings"])
	result := EmbedResult{Embeddings: make([][]float64, 0, len(items))}
	for _, item := range items {
		result.Embeddings = append(result.Embeddings, wire.Floats(item))
	}
	return result
}

// EmbedAndSearchRequest embeds Docs and Query with Model and returns the K
// documents closest to the query.
type EmbedAndSearchRequest struct {
	Query string   `json:"query"`
	Docs  []string `json:"docs"`
	Model string   `json:"model"`
	K     int      `json:"k"`
}

// SearchResult lists hits by decreasing score.
type SearchResult struct {
	Hits []Hit
}

// Hit is one search match.
type Hit struct {
	ID    string
	Value string
	Score float64
	Index int
}

// SearchResultFromMap decodes {hits: [{id, value, score, index}, ...]}.
func SearchResultFromMap(v any) SearchResult {
	items := wire.Slice(wire.Map(v)["hits"])
	result := SearchResult{Hits: make([]Hit, 0, len(items))}
	for _, item := range items {
		m := wire.Map(item)
		result.Hits = append(result.Hits, Hit{
			ID:    wire.String(m, "id"),
			Value: wire.String(m, "value"),
			Score: wire.Float(m, "score"),
			Index: wire.Int(m, "index"),
		})
	}
	return result
}

// Embed computes embeddings for req.Docs.
func (c *Client) Embed(ctx context.Context, req EmbedRequest, routing task.Routing) (*task.Response[EmbedResult], error) {
	return task.Post(ctx, c, RouteEmbed, req, EmbedResultFromMap, routing)
}

// EmbedAndSearch runs a one-off semantic search over req.Docs.
func (c *Client) EmbedAndSearch(ctx context.Context, req EmbedAndSearchRequest, routing task.Routing) (*task.Response[SearchResult], error) {
	if req.K == 0 {
		req.K = 1
	}
	return task.Post(ctx, c, RouteEmbedAndSearch, req, SearchResultFromMap, routing)
}
