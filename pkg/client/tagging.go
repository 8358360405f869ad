package client

import (
	"context"

	"github.com/steamship-core/steamship-go/internal/wire"
	"github.com/steamship-core/steamship-go/pkg/task"
)

const (
	RouteParse = "model/parse"
	RouteTag   = "tagger/tag"

	// DefaultParsingModel is the server's default English parser.
	DefaultParsingModel = "en_core_web_trf"
)

// Block is a unit of text together with the tags attached to it.
type Block struct {
	ID   string `json:"id,omitempty"`
	Text string `json:"text"`
	Tags []Tag  `json:"tags,omitempty"`
}

// Tag annotates a character range of a block. StartIdx and EndIdx are zero
// for tags covering the whole block.
type Tag struct {
	Kind     string `json:"kind"`
	Name     string `json:"name,omitempty"`
	StartIdx int    `json:"startIdx,omitempty"`
	EndIdx   int    `json:"endIdx,omitempty"`
	Value    any    `json:"value,omitempty"`
}

// BlocksResult is the reply of both parsing and tagging.
type BlocksResult struct {
	Blocks []Block
}

// BlocksResultFromMap decodes {blocks: [{id, text, tags: [...]}, ...]}.
func BlocksResultFromMap(v any) BlocksResult {
	items := wire.Slice(wire.Map(v)["blocks"])
	result := BlocksResult{Blocks: make([]Block, 0, len(items))}
	for _, item := range items {
		result.Blocks = append(result.Blocks, blockFromMap(item))
	}
	return result
}

func blockFromMap(v any) Block {
	m := wire.Map(v)
	block := Block{
		ID:   wire.String(m, "id"),
		Text: wire.String(m, "text"),
	}
	for _, item := range wire.Slice(m["tags"]) {
		t := wire.Map(item)
		block.Tags = append(block.Tags, Tag{
			Kind:     wire.String(t, "kind"),
			Name:     wire.String(t, "name"),
			StartIdx: wire.Int(t, "startIdx"),
			EndIdx:   wire.Int(t, "endIdx"),
			Value:    t["value"],
		})
	}
	return block
}

// ParseRequest parses inline documents into tagged blocks.
type ParseRequest struct {
	Docs             []string
	Model            string
	IncludeTokens    bool
	IncludeParseData bool
	IncludeEntities  bool
	Metadata         any
}

type parseRequest struct {
	Type             string   `json:"type"`
	Docs             []string `json:"docs"`
	Model            string   `json:"model"`
	IncludeTokens    bool     `json:"includeTokens"`
	IncludeParseData bool     `json:"includeParseData"`
	IncludeEntities  bool     `json:"includeEntities"`
	Metadata         string   `json:"metadata,omitempty"`
}

// TagRequest runs a tagger over existing blocks.
type TagRequest struct {
	Blocks   []Block
	Model    string
	Metadata any
}

type tagRequest struct {
	Blocks   []Block `json:"blocks"`
	Model    string  `json:"model"`
	Metadata string  `json:"metadata,omitempty"`
}

// Parse splits and tags req.Docs.
func (c *Client) Parse(ctx context.Context, req ParseRequest, routing task.Routing) (*task.Response[BlocksResult], error) {
	model := req.Model
	if model == "" {
		model = DefaultParsingModel
	}
	body := parseRequest{
		Type:             "inline",
		Docs:             req.Docs,
		Model:            model,
		IncludeTokens:    req.IncludeTokens,
		IncludeParseData: req.IncludeParseData,
		IncludeEntities:  req.IncludeEntities,
		Metadata:         task.EncodeMetadata(req.Metadata),
	}
	return task.Post(ctx, c, RouteParse, body, BlocksResultFromMap, routing)
}

// Tag applies the tagger plugin req.Model to req.Blocks.
func (c *Client) Tag(ctx context.Context, req TagRequest, routing task.Routing) (*task.Response[BlocksResult], error) {
	model := req.Model
	if model == "" {
		model = DefaultParsingModel
	}
	body := tagRequest{
		Blocks:   req.Blocks,
		Model:    model,
		Metadata: task.EncodeMetadata(req.Metadata),
	}
	return task.Post(ctx, c, RouteTag, body, BlocksResultFromMap, routing)
}
