package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// RawNode is a Raw node read back from the graph.
type RawNode struct {
	ObjectID   string
	Kind       string
	Identifier string
	Module     string
	Depth      int64
}

// GraphQuerier answers dependency questions over the reference graph.
type GraphQuerier struct {
	driver neo4j.DriverWithContext
}

// NewGraphQuerier creates a new graph querier.
func NewGraphQuerier(driver neo4j.DriverWithContext) *GraphQuerier {
	return &GraphQuerier{driver: driver}
}

// CopyDescendants returns every creature that inherits from identifier
// through a COPY_TAGS_FROM chain, nearest first.
func (gq *GraphQuerier) CopyDescendants(ctx context.Context, identifier string) ([]RawNode, error) {
	return gq.collect(ctx, `
		MATCH p = (d:Raw {kind: 'CREATURE'})-[:COPIES_TAGS_FROM*1..]->(s:Raw {kind: 'CREATURE', key: $key})
		RETURN DISTINCT d.objectId AS objectId, d.kind AS kind, d.identifier AS identifier,
		       d.module AS module, length(p) AS depth
		ORDER BY depth, identifier
	`, map[string]any{"key": strings.ToLower(identifier)})
}

// VariationUsers returns the creatures that apply the named variation.
func (gq *GraphQuerier) VariationUsers(ctx context.Context, variation string) ([]RawNode, error) {
	return gq.collect(ctx, `
		MATCH (c:Raw)-[:APPLIES_VARIATION]->(v:Raw {kind: 'CREATURE_VARIATION', key: $key})
		RETURN DISTINCT c.objectId AS objectId, c.kind AS kind, c.identifier AS identifier,
		       c.module AS module, 1 AS depth
		ORDER BY identifier
	`, map[string]any{"key": strings.ToLower(variation)})
}

func (gq *GraphQuerier) collect(ctx context.Context, cypher string, params map[string]any) ([]RawNode, error) {
	session := gq.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, fmt.Errorf("query raw nodes: %w", err)
	}

	var nodes []RawNode
	for result.Next(ctx) {
		record := result.Record()
		objectID, _ := record.Get("objectId")
		kind, _ := record.Get("kind")
		identifier, _ := record.Get("identifier")
		module, _ := record.Get("module")
		depth, _ := record.Get("depth")

		n := RawNode{
			ObjectID:   fmt.Sprintf("%v", objectID),
			Kind:       fmt.Sprintf("%v", kind),
			Identifier: fmt.Sprintf("%v", identifier),
			Module:     fmt.Sprintf("%v", module),
		}
		if d, ok := depth.(int64); ok {
			n.Depth = d
		}
		nodes = append(nodes, n)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("read raw nodes: %w", err)
	}
	return nodes, nil
}
