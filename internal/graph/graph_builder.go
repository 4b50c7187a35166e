// Package graph mirrors the resolved object set into Neo4j: one Raw node
// per object and one relationship per cross-object reference.
package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog/log"

	"rawgraph/internal/raws"
	"rawgraph/internal/worker"
)

// GraphBuilder writes objects and their references to Neo4j.
type GraphBuilder struct {
	driver    neo4j.DriverWithContext
	batchSize int
}

// NewGraphBuilder creates a new graph builder.
func NewGraphBuilder(driver neo4j.DriverWithContext, batchSize int) *GraphBuilder {
	return &GraphBuilder{driver: driver, batchSize: max(batchSize, 1)}
}

// Connect opens a driver and verifies the server is reachable.
func Connect(ctx context.Context, uri, user, password string) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, fmt.Errorf("connect Neo4j: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("verify Neo4j connectivity: %w", err)
	}
	log.Info().Msg("Connected to Neo4j")
	return driver, nil
}

// EnsureSchema creates constraints and indexes on the Neo4j database.
func (gb *GraphBuilder) EnsureSchema(ctx context.Context) error {
	session := gb.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	statements := []string{
		"CREATE CONSTRAINT IF NOT EXISTS FOR (r:Raw) REQUIRE r.objectId IS UNIQUE",
		"CREATE INDEX IF NOT EXISTS FOR (r:Raw) ON (r.kind, r.key)",
	}

	for _, s := range statements {
		if _, err := session.Run(ctx, s, nil); err != nil {
			return fmt.Errorf("create constraint: %w", err)
		}
	}

	log.Info().Msg("Graph schema ensured")
	return nil
}

// Nodes returns every object that becomes a node, including select-creature
// bundles already absorbed into their creatures.
func Nodes(objects []raws.Object) []raws.Object {
	out := make([]raws.Object, 0, len(objects))
	for _, o := range objects {
		out = append(out, o)
		if c, ok := o.(*raws.Creature); ok {
			for _, sc := range c.SelectCreatures {
				out = append(out, sc)
			}
		}
	}
	return out
}

func nodeRow(o raws.Object) map[string]any {
	info := o.ObjectInfo()
	return map[string]any{
		"objectId":   info.ObjectID.String(),
		"kind":       o.Kind().String(),
		"identifier": info.Identifier,
		"key":        strings.ToLower(info.Identifier),
		"module":     info.Metadata.Module.Identifier,
		"version":    int64(info.Metadata.Module.NumericVersion),
		"location":   info.Metadata.Module.Location.String(),
		"rawPath":    info.Metadata.RawPath,
	}
}

// UpsertObjects merges one Raw node per object, batched through UNWIND.
func (gb *GraphBuilder) UpsertObjects(ctx context.Context, objects []raws.Object) (int, error) {
	session := gb.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	nodes := Nodes(objects)
	for _, chunk := range worker.Batch(nodes, gb.batchSize) {
		rows := make([]any, 0, len(chunk))
		for _, o := range chunk {
			rows = append(rows, nodeRow(o))
		}
		_, err := session.Run(ctx, `
			UNWIND $rows AS row
			MERGE (r:Raw {objectId: row.objectId})
			SET r.kind = row.kind,
			    r.identifier = row.identifier,
			    r.key = row.key,
			    r.module = row.module,
			    r.version = row.version,
			    r.location = row.location,
			    r.rawPath = row.rawPath
		`, map[string]any{"rows": rows})
		if err != nil {
			return 0, fmt.Errorf("upsert raw nodes: %w", err)
		}
	}

	log.Info().Int("nodes", len(nodes)).Msg("Upserted raw nodes")
	return len(nodes), nil
}

// UpsertEdges merges the reference edges, one statement per relationship
// type since Cypher cannot parameterize it.
func (gb *GraphBuilder) UpsertEdges(ctx context.Context, edges []Edge) (int, error) {
	session := gb.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	byType := make(map[string][]any)
	var order []string
	for _, e := range edges {
		if _, ok := byType[e.Type]; !ok {
			order = append(order, e.Type)
		}
		byType[e.Type] = append(byType[e.Type], map[string]any{
			"from": e.From.String(),
			"to":   e.To.String(),
			"args": strings.Join(e.Args, ":"),
		})
	}

	for _, rel := range order {
		for _, rows := range worker.Batch(byType[rel], gb.batchSize) {
			_, err := session.Run(ctx, fmt.Sprintf(`
				UNWIND $rows AS row
				MATCH (a:Raw {objectId: row.from})
				MATCH (b:Raw {objectId: row.to})
				MERGE (a)-[e:%s]->(b)
				SET e.args = row.args
			`, rel), map[string]any{"rows": rows})
			if err != nil {
				return 0, fmt.Errorf("upsert %s edges: %w", rel, err)
			}
		}
		log.Debug().Str("rel", rel).Int("edges", len(byType[rel])).Msg("Upserted edges")
	}

	log.Info().Int("edges", len(edges)).Msg("Upserted reference edges")
	return len(edges), nil
}

// Build writes nodes, then edges, for the whole object set.
func (gb *GraphBuilder) Build(ctx context.Context, objects []raws.Object) error {
	if _, err := gb.UpsertObjects(ctx, objects); err != nil {
		return err
	}
	if _, err := gb.UpsertEdges(ctx, Edges(objects)); err != nil {
		return err
	}
	return nil
}
