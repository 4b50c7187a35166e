// Package store flattens resolved objects into rows for the database sinks.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"rawgraph/internal/raws"
	"rawgraph/internal/textutil"
)

// Record is one persisted object.
type Record struct {
	ObjectID      uuid.UUID
	Kind          string
	Identifier    string
	Module        string
	ModuleVersion uint32
	Location      string
	RawPath       string
	RawName       string
	Tokens        string
	Checksum      string
	Body          []byte
}

// Sink persists records keyed by object id. Writing the same record twice
// leaves a single row. Upsert reports how many rows were inserted or changed.
type Sink interface {
	EnsureSchema(ctx context.Context) error
	Upsert(ctx context.Context, records []Record) (int, error)
	Close() error
}

// NewRecord flattens an object. Tokens holds the bracketed tag text; Body
// the full JSON rendering. Checksum covers both so sinks can skip rows
// whose content did not change.
func NewRecord(o raws.Object) (Record, error) {
	info := o.ObjectInfo()
	body, err := json.Marshal(o)
	if err != nil {
		return Record{}, fmt.Errorf("marshal %s %s: %w", o.Kind(), info.Identifier, err)
	}
	tokens := strings.Join(o.Tokens(), "")
	return Record{
		ObjectID:      info.ObjectID,
		Kind:          o.Kind().String(),
		Identifier:    info.Identifier,
		Module:        info.Metadata.Module.Identifier,
		ModuleVersion: info.Metadata.Module.NumericVersion,
		Location:      info.Metadata.Module.Location.String(),
		RawPath:       info.Metadata.RawPath,
		RawName:       info.Metadata.RawName,
		Tokens:        tokens,
		Checksum:      textutil.Hash(tokens, string(body)),
		Body:          body,
	}, nil
}

// Records flattens objects. When several objects share an id the last one
// wins, matching what a sequence of upserts would leave behind.
func Records(objects []raws.Object) ([]Record, error) {
	out := make([]Record, 0, len(objects))
	seen := make(map[uuid.UUID]int, len(objects))
	for _, o := range objects {
		r, err := NewRecord(o)
		if err != nil {
			return nil, err
		}
		if i, ok := seen[r.ObjectID]; ok {
			out[i] = r
			continue
		}
		seen[r.ObjectID] = len(out)
		out = append(out, r)
	}
	return out, nil
}
