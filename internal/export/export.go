// Package export writes a resolved object set as JSON.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"rawgraph/internal/raws"
)

// Entry wraps one object with its kind so readers can dispatch on it.
type Entry struct {
	Kind   raws.ObjectType `json:"kind"`
	Object raws.Object     `json:"object"`
}

// Document is the top-level export shape.
type Document struct {
	Counts  map[string]int `json:"counts"`
	Objects []Entry        `json:"objects"`
}

// NewDocument builds a document from objects in their corpus order.
func NewDocument(objects []raws.Object) *Document {
	doc := &Document{
		Counts:  make(map[string]int),
		Objects: make([]Entry, 0, len(objects)),
	}
	for _, o := range objects {
		doc.Counts[o.Kind().String()]++
		doc.Objects = append(doc.Objects, Entry{Kind: o.Kind(), Object: o})
	}
	return doc
}

// Write encodes objects to w. Indent enables two-space pretty printing.
func Write(w io.Writer, objects []raws.Object, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(NewDocument(objects)); err != nil {
		return fmt.Errorf("encode objects: %w", err)
	}
	return nil
}

// WriteFile writes objects to path, replacing any existing file.
func WriteFile(path string, objects []raws.Object) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if err := Write(f, objects, true); err != nil {
		return err
	}

	log.Info().Str("path", path).Int("objects", len(objects)).Msg("Exported objects")
	return nil
}
