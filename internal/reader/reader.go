// Package reader turns raw files into decoded objects and deferred creature
// bundles.
package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"rawgraph/internal/raws"
)

var (
	// ErrInvalidRawFile marks a file whose OBJECT header is unknown or does
	// not match the category expected for it.
	ErrInvalidRawFile = errors.New("invalid raw file")
	// ErrIO marks a file that could not be opened or decoded.
	ErrIO = errors.New("raw file i/o")
)

const maxLineSize = 4 * 1024 * 1024

// FileResult is what a single raw file contributes to the corpus.
type FileResult struct {
	Objects     []raws.Object
	Unprocessed []*UnprocessedRaw
}

// Len returns the number of objects and bundles read.
func (r *FileResult) Len() int { return len(r.Objects) + len(r.Unprocessed) }

// ParseFile reads the raw file at path. objectType is the category expected
// from the file's name; an OBJECT header that disagrees rejects the file.
func ParseFile(path string, module raws.Module, objectType raws.ObjectType) (*FileResult, error) {
	if !objectType.IsParsable() {
		log.Debug().Str("file", path).Stringer("type", objectType).Msg("Skipping unparsable object type")
		return &FileResult{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open raw file: %w: %w", ErrIO, err)
	}
	defer f.Close()

	meta := raws.Metadata{
		Module:     module,
		RawPath:    path,
		ObjectType: objectType,
	}
	return Parse(f, meta)
}

// Parse reads raw text from r. The first line is the file's header name.
func Parse(r io.Reader, meta raws.Metadata) (*FileResult, error) {
	scanner := bufio.NewScanner(decode(r))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	st := newState(meta)
	for line := 0; scanner.Scan(); line++ {
		if line == 0 {
			st.meta.RawName = strings.TrimSpace(scanner.Text())
			continue
		}
		for _, tok := range Scan(scanner.Text()) {
			if err := st.step(tok); err != nil {
				return nil, fmt.Errorf("%s line %d: %w", meta.RawPath, line+1, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read raw file: %w: %w", ErrIO, err)
	}
	st.flush()

	log.Debug().
		Str("file", meta.RawPath).
		Str("raw", st.meta.RawName).
		Int("objects", len(st.result.Objects)).
		Int("unprocessed", len(st.result.Unprocessed)).
		Msg("Parsed raw file")
	return st.result, nil
}

// decode converts Windows-1252 text to UTF-8, honouring a UTF-8 byte
// order mark when one is present.
func decode(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(charmap.Windows1252.NewDecoder()))
}

// DetectObjectType reads the file's OBJECT header.
func DetectObjectType(path string) (raws.ObjectType, error) {
	f, err := os.Open(path)
	if err != nil {
		return raws.ObjectUnknown, fmt.Errorf("open raw file: %w: %w", ErrIO, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(decode(f))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		for _, tok := range Scan(scanner.Text()) {
			if tok.Key != "OBJECT" {
				continue
			}
			kind, ok := raws.ParseObjectType(tok.Value)
			if !ok {
				return raws.ObjectUnknown, fmt.Errorf("%w: unknown object type %s in %s", ErrInvalidRawFile, tok.Value, filepath.Base(path))
			}
			return kind, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return raws.ObjectUnknown, fmt.Errorf("read raw file: %w: %w", ErrIO, err)
	}
	return raws.ObjectUnknown, fmt.Errorf("%w: no OBJECT header in %s", ErrInvalidRawFile, filepath.Base(path))
}
